// Command quotectl manages customers and policies through the QuoteFox API
// and prices coverage selections from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
)

func main() {
	env.SetupEnvFile()
	if err := newRootCmd(os.Stdout, nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
