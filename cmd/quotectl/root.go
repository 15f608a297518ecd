package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/gateway"
)

type cli struct {
	out     io.Writer
	backend gateway.Backend
	store   *gateway.Store

	url     string
	offline bool
}

// newRootCmd builds the command tree. A nil backend is chosen from the flags
// before the first command runs.
func newRootCmd(out io.Writer, backend gateway.Backend) *cobra.Command {
	c := &cli{out: out, backend: backend}

	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Manage QuoteFox customers and policies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.backend == nil {
				if c.offline {
					c.backend = gateway.NewMemoryBackend()
				} else {
					c.backend = gateway.NewHTTPBackend(c.url, nil)
				}
			}
			c.store = gateway.NewStore(c.backend)
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.url, "url", env.GetEnv("GATEWAY_URL", "http://localhost:4000/api"), "base URL of the API")
	root.PersistentFlags().BoolVar(&c.offline, "offline", false, "use a throwaway in-memory store instead of the API")

	root.AddCommand(
		c.customersCmd(),
		c.policiesCmd(),
		c.catalogCmd(),
		c.quoteCmd(),
	)
	return root
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}
