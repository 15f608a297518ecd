package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/coverage"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/viewmodel"
)

func (c *cli) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the coverage options and their levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPTION\tLEVEL\tAMOUNT\tDEDUCTIBLE\tPRICE")
			for _, o := range coverage.All() {
				for _, l := range o.Levels {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
						o.ID, l.ID, viewmodel.Amount(l.Amount), viewmodel.Amount(l.Deductible), viewmodel.Money(l.Price))
				}
			}
			return w.Flush()
		},
	}
}

// quoteCmd prices a set of option=level picks. A later pick of the same
// option replaces the earlier one.
func (c *cli) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quote OPTION=LEVEL...",
		Short:   "Price a selection of coverage levels",
		Example: "  quotectl quote dwelling=dwelling-2 liability=liability-3",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := cart.New()
			for _, arg := range args {
				option, level, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected OPTION=LEVEL, got %q", arg)
				}
				sel, err := coverage.Selection(option, level)
				if err != nil {
					return err
				}
				items.AddOrReplace(sel)
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			for _, item := range items.Items() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, viewmodel.Amount(item.Amount), viewmodel.Money(item.Price))
			}
			fmt.Fprintf(w, "Subtotal\t\t%s\n", viewmodel.Money(items.Subtotal()))
			fmt.Fprintf(w, "Tax (%.0f%%)\t\t%s\n", cart.TaxRate*100, viewmodel.Money(items.Tax()))
			fmt.Fprintf(w, "Total\t\t%s\n", viewmodel.Money(items.Total()))
			return w.Flush()
		},
	}
}
