package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/QuoteFox/app/models"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/reference"
)

func (c *cli) policiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "policies",
		Aliases: []string{"policy"},
		Short:   "List and edit policies",
	}
	cmd.AddCommand(
		c.policiesListCmd(),
		c.policiesAddCmd(),
		c.policiesUpdateCmd(),
		c.policiesDeleteCmd(),
	)
	return cmd
}

func (c *cli) policiesListCmd() *cobra.Command {
	var customerID uint
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List policies, optionally of one customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.FetchPolicies(cmd.Context()); err != nil {
				return err
			}
			c.printPolicies(customerID)
			return nil
		},
	}
	cmd.Flags().UintVar(&customerID, "customer", 0, "only policies of this customer id")
	return cmd
}

func (c *cli) policiesAddCmd() *cobra.Command {
	policy := models.Policy{Status: models.POLICY_STATUS_ACTIVE}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if policy.PolicyNumber == "" {
				number, err := reference.PolicyNumber()
				if err != nil {
					return err
				}
				policy.PolicyNumber = number
			}
			if err := c.store.AddPolicy(cmd.Context(), policy); err != nil {
				return err
			}
			c.printPolicies(0)
			return nil
		},
	}
	cmd.Flags().UintVar(&policy.CustomerID, "customer", 0, "customer id (required)")
	cmd.Flags().StringVar(&policy.PolicyNumber, "number", "", "policy number, generated when empty")
	cmd.Flags().StringVar(&policy.PolicyType, "type", "", "policy type, e.g. Home (required)")
	cmd.Flags().StringVar(&policy.StartDate, "start", "", "start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&policy.EndDate, "end", "", "end date YYYY-MM-DD (required)")
	cmd.Flags().Float64Var(&policy.Premium, "premium", 0, "annual premium")
	cmd.Flags().StringVar(&policy.Status, "status", policy.Status, "status")
	return cmd
}

func (c *cli) policiesUpdateCmd() *cobra.Command {
	var values models.Policy
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch models.PolicyPatch
			flags := cmd.Flags()
			if flags.Changed("customer") {
				patch.CustomerID = &values.CustomerID
			}
			if flags.Changed("number") {
				patch.PolicyNumber = &values.PolicyNumber
			}
			if flags.Changed("type") {
				patch.PolicyType = &values.PolicyType
			}
			if flags.Changed("start") {
				patch.StartDate = &values.StartDate
			}
			if flags.Changed("end") {
				patch.EndDate = &values.EndDate
			}
			if flags.Changed("premium") {
				patch.Premium = &values.Premium
			}
			if flags.Changed("status") {
				patch.Status = &values.Status
			}

			if err := c.store.UpdatePolicy(cmd.Context(), id, patch); err != nil {
				return err
			}
			c.printPolicies(0)
			return nil
		},
	}
	cmd.Flags().UintVar(&values.CustomerID, "customer", 0, "customer id")
	cmd.Flags().StringVar(&values.PolicyNumber, "number", "", "policy number")
	cmd.Flags().StringVar(&values.PolicyType, "type", "", "policy type")
	cmd.Flags().StringVar(&values.StartDate, "start", "", "start date")
	cmd.Flags().StringVar(&values.EndDate, "end", "", "end date")
	cmd.Flags().Float64Var(&values.Premium, "premium", 0, "annual premium")
	cmd.Flags().StringVar(&values.Status, "status", "", "status")
	return cmd
}

func (c *cli) policiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.store.DeletePolicy(cmd.Context(), id); err != nil {
				return err
			}
			c.printPolicies(0)
			return nil
		},
	}
}

func (c *cli) printPolicies(customerID uint) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tNUMBER\tTYPE\tSTART\tEND\tPREMIUM\tSTATUS")
	for _, p := range c.store.PoliciesFor(customerID) {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			p.ID, p.CustomerID, p.PolicyNumber, p.PolicyType, p.StartDate, p.EndDate, p.Premium, p.Status)
	}
	w.Flush()
}
