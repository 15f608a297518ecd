package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ManuelReschke/QuoteFox/app/models"
)

func (c *cli) customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "List and edit customers",
	}
	cmd.AddCommand(
		c.customersListCmd(),
		c.customersAddCmd(),
		c.customersUpdateCmd(),
		c.customersDeleteCmd(),
	)
	return cmd
}

func (c *cli) customersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.FetchCustomers(cmd.Context()); err != nil {
				return err
			}
			c.printCustomers()
			return nil
		},
	}
}

func (c *cli) customersAddCmd() *cobra.Command {
	var customer models.Customer
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.AddCustomer(cmd.Context(), customer); err != nil {
				return err
			}
			c.printCustomers()
			return nil
		},
	}
	cmd.Flags().StringVar(&customer.FirstName, "first-name", "", "first name (required)")
	cmd.Flags().StringVar(&customer.LastName, "last-name", "", "last name (required)")
	cmd.Flags().StringVar(&customer.Email, "email", "", "email address, unique (required)")
	cmd.Flags().StringVar(&customer.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&customer.Address, "address", "", "postal address")
	return cmd
}

func (c *cli) customersUpdateCmd() *cobra.Command {
	var values models.Customer
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch models.CustomerPatch
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				patch.FirstName = &values.FirstName
			}
			if flags.Changed("last-name") {
				patch.LastName = &values.LastName
			}
			if flags.Changed("email") {
				patch.Email = &values.Email
			}
			if flags.Changed("phone") {
				patch.Phone = &values.Phone
			}
			if flags.Changed("address") {
				patch.Address = &values.Address
			}

			if err := c.store.UpdateCustomer(cmd.Context(), id, patch); err != nil {
				return err
			}
			c.printCustomers()
			return nil
		},
	}
	cmd.Flags().StringVar(&values.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&values.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&values.Email, "email", "", "email address")
	cmd.Flags().StringVar(&values.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&values.Address, "address", "", "postal address")
	return cmd
}

func (c *cli) customersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a customer; their policies are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.store.DeleteCustomer(cmd.Context(), id); err != nil {
				return err
			}
			c.printCustomers()
			return nil
		},
	}
}

func (c *cli) printCustomers() {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, customer := range c.store.Customers() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", customer.ID, customer.FullName(), customer.Email, customer.Phone)
	}
	w.Flush()
}
