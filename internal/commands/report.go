package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the balance summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}
			s := report.Balance(store.All())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total Income:      $%s\n", s.TotalIncome.StringFixed(2))
			fmt.Fprintf(out, "Total Expenses:    $%s\n", s.TotalExpense.StringFixed(2))
			fmt.Fprintf(out, "Current Balance:   $%s\n", s.Net.StringFixed(2))
			fmt.Fprintf(out, "Transactions:      %d\n", s.Count)

			switch s.Status {
			case report.StatusPositive:
				fmt.Fprintln(out, "You're in the positive!")
			case report.StatusNegative:
				fmt.Fprintln(out, "Warning: negative balance!")
			default:
				fmt.Fprintln(out, "Balanced")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newCategoriesCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show totals per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}
			cats := report.Categories(store.All())

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Category", "Income", "Expenses", "Net", "Count"})
			for _, c := range cats {
				net := c.Income.Sub(c.Expense)
				table.Append([]string{
					c.Category,
					"$" + c.Income.StringFixed(2),
					"$" + c.Expense.StringFixed(2),
					"$" + net.StringFixed(2),
					fmt.Sprintf("%d", c.Count),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newMonthlyCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show totals per calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}
			months := report.Monthly(store.All())

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Month", "Income", "Expenses", "Net", "Count"})
			for _, m := range months {
				table.Append([]string{
					m.Label(),
					"$" + m.Income.StringFixed(2),
					"$" + m.Expense.StringFixed(2),
					"$" + m.Net.StringFixed(2),
					fmt.Sprintf("%d", m.Count),
				})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List known users and their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			users, err := env.reg.Users()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"User", "Balance", "Transactions"})
			for _, u := range users {
				store, err := env.reg.Resolve(u)
				if err != nil {
					return err
				}
				table.Append([]string{
					u,
					"$" + store.Balance().StringFixed(2),
					fmt.Sprintf("%d", store.Len()),
				})
			}
			table.Render()
			return nil
		},
	}

	return cmd
}
