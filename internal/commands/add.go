package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

func newAddCommand() *cobra.Command {
	var user string
	var date string
	var description string
	var amountStr string
	var typeStr string
	var category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			var typ model.Type
			if typeStr != "" {
				var ok bool
				typ, ok = model.ParseType(typeStr)
				if !ok {
					return fmt.Errorf("invalid type %q: must be income or expense", typeStr)
				}
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}

			t := model.NewTransaction(date, description, amount, typ, category)
			if err := store.Add(t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added: %s\n", t)
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: $%s\n", store.Balance().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&amountStr, "amount", "", "signed amount: positive income, negative expense (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&typeStr, "type", "", "income or expense (default derived from sign)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (default General)")

	return cmd
}
