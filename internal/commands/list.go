package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/ledger"
	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

func newListCommand() *cobra.Command {
	var user string
	var fromStr string
	var toStr string
	var typeStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			filter, err := buildFilter(fromStr, toStr, typeStr)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}
			records := store.Query(filter)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Date", "Description", "Amount", "Type", "Category"})
			for _, t := range records {
				table.Append([]string{
					t.Date.Format(model.DateLayout),
					t.Description,
					"$" + t.Amount.Abs().StringFixed(2),
					string(t.Type),
					t.Category,
				})
			}
			table.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "%d transactions\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&fromStr, "from", "", "earliest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "latest date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeStr, "type", "", "filter by income or expense")

	return cmd
}

// buildFilter validates the list/chart filter flags. Unlike record
// construction, a bad flag here is rejected, not repaired.
func buildFilter(fromStr, toStr, typeStr string) (ledger.Filter, error) {
	var f ledger.Filter

	if fromStr != "" {
		d, ok := model.ParseDate(fromStr)
		if !ok {
			return f, fmt.Errorf("invalid --from date %q: want YYYY-MM-DD", fromStr)
		}
		f.From = d
	}
	if toStr != "" {
		d, ok := model.ParseDate(toStr)
		if !ok {
			return f, fmt.Errorf("invalid --to date %q: want YYYY-MM-DD", toStr)
		}
		f.To = d
	}
	if typeStr != "" {
		typ, ok := model.ParseType(typeStr)
		if !ok {
			return f, fmt.Errorf("invalid --type %q: must be income or expense", typeStr)
		}
		f.Type = typ
	}
	return f, nil
}
