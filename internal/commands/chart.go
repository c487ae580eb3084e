package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/chart"
	"github.com/HAVANA9D/TrackExpenses/internal/ledger"
	"github.com/HAVANA9D/TrackExpenses/internal/model"
	"github.com/HAVANA9D/TrackExpenses/internal/report"
)

func newChartCommand() *cobra.Command {
	var user string
	var kind string
	var outDir string
	var months int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write an HTML chart for a user's ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}

			var r chart.Renderer
			switch kind {
			case "overview":
				r = chart.IncomeVsExpenses(report.Monthly(store.All()), months)
			case "categories":
				r = chart.CategoryPie(report.Categories(store.All()), model.Expense)
			case "income":
				r = chart.CategoryPie(report.Categories(store.All()), model.Income)
			case "balance":
				r = chart.BalanceOverTime(store.Query(ledger.Filter{Order: ledger.OrderDateAsc}))
			default:
				return fmt.Errorf("unknown chart kind %q: want overview, categories, income, or balance", kind)
			}

			stem := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(user)), " ", "_")
			path := filepath.Join(outDir, fmt.Sprintf("%s_%s.html", stem, kind))

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating chart file: %w", err)
			}
			defer f.Close()

			if err := r.Render(f); err != nil {
				return fmt.Errorf("rendering chart: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&kind, "kind", "overview", "chart kind: overview, categories, income, balance")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	cmd.Flags().IntVar(&months, "months", chart.DefaultMonths, "trailing months for the overview chart")

	return cmd
}
