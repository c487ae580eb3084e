// Package chart renders report summaries as self-contained HTML charts. It
// depends only on the report engine's output types and the raw record
// sequence, never on the ledger store's internals.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
	"github.com/HAVANA9D/TrackExpenses/internal/report"
)

// Renderer is anything that can write itself as an HTML page.
type Renderer interface {
	Render(w io.Writer) error
}

const (
	incomeColor  = "#2e7d32"
	expenseColor = "#c62828"
	balanceColor = "#1565c0"
)

// DefaultMonths is how many trailing months IncomeVsExpenses shows when the
// caller does not say.
const DefaultMonths = 12

// IncomeVsExpenses builds a grouped bar chart of per-month income and
// expense totals over the last lastN months (<=0 means DefaultMonths).
func IncomeVsExpenses(months []report.MonthTotals, lastN int) *charts.Bar {
	if lastN <= 0 {
		lastN = DefaultMonths
	}
	if len(months) > lastN {
		months = months[len(months)-lastN:]
	}

	labels := make([]string, 0, len(months))
	income := make([]opts.BarData, 0, len(months))
	expenses := make([]opts.BarData, 0, len(months))
	for _, m := range months {
		labels = append(labels, m.Label())
		income = append(income, opts.BarData{Value: amount(m.Income)})
		expenses = append(expenses, opts.BarData{Value: amount(m.Expense)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Income vs Expenses"}),
		charts.WithColorsOpts(opts.Colors{incomeColor, expenseColor}),
	)
	bar.SetXAxis(labels).
		AddSeries("Income", income).
		AddSeries("Expenses", expenses)
	return bar
}

// CategoryPie builds a pie of income or expense totals per category.
// Categories with a zero total for the chosen side are omitted.
func CategoryPie(categories []report.CategoryTotals, typ model.Type) *charts.Pie {
	title := "Expenses by Category"
	if typ == model.Income {
		title = "Income by Category"
	}

	var data []opts.PieData
	for _, c := range categories {
		total := c.Expense
		if typ == model.Income {
			total = c.Income
		}
		if total.IsZero() {
			continue
		}
		data = append(data, opts.PieData{Name: c.Category, Value: amount(total)})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	pie.AddSeries("categories", data)
	return pie
}

// BalanceOverTime builds a running-balance line chart over date-ascending
// records.
func BalanceOverTime(records []model.Transaction) *charts.Line {
	labels := make([]string, 0, len(records))
	points := make([]opts.LineData, 0, len(records))

	running := decimal.Zero
	for _, t := range records {
		running = running.Add(t.Amount)
		labels = append(labels, t.Date.Format(model.DateLayout))
		points = append(points, opts.LineData{Value: amount(running)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Balance Over Time"}),
		charts.WithColorsOpts(opts.Colors{balanceColor}),
	)
	line.SetXAxis(labels).AddSeries("Balance", points)
	return line
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
