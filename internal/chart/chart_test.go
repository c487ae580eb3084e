package chart

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
	"github.com/HAVANA9D/TrackExpenses/internal/report"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func render(t *testing.T, r Renderer) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf))
	return buf.String()
}

func TestIncomeVsExpenses(t *testing.T) {
	months := []report.MonthTotals{
		{Year: 2024, Month: time.January, Income: dec("100"), Expense: dec("30")},
		{Year: 2024, Month: time.February, Income: dec("0"), Expense: dec("10")},
	}

	html := render(t, IncomeVsExpenses(months, 0))
	assert.Contains(t, html, "Monthly Income vs Expenses")
	assert.Contains(t, html, "2024-01")
	assert.Contains(t, html, "2024-02")
}

func TestIncomeVsExpenses_TrailingWindow(t *testing.T) {
	var months []report.MonthTotals
	for m := 1; m <= 14; m++ {
		months = append(months, report.MonthTotals{
			Year:    2023,
			Month:   time.Month(m%12 + 1),
			Income:  dec("1"),
			Expense: dec("1"),
		})
	}
	for i := range months {
		// Distinct years so every label is unique.
		months[i].Year = 2020 + i
	}

	html := render(t, IncomeVsExpenses(months, 12))
	assert.NotContains(t, html, fmt.Sprintf("%d-", 2020))
	assert.NotContains(t, html, fmt.Sprintf("%d-", 2021))
	assert.Contains(t, html, fmt.Sprintf("%d-", 2033))
}

func TestCategoryPie_OmitsZeroTotals(t *testing.T) {
	cats := []report.CategoryTotals{
		{Category: "Food", Income: dec("0"), Expense: dec("35")},
		{Category: "Salary", Income: dec("1000"), Expense: dec("0")},
	}

	html := render(t, CategoryPie(cats, model.Expense))
	assert.Contains(t, html, "Expenses by Category")
	assert.Contains(t, html, "Food")
	assert.NotContains(t, html, "Salary", "zero-expense categories are omitted")

	html = render(t, CategoryPie(cats, model.Income))
	assert.Contains(t, html, "Income by Category")
	assert.Contains(t, html, "Salary")
	assert.NotContains(t, html, "Food")
}

func TestBalanceOverTime(t *testing.T) {
	records := []model.Transaction{
		model.NewTransaction("2024-01-10", "pay", dec("100"), "", ""),
		model.NewTransaction("2024-01-20", "food", dec("-30"), "", ""),
	}

	html := render(t, BalanceOverTime(records))
	assert.Contains(t, html, "Balance Over Time")
	assert.Contains(t, html, "2024-01-10")
	assert.Contains(t, html, "2024-01-20")
}
