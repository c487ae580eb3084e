// Package report derives summaries from a ledger's transactions. Every
// function here is a pure projection: same input, same output, no side
// effects on the store.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

// Status classifies a net balance by sign.
type Status string

const (
	StatusPositive Status = "Positive"
	StatusNegative Status = "Negative"
	StatusZero     Status = "Zero"
)

// BalanceSummary totals a set of transactions. TotalExpense is a positive
// magnitude for display; Net carries the sign.
type BalanceSummary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Count        int
	Status       Status
}

// CategoryTotals aggregates one category's transactions. Expense is a
// positive magnitude.
type CategoryTotals struct {
	Category string
	Income   decimal.Decimal
	Expense  decimal.Decimal
	Count    int
}

// MonthTotals aggregates one calendar month's transactions.
type MonthTotals struct {
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int
}

// Label renders the month as "2024-01".
func (m MonthTotals) Label() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Balance computes income, expense, and net totals over the records.
func Balance(records []model.Transaction) BalanceSummary {
	s := BalanceSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Net:          decimal.Zero,
		Count:        len(records),
	}
	for _, t := range records {
		if t.Type == model.Income {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(t.Amount.Abs())
		}
		s.Net = s.Net.Add(t.Amount)
	}

	switch s.Net.Sign() {
	case 1:
		s.Status = StatusPositive
	case -1:
		s.Status = StatusNegative
	default:
		s.Status = StatusZero
	}
	return s
}

// Categories aggregates per category, discovering categories from the data.
// Results are sorted by category name.
func Categories(records []model.Transaction) []CategoryTotals {
	byName := make(map[string]*CategoryTotals)
	for _, t := range records {
		c, ok := byName[t.Category]
		if !ok {
			c = &CategoryTotals{
				Category: t.Category,
				Income:   decimal.Zero,
				Expense:  decimal.Zero,
			}
			byName[t.Category] = c
		}
		if t.Type == model.Income {
			c.Income = c.Income.Add(t.Amount)
		} else {
			c.Expense = c.Expense.Add(t.Amount.Abs())
		}
		c.Count++
	}

	out := make([]CategoryTotals, 0, len(byName))
	for _, c := range byName {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Monthly groups records by calendar year-month, in chronological order.
// Months with no records are omitted.
func Monthly(records []model.Transaction) []MonthTotals {
	type key struct {
		year  int
		month time.Month
	}
	byMonth := make(map[key]*MonthTotals)
	for _, t := range records {
		k := key{t.Date.Year(), t.Date.Month()}
		m, ok := byMonth[k]
		if !ok {
			m = &MonthTotals{
				Year:    k.year,
				Month:   k.month,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			}
			byMonth[k] = m
		}
		if t.Type == model.Income {
			m.Income = m.Income.Add(t.Amount)
		} else {
			m.Expense = m.Expense.Add(t.Amount.Abs())
		}
		m.Net = m.Net.Add(t.Amount)
		m.Count++
	}

	out := make([]MonthTotals, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}
