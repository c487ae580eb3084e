package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction as money coming in or going out.
type Type string

const (
	Income  Type = "Income"
	Expense Type = "Expense"
)

// DateLayout is the calendar-date format used throughout: ISO 8601, no time component.
const DateLayout = "2006-01-02"

// DefaultCategory is assigned when no category applies.
const DefaultCategory = "General"

// Transaction represents a single ledger entry.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // positive = income, negative = expense
	Type        Type
	Category    string
}

// ParseType maps user input like "income" or "EXPENSE" to a Type.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, true
	case "expense":
		return Expense, true
	}
	return "", false
}

// ParseDate parses an ISO 8601 calendar date, normalized to midnight UTC.
// The second return value reports whether the input was parseable.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewTransaction builds a normalized Transaction. Malformed input is repaired
// rather than rejected: an unparseable date becomes today, the amount's sign
// is reconciled with the claimed type (an Expense given a positive amount is
// negated, an Income given a negative amount is made absolute), and the final
// type is re-derived from the resulting sign. A zero amount is an Expense.
// An empty category, or any income, gets DefaultCategory.
func NewTransaction(date, description string, amount decimal.Decimal, typ Type, category string) Transaction {
	d, ok := ParseDate(date)
	if !ok {
		d = Today()
	}

	switch typ {
	case Expense:
		if amount.IsPositive() {
			amount = amount.Neg()
		}
	case Income:
		if amount.IsNegative() {
			amount = amount.Abs()
		}
	}

	typ = Expense
	if amount.IsPositive() {
		typ = Income
	}

	category = strings.TrimSpace(category)
	if category == "" || typ == Income {
		category = DefaultCategory
	}

	return Transaction{
		Date:        d,
		Description: description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
	}
}

// String renders the transaction as a single pipe-delimited line.
func (t Transaction) String() string {
	return fmt.Sprintf("%s | %s | $%s | %s | %s",
		t.Date.Format(DateLayout), t.Description, t.Amount.StringFixed(2), t.Type, t.Category)
}
