package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

// ChaseParser parses Chase checking CSV exports
// (Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #).
// Chase already signs amounts the way the ledger does: negative for money
// out, positive for money in.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns transactions. Unparseable rows are
// skipped and counted.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Transaction, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading chase CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, 0, nil
	}

	var records []model.Transaction
	skipped := 0
	// Skip header row.
	for _, row := range rows[1:] {
		t, ok := parseChaseRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, t)
	}
	return records, skipped, nil
}

func parseChaseRow(row []string) (model.Transaction, bool) {
	date, ok := chaseDate(row[chaseColDate])
	if !ok {
		return model.Transaction{}, false
	}

	amount, err := decimal.NewFromString(row[chaseColAmount])
	if err != nil {
		return model.Transaction{}, false
	}

	// Type is derived from the sign; Chase's own Type column uses bank
	// jargon (DEBIT, ACH_CREDIT, ...) that does not map onto the ledger's.
	return model.NewTransaction(date, row[chaseColDesc], amount, "", ""), true
}

// chaseDate converts MM/DD/YYYY to the ledger's ISO form.
func chaseDate(s string) (string, bool) {
	d, err := time.Parse(chaseDateFormat, s)
	if err != nil {
		return "", false
	}
	return d.Format(model.DateLayout), true
}
