package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

// GenericParser parses `date,description,amount[,type[,category]]` rows.
// A header row is detected and skipped. Each row goes through the normal
// transaction construction, so dates and type/sign mismatches are repaired
// the same way manual entry repairs them.
type GenericParser struct{}

const (
	genericColDate     = 0
	genericColDesc     = 1
	genericColAmount   = 2
	genericColType     = 3
	genericColCategory = 4
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads the CSV and returns the parsed transactions plus the count of
// rows that were skipped as unparseable.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // type and category columns are optional

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, nil
	}

	if isGenericHeader(rows[0]) {
		rows = rows[1:]
	}

	var records []model.Transaction
	skipped := 0
	for _, row := range rows {
		t, ok := parseGenericRow(row)
		if !ok {
			skipped++
			continue
		}
		records = append(records, t)
	}
	return records, skipped, nil
}

// isGenericHeader reports whether a row looks like a header: its amount
// column is not a number.
func isGenericHeader(row []string) bool {
	if len(row) <= genericColAmount {
		return false
	}
	_, err := decimal.NewFromString(row[genericColAmount])
	return err != nil
}

func parseGenericRow(row []string) (model.Transaction, bool) {
	if len(row) <= genericColAmount {
		return model.Transaction{}, false
	}

	amount, err := decimal.NewFromString(row[genericColAmount])
	if err != nil {
		return model.Transaction{}, false
	}

	var typ model.Type
	if len(row) > genericColType {
		typ, _ = model.ParseType(row[genericColType])
	}

	category := ""
	if len(row) > genericColCategory {
		category = row[genericColCategory]
	}

	return model.NewTransaction(row[genericColDate], row[genericColDesc], amount, typ, category), true
}
