package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

// timestampLayout is the format for the document's last_updated field.
const timestampLayout = time.RFC3339

// Document is the decoded form of one user's storage document.
type Document struct {
	User        string
	Records     []model.Transaction
	LastUpdated time.Time
	// Skipped counts transaction entries that could not be decoded and
	// were dropped so the rest of the document still loads.
	Skipped int
}

// storedDocument mirrors the on-disk JSON schema. Transactions are kept raw
// so a single corrupt entry can be skipped without failing the document.
type storedDocument struct {
	User         string            `json:"user"`
	Transactions []json.RawMessage `json:"transactions"`
	LastUpdated  string            `json:"last_updated"`
}

// storedRecord mirrors one transaction entry. Amount is a json.Number so it
// is written as a bare JSON number, not a quoted string.
type storedRecord struct {
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"type"`
	Category    string      `json:"category"`
}

// ReadDocument decodes a storage document. Entries that fail to decode are
// skipped and counted in Document.Skipped; only a malformed document as a
// whole is an error.
func ReadDocument(r io.Reader) (Document, error) {
	var stored storedDocument
	if err := json.NewDecoder(r).Decode(&stored); err != nil {
		return Document{}, fmt.Errorf("decoding document: %w", err)
	}

	doc := Document{User: stored.User}
	if stored.LastUpdated != "" {
		// A bad timestamp is metadata damage, not data loss; leave it zero.
		if ts, err := time.Parse(timestampLayout, stored.LastUpdated); err == nil {
			doc.LastUpdated = ts
		}
	}

	for _, raw := range stored.Transactions {
		t, err := unmarshalRecord(raw)
		if err != nil {
			doc.Skipped++
			continue
		}
		doc.Records = append(doc.Records, t)
	}
	return doc, nil
}

// WriteDocument encodes a storage document as indented JSON.
func WriteDocument(w io.Writer, user string, records []model.Transaction, lastUpdated time.Time) error {
	stored := storedDocument{
		User:         user,
		Transactions: make([]json.RawMessage, 0, len(records)),
		LastUpdated:  lastUpdated.Format(timestampLayout),
	}
	for i, t := range records {
		raw, err := marshalRecord(t)
		if err != nil {
			return fmt.Errorf("encoding transaction %d: %w", i, err)
		}
		stored.Transactions = append(stored.Transactions, raw)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// marshalRecord converts a Transaction to its stored JSON form.
func marshalRecord(t model.Transaction) (json.RawMessage, error) {
	return json.Marshal(storedRecord{
		Date:        t.Date.Format(model.DateLayout),
		Description: t.Description,
		Amount:      json.Number(t.Amount.String()),
		Type:        string(t.Type),
		Category:    t.Category,
	})
}

// unmarshalRecord converts a stored JSON entry back to a Transaction. Fields
// are trusted as stored: type and category are not re-derived, only checked
// for well-formedness. A missing category defaults to General.
func unmarshalRecord(raw json.RawMessage) (model.Transaction, error) {
	var rec storedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.Transaction{}, fmt.Errorf("decoding entry: %w", err)
	}

	date, ok := model.ParseDate(rec.Date)
	if !ok {
		return model.Transaction{}, fmt.Errorf("parsing date %q", rec.Date)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}

	typ := model.Type(rec.Type)
	if typ != model.Income && typ != model.Expense {
		return model.Transaction{}, fmt.Errorf("unknown type %q", rec.Type)
	}

	category := rec.Category
	if category == "" {
		category = model.DefaultCategory
	}

	return model.Transaction{
		Date:        date,
		Description: rec.Description,
		Amount:      amount,
		Type:        typ,
		Category:    category,
	}, nil
}
