package ledger

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestDocumentRoundTrip(t *testing.T) {
	records := []model.Transaction{
		{
			Date:        date(2024, 1, 10),
			Description: "salary",
			Amount:      dec("2500.00"),
			Type:        model.Income,
			Category:    "General",
		},
		{
			Date:        date(2024, 1, 12),
			Description: "groceries",
			Amount:      dec("-45.5"),
			Type:        model.Expense,
			Category:    "Food",
		},
	}
	saved := time.Date(2024, 1, 12, 18, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := WriteDocument(&buf, "alice", records, saved)
	require.NoError(t, err)

	// Amounts are stored as bare JSON numbers, not strings.
	assert.Contains(t, buf.String(), `"amount": -45.5`)

	doc, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, "alice", doc.User)
	assert.True(t, saved.Equal(doc.LastUpdated))
	assert.Zero(t, doc.Skipped)
	require.Len(t, doc.Records, 2)

	for i := range records {
		assert.True(t, records[i].Date.Equal(doc.Records[i].Date))
		assert.Equal(t, records[i].Description, doc.Records[i].Description)
		assert.True(t, records[i].Amount.Equal(doc.Records[i].Amount), "amount mismatch record %d", i)
		assert.Equal(t, records[i].Type, doc.Records[i].Type)
		assert.Equal(t, records[i].Category, doc.Records[i].Category)
	}
}

func TestReadDocument_SkipsCorruptEntries(t *testing.T) {
	// One valid, one with a string amount, one with a bogus date, one valid.
	in := `{
  "user": "bob",
  "transactions": [
    {"date": "2024-03-01", "description": "pay", "amount": 1000, "type": "Income", "category": "General"},
    {"date": "2024-03-02", "description": "bad", "amount": "abc", "type": "Expense", "category": "Food"},
    {"date": "03/05/2024", "description": "bad date", "amount": -5, "type": "Expense", "category": "Food"},
    {"date": "2024-03-07", "description": "rent", "amount": -800, "type": "Expense", "category": "Rent"}
  ],
  "last_updated": "2024-03-07T10:00:00Z"
}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err, "corrupt entries must not fail the document")
	assert.Equal(t, 2, doc.Skipped)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "pay", doc.Records[0].Description)
	assert.Equal(t, "rent", doc.Records[1].Description)
}

func TestReadDocument_UnknownTypeIsCorrupt(t *testing.T) {
	in := `{"user": "x", "transactions": [
		{"date": "2024-01-01", "description": "?", "amount": 5, "type": "Transfer", "category": "General"}
	], "last_updated": ""}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, doc.Records)
	assert.Equal(t, 1, doc.Skipped)
}

func TestReadDocument_MissingCategoryDefaults(t *testing.T) {
	in := `{"user": "x", "transactions": [
		{"date": "2024-01-01", "description": "lunch", "amount": -12, "type": "Expense"}
	], "last_updated": "2024-01-01T00:00:00Z"}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "General", doc.Records[0].Category)
}

func TestReadDocument_StoredFieldsAreTrusted(t *testing.T) {
	// A stored entry whose type disagrees with the sign is kept as-is;
	// re-derivation happens only at construction time.
	in := `{"user": "x", "transactions": [
		{"date": "2024-01-01", "description": "odd", "amount": 10, "type": "Expense", "category": "Food"}
	], "last_updated": ""}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, model.Expense, doc.Records[0].Type)
	assert.True(t, doc.Records[0].Amount.Equal(dec("10")))
}

func TestReadDocument_BadTimestamp(t *testing.T) {
	in := `{"user": "x", "transactions": [], "last_updated": "yesterday"}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err)
	assert.True(t, doc.LastUpdated.IsZero())
}

func TestReadDocument_Malformed(t *testing.T) {
	_, err := ReadDocument(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestReadTestdata(t *testing.T) {
	f, err := os.Open("../../testdata/demo_transactions.json")
	require.NoError(t, err)
	defer f.Close()

	doc, err := ReadDocument(f)
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.User)
	assert.Equal(t, 1, doc.Skipped, "testdata has one corrupt entry")
	require.Len(t, doc.Records, 3)

	total := decimal.Zero
	for _, r := range doc.Records {
		total = total.Add(r.Amount)
	}
	assert.True(t, total.Equal(dec("2104.50")), "total: got %s", total)
}
