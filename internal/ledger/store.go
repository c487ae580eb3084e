package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/HAVANA9D/TrackExpenses/internal/model"
)

// Order selects how Query results are sequenced.
type Order int

const (
	// OrderDateDesc is the default view: newest first, equal dates keep
	// insertion order.
	OrderDateDesc Order = iota
	OrderDateAsc
	OrderInsertion
)

// Filter narrows a Query. Zero values mean "no constraint": a zero From/To
// leaves that side of the date range open, an empty Type matches both.
// The date range is inclusive on both ends.
type Filter struct {
	From  time.Time
	To    time.Time
	Type  model.Type
	Order Order
}

// Store is the durable collection of one user's transactions, backed by a
// single JSON document that is rewritten whole on every mutation.
type Store struct {
	path        string
	user        string
	records     []model.Transaction
	lastUpdated time.Time
	skipped     int
	log         zerolog.Logger
}

// Load reads a user's storage document. A missing file yields an empty store.
// Corrupt entries are skipped and counted; an unreadable or malformed
// document as a whole also yields an empty store, with a warning, so one bad
// file never blocks a session. Only filesystem errors other than "not exist"
// are returned, as a *StorageError.
func Load(path, user string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, user: user, log: log}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	doc, err := ReadDocument(f)
	if err != nil {
		log.Warn().Str("path", path).Err(err).
			Msg("unreadable storage document, starting with an empty ledger")
		return s, nil
	}

	s.records = doc.Records
	s.lastUpdated = doc.LastUpdated
	s.skipped = doc.Skipped
	if doc.Skipped > 0 {
		log.Warn().Str("path", path).Int("skipped", doc.Skipped).
			Msg("skipped corrupt transaction entries")
	}
	return s, nil
}

// Add appends a transaction and persists the whole document. On write
// failure the in-memory append is rolled back and a *StorageError is
// returned, so memory and disk never silently diverge.
func (s *Store) Add(t model.Transaction) error {
	s.records = append(s.records, t)

	prev := s.lastUpdated
	s.lastUpdated = time.Now().UTC()

	if err := s.save(); err != nil {
		s.records = s.records[:len(s.records)-1]
		s.lastUpdated = prev
		return err
	}

	s.log.Debug().Str("user", s.user).Str("type", string(t.Type)).
		Str("amount", t.Amount.StringFixed(2)).Msg("transaction saved")
	return nil
}

// save writes the document to a temp file in the same directory and renames
// it into place, so a crash mid-write never leaves a truncated document.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if err := WriteDocument(tmp, s.user, s.records, s.lastUpdated); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("replacing document: %w", err)}
	}

	if err := os.Chmod(s.path, 0o644); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Query returns a new slice of the transactions matching the filter. The
// store is not mutated; the result is independent of later mutations.
func (s *Store) Query(f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.records {
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && t.Date.After(f.To) {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		out = append(out, t)
	}

	switch f.Order {
	case OrderDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	case OrderDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case OrderInsertion:
		// Already in insertion order.
	}
	return out
}

// Balance returns the net sum of all transaction amounts, independent of any
// filtering.
func (s *Store) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.records {
		total = total.Add(t.Amount)
	}
	return total
}

// All returns a copy of the records in insertion order.
func (s *Store) All() []model.Transaction {
	out := make([]model.Transaction, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int { return len(s.records) }

// User returns the owning user's name.
func (s *Store) User() string { return s.user }

// Path returns the backing document's path.
func (s *Store) Path() string { return s.path }

// LastUpdated returns the timestamp of the last successful save (or the
// stored one, right after load).
func (s *Store) LastUpdated() time.Time { return s.lastUpdated }

// Skipped returns how many corrupt entries were dropped during load.
func (s *Store) Skipped() int { return s.skipped }
