// Package registry maps user names to their ledger stores, one JSON document
// per user under a single data directory.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/HAVANA9D/TrackExpenses/internal/ledger"
)

// Registry resolves user names to ledger stores. It is not persisted itself;
// the set of known users is whatever documents exist in the data directory.
type Registry struct {
	dataDir string
	suffix  string
	log     zerolog.Logger
	stores  map[string]*ledger.Store
}

// New creates a Registry over a data directory. An empty suffix means
// DefaultSuffix.
func New(dataDir, suffix string, log zerolog.Logger) *Registry {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Registry{
		dataDir: dataDir,
		suffix:  suffix,
		log:     log,
		stores:  make(map[string]*ledger.Store),
	}
}

// Path returns the storage document path for a user.
func (r *Registry) Path(user string) string {
	return filepath.Join(r.dataDir, FileName(user, r.suffix))
}

// Resolve returns the ledger store for a user, loading it on first use and
// creating an empty one when no document exists yet. Repeated calls for the
// same user return the same store. Only filesystem errors propagate.
func (r *Registry) Resolve(user string) (*ledger.Store, error) {
	path := r.Path(user)
	if s, ok := r.stores[path]; ok {
		return s, nil
	}

	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s, err := ledger.Load(path, user, r.log)
	if err != nil {
		return nil, err
	}
	r.stores[path] = s
	return s, nil
}

// Users enumerates user stems with an existing storage document, sorted.
// Best-effort: a missing data directory simply means no known users.
func (r *Registry) Users() ([]string, error) {
	entries, err := os.ReadDir(r.dataDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning data dir: %w", err)
	}

	var users []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if stem, ok := Stem(e.Name(), r.suffix); ok {
			users = append(users, stem)
		}
	}
	sort.Strings(users)
	return users, nil
}
