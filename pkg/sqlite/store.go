// Package sqlite exposes the factory for the SQLite-backed GoalStore and
// Ledger while keeping the implementation internal.
package sqlite

import (
	"github.com/ascent-labs/ascent/internal/sqlite"
	"github.com/ascent-labs/ascent/pkg/types"
)

// Store is the SQLite goal store and progress ledger. It implements both
// types.GoalStore and types.Ledger over one database file.
type Store = sqlite.Store

// NewStore creates an unopened store. Call Open with a Config before use:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".ascent-db",
//	})
//	defer store.Close()
func NewStore() *Store {
	return sqlite.NewStore()
}

// Open creates a store and opens it in one call.
func Open(config types.Config) (*Store, error) {
	s := sqlite.NewStore()
	if err := s.Open(config); err != nil {
		return nil, err
	}
	return s, nil
}
