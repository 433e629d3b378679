package database

import (
	"database/sql"
	"sync"

	"github.com/skyhook-sh/site/status"
)

// DBWrapper hands out the connection once it exists. The site starts
// serving pages before Postgres is reachable; anything needing the DB
// gets status.ErrDatabaseNotReady until the swap happens.
type DBWrapper interface {
	DB() (*sql.DB, error)
}

type SwappableDB struct {
	mu    sync.RWMutex
	db    *sql.DB
	ready bool
}

func NewSwappableDB() *SwappableDB {
	return &SwappableDB{}
}

func (s *SwappableDB) Swap(db *sql.DB) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db = db
	s.ready = true
}

func (s *SwappableDB) DB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return nil, status.ErrDatabaseNotReady
	}
	return s.db, nil
}
