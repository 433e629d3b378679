package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyhook-sh/site/status"
)

func TestSwappableDBNotReady(t *testing.T) {
	s := NewSwappableDB()

	_, err := s.DB()
	assert.ErrorIs(t, err, status.ErrDatabaseNotReady)
}

func TestSwappableDBAfterSwap(t *testing.T) {
	s := NewSwappableDB()
	s.Swap(&sql.DB{})

	db, err := s.DB()
	require.NoError(t, err)
	assert.NotNil(t, db)
}
