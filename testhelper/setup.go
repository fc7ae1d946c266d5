package testhelper

import (
	"testing"
	"time"

	"github.com/clipvault/clipvault/internal/session"
	"github.com/clipvault/clipvault/internal/store"
)

// SetupTestStore opens a dataset in a fresh temp directory.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir(), NewLogger())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return st
}

// SetupSessionStore returns an in-memory session store with a short
// but comfortable TTL.
func SetupSessionStore(t *testing.T) *session.MemoryStore {
	t.Helper()
	return session.NewMemoryStore(time.Hour)
}
