package testutil

import (
	"path/filepath"
	"testing"

	"github.com/roach88/ward/internal/store"
)

// OpenStore opens a fresh SQLite store in a temporary directory and closes
// it when the test ends.
func OpenStore(tb testing.TB) *store.Store {
	tb.Helper()
	st, err := store.Open(filepath.Join(tb.TempDir(), "ward.db"))
	if err != nil {
		tb.Fatalf("open store: %v", err)
	}
	tb.Cleanup(func() {
		if err := st.Close(); err != nil {
			tb.Errorf("close store: %v", err)
		}
	})
	return st
}
