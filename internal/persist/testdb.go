package persist

import "testing"

// NewTestSQLite creates a fresh in-memory SQLite persister.
func NewTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	p, err := OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("opening test persister: %v", err)
	}

	t.Cleanup(func() { p.Close() })

	return p
}
