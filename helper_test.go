package store

import (
	"testing"
	"time"
)

// memStorage is an in-memory Storage for tests.
type memStorage map[string][]byte

func (m memStorage) Read(key string) ([]byte, bool, error) {
	data, ok := m[key]
	return data, ok, nil
}

func (m memStorage) Write(key string, data []byte) error {
	m[key] = data
	return nil
}

// testClock is a fixed instant used wherever tests need a stable "now".
// Built with time.Date so it carries no monotonic reading and survives a
// JSON round trip unchanged.
var testClock = time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

// openTestStore opens a store on fresh in-memory storage with a fixed clock.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(memStorage{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	s.now = func() time.Time { return testClock }
	return s
}
