package work

import (
	"testing"
	"time"
)

// testClock returns increasing timestamps one minute apart.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time {
	c.current = c.current.Add(time.Minute)
	return c.current
}

func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()

	clock := &testClock{current: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewStore()
	store.now = clock.Now
	return store, clock
}

func mustAdd(t *testing.T, store *Store, name, description string) EntryID {
	t.Helper()

	id, err := store.AddEntry(name, description)
	if err != nil {
		t.Fatalf("AddEntry(%q) failed: %v", name, err)
	}
	return id
}

func listNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.ID.String()+": "+e.Name)
	}
	return names
}
