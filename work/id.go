package work

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryID identifies an entry by its path through the entry tree.
// Top-level entries have a single component; each level of nesting adds one.
type EntryID []int

// RootID returns the first top-level ID.
func RootID() EntryID {
	return EntryID{0}
}

// ParseEntryID parses a dot-separated path of non-negative integers such as "2" or "2.0".
func ParseEntryID(text string) (EntryID, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidID)
	}

	parts := strings.Split(text, ".")
	id := make(EntryID, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty component at position %d", ErrInvalidID, text, i+1)
		}
		// ParseUint rejects signs, so "-1" and "+1" fail here.
		n, err := strconv.ParseUint(part, 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q component %q is not a non-negative integer", ErrInvalidID, text, part)
		}
		id = append(id, int(n))
	}
	return id, nil
}

// MustParseEntryID is like ParseEntryID but panics on malformed input.
func MustParseEntryID(text string) EntryID {
	id, err := ParseEntryID(text)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the dot-joined form accepted by ParseEntryID.
func (id EntryID) String() string {
	parts := make([]string, len(id))
	for i, n := range id {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Next returns a copy of id with its last component incremented.
func (id EntryID) Next() EntryID {
	if len(id) == 0 {
		return RootID()
	}
	next := id.clone()
	next[len(next)-1]++
	return next
}

// Child returns the ID of the n-th child slot under id.
func (id EntryID) Child(n int) EntryID {
	child := make(EntryID, len(id), len(id)+1)
	copy(child, id)
	return append(child, n)
}

// Parent returns the ID one level up. Top-level IDs have no parent.
func (id EntryID) Parent() (EntryID, bool) {
	if len(id) <= 1 {
		return nil, false
	}
	return id[:len(id)-1].clone(), true
}

// Equal reports whether both IDs have the same components.
func (id EntryID) Equal(other EntryID) bool {
	return id.Compare(other) == 0
}

// Compare orders IDs lexicographically by component. A strict prefix sorts first.
func (id EntryID) Compare(other EntryID) int {
	for i := 0; i < len(id) && i < len(other); i++ {
		switch {
		case id[i] < other[i]:
			return -1
		case id[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(id) < len(other):
		return -1
	case len(id) > len(other):
		return 1
	default:
		return 0
	}
}

// HasPrefix reports whether prefix is an ancestor path of id (or id itself).
func (id EntryID) HasPrefix(prefix EntryID) bool {
	if len(prefix) > len(id) {
		return false
	}
	return id[:len(prefix)].Equal(prefix)
}

// Set implements pflag.Value so IDs can be bound directly to flags.
func (id *EntryID) Set(text string) error {
	parsed, err := ParseEntryID(text)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Type implements pflag.Value.
func (id *EntryID) Type() string {
	return "id"
}

func (id EntryID) clone() EntryID {
	out := make(EntryID, len(id))
	copy(out, id)
	return out
}

// nextSiblingID returns max(sibling last component)+1 under parent, or the
// first child slot when there are no siblings.
func nextSiblingID(parent EntryID, siblings []Entry) EntryID {
	var highest EntryID
	for i := range siblings {
		if highest == nil || siblings[i].ID.Compare(highest) > 0 {
			highest = siblings[i].ID
		}
	}
	if highest == nil {
		return parent.Child(0)
	}
	return highest.Next()
}
