package work

import (
	"fmt"
	"time"
)

// Store is the versioned collection of top-level entries backing one data file.
//
// Entries are kept in insertion order; Reprioritize moves an entry to the end.
// Readers traverse the list in reverse, so the last entry is the most important.
type Store struct {
	Version FileVersion `json:"version"`
	Entries []Entry     `json:"entries"`

	now func() time.Time
}

// NewStore returns an empty store tagged with the current schema version.
func NewStore() *Store {
	return &Store{
		Version: CurrentVersion(),
		Entries: []Entry{},
	}
}

func (s *Store) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

// AddEntry appends a new top-level entry and returns its ID.
// The ID is one past the highest existing top-level ID, or 0 for an empty store.
func (s *Store) AddEntry(name, description string) (EntryID, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	id := nextSiblingID(nil, s.Entries)
	s.Entries = append(s.Entries, NewEntry(id, name, description, s.clock()))
	return id, nil
}

// AddChildEntry appends a new entry as the last child of the entry at parentID.
// parentID may address an entry at any depth. The child ID extends parentID
// with one past the highest existing sibling component, or 0 for the first child.
func (s *Store) AddChildEntry(name, description string, parentID EntryID) (EntryID, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	parent, err := s.resolvePath(parentID)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	id := nextSiblingID(parent.ID, parent.Children)
	parent.Children = append(parent.Children, NewEntry(id, name, description, now))
	parent.touch(now)
	return id, nil
}

// FindIndex returns the position of the top-level entry with the given ID.
// Sub-entries are not addressable here.
func (s *Store) FindIndex(id EntryID) (int, error) {
	for i := range s.Entries {
		if s.Entries[i].ID.Equal(id) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// FindEntry returns the top-level entry with the given ID.
// The returned pointer aliases the store and may be used to mutate it.
func (s *Store) FindEntry(id EntryID) (*Entry, error) {
	index, err := s.FindIndex(id)
	if err != nil {
		return nil, err
	}
	return &s.Entries[index], nil
}

// FindEntryOrDefault resolves id when it is non-nil. Otherwise it returns the
// last entry in sequence order that is not completed, or nil when every entry
// is completed.
func (s *Store) FindEntryOrDefault(id *EntryID) (*Entry, error) {
	if id != nil {
		return s.FindEntry(*id)
	}

	for i := len(s.Entries) - 1; i >= 0; i-- {
		if !s.Entries[i].IsCompleted() {
			return &s.Entries[i], nil
		}
	}
	return nil, nil
}

// Remove deletes the top-level entry with the given ID together with its children.
func (s *Store) Remove(id EntryID) error {
	index, err := s.FindIndex(id)
	if err != nil {
		return err
	}

	s.Entries = append(s.Entries[:index], s.Entries[index+1:]...)
	return nil
}

// Complete marks the entry completed. Completing twice is an error.
func (s *Store) Complete(id EntryID) error {
	entry, err := s.FindEntry(id)
	if err != nil {
		return err
	}
	if entry.IsCompleted() {
		return fmt.Errorf("%w: %s", ErrAlreadyCompleted, id)
	}

	entry.Complete(s.clock())
	return nil
}

// Reprioritize moves the entry to the end of the sequence so it is shown first.
func (s *Store) Reprioritize(id EntryID) error {
	index, err := s.FindIndex(id)
	if err != nil {
		return err
	}

	entry := s.Entries[index]
	s.Entries = append(s.Entries[:index], s.Entries[index+1:]...)
	entry.touch(s.clock())
	s.Entries = append(s.Entries, entry)
	return nil
}

// EditOptions configures an edit. Nil pointers mean "not given".
type EditOptions struct {
	// Description replaces the description. When nil the description is cleared.
	Description *string

	// Status overwrites the status without the completion guard, so an edit
	// can move a completed entry back to created.
	Status *Status
}

// Edit overwrites the description and optionally the status of an entry.
// At least one of the options must be given.
func (s *Store) Edit(id EntryID, opts EditOptions) error {
	if opts.Description == nil && opts.Status == nil {
		return ErrEmptyEdit
	}
	if opts.Status != nil && !opts.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *opts.Status)
	}

	entry, err := s.FindEntry(id)
	if err != nil {
		return err
	}

	entry.Description = ""
	if opts.Description != nil {
		entry.Description = *opts.Description
	}
	if opts.Status != nil {
		entry.Status = *opts.Status
	}
	entry.touch(s.clock())
	return nil
}

// List returns top-level entries in reverse sequence order, most recently
// added or reprioritized first. Completed entries are skipped unless
// includeCompleted is set.
func (s *Store) List(includeCompleted bool) []Entry {
	entries := make([]Entry, 0, len(s.Entries))
	for i := len(s.Entries) - 1; i >= 0; i-- {
		if !includeCompleted && s.Entries[i].IsCompleted() {
			continue
		}
		entries = append(entries, s.Entries[i])
	}
	return entries
}

// resolvePath walks the tree along id, one component per level.
func (s *Store) resolvePath(id EntryID) (*Entry, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("%w: empty id", ErrEntryNotFound)
	}

	siblings := s.Entries
	var found *Entry
	for depth := 1; depth <= len(id); depth++ {
		prefix := id[:depth]
		found = nil
		for i := range siblings {
			if siblings[i].ID.Equal(prefix) {
				found = &siblings[i]
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
		}
		siblings = found.Children
	}
	return found, nil
}
