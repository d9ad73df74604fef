package work

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrNameTooLong is returned when an entry name exceeds MaxNameLength characters.
	ErrNameTooLong = errors.New("name is too long")

	// ErrEmptyEdit is returned when an edit specifies neither a description nor a status.
	ErrEmptyEdit = errors.New("edit requires a description or a status")

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrEntryNotFound is returned when an ID does not resolve to an entry.
	ErrEntryNotFound = errors.New("no entry with the provided id")

	// ErrAlreadyCompleted is returned when completing an entry that is already completed.
	ErrAlreadyCompleted = errors.New("entry is already marked as completed")

	// ErrInvalidID is returned when an ID string is malformed.
	ErrInvalidID = errors.New("invalid id")

	// ErrParse is returned when a data file cannot be decoded.
	ErrParse = errors.New("malformed data file")

	// ErrVersionMismatch is returned when a data file was written with another schema version.
	ErrVersionMismatch = errors.New("data file version mismatch")

	// ErrIO is returned when the data file cannot be created, read, or written.
	ErrIO = errors.New("data file i/o failed")
)

// VersionMismatchError reports the schema version found in a data file.
type VersionMismatchError struct {
	Found FileVersion
	Want  FileVersion
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("data file has version %q but %q is required; run `work migrate` or remove the file", e.Found, e.Want)
}

// Is matches ErrVersionMismatch.
func (e *VersionMismatchError) Is(target error) bool {
	return target == ErrVersionMismatch
}

// ValidateName checks that a name fits within MaxNameLength characters.
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrNameTooLong, n, MaxNameLength)
	}
	return nil
}

// validateEntries checks the structural invariants of a decoded entry tree:
// statuses are known, names fit, sibling IDs are unique, and every child ID
// extends its parent's ID by exactly one component.
func validateEntries(parent EntryID, entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		e := &entries[i]
		if len(e.ID) != len(parent)+1 || !e.ID.HasPrefix(parent) {
			if len(parent) == 0 {
				return fmt.Errorf("entry %q: top-level id must have one component", e.ID)
			}
			return fmt.Errorf("entry %q: id is not a child of %q", e.ID, parent)
		}
		key := e.ID.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("entry %q: duplicate id", key)
		}
		seen[key] = struct{}{}

		if !e.Status.IsValid() {
			return fmt.Errorf("entry %q: %w: %q", key, ErrInvalidStatus, e.Status)
		}
		if err := ValidateName(e.Name); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		if e.ModifiedAt.Before(e.CreatedAt) {
			return fmt.Errorf("entry %q: modified_at precedes created_at", key)
		}
		if err := validateEntries(e.ID, e.Children); err != nil {
			return err
		}
	}
	return nil
}
