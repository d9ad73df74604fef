// Package work implements a personal work-item tracker backed by a single file.
//
// A Store holds an ordered list of top-level entries, each of which may carry
// sub-entries addressed by path-style IDs ("2", "2.0"). Order is insertion
// order, and the most recently added or reprioritized entry is shown first.
//
// The public API mirrors the CLI commands:
//   - AddEntry, AddChildEntry, Edit, Complete, Reprioritize, Remove for mutation
//   - FindEntry, FindEntryOrDefault, List for querying
//   - LoadOrCreate, Save for persistence, Migrate for explicit upgrades
package work

import (
	"fmt"
	"strings"
)

// MaxNameLength is the maximum number of characters (runes) in an entry name.
const MaxNameLength = 28

// Status represents the lifecycle state of an entry.
type Status string

const (
	// StatusCreated is the initial state of every entry.
	StatusCreated Status = "created"

	// StatusCompleted indicates the entry is done.
	StatusCompleted Status = "completed"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusCreated, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer and pflag.Value.
func (s Status) String() string {
	return string(s)
}

// Set implements pflag.Value.
func (s *Status) Set(text string) error {
	parsed, err := ParseStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Status) Type() string {
	return "status"
}

// ParseStatus parses a status name, ignoring case and surrounding whitespace.
func ParseStatus(text string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(text)))
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (must be %s)", ErrInvalidStatus, text, validStatusList())
	}
	return status, nil
}

func validStatusList() string {
	valid := ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, " or ")
}

// FileVersion tags the schema shape of a data file.
type FileVersion string

const (
	// VersionInitial is the flat shape: integer IDs and no sub-entries.
	VersionInitial FileVersion = "initial"

	// VersionNested is the tree shape with path IDs and children.
	VersionNested FileVersion = "nested"
)

// CurrentVersion returns the schema shape this package reads and writes.
func CurrentVersion() FileVersion {
	return VersionNested
}

// KnownVersions returns every schema shape that has ever been written.
func KnownVersions() []FileVersion {
	return []FileVersion{VersionInitial, VersionNested}
}

// IsKnown returns true if the version is one of KnownVersions.
func (v FileVersion) IsKnown() bool {
	for _, known := range KnownVersions() {
		if v == known {
			return true
		}
	}
	return false
}
