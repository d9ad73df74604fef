package work

import (
	"encoding/json"
	"fmt"
	"time"
)

// initialEntry is the flat entry shape written by VersionInitial files.
type initialEntry struct {
	ID          *int      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
	Status      string    `json:"status"`
}

type initialFile struct {
	Version FileVersion    `json:"version"`
	Entries []initialEntry `json:"entries"`
}

// Migrate upgrades the contents of a data file to the current schema version.
// It reports whether a conversion took place; files already at the current
// version are decoded and returned unchanged. Migrate never writes: callers
// decide whether to Save the result.
func Migrate(data []byte) (*Store, bool, error) {
	version, err := probeVersion(data)
	if err != nil {
		return nil, false, err
	}

	switch version {
	case CurrentVersion():
		store, err := Decode(data)
		if err != nil {
			return nil, false, err
		}
		return store, false, nil
	case VersionInitial:
		store, err := migrateInitial(data)
		if err != nil {
			return nil, false, fmt.Errorf("migrate %s to %s: %w", VersionInitial, VersionNested, err)
		}
		return store, true, nil
	default:
		return nil, false, fmt.Errorf("%w: no migration from version %q", ErrParse, version)
	}
}

// migrateInitial maps each flat entry n to the top-level entry [n] with no
// children, preserving order and every field.
func migrateInitial(data []byte) (*Store, error) {
	var file initialFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	store := NewStore()
	for i, old := range file.Entries {
		if old.ID == nil || *old.ID < 0 {
			return nil, fmt.Errorf("%w: entry %d has no valid id", ErrParse, i)
		}
		status, err := ParseStatus(old.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrParse, *old.ID, err)
		}

		entry := Entry{
			ID:         EntryID{*old.ID},
			Name:       old.Name,
			CreatedAt:  old.CreatedAt,
			ModifiedAt: old.ModifiedAt,
			Status:     status,
			Children:   []Entry{},
		}
		if old.Description != nil {
			entry.Description = *old.Description
		}
		store.Entries = append(store.Entries, entry)
	}

	if err := validateEntries(nil, store.Entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return store, nil
}
