package work

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// LoadOrCreate reads the store at path. When no file exists an empty store
// is created and written immediately, so a well-formed file is always on disk
// after the first run.
//
// A file written with another schema version fails with ErrVersionMismatch
// and is left untouched; see Migrate for the explicit upgrade.
func LoadOrCreate(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		store := NewStore()
		if err := Save(store, path); err != nil {
			return nil, err
		}
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}

	store, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return store, nil
}

// Save replaces the file at path with the encoded store. The replacement is
// atomic: readers see either the old file or the new one.
func Save(store *Store, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, store); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %w", ErrIO, err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	return nil
}

// Encode writes the store as indented JSON.
func Encode(w io.Writer, store *Store) error {
	if store.Entries == nil {
		store.Entries = []Entry{}
	}
	normalizeChildren(store.Entries)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(store); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	return nil
}

// Decode parses a data file. It checks, in order: that the bytes are JSON,
// that the version tag is known and current, that the document matches the
// schema, and that the entry tree is internally consistent.
func Decode(data []byte) (*Store, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	version, err := probeVersion(data)
	if err != nil {
		return nil, err
	}
	if version != CurrentVersion() {
		return nil, &VersionMismatchError{Found: version, Want: CurrentVersion()}
	}

	if err := validateSchema(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if store.Entries == nil {
		store.Entries = []Entry{}
	}
	normalizeChildren(store.Entries)

	if err := validateEntries(nil, store.Entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &store, nil
}

// probeVersion reads only the version tag so that files of another shape
// can be recognized before their entries are interpreted.
func probeVersion(data []byte) (FileVersion, error) {
	var header struct {
		Version *FileVersion `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return "", fmt.Errorf("%w: read version: %w", ErrParse, err)
	}
	if header.Version == nil {
		return "", fmt.Errorf("%w: missing version", ErrParse)
	}
	if !header.Version.IsKnown() {
		return "", fmt.Errorf("%w: unknown version %q", ErrParse, *header.Version)
	}
	return *header.Version, nil
}

func normalizeChildren(entries []Entry) {
	for i := range entries {
		if entries[i].Children == nil {
			entries[i].Children = []Entry{}
		}
		normalizeChildren(entries[i].Children)
	}
}
