package work

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const initialFixture = `{
  "version": "initial",
  "entries": [
    {"id": 0, "name": "Buy milk", "description": null, "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "Completed"},
    {"id": 2, "name": "Clean house", "description": "kitchen", "created_at": "2024-03-01T09:05:00Z", "modified_at": "2024-03-02T10:00:00Z", "status": "Created"}
  ]
}
`

var ignoreClock = cmpopts.IgnoreUnexported(Store{})

func TestLoadOrCreateCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "work.json")

	store, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if store.Version != CurrentVersion() || len(store.Entries) != 0 {
		t.Fatalf("expected empty %s store, got %+v", CurrentVersion(), store)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file on disk after first run: %v", err)
	}
	if !strings.Contains(string(data), `"version": "nested"`) {
		t.Errorf("expected version tag in file, got:\n%s", data)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reloading created file failed: %v", err)
	}
	if diff := cmp.Diff(store, again, ignoreClock); diff != "" {
		t.Errorf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.json")
	store, _ := newTestStore(t)
	mustAdd(t, store, "Buy milk", "")
	house := mustAdd(t, store, "Clean house", "kitchen\nand bathroom")
	mustAdd(t, store, "Ünïcödé ✔", "")
	if _, err := store.AddChildEntry("Mop floor", "", house); err != nil {
		t.Fatalf("AddChildEntry failed: %v", err)
	}
	if err := store.Complete(EntryID{0}); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := store.Reprioritize(house); err != nil {
		t.Fatalf("Reprioritize failed: %v", err)
	}

	if err := Save(store, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}

	if diff := cmp.Diff(store, loaded, ignoreClock); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveWritesNativeIDs(t *testing.T) {
	store, _ := newTestStore(t)
	parent := mustAdd(t, store, "parent", "")
	if _, err := store.AddChildEntry("child", "", parent); err != nil {
		t.Fatalf("AddChildEntry failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, store); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var doc struct {
		Entries []struct {
			ID       []int `json:"id"`
			Children []struct {
				ID []int `json:"id"`
			} `json:"children"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if diff := cmp.Diff([]int{0, 0}, doc.Entries[0].Children[0].ID); diff != "" {
		t.Errorf("child id mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrCreateVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.json")
	if err := os.WriteFile(path, []byte(initialFixture), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOrCreate(path)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
	var mismatch *VersionMismatchError
	if !errors.As(err, &mismatch) || mismatch.Found != VersionInitial || mismatch.Want != VersionNested {
		t.Fatalf("expected VersionMismatchError{initial, nested}, got %#v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != initialFixture {
		t.Fatalf("file was modified:\n%s", data)
	}
}

func TestDecodeRejectsMalformedFiles(t *testing.T) {
	valid := func(entries string) string {
		return `{"version": "nested", "entries": [` + entries + `]}`
	}
	entry := func(id, name, status, children string) string {
		return `{"id": ` + id + `, "name": "` + name + `", "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "` + status + `", "children": [` + children + `]}`
	}

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"version": `},
		{"empty", ``},
		{"missing version", `{"entries": []}`},
		{"unknown version", `{"version": "v3", "entries": []}`},
		{"missing entries", `{"version": "nested"}`},
		{"integer id", valid(entry(`0`, "a", "created", ""))},
		{"negative id", valid(entry(`[-1]`, "a", "created", ""))},
		{"unknown status", valid(entry(`[0]`, "a", "open", ""))},
		{"name too long", valid(entry(`[0]`, strings.Repeat("n", MaxNameLength+1), "created", ""))},
		{"duplicate ids", valid(entry(`[0]`, "a", "created", "") + "," + entry(`[0]`, "b", "created", ""))},
		{"nested top-level id", valid(entry(`[0, 1]`, "a", "created", ""))},
		{"child outside parent", valid(entry(`[0]`, "a", "created", entry(`[1, 0]`, "b", "created", "")))},
		{"bad timestamp", strings.Replace(valid(entry(`[0]`, "a", "created", "")), "2024-03-01T09:00:00Z", "yesterday", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestDecodeReportsSchemaPath(t *testing.T) {
	data := `{"version": "nested", "entries": [{"id": [0], "name": "a", "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "open"}]}`

	_, err := Decode([]byte(data))
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Path != "entries.0.status" {
		t.Errorf("path = %q, want entries.0.status", schemaErr.Path)
	}
}

func TestDecodeAcceptsMissingChildren(t *testing.T) {
	data := `{"version": "nested", "entries": [{"id": [0], "name": "a", "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "created"}]}`

	store, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if store.Entries[0].Children == nil {
		t.Error("children should be normalized to an empty list")
	}
}

func TestDecodeLargeIDsStayAddressable(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("requires 64-bit int")
	}
	data := `{"version": "nested", "entries": [
		{"id": [2147483647], "name": "a", "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "created"},
		{"id": [5000000000], "name": "b", "created_at": "2024-03-01T09:00:00Z", "modified_at": "2024-03-01T09:00:00Z", "status": "created"}
	]}`

	store, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	next, err := store.AddEntry("c", "")
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if next.String() != "5000000001" {
		t.Errorf("next id = %s, want 5000000001", next)
	}

	for _, entry := range store.Entries {
		parsed, err := ParseEntryID(entry.ID.String())
		if err != nil {
			t.Fatalf("ParseEntryID(%s) failed: %v", entry.ID, err)
		}
		if err := store.Complete(parsed); err != nil {
			t.Errorf("Complete(%s) failed: %v", parsed, err)
		}
	}
}

func TestLoadOrCreateReadError(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadOrCreate(dir)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO reading a directory, got %v", err)
	}
}

func TestSaveWriteError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Save(NewStore(), filepath.Join(blocker, "work.json"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
