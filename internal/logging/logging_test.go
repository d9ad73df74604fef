package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewHidesDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Prefix: "work"})

	logger.Debug("loaded store", "entries", 3)
	if buf.Len() != 0 {
		t.Fatalf("expected debug output to be hidden, got %q", buf.String())
	}

	logger.Warn("ignoring config")
	if !strings.Contains(buf.String(), "ignoring config") {
		t.Fatalf("expected warning in output, got %q", buf.String())
	}
}

func TestNewVerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Verbose: true})

	logger.Debug("loaded store", "entries", 3)
	out := buf.String()
	if !strings.Contains(out, "loaded store") || !strings.Contains(out, "entries=3") {
		t.Fatalf("expected debug line with fields, got %q", out)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	logger := New(nil, Options{Verbose: true})
	logger.Error("dropped")
}
