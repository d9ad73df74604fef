package main

import (
	"strings"
	"testing"
)

func TestResolveDescriptionFromStdin(t *testing.T) {
	tests := []struct {
		name  string
		value string
		stdin string
		want  string
	}{
		{"literal", "kitchen", "ignored", "kitchen"},
		{"stdin", "-", "from stdin\n", "from stdin"},
		{"stdin crlf", "-", "from stdin\r\n", "from stdin"},
		{"stdin multiline", "-", "one\ntwo\n", "one\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveDescriptionFromStdin(tt.value, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("resolveDescriptionFromStdin failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"add", "edit", "list", "show", "remove", "complete", "prio", "migrate"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %q subcommand, got %v (err %v)", name, cmd, err)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"file", "verbose", "color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
	if flag := rootCmd.PersistentFlags().ShorthandLookup("f"); flag == nil || flag.Name != "file" {
		t.Error("expected -f shorthand for --file")
	}
}

func TestShouldUseEditor(t *testing.T) {
	tests := []struct {
		name        string
		editFlag    bool
		hasInput    bool
		interactive bool
		want        bool
	}{
		{"flag forces editor", true, true, false, true},
		{"input skips editor", false, true, true, false},
		{"no input interactive", false, false, true, true},
		{"no input non-interactive", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldUseEditor(tt.editFlag, tt.hasInput, tt.interactive); got != tt.want {
				t.Errorf("shouldUseEditor(%v, %v, %v) = %v, want %v", tt.editFlag, tt.hasInput, tt.interactive, got, tt.want)
			}
		})
	}
}
