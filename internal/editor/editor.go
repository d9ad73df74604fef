// Package editor runs $VISUAL or $EDITOR on entry documents.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// ErrEditorFailed is returned when the editor cannot be started or exits
// unsuccessfully. Nothing is saved in that case.
var ErrEditorFailed = errors.New("editor failed")

const fallbackEditor = "vi"

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Command returns the editor invocation: $VISUAL, then $EDITOR, then vi.
// The variable is split on whitespace so values like "code --wait" work.
func Command() []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	return []string{fallbackEditor}
}

// Edit opens path in the editor and waits for it to exit.
func Edit(path string) error {
	argv := append(Command(), path)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d", ErrEditorFailed, argv[0], exitErr.ExitCode())
		}
		return fmt.Errorf("%w: run %s: %w", ErrEditorFailed, argv[0], err)
	}
	return nil
}
