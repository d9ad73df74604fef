package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/work/work"
	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	workPath  string
	buildErr  error
)

// BuildWork builds the work binary once and returns its path.
func BuildWork(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "work-bin-")
		if err != nil {
			buildErr = err
			return
		}

		workPath = filepath.Join(binDir, "work")
		cmd := exec.Command("go", "build", "-o", workPath, "./cmd/work")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build work: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return workPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("WORK_CMD", BuildWork(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", "")
	env.Setenv("WORK_DATA_FILE", "")
	env.Setenv("NO_COLOR", "1")
	env.Setenv("EDITOR", "false")
	env.Setenv("VISUAL", "")
	return nil
}

// Commands returns the custom testscript commands shared by CLI tests.
func Commands() map[string]func(*testscript.TestScript, bool, []string) {
	return map[string]func(*testscript.TestScript, bool, []string){
		"envset":  CmdEnvSet,
		"entryid": CmdEntryID,
	}
}

// CmdEnvSet stores the trimmed contents of a file in an env var.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}

	value := strings.TrimSpace(ts.ReadFile(args[1]))
	ts.Setenv(args[0], value)
}

// CmdEntryID finds an entry by name in `work list --json` output and stores
// its dotted ID in an env var.
func CmdEntryID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("entryid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: entryid FILE NAME VAR")
	}

	var entries []work.Entry
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		ts.Fatalf("parse entry list: %v", err)
	}

	name := args[1]
	for _, entry := range entries {
		if entry.Name == name {
			ts.Setenv(args[2], entry.ID.String())
			return
		}
	}

	ts.Fatalf("entry with name %q not found", name)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
