// Package main implements the work CLI tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amonks/work/internal/config"
	"github.com/amonks/work/internal/logging"
	"github.com/amonks/work/internal/ui"
	"github.com/amonks/work/work"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "work",
	Short: "Keep track of work items",
	Long: `Keep track of work items.

Without a subcommand, prints the entry to work on next: the most recently
added or reprioritized entry that is not completed.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setupSession,
	RunE:              runNext,
	SilenceUsage:      true,
}

var (
	rootFile    string
	rootVerbose bool
	rootColor   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "Data file (default $WORK_DATA_FILE, config data-file, or ~/.config/work-tracker.json)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&rootColor, "color", "", "Colorize output (auto, always, never)")
}

// session holds per-invocation state resolved before a command runs.
type session struct {
	cfg    *config.Config
	path   string
	logger *log.Logger
}

var current *session

func setupSession(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), logging.Options{Verbose: rootVerbose})

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring config file", "err", err)
		cfg = config.Default()
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	if cmd.Flags().Changed("color") {
		switch rootColor {
		case config.ColorAuto, config.ColorAlways, config.ColorNever:
			cfg.Display.Color = rootColor
		default:
			return fmt.Errorf("invalid --color %q (must be auto, always, or never)", rootColor)
		}
	}

	path, err := cfg.ResolveDataFile(rootFile)
	if err != nil {
		return err
	}
	logger.Debug("resolved data file", "path", path)

	current = &session{cfg: cfg, path: path, logger: logger}
	return nil
}

// openStore loads the data file, creating it on first run.
func (s *session) openStore() (*work.Store, error) {
	store, err := work.LoadOrCreate(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded store", "path", s.path, "version", store.Version, "entries", len(store.Entries))
	return store, nil
}

// saveStore writes the store back to the data file.
func (s *session) saveStore(store *work.Store) error {
	if err := work.Save(store, s.path); err != nil {
		return err
	}
	s.logger.Debug("saved store", "path", s.path, "entries", len(store.Entries))
	return nil
}

// styles returns output styles for w honoring the configured color mode.
func (s *session) styles(w io.Writer) ui.Styles {
	file, _ := w.(*os.File)
	return ui.NewStyles(w, ui.ColorEnabled(s.cfg.Display.Color, file))
}

// mutate loads the store, applies fn, and saves only when fn succeeds.
func (s *session) mutate(fn func(store *work.Store) error) error {
	store, err := s.openStore()
	if err != nil {
		return err
	}
	if err := fn(store); err != nil {
		return err
	}
	return s.saveStore(store)
}

const noActiveMessage = "No active tasks, great job!"

func runNext(cmd *cobra.Command, args []string) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}

	next, err := store.FindEntryOrDefault(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if next == nil {
		fmt.Fprintln(out, noActiveMessage)
		return nil
	}
	fmt.Fprintln(out, formatEntryRow(*next, current.styles(out)))
	return nil
}
