package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/amonks/work/internal/editor"
	"github.com/amonks/work/work"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*work.EntryID)(nil)
	_ pflag.Value = (*work.Status)(nil)
)

// add
var addCmd = &cobra.Command{
	Use:   "add <name> [description]",
	Short: "Add a new entry",
	Long: `Add a new entry.

The name can have at most 28 characters. Use --parent to add a sub-entry
below an existing entry. Without a name, $EDITOR is opened when running
in a terminal; --edit opens it regardless.
A description of "-" is read from stdin.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runAdd,
}

var (
	addParent work.EntryID
	addEdit   bool
)

// edit
var editCmd = &cobra.Command{
	Use:   "edit <id> [description]",
	Short: "Edit the description or status of an entry",
	Long: `Edit the description or status of an entry.

The description is replaced wholesale; omitting it clears the description.
--status overwrites the status, so a completed entry can be reopened.
Without a description or --status, $EDITOR is opened when running in a
terminal; --edit opens it regardless.
A description of "-" is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runEdit,
}

var (
	editStatus work.Status
	editEdit   bool
)

// remove
var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an entry and its sub-entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

// complete
var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an entry as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

// prio
var prioCmd = &cobra.Command{
	Use:   "prio <id>",
	Short: "Put an entry at the top of the list",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrio,
}

// migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade the data file to the current version",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(addCmd, editCmd, removeCmd, completeCmd, prioCmd, migrateCmd)

	addCmd.Flags().VarP(&addParent, "parent", "p", "Add as a sub-entry of this entry")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR")

	editCmd.Flags().VarP(&editStatus, "status", "s", "New status (created, completed)")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR")
}

func parseIDArg(arg string) (work.EntryID, error) {
	return work.ParseEntryID(arg)
}

// shouldUseEditor opens $EDITOR when --edit is given, or when the command
// line carried nothing to act on and a terminal is attached.
func shouldUseEditor(editFlag bool, hasInput bool, interactive bool) bool {
	if editFlag {
		return true
	}
	if hasInput {
		return false
	}
	return interactive
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimSuffix(string(input), "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	var name, description string
	if len(args) > 0 {
		name = args[0]
	}
	if len(args) > 1 {
		desc, err := resolveDescriptionFromStdin(args[1], cmd.InOrStdin())
		if err != nil {
			return err
		}
		description = desc
	}

	if shouldUseEditor(addEdit, len(args) > 0, editor.IsInteractive()) {
		parsed, err := editor.EditEntryWithData(editor.DefaultCreateData(name, description))
		if err != nil {
			return err
		}
		name, description = parsed.Name, parsed.Description
	} else if len(args) == 0 {
		return fmt.Errorf("name is required (use --edit to open editor)")
	}

	hasParent := cmd.Flags().Changed("parent")
	var id work.EntryID
	err := current.mutate(func(store *work.Store) error {
		var err error
		if hasParent {
			id, err = store.AddChildEntry(name, description, addParent)
		} else {
			id, err = store.AddEntry(name, description)
		}
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s\n", id, name)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	var opts work.EditOptions
	if len(args) > 1 {
		description, err := resolveDescriptionFromStdin(args[1], cmd.InOrStdin())
		if err != nil {
			return err
		}
		opts.Description = &description
	}
	if cmd.Flags().Changed("status") {
		status := editStatus
		opts.Status = &status
	}

	useEditor := shouldUseEditor(editEdit, opts.Description != nil || opts.Status != nil, editor.IsInteractive())

	var name string
	err = current.mutate(func(store *work.Store) error {
		entry, err := store.FindEntry(id)
		if err != nil {
			return err
		}
		name = entry.Name

		if useEditor {
			data := editor.DataFromEntry(entry)
			if opts.Description != nil {
				data.Description = *opts.Description
			}
			if opts.Status != nil {
				data.Status = string(*opts.Status)
			}
			parsed, err := editor.EditEntryWithData(data)
			if err != nil {
				return err
			}
			opts, err = parsed.UpdateOptions(entry)
			if err != nil {
				return err
			}
		}

		return store.Edit(id, opts)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", id, name)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	var name string
	err = current.mutate(func(store *work.Store) error {
		entry, err := store.FindEntry(id)
		if err != nil {
			return err
		}
		name = entry.Name
		return store.Remove(id)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s: %s\n", id, name)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	var name string
	err = current.mutate(func(store *work.Store) error {
		if err := store.Complete(id); err != nil {
			return err
		}
		entry, err := store.FindEntry(id)
		if err != nil {
			return err
		}
		name = entry.Name
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Completed %s: %s\n", id, name)
	return nil
}

func runPrio(cmd *cobra.Command, args []string) error {
	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	var name string
	err = current.mutate(func(store *work.Store) error {
		if err := store.Reprioritize(id); err != nil {
			return err
		}
		entry, err := store.FindEntry(id)
		if err != nil {
			return err
		}
		name = entry.Name
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Prioritized %s: %s\n", id, name)
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(current.path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "No data file at %s, nothing to migrate.\n", current.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", work.ErrIO, current.path, err)
	}

	store, migrated, err := work.Migrate(data)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", current.path, err)
	}
	if !migrated {
		fmt.Fprintf(out, "%s is already at version %s.\n", current.path, store.Version)
		return nil
	}

	if err := current.saveStore(store); err != nil {
		return err
	}
	current.logger.Info("migrated data file", "path", current.path, "entries", len(store.Entries))
	fmt.Fprintf(out, "Migrated %s to version %s.\n", current.path, store.Version)
	return nil
}
