package main

import (
	"fmt"
	"time"

	"github.com/amonks/work/work"
	"github.com/spf13/cobra"
)

// list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List unfinished entries, most important first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listAll  bool
	listJSON bool
	listLong bool
)

// show
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show an entry in detail",
	Long: `Show an entry in detail, including its description and sub-entries.

Without an id, shows the entry to work on next.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(listCmd, showCmd)

	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Include completed entries")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "Output as a table with status and age")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := current.openStore()
	if err != nil {
		return err
	}

	entries := store.List(listAll)
	out := cmd.OutOrStdout()

	switch {
	case listJSON:
		return encodeJSON(out, entries)
	case listLong:
		if len(entries) == 0 {
			fmt.Fprintln(out, noActiveMessage)
			return nil
		}
		fmt.Fprint(out, formatEntryTable(entries, time.Now()))
	default:
		fmt.Fprint(out, formatEntryRows(entries, current.styles(out)))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	var id *work.EntryID
	if len(args) > 0 {
		parsed, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		id = &parsed
	}

	store, err := current.openStore()
	if err != nil {
		return err
	}

	entry, err := store.FindEntryOrDefault(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return encodeJSON(out, entry)
	}
	if entry == nil {
		fmt.Fprintln(out, noActiveMessage)
		return nil
	}

	fmt.Fprint(out, formatEntryDetail(*entry, current.styles(out), detailOptions{
		Width:    current.cfg.Display.Width,
		Markdown: current.cfg.Display.Markdown,
		Now:      time.Now(),
	}))
	return nil
}
