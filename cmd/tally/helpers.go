// Shared helpers for tally CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tallyworks/tally/internal/store"
	"github.com/tallyworks/tally/internal/tracker"
	"github.com/tallyworks/tally/pkg/types"
)

// openTracker resolves the data directory, opens the configured store
// backend, and returns a Tracker over it with the journal attached.
// The caller must defer the returned close function.
func openTracker() (*tracker.Tracker, func() error, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	return tracker.New(st, store.OpenJournal(dataDir)), st.Close, nil
}

// parseID coerces a positional argument into a record id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", types.ErrInvalidID, arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printRecordTable prints records in a human-readable table format.
func printRecordTable(records []types.Record) {
	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tDESCRIPTION\tSTATUS\tCATEGORY\tUPDATED")
	fmt.Fprintln(w, "--\t-----------\t------\t--------\t-------")
	for _, r := range records {
		description := r.Description
		if len(description) > 40 {
			description = description[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID,
			description,
			r.Status,
			r.Category,
			r.UpdatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	// Trim trailing tab-padding whitespace from each line.
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d record(s)\n", len(records))
}
