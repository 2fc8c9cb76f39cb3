// List command shows records, optionally filtered by status.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyworks/tally/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List records",
	Long: `List shows all records in insertion order, optionally filtered
by exact status match. List never modifies the store.

Example:
  tally list
  tally list done
  tally list in-progress --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var filter string
	if len(args) == 1 {
		filter = args[0]
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := tr.List(filter)
	if errors.Is(err, types.ErrStoreCorrupt) {
		// A corrupt store degrades to an empty listing; mutating
		// commands refuse instead, so the damaged file survives for
		// manual recovery.
		fmt.Fprintln(os.Stderr, "warning: store is corrupt, listing no records:", err)
		records = nil
	} else if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	if flagJSON {
		if records == nil {
			records = []types.Record{}
		}
		return printJSON(records)
	}
	printRecordTable(records)
	return nil
}
