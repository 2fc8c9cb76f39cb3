// Mark commands set the status of an existing record. One subcommand is
// generated per status: mark-todo, mark-in-progress, mark-done.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyworks/tally/pkg/types"
)

// markStatuses are the statuses that get a mark-<status> subcommand.
var markStatuses = types.Statuses

func newMarkCmd(status string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("mark-%s <id>", status),
		Short: fmt.Sprintf("Set a record's status to %s", status),
		Long: fmt.Sprintf(`Sets the status of the record with the given id to %q
and refreshes its updatedAt timestamp.

Example:
  tally mark-%s 3`, status, status),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMark(args[0], status)
		},
	}
}

func runMark(arg, status string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	rec, err := tr.Mark(id, status)
	if err != nil {
		return fmt.Errorf("mark record %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("Marked record %d as %s\n", rec.ID, rec.Status)
	return nil
}
