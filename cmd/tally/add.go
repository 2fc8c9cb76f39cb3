// Add command creates a new record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addCategory string
	addStatus   string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new record",
	Long: `Add creates a new record with the given description. The id is
assigned automatically and both timestamps are set to now.

The record starts in status "todo" unless --status says otherwise.

Example:
  tally add "Buy groceries"
  tally add "Taxi to airport" --category travel
  tally add "Review PR" --status in-progress --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addCategory, "category", "", "free-text category tag")
	addCmd.Flags().StringVar(&addStatus, "status", "", "initial status (default: todo)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	rec, err := tr.Add(args[0], addCategory, addStatus)
	if err != nil {
		return fmt.Errorf("add record: %w", err)
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("Added record (id: %d)\n", rec.ID)
	return nil
}
