// Delete command removes a record by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record by id",
	Long: `Delete removes the record with the given id and rewrites the
store. Deleted ids are never reassigned.

Example:
  tally delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tr.Delete(id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(map[string]any{"deleted": id})
	}
	fmt.Printf("Deleted record (id: %d)\n", id)
	return nil
}
