// Update command overwrites fields of an existing record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCategory string

var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update a record's description",
	Long: `Update replaces the description of the record with the given id,
and the category when --category is supplied. Only the supplied fields are
overwritten; createdAt never changes.

Example:
  tally update 3 "Buy groceries and milk"
  tally update 3 "Taxi" --category travel`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateCategory, "category", "", "replace the category tag")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	var category *string
	if cmd.Flags().Changed("category") {
		category = &updateCategory
	}

	rec, err := tr.Update(id, args[1], category)
	if err != nil {
		return fmt.Errorf("update record %d: %w", id, err)
	}

	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("Updated record (id: %d)\n", rec.ID)
	return nil
}
