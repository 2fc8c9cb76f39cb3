// History command shows the journaled mutation log.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tallyworks/tally/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the mutation history",
	Long: `History lists journaled mutations in the order they happened.

Example:
  tally history
  tally history --limit 10`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "show only the most recent entries (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := tr.History(historyLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if flagJSON {
		if entries == nil {
			entries = []store.Entry{}
		}
		return printJSON(entries)
	}
	printHistoryTable(entries)
	return nil
}

func printHistoryTable(entries []store.Entry) {
	if len(entries) == 0 {
		fmt.Println("No history.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "WHEN\tOP\tRECORD\tDETAIL")
	fmt.Fprintln(w, "----\t--\t------\t------")
	for _, e := range entries {
		detail := e.Detail
		if len(detail) > 40 {
			detail = detail[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.CreatedAt, e.Op, e.RecordID, detail)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}
