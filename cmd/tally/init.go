// Init command materializes the config and store files.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tally store",
	Long: `Init creates the configuration file and an empty store so later
invocations start from a known state. Running init on an existing store is
harmless: the record set is loaded and written back unchanged.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	tr, closeStore, err := openTracker()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tr.Init(); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	fmt.Printf("Initialized tally store in %s\n", dataDir)
	return nil
}
