// Root command for the tally CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tallyworks/tally/internal/paths"
	"github.com/tallyworks/tally/pkg/tally"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configBackend string
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally is a local task and expense tracker",
	Long: `Tally tracks tasks and expenses in a local store. Each invocation
loads the full record set, applies at most one change, and rewrites the
store. Records live in a JSON file by default; a SQLite backend can be
selected in config.yaml.`,
	Version: tally.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.tally)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	for _, status := range markStatuses {
		rootCmd.AddCommand(newMarkCmd(status))
	}
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > TALLY_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > TALLY_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
