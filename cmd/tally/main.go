// Package main provides the tally CLI, a local task and expense tracker.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tallyworks/tally/pkg/types"
)

// Exit codes: user errors (usage, unknown status, missing record) exit 1,
// system errors (I/O, corrupt store on a mutating command) exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code.
func exitCode(err error) int {
	var pathErr *fs.PathError
	if errors.Is(err, types.ErrStoreCorrupt) || errors.As(err, &pathErr) {
		return exitSysError
	}
	// Everything else is a user error: cobra usage failures, unknown
	// statuses, malformed ids, records that do not exist.
	return exitUserError
}
