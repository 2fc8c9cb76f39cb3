// Package types defines the Record entity, store Config, and sentinel
// errors shared by the tally store backends and command handlers.
package types
