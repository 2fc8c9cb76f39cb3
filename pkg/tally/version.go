// Package tally exposes build metadata for the tally CLI.
package tally

// Version is the tally CLI version.
const Version = "0.1.0"
