// Package cli defines the Cobra command tree for the ccplugin CLI. Each file
// in this package registers one top-level command (validate, inspect,
// scaffold, etc.) with the root command. Command implementations delegate to
// internal packages for the checking logic and only handle flag parsing, I/O
// formatting, and exit-code mapping.
package cli
