// Package cli is the entry-point policy around the options parser. It handles
// help requests, prints every parse diagnostic, and turns them into an
// ExitError so the command can decide how to terminate.
package cli
