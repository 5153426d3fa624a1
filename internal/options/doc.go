// Package options turns the raw argument vector of the scene viewer into an
// Options record.
//
// Parsing never stops early and never returns an error. Every problem found
// while scanning is handed to a caller-supplied UsageFunc together with the
// program name, and the offending field keeps its previous value. Whether a
// reported problem is fatal is left to the caller.
package options
