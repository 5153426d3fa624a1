// Package profile reads launch profiles: small HCL files that hold default
// command-line options for the scene viewer.
//
// A profile is a flat list of attributes named after the long options:
//
//	dim     = "1280x720"
//	bg      = [0.2, 0.2, 0.25]
//	warmup  = 8
//	verbose = true
//
// Compound options (dim, bg, debug) take either their command-line text or a
// list of numbers. Load expands the attributes into argument tokens, in the order they appear
// in the file, so they can be placed ahead of the real command line and parsed
// by the options package like anything the user typed. The scene file is not
// part of a profile; it always comes from the command line.
package profile
