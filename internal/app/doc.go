// Package app runs the viewer once its options are known. It owns the
// application's logger and hands the options to a Renderer, which is supplied
// by the caller.
package app
