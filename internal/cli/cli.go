package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/demandpbrtscene/internal/options"
	"github.com/spf13/pflag"
)

// UsageExitCode is returned for command lines that could not be parsed.
const UsageExitCode = 2

// defaultProgram stands in for argv[0] when the argument vector is empty.
const defaultProgram = "demandpbrtscene"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes the full argument vector, argv[0] included. It returns the
// parsed options, a boolean indicating the program should exit cleanly (help
// was requested), or an ExitError listing every problem found.
func Parse(argv []string, output io.Writer) (*options.Options, bool, error) {
	slog.Debug("CLI parser started.", "args", len(argv))

	if len(argv) == 0 {
		argv = []string{defaultProgram}
	}
	program := argv[0]

	if wantsHelp(argv) {
		slog.Debug("Help requested, printing usage and exiting.")
		PrintUsage(output, program)
		return nil, true, nil
	}

	var problems []string
	opts := options.Parse(argv, func(program, message string) {
		slog.Debug("Option rejected.", "program", program, "message", message)
		fmt.Fprintf(output, "%s: %s\n", program, message)
		problems = append(problems, message)
	})

	if len(problems) > 0 {
		fmt.Fprintf(output, "Try '%s --help' for more information.\n", program)
		return nil, false, &ExitError{Code: UsageExitCode, Message: strings.Join(problems, "; ")}
	}

	slog.Debug("CLI parser finished successfully.", "scene", opts.SceneFile, "out", opts.OutFile)
	return &opts, false, nil
}

// wantsHelp reports whether a help flag appears after the program name. The
// token consumed as the value of -f/--file is a file name, not a flag.
func wantsHelp(argv []string) bool {
	for i := 1; i < len(argv); i++ {
		arg := argv[i]
		if arg == "-h" || arg == "--help" {
			return true
		}
		if f, ok := options.LookupArg(arg); ok && f.Kind == options.NextFlag {
			i++
		}
	}
	return false
}

// PrintUsage writes the help text for program to output.
func PrintUsage(output io.Writer, program string) {
	fmt.Fprintf(output, `
%s - interactive viewer for demand-loaded PBRT scenes.

Usage:
  %s [options] <scene file>

Arguments:
  <scene file>
    The PBRT scene to render.

Options take their value after '=', as in --dim=1280x720.
-f and --file also accept the value as the next argument.

Options:
`, filepath.Base(program), program)
	fmt.Fprint(output, usageFlagSet().FlagUsages())
}

// usageFlagSet mirrors the option table in a pflag.FlagSet. It is only used
// to lay out the help text; parsing is done by the options package.
func usageFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("usage", pflag.ContinueOnError)
	fs.SortFlags = false
	for _, f := range options.Flags() {
		if f.Kind == options.BoolFlag {
			fs.BoolP(f.Name, f.Shorthand, false, f.Usage)
			continue
		}
		fs.StringP(f.Name, f.Shorthand, "", f.Usage)
	}
	fs.BoolP("help", "h", false, "Show this help and exit.")
	return fs
}
