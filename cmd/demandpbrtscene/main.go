package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/demandpbrtscene/internal/app"
	"github.com/specialistvlad/demandpbrtscene/internal/cli"
	"github.com/specialistvlad/demandpbrtscene/internal/profile"
)

// profileEnv names the environment variable holding the launch profile path.
const profileEnv = "DEMANDPBRTSCENE_PROFILE"

// main is the entrypoint for the demandpbrtscene viewer.
func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args, os.Getenv(profileEnv)); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

// exitCode prints err to errW and returns the process exit status for it.
func exitCode(err error, errW io.Writer) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}

// run encapsulates the main application logic for easier testing and error
// handling. Usage problems have already been printed to outW when it returns
// an ExitError.
func run(outW io.Writer, argv []string, profilePath string) error {
	if profilePath != "" && len(argv) > 0 {
		defaults, err := profile.Load(profilePath)
		if err != nil {
			return fmt.Errorf("failed to load launch profile: %w", err)
		}
		slog.Debug("Launch profile loaded.", "path", profilePath, "args", len(defaults))
		argv = withDefaults(argv, defaults)
	}

	opts, shouldExit, err := cli.Parse(argv, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, opts, app.DryRun{}).Run(context.Background())
}

// withDefaults places defaults between the program name and the user's
// arguments, so the user's values are applied last.
func withDefaults(argv, defaults []string) []string {
	out := make([]string, 0, len(argv)+len(defaults))
	out = append(out, argv[0])
	out = append(out, defaults...)
	return append(out, argv[1:]...)
}
