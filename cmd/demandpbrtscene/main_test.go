package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/demandpbrtscene/internal/cli"
	"github.com/stretchr/testify/require"
)

// writeProfile creates a launch profile in a temporary directory.
func writeProfile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.hcl")
	err := os.WriteFile(path, []byte(src), 0600)
	require.NoError(t, err, "failed to set up test file")
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"viewer", "--dim=320x200", "scene.pbrt", "-f", "out.png"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args, "")

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "target=out.png")
	require.Contains(t, out.String(), "size=320x200")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "--help" flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"viewer", "--help"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args, "")

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"viewer", "--warmup=-1"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args, "")

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, cli.UsageExitCode, exitErr.Code)
	require.Contains(t, out.String(), "viewer: bad warmup frame count value")
	require.Contains(t, out.String(), "viewer: missing scene file argument")
}

func TestRun_ProfileSuppliesDefaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeProfile(t, "dim = \"640x480\"\nfile = \"profile.png\"\n")
	args := []string{"viewer", "scene.pbrt", "--file", "cli.png"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args, path)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "size=640x480", "profile value should apply")
	require.Contains(t, out.String(), "target=cli.png", "command line should override the profile")
}

func TestRun_ProfileValuesAreValidated(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeProfile(t, `bg = "1/2"`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"viewer", "scene.pbrt"}, path)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, out.String(), "viewer: bad background color value")
}

func TestRun_BadProfile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeProfile(t, `resolution = "4k"`)
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, []string{"viewer", "scene.pbrt"}, path)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load launch profile")
	require.Contains(t, err.Error(), `unknown option "resolution"`)
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	got := withDefaults([]string{"viewer", "a.pbrt"}, []string{"--sync"})

	require.Equal(t, []string{"viewer", "--sync", "a.pbrt"}, got)
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{
			name:     "usage error",
			err:      &cli.ExitError{Code: cli.UsageExitCode, Message: "bad warmup frame count value"},
			wantCode: cli.UsageExitCode,
			wantText: "bad warmup frame count value\n",
		},
		{
			name:     "other error",
			err:      errors.New("failed to load launch profile: boom"),
			wantCode: 1,
			wantText: "failed to load launch profile: boom\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errW := &bytes.Buffer{}

			code := exitCode(tc.err, errW)

			require.Equal(t, tc.wantCode, code)
			require.Equal(t, tc.wantText, errW.String())
		})
	}
}

func TestRun_ParseErrorReachesStderr(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	// --- Act ---
	code := exitCode(run(out, []string{"viewer", "--bg=1/2", "scene.pbrt"}, ""), errW)

	// --- Assert ---
	require.Equal(t, cli.UsageExitCode, code)
	require.Contains(t, errW.String(), "bad background color value")
}
