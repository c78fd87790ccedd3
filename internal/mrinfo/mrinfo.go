package mrinfo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// binary is the header-query tool shipped in the suite's release/bin
// directory.
const binary = "mrinfo"

// Runner queries image header fields by shelling out to mrinfo. Both the
// binary location and the logger are explicit so callers (and tests) never
// depend on ambient process state.
type Runner struct {
	// BinDir is the directory holding the mrinfo binary.
	BinDir string
	// Log receives the diagnostic command/result lines at debug level.
	Log *zap.Logger
}

// New returns a Runner for the given binary directory. A nil logger is
// replaced with a no-op one.
func New(binDir string, log *zap.Logger) Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return Runner{BinDir: binDir, Log: log}
}

// DefaultBinDir resolves the suite's release/bin directory relative to the
// running executable: two directory levels up, then release/bin. Symlinks
// are resolved first so an installed symlink still finds the real tree.
func DefaultBinDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir := filepath.Dir(exe)
	return filepath.Join(dir, "..", "..", "release", "bin"), nil
}

// Header queries a single header item of the image at imagePath and returns
// mrinfo's stdout as trimmed UTF-8 text.
//
// Only stdout is captured; stderr stays attached to the parent so any error
// text from the binary lands on the console directly. A missing binary or a
// non-zero exit is an error. There is no internal timeout: a hung child
// blocks until ctx is cancelled.
func (r Runner) Header(ctx context.Context, imagePath, item string) (string, error) {
	cmd := exec.CommandContext(ctx, filepath.Join(r.BinDir, binary), imagePath, "-"+item)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	r.Log.Debug("Command: '" + strings.Join(cmd.Args, " ") + "'")

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s -%s: %w", binary, imagePath, item, err)
	}

	raw := stdout.Bytes()
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%s %s -%s: output is not valid UTF-8", binary, imagePath, item)
	}
	result := strings.TrimRight(string(raw), " \t\r\n")

	r.Log.Debug("Result: " + result)
	return result, nil
}
