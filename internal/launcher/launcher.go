// Package launcher maps runnable files to interpreter invocations and
// classifies the outcome of running them.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrUnsupported is returned for files whose extension has no interpreter
// mapping.
var ErrUnsupported = errors.New("no interpreter for file type")

type platformKey struct {
	Ext     string
	Windows bool
}

// interpreters is the (extension, platform-family) -> argv prefix table. The
// Windows rows go through cmd so that npm shim scripts (ts-node.cmd and
// friends) resolve.
var interpreters = map[platformKey][]string{
	{Ext: ".ts", Windows: false}: {"ts-node"},
	{Ext: ".ts", Windows: true}:  {"cmd", "/c", "ts-node"},
	{Ext: ".js", Windows: false}: {"node"},
	{Ext: ".js", Windows: true}:  {"cmd", "/c", "node"},
}

// Resolve returns the argv prefix for running a file with the given extension
// on the given GOOS.
func Resolve(ext, goos string) ([]string, error) {
	argv, ok := interpreters[platformKey{Ext: ext, Windows: goos == "windows"}]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return argv, nil
}

// Command builds the blocking interpreter invocation for path. The working
// directory is the directory containing the file, so relative paths inside the
// script resolve against its own location. Stdio and environment are left to
// the caller's process; nothing is captured.
func Command(path string) (*exec.Cmd, error) {
	argv, err := Resolve(filepath.Ext(path), runtime.GOOS)
	if err != nil {
		return nil, err
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("interpreter %s: %w", argv[0], err)
	}
	args := append(append([]string{}, argv[1:]...), path)
	cmd := exec.Command(argv[0], args...)
	cmd.Dir = filepath.Dir(path)
	return cmd, nil
}

// Result describes one finished (or failed-to-start) execution. A nonzero
// ExitCode is informational; only SpawnErr means the interpreter never ran.
type Result struct {
	ExitCode int
	SpawnErr error
}

// Classify converts the error returned after a child process finishes into a
// Result. A nil error is a clean exit, an *exec.ExitError carries the child's
// status, anything else means the process could not be started.
func Classify(err error) Result {
	if err == nil {
		return Result{}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}
	}
	return Result{SpawnErr: err}
}
