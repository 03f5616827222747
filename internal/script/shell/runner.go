// internal/script/shell/runner.go
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Error is a failed command execution with its captured output.
type Error struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("shell: command failed (exit %d): %v", e.ExitCode, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Output returns the best user-facing diagnostic for the failure.
// Captured stdout wins over stderr when both exist.
func (e *Error) Output() string {
	if out := strings.TrimSpace(e.Stdout); out != "" {
		return out
	}
	return strings.TrimSpace(e.Stderr)
}

// Runner executes scripts through "sh -c" and captures their output.
// Pipes and shell expressions in script_path work unchanged.
type Runner struct{}

func New() *Runner {
	return &Runner{}
}

// Run executes script and returns its captured stdout.
// With localize off the child runs under LC_ALL=C so numeric output
// keeps a machine-readable form.
func (r *Runner) Run(ctx context.Context, script string, localize bool) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", script)
	if !localize {
		cmd.Env = append(os.Environ(), "LC_ALL=C")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	if err := cmd.Run(); err != nil {
		return "", &Error{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: exitCode(err),
			Err:      err,
		}
	}

	return stdout.String(), nil
}

func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
