// internal/script/shell/runner_test.go
package shell

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun_CapturesStdout(t *testing.T) {
	r := New()

	out, err := r.Run(context.Background(), "printf 'hello\\n#FF0000\\n'", true)
	if err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if out != "hello\n#FF0000\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestRun_ShellPipeline(t *testing.T) {
	r := New()

	out, err := r.Run(context.Background(), "printf 'a\\nb\\nc\\n' | wc -l", false)
	if err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("out=%q, want 3", out)
	}
}

func TestRun_FailureCapturesStderr(t *testing.T) {
	r := New()

	_, err := r.Run(context.Background(), "echo oops >&2; exit 3", true)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var shErr *Error
	if !errors.As(err, &shErr) {
		t.Fatalf("expected *shell.Error, got %T", err)
	}
	if shErr.ExitCode != 3 {
		t.Fatalf("exit code=%d, want 3", shErr.ExitCode)
	}
	if shErr.Output() != "oops" {
		t.Fatalf("Output()=%q, want %q", shErr.Output(), "oops")
	}
}

func TestErrorOutput_PrefersStdout(t *testing.T) {
	e := &Error{Stdout: "partial output\n", Stderr: "stderr noise\n"}
	if e.Output() != "partial output" {
		t.Fatalf("Output()=%q", e.Output())
	}

	e = &Error{Stderr: "permission denied\n"}
	if e.Output() != "permission denied" {
		t.Fatalf("Output()=%q", e.Output())
	}
}
