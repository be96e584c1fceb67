// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant resolves and runs the external AI coding tool that
// rewrites the staged file in place.
// Implements: prd002-invocation (R1, R2, R3);
//
//	docs/ARCHITECTURE § Invocation.
package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/meshintel/mdforge/pkg/types"
)

// DefaultCommand is the assistant wrapper invoked when none is configured.
const DefaultCommand = "run-aider"

// Runner launches the assistant on a staged file and blocks until it exits.
// The production implementation spawns a subprocess; tests substitute fakes.
type Runner interface {
	// Name returns the command the runner invokes.
	Name() string

	// Run invokes the assistant with the staged file path and the
	// instruction prompt as its two arguments, blocking until exit.
	// A non-zero exit comes back as *types.ExternalToolError carrying
	// the code and the captured output.
	Run(ctx context.Context, path, prompt string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)

	// Run executes name with args, streaming output into stdout and
	// stderr. It returns the exit code whenever the process ran to
	// completion, even a non-zero one, and an error only when the
	// process could not run or ctx cut it short.
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

var defaultExec executor = &osExecutor{}

// WrapperRunner runs the assistant through its wrapper command.
type WrapperRunner struct {
	command  string // configured name
	resolved string // path after resolution
	viaPath  bool   // resolved through PATH rather than the working directory
	exec     executor
}

// New resolves command and returns a runner for it. A name containing a
// path separator is used as given; a bare name is checked in the working
// directory first, then PATH (R1.3). An unresolvable command is an error,
// reported before the pipeline starts.
func New(command string) (*WrapperRunner, error) {
	return newRunner(command, defaultExec)
}

func newRunner(command string, ex executor) (*WrapperRunner, error) {
	r := &WrapperRunner{command: command, exec: ex}

	if strings.ContainsAny(command, `/\`) {
		resolved, err := ex.LookPath(command)
		if err != nil {
			return nil, fmt.Errorf("assistant command %q not found: %w", command, err)
		}
		r.resolved = resolved
		return r, nil
	}

	// A bare name usually means the wrapper script sits next to the
	// content being converted; the working directory wins over PATH.
	if resolved, err := ex.LookPath("./" + command); err == nil {
		r.resolved = resolved
		return r, nil
	}
	resolved, err := ex.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("assistant command %q not found in working directory or PATH: %w", command, err)
	}
	r.resolved = resolved
	r.viaPath = true
	return r, nil
}

// Name returns the configured command name.
func (r *WrapperRunner) Name() string { return r.command }

// Resolved returns the path the command resolved to.
func (r *WrapperRunner) Resolved() string { return r.resolved }

// ViaPath reports whether resolution fell back to PATH instead of the
// working directory.
func (r *WrapperRunner) ViaPath() bool { return r.viaPath }

// Run launches the wrapper with the staged file path and the prompt as its
// two positional arguments (R2.1). It blocks for the process's whole
// lifetime; cancellation and deadlines arrive through ctx. Output is
// captured rather than streamed, and surfaces only on failure (R2.4).
func (r *WrapperRunner) Run(ctx context.Context, path, prompt string) error {
	var stdout, stderr bytes.Buffer

	code, err := r.exec.Run(ctx, r.resolved, []string{path, prompt}, &stdout, &stderr)
	if err != nil {
		return fmt.Errorf("running assistant %s: %w", r.command, err)
	}
	if code != 0 {
		return &types.ExternalToolError{
			Tool:     r.command,
			ExitCode: code,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}
	return nil
}
