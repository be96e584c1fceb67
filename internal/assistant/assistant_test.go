// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/meshintel/mdforge/pkg/types"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	paths    map[string]string // LookPath arg -> resolved path
	runFunc  func(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error)
	runCalls []runCall
}

type runCall struct {
	name string
	args []string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if p, ok := m.paths[file]; ok {
		return p, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) (int, error) {
	m.runCalls = append(m.runCalls, runCall{name: name, args: args})
	if m.runFunc != nil {
		return m.runFunc(ctx, name, args, stdout, stderr)
	}
	return 0, nil
}

func TestNewRunnerResolution(t *testing.T) {
	tests := []struct {
		name         string
		command      string
		paths        map[string]string
		wantResolved string
		wantViaPath  bool
		wantErr      string
	}{
		{
			name:    "working directory wins over PATH",
			command: "run-aider",
			paths: map[string]string{
				"./run-aider": "./run-aider",
				"run-aider":   "/usr/bin/run-aider",
			},
			wantResolved: "./run-aider",
		},
		{
			name:         "PATH fallback when not in working directory",
			command:      "run-aider",
			paths:        map[string]string{"run-aider": "/usr/local/bin/run-aider"},
			wantResolved: "/usr/local/bin/run-aider",
			wantViaPath:  true,
		},
		{
			name:    "not found anywhere",
			command: "run-aider",
			paths:   map[string]string{},
			wantErr: "not found in working directory or PATH",
		},
		{
			name:         "explicit relative path used as given",
			command:      "tools/run-aider.sh",
			paths:        map[string]string{"tools/run-aider.sh": "tools/run-aider.sh"},
			wantResolved: "tools/run-aider.sh",
		},
		{
			name:    "explicit path missing",
			command: "/opt/assistant/run-aider",
			paths:   map[string]string{},
			wantErr: "not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newRunner(tt.command, &mockExecutor{paths: tt.paths})
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Resolved() != tt.wantResolved {
				t.Errorf("resolved = %q, want %q", r.Resolved(), tt.wantResolved)
			}
			if r.ViaPath() != tt.wantViaPath {
				t.Errorf("viaPath = %v, want %v", r.ViaPath(), tt.wantViaPath)
			}
			if r.Name() != tt.command {
				t.Errorf("name = %q, want %q", r.Name(), tt.command)
			}
		})
	}
}

func TestRunPassesScratchPathAndPrompt(t *testing.T) {
	ex := &mockExecutor{paths: map[string]string{"run-aider": "/usr/bin/run-aider"}}
	r, err := newRunner("run-aider", ex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Run(context.Background(), "scratch-pad/mdforge-source.md", ConversionPrompt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ex.runCalls) != 1 {
		t.Fatalf("got %d run calls, want 1", len(ex.runCalls))
	}
	call := ex.runCalls[0]
	if call.name != "/usr/bin/run-aider" {
		t.Errorf("ran %q, want the resolved path", call.name)
	}
	if len(call.args) != 2 || call.args[0] != "scratch-pad/mdforge-source.md" || call.args[1] != ConversionPrompt {
		t.Errorf("args = %q, want [scratch path, prompt]", call.args)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	ex := &mockExecutor{
		paths: map[string]string{"run-aider": "/usr/bin/run-aider"},
		runFunc: func(_ context.Context, _ string, _ []string, stdout, stderr io.Writer) (int, error) {
			_, _ = io.WriteString(stdout, "processing file...")
			_, _ = io.WriteString(stderr, "model unavailable")
			return 1, nil
		},
	}
	r, err := newRunner("run-aider", ex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = r.Run(context.Background(), "scratch-pad/mdforge-source.md", ConversionPrompt)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	te, ok := types.AsExternalToolError(err)
	if !ok {
		t.Fatalf("want *types.ExternalToolError, got %T: %v", err, err)
	}
	if te.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1", te.ExitCode)
	}
	if te.Tool != "run-aider" {
		t.Errorf("tool = %q, want %q", te.Tool, "run-aider")
	}
	if te.Stdout != "processing file..." {
		t.Errorf("stdout = %q", te.Stdout)
	}
	if te.Stderr != "model unavailable" {
		t.Errorf("stderr = %q", te.Stderr)
	}
}

func TestRunExecFailure(t *testing.T) {
	ex := &mockExecutor{
		paths: map[string]string{"run-aider": "/usr/bin/run-aider"},
		runFunc: func(context.Context, string, []string, io.Writer, io.Writer) (int, error) {
			return -1, errors.New("fork/exec: permission denied")
		},
	}
	r, err := newRunner("run-aider", ex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = r.Run(context.Background(), "scratch-pad/mdforge-source.md", ConversionPrompt)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := types.AsExternalToolError(err); ok {
		t.Error("an execution failure is not an assistant exit")
	}
	if !strings.Contains(err.Error(), "running assistant run-aider") {
		t.Errorf("error %q should name the assistant", err.Error())
	}
}

func TestRunContextCanceled(t *testing.T) {
	ex := &mockExecutor{
		paths: map[string]string{"run-aider": "/usr/bin/run-aider"},
		runFunc: func(ctx context.Context, _ string, _ []string, _, _ io.Writer) (int, error) {
			return -1, ctx.Err()
		},
	}
	r, err := newRunner("run-aider", ex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = r.Run(ctx, "scratch-pad/mdforge-source.md", ConversionPrompt)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled in the chain, got %v", err)
	}
}
