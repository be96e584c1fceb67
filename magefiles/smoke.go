package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// stubAssistant rewrites the staged file with a fixed Markdown body,
// standing in for the real assistant wrapper.
const stubAssistant = `#!/bin/sh
printf '# Converted\n\nstub output\n' > "$1"
`

// Smoke builds the binary and runs one conversion end to end against a
// stub assistant.
func Smoke() error {
	if err := Build(); err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "mdforge-smoke-*")
	if err != nil {
		return fmt.Errorf("creating smoke dir: %w", err)
	}
	defer os.RemoveAll(dir)

	stub := filepath.Join(dir, "run-aider")
	if err := os.WriteFile(stub, []byte(stubAssistant), 0o755); err != nil {
		return fmt.Errorf("writing stub assistant: %w", err)
	}
	src := filepath.Join(dir, "source.txt")
	if err := os.WriteFile(src, []byte("smoke test content\n"), 0o644); err != nil {
		return fmt.Errorf("writing source: %w", err)
	}

	bin, err := filepath.Abs(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	out := filepath.Join(dir, "out", "doc")
	cmd := exec.Command(bin, "convert", src, out,
		"--tool", stub,
		"--scratch-dir", filepath.Join(dir, "scratch-pad"),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("smoke conversion: %w", err)
	}

	published, err := os.ReadFile(out + ".md")
	if err != nil {
		return fmt.Errorf("published file missing: %w", err)
	}
	fmt.Printf("Smoke conversion published %d bytes.\n", len(published))
	return nil
}
