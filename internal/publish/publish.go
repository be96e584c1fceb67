// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish copies the assistant's scratch output to its final path.
// Implements: prd003-publishing (R1, R2);
//
//	docs/ARCHITECTURE § Publishing.
package publish

import (
	"os"
	"path/filepath"

	"github.com/meshintel/mdforge/pkg/types"
)

// DefaultExtension is appended to output paths that carry no extension.
const DefaultExtension = ".md"

// Resolve returns the final output path. Paths without an extension get
// DefaultExtension appended; paths that already have one, any one, are
// left alone (R1.2).
func Resolve(outputPath string) string {
	if filepath.Ext(outputPath) == "" {
		return outputPath + DefaultExtension
	}
	return outputPath
}

// Publish copies the scratch file's current content verbatim to the
// resolved output path, creating parent directories as needed (R2.1).
// The write goes through a temp file and a rename in the target directory,
// so a failed write never leaves a truncated output (R2.2). Returns the
// final path.
func Publish(scratchPath, outputPath string) (string, error) {
	final := Resolve(outputPath)

	content, err := os.ReadFile(scratchPath)
	if err != nil {
		return "", &types.IOError{Op: "read", Path: scratchPath, Err: err}
	}

	dir := filepath.Dir(final)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &types.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	if err := writeAtomic(final, content); err != nil {
		return "", &types.IOError{Op: "write", Path: final, Err: err}
	}
	return final, nil
}

// writeAtomic writes data to path via a temp file in the same directory
// followed by a rename.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mdforge-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return closeErr
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
