// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stage copies source content into the fixed scratch file the
// external assistant operates on.
// Implements: prd001-staging (R1, R2);
//
//	docs/ARCHITECTURE § Staging.
package stage

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/meshintel/mdforge/pkg/types"
)

// DefaultScratchDir is the scratch directory used when none is configured.
const DefaultScratchDir = "scratch-pad"

// scratchFile is the fixed name of the intermediate file inside the scratch
// directory. One file per run, overwritten on each invocation (R2.2). The
// .md suffix nudges the assistant toward Markdown-aware edits.
const scratchFile = "mdforge-source.md"

var errIsDirectory = errors.New("is a directory, not a file")

// Path returns the scratch file path for the given scratch directory.
func Path(scratchDir string) string {
	return filepath.Join(scratchDir, scratchFile)
}

// Stage writes content verbatim to the scratch file, creating the scratch
// directory when absent. No transformation of the content occurs (R1.2).
// Returns the scratch file path.
func Stage(content []byte, scratchDir string) (string, error) {
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return "", &types.IOError{Op: "mkdir", Path: scratchDir, Err: err}
	}
	path := Path(scratchDir)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", &types.IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// StageFile reads the file at srcPath and stages its content. A missing
// source fails with *types.NotFoundError before the scratch directory or
// file is touched (R1.3); directories are rejected (R1.4).
func StageFile(srcPath, scratchDir string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &types.NotFoundError{Path: srcPath}
		}
		return "", &types.IOError{Op: "stat", Path: srcPath, Err: err}
	}
	if info.IsDir() {
		return "", &types.IOError{Op: "read", Path: srcPath, Err: errIsDirectory}
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return "", &types.IOError{Op: "read", Path: srcPath, Err: err}
	}
	return Stage(content, scratchDir)
}
