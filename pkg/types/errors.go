// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// NotFoundError reports a source file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// IOError reports a filesystem failure while staging or publishing.
// Op names the operation ("read", "write", "mkdir"); Err is the cause.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ExternalToolError reports a non-zero exit from the external assistant.
// The pipeline never retries one: the assistant edits the scratch file in
// place and a rerun would operate on its partial output.
type ExternalToolError struct {
	Tool     string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

// AsExternalToolError returns the *ExternalToolError in err's chain, if any.
func AsExternalToolError(err error) (*ExternalToolError, bool) {
	var te *ExternalToolError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
