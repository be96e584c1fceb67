package types

import "time"

// ToolConfig holds settings for the external assistant invocation.
// Per prd002-invocation R1.2-R1.3, R3.1.
type ToolConfig struct {
	// Command is the assistant wrapper to invoke (default "run-aider").
	// A bare name is resolved against the working directory first, then
	// PATH; a name containing a path separator is used as given.
	Command string `json:"command" yaml:"command"`

	// Timeout bounds the assistant run. Zero means no timeout: the
	// invoker blocks until the process exits on its own.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// StagingConfig holds settings for the staging stage.
// Per prd001-staging R2.1-R2.3.
type StagingConfig struct {
	// ScratchDir is the directory holding the intermediate scratch file
	// (default "scratch-pad"). Created on first use; the scratch file
	// name inside it is fixed and overwritten every run.
	ScratchDir string `json:"scratch_dir" yaml:"scratch_dir"`
}

// InputConfig holds settings for the interactive prompt surface.
// Per prd004-interface R2.4.
type InputConfig struct {
	// PasteTimeout is how long to wait for another pasted line before
	// multi-line input is considered complete (default 2s).
	PasteTimeout time.Duration `json:"paste_timeout" yaml:"paste_timeout"`
}

// PipelineConfig groups all stage configurations for a conversion run.
type PipelineConfig struct {
	Tool    ToolConfig    `json:"tool" yaml:"tool"`
	Staging StagingConfig `json:"staging" yaml:"staging"`
	Input   InputConfig   `json:"input" yaml:"input"`
}
