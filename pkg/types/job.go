// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures and error kinds for the
// mdforge pipeline.
package types

import "time"

// JobState tracks a conversion job through the pipeline.
// Per prd001-staging R3.1: transitions are strictly forward; the first
// failure moves the job to JobFailed and halts the run.
type JobState string

const (
	JobIdle      JobState = "idle"
	JobStaged    JobState = "staged"
	JobInvoked   JobState = "invoked"
	JobPublished JobState = "published"
	JobFailed    JobState = "failed"
)

// Source is the content entering a conversion job: a file path, raw pasted
// content, or both when the file has already been read. Content, when set,
// is what gets staged; Path labels the job.
type Source struct {
	Path    string
	Content []byte
}

// Job records one conversion run: where the content came from, where it was
// staged, what the assistant was asked to do, and how the run ended. Jobs
// are transient — one per invocation, never persisted unless the caller
// asks for a receipt.
type Job struct {
	// ID is a short random run identifier (8 hex characters).
	ID string `json:"id" yaml:"id"`

	// SourcePath is the user-supplied source file, or "(pasted)" when the
	// content was pasted directly.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// ScratchPath is the intermediate file handed to the assistant.
	ScratchPath string `json:"scratch_path" yaml:"scratch_path"`

	// OutputPath is the final published path, including any default
	// extension applied by the publisher.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Prompt is the instruction passed to the assistant.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Tool is the assistant command the run invoked.
	Tool string `json:"tool" yaml:"tool"`

	// State is the job's pipeline state.
	State JobState `json:"state" yaml:"state"`

	// ExitCode is the assistant's exit code, meaningful once the job has
	// passed the invocation stage or failed during it.
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// StartedAt and FinishedAt bound the run in UTC.
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`

	// Error holds the failure message when State is JobFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Duration returns the wall-clock time of the run.
func (j *Job) Duration() time.Duration {
	return j.FinishedAt.Sub(j.StartedAt)
}
