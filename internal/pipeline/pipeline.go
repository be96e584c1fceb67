// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one conversion job end to end: stage the source,
// invoke the assistant on the scratch file, publish the rewritten result.
// Implements: prd001-staging R3, prd002-invocation R2, prd003-publishing R2;
//
//	docs/ARCHITECTURE § Pipeline.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meshintel/mdforge/internal/assistant"
	"github.com/meshintel/mdforge/internal/publish"
	"github.com/meshintel/mdforge/internal/stage"
	"github.com/meshintel/mdforge/pkg/types"
)

// pastedLabel marks jobs whose content arrived without a file path.
const pastedLabel = "(pasted)"

// Pipeline wires the stages of a conversion run. Status lines go to Out as
// stages complete.
type Pipeline struct {
	Runner assistant.Runner
	Cfg    types.PipelineConfig
	Out    io.Writer
}

// New returns a Pipeline using runner for the invocation stage.
func New(runner assistant.Runner, cfg types.PipelineConfig, out io.Writer) *Pipeline {
	return &Pipeline{Runner: runner, Cfg: cfg, Out: out}
}

// Run executes one job start to finish. The returned Job always reflects
// the final state, on failure included; err is non-nil exactly when that
// state is JobFailed. There is no rollback: the first failure halts the
// run and the scratch file keeps whatever the assistant left in it (R3.2).
func (p *Pipeline) Run(ctx context.Context, src types.Source, outputPath string) (*types.Job, error) {
	job := &types.Job{
		ID:         uuid.New().String()[:8],
		SourcePath: src.Path,
		OutputPath: outputPath,
		Prompt:     assistant.ConversionPrompt,
		Tool:       p.Runner.Name(),
		State:      types.JobIdle,
		StartedAt:  time.Now().UTC(),
	}
	if src.Path == "" {
		job.SourcePath = pastedLabel
	}

	err := p.run(ctx, job, src, outputPath)
	job.FinishedAt = time.Now().UTC()
	if err != nil {
		job.State = types.JobFailed
		job.Error = err.Error()
		if te, ok := types.AsExternalToolError(err); ok {
			job.ExitCode = te.ExitCode
		}
		p.reportFailure(job, err)
		return job, err
	}
	return job, nil
}

func (p *Pipeline) run(ctx context.Context, job *types.Job, src types.Source, outputPath string) error {
	var (
		scratch string
		err     error
	)
	if src.Content != nil {
		scratch, err = stage.Stage(src.Content, p.Cfg.Staging.ScratchDir)
	} else {
		scratch, err = stage.StageFile(src.Path, p.Cfg.Staging.ScratchDir)
	}
	if err != nil {
		return err
	}
	job.ScratchPath = scratch
	job.State = types.JobStaged
	fmt.Fprintf(p.Out, "staged: %s\n", scratch)

	fmt.Fprintf(p.Out, "invoking: %s\n", p.Runner.Name())
	if err := p.Runner.Run(ctx, scratch, job.Prompt); err != nil {
		return err
	}
	job.State = types.JobInvoked

	final, err := publish.Publish(scratch, outputPath)
	if err != nil {
		return err
	}
	job.OutputPath = final
	job.State = types.JobPublished
	fmt.Fprintf(p.Out, "published: %s\n", final)
	return nil
}

// reportFailure prints the failure, any captured assistant output, and a
// pointer at the scratch file when one was written.
func (p *Pipeline) reportFailure(job *types.Job, err error) {
	fmt.Fprintf(p.Out, "failed: %v\n", err)
	if te, ok := types.AsExternalToolError(err); ok {
		if out := strings.TrimSpace(te.Stdout); out != "" {
			fmt.Fprintf(p.Out, "assistant stdout:\n%s\n", out)
		}
		if errOut := strings.TrimSpace(te.Stderr); errOut != "" {
			fmt.Fprintf(p.Out, "assistant stderr:\n%s\n", errOut)
		}
	}
	if job.ScratchPath != "" {
		fmt.Fprintf(p.Out, "note: %s may contain partial results\n", job.ScratchPath)
	}
}
