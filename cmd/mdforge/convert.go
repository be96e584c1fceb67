package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/mdforge/internal/assistant"
	"github.com/meshintel/mdforge/internal/input"
	"github.com/meshintel/mdforge/internal/pipeline"
	"github.com/meshintel/mdforge/internal/preview"
	"github.com/meshintel/mdforge/internal/stage"
	"github.com/meshintel/mdforge/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [source] [output]",
	Short: "Convert a file or pasted text to Markdown",
	Long: `Convert stages the source content into the scratch file, invokes the
external assistant with the fixed conversion instruction, and copies the
rewritten scratch file to the output path. An output path without an
extension gets ".md" appended.

Source and output may be given as arguments; whatever is missing is
collected interactively. An interactive source line that is not an
existing file switches the prompt into paste mode.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("tool", "", `assistant wrapper command (default "run-aider")`)
	convertCmd.Flags().Duration("timeout", 0, "abort the assistant after this long (default: no timeout)")
	convertCmd.Flags().String("scratch-dir", "", `scratch directory for the intermediate file (default "scratch-pad")`)
	convertCmd.Flags().Duration("paste-timeout", 0, "pause that finalizes pasted input (default 2s)")
	convertCmd.Flags().String("receipt", "", "write a YAML record of the run to this path")
	convertCmd.Flags().Bool("preview", false, "render the published markdown in the terminal")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := conversionConfig(cmd)

	var (
		src     types.Source
		outPath string
		err     error
	)
	if len(args) >= 1 {
		src.Path = args[0]
	}
	if len(args) == 2 {
		outPath = args[1]
	}

	if src.Path == "" || outPath == "" {
		prompter := input.New(os.Stdin, os.Stderr, cfg.Input.PasteTimeout)
		if src.Path == "" {
			src, err = prompter.ReadSource()
			if err != nil {
				return err
			}
		}
		if outPath == "" {
			outPath, err = prompter.ReadOutputPath()
			if err != nil {
				return err
			}
		}
	}

	runner, err := assistant.New(cfg.Tool.Command)
	if err != nil {
		return err
	}
	if runner.ViaPath() {
		fmt.Fprintf(os.Stderr, "%s not in working directory, using %s\n", cfg.Tool.Command, runner.Resolved())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Tool.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Tool.Timeout)
		defer cancel()
	}

	p := pipeline.New(runner, cfg, os.Stdout)
	job, runErr := p.Run(ctx, src, outPath)

	// The receipt is written for both outcomes.
	if receiptPath, _ := cmd.Flags().GetString("receipt"); receiptPath != "" {
		if err := pipeline.WriteReceipt(job, receiptPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "receipt: %s\n", receiptPath)
		}
	}
	if runErr != nil {
		return runErr
	}

	if showPreview, _ := cmd.Flags().GetBool("preview"); showPreview {
		rendered, err := preview.File(job.OutputPath, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: preview failed: %v\n", err)
		} else {
			fmt.Print(rendered)
		}
	}
	return nil
}

// conversionConfig assembles the run configuration: flags win, then config
// file and MDFORGE_ environment, then built-in defaults.
func conversionConfig(cmd *cobra.Command) types.PipelineConfig {
	return types.PipelineConfig{
		Tool: types.ToolConfig{
			Command: configuredTool(cmd),
			Timeout: configuredTimeout(cmd),
		},
		Staging: types.StagingConfig{
			ScratchDir: configuredScratchDir(cmd),
		},
		Input: types.InputConfig{
			PasteTimeout: configuredPasteTimeout(cmd),
		},
	}
}

func configuredTool(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("tool"); v != "" {
		return v
	}
	if v := viper.GetString("tool.command"); v != "" {
		return v
	}
	return assistant.DefaultCommand
}

func configuredTimeout(cmd *cobra.Command) time.Duration {
	if v, _ := cmd.Flags().GetDuration("timeout"); v != 0 {
		return v
	}
	return viper.GetDuration("tool.timeout")
}

func configuredScratchDir(cmd *cobra.Command) string {
	if v, _ := cmd.Flags().GetString("scratch-dir"); v != "" {
		return v
	}
	if v := viper.GetString("staging.scratch_dir"); v != "" {
		return v
	}
	return stage.DefaultScratchDir
}

func configuredPasteTimeout(cmd *cobra.Command) time.Duration {
	if v, _ := cmd.Flags().GetDuration("paste-timeout"); v != 0 {
		return v
	}
	if v := viper.GetDuration("input.paste_timeout"); v != 0 {
		return v
	}
	return input.DefaultPasteTimeout
}
