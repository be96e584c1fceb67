package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/mdforge/internal/assistant"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that mdforge can run a conversion",
	Long: `Doctor verifies the conversion prerequisites: that the assistant wrapper
resolves (working directory first, then PATH) and that the scratch
directory can be created and written to. It changes nothing except
creating the scratch directory when absent.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().String("tool", "", `assistant wrapper command (default "run-aider")`)
	doctorCmd.Flags().String("scratch-dir", "", `scratch directory (default "scratch-pad")`)

	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	toolName := configuredTool(cmd)
	scratchDir := configuredScratchDir(cmd)

	problems := 0

	fmt.Printf("tool command: %s\n", toolName)
	runner, err := assistant.New(toolName)
	if err != nil {
		fmt.Printf("  resolved:   NOT FOUND (%v)\n", err)
		problems++
	} else {
		where := "working directory"
		if runner.ViaPath() {
			where = "PATH"
		}
		fmt.Printf("  resolved:   %s (via %s)\n", runner.Resolved(), where)
	}

	fmt.Printf("scratch dir:  %s\n", scratchDir)
	if err := checkScratchWritable(scratchDir); err != nil {
		fmt.Printf("  writable:   NO (%v)\n", err)
		problems++
	} else {
		fmt.Printf("  writable:   yes\n")
	}

	if cfgFile := viper.ConfigFileUsed(); cfgFile != "" {
		fmt.Printf("config file:  %s\n", cfgFile)
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("ready")
	return nil
}

// checkScratchWritable creates the scratch directory when needed and
// verifies a file can be written there.
func checkScratchWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
