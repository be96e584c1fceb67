// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdforge CLI.
// Implements: prd004-interface (CLI surface).
// See docs/ARCHITECTURE § Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdforge CLI.
var rootCmd = &cobra.Command{
	Use:   "mdforge",
	Short: "Convert files to Markdown through an AI coding assistant",
	Long: `mdforge stages a source file (or pasted text) into a scratch file, hands
that file to an external AI coding assistant with a fixed conversion
instruction, and publishes the rewritten result to the output path you
choose.

The assistant is an independently installed command-line tool; mdforge
orchestrates the staging, the invocation, and the final copy.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdforge.yaml or ~/.config/mdforge/config.yaml)")
}

func initConfig() {
	// A local .env file participates before the process environment is
	// consulted; missing files are fine.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdforge"))
		}
	}

	viper.SetEnvPrefix("MDFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
