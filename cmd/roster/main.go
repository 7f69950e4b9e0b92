// Package main is the entry point for the roster CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagDir      string
	flagFile     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "roster - a student roster kept in a plain text file",
	Long: `roster edits a list of student records (ID, name, gender, age,
province, major) stored one per line in a UTF-8 text file, with fields
separated by a fullwidth comma (，).

Rows are numbered from 1. Every command that changes the roster checks that
all student IDs are present and unique before writing; if the check fails the
file is left as it was.

Use "roster tui" for a full-screen editor or "roster shell" for an
interactive prompt.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "C", ".", "workspace directory holding .rosterconfig.yaml")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "data file (overrides data_file in the config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.RegisterFlagCompletionFunc("log-level", completeLogLevels)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("roster version {{.Version}}\n")
}
