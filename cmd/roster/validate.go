package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the roster without saving",
	Long: `Check that every student has an ID and that no two students share one.
Also reports lines of the data file that could not be read as a student.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	writeSkipped(os.Stdout, sess.store.Skipped())
	if err := sess.ctrl.Validate(); err != nil {
		return err
	}
	fmt.Println(cli.Green("✓") + fmt.Sprintf(" %d students, all IDs present and unique", sess.ctrl.RowCount()))
	return nil
}
