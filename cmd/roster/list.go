package main

import (
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all students",
	Long: `List every student in file order. Row numbers in the first column are
the ones other commands accept.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	writeSkipped(os.Stderr, sess.store.Skipped())
	writeList(os.Stdout, sess.ctrl)
	return nil
}
