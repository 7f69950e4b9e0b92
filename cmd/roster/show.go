package main

import (
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:               "show <row>",
	Short:             "Show one student",
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeRows,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	row, err := parseRow(args[0], sess.ctrl.RowCount())
	if err != nil {
		return err
	}
	writeRecord(os.Stdout, sess.ctrl, row)
	return nil
}
