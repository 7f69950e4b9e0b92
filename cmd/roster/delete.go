package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <row>...",
	Aliases: []string{"rm"},
	Short:   "Delete students",
	Long: `Delete one or more students by row number and save.

All row numbers refer to the roster before the delete, so
"roster delete 2 4" removes the second and fourth students.`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runDelete,
	ValidArgsFunction: completeRows,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	rows, err := parseRows(args, sess.ctrl.RowCount())
	if err != nil {
		return err
	}

	sess.ctrl.SetSelection(rows...)
	n := len(sess.ctrl.Selection())
	if err := sess.ctrl.DeleteSelected(); err != nil {
		return err
	}
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Printf("Deleted %d student(s); %d remaining\n", n, sess.ctrl.RowCount())
	return nil
}
