package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <row> <column> <value>",
	Short: "Change one field of a student",
	Long: `Change one field of a student and save.

Columns may be given by name (id, name, gender, age, province, major) or by
number (1-6).

Examples:
  roster set 2 name "Bob Li"
  roster set 2 6 Economics
  roster set 3 province ""`,
	Args:              cobra.ExactArgs(3),
	RunE:              runSet,
	ValidArgsFunction: completeRowsThenColumns,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	row, err := parseRow(args[0], sess.ctrl.RowCount())
	if err != nil {
		return err
	}
	col, err := model.ParseColumn(args[1])
	if err != nil {
		return err
	}

	old, err := sess.ctrl.Cell(row, col)
	if err != nil {
		return err
	}
	if err := sess.ctrl.SetCell(row, col, args[2]); err != nil {
		return err
	}
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Printf("Row %d %s: %q -> %q\n", row+1, strings.ToLower(col.Title()), old, args[2])
	return nil
}
