package main

import (
	"fmt"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <row>",
	Short: "Edit a student in $EDITOR",
	Long: `Open a student as YAML in $VISUAL or $EDITOR. When the editor exits the
record is read back and the roster is saved. Use "roster set" to change a
single field without an editor.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runEdit,
	ValidArgsFunction: completeRows,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	row, err := parseRow(args[0], sess.ctrl.RowCount())
	if err != nil {
		return err
	}
	before, err := sess.store.Record(row)
	if err != nil {
		return err
	}

	after, err := cli.EditRecord(before)
	if err != nil {
		return err
	}
	if after == before {
		fmt.Println("No changes.")
		return nil
	}

	var changed []string
	for _, col := range model.Columns() {
		if after.Field(col) == before.Field(col) {
			continue
		}
		if err := sess.ctrl.SetCell(row, col, after.Field(col)); err != nil {
			return err
		}
		changed = append(changed, col.String())
	}
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Printf("Updated row %d: %v\n", row+1, changed)
	return nil
}
