package main

import (
	"fmt"

	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student",
	Long: `Append a student to the end of the roster and save.

Examples:
  roster add --id S004 --name "Dan" --gender M --age 22 --province Hubei --major Chemistry
  roster add --id S005                     # other fields left empty`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var addFields [model.FieldCount]string

func init() {
	for _, col := range model.Columns() {
		addCmd.Flags().StringVar(&addFields[col], col.String(), "", "student "+col.Title())
	}
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	row := sess.ctrl.AddRow()
	for _, col := range model.Columns() {
		if err := sess.ctrl.SetCell(row, col, addFields[col]); err != nil {
			return err
		}
	}
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Printf("Added row %d: %s %s\n", row+1, addFields[model.ColumnID], addFields[model.ColumnName])
	return nil
}
