package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/table"
)

// writeRows renders the given rows of the table, numbered from 1. A nil rows
// slice renders every row.
func writeRows(w io.Writer, ctrl *table.Controller, rows []int) {
	if rows == nil {
		rows = make([]int, ctrl.RowCount())
		for i := range rows {
			rows[i] = i
		}
	}

	t := cli.NewTable()
	t.SetMaxWidth(int(model.ColumnName)+1, cli.DefaultMaxCellWidth)
	t.SetMaxWidth(int(model.ColumnMajor)+1, cli.DefaultMaxCellWidth)

	header := append([]string{"#"}, ctrl.Headers()...)
	for i := range header {
		header[i] = cli.Bold(header[i])
	}
	t.AddRow(header...)

	for _, row := range rows {
		cells := []string{cli.Gray(strconv.Itoa(row + 1))}
		for _, col := range model.Columns() {
			v, _ := ctrl.Cell(row, col)
			cells = append(cells, v)
		}
		t.AddRow(cells...)
	}
	t.Render(w)
}

// writeList renders the whole roster, or a notice if it is empty.
func writeList(w io.Writer, ctrl *table.Controller) {
	if ctrl.RowCount() == 0 {
		fmt.Fprintln(w, "No students found.")
		return
	}
	writeRows(w, ctrl, nil)
	fmt.Fprintln(w, cli.Gray(fmt.Sprintf("%d students", ctrl.RowCount())))
}

// writeRecord renders one row as labelled fields.
func writeRecord(w io.Writer, ctrl *table.Controller, row int) {
	fmt.Fprintf(w, "%s\n", cli.Bold(fmt.Sprintf("Row %d", row+1)))
	for _, col := range model.Columns() {
		v, _ := ctrl.Cell(row, col)
		if v == "" {
			v = cli.Gray("(empty)")
		}
		fmt.Fprintf(w, "  %-11s %s\n", col.Title()+":", v)
	}
}

// writeSkipped warns about lines the last load dropped.
func writeSkipped(w io.Writer, skipped int) {
	if skipped == 0 {
		return
	}
	fmt.Fprintln(w, cli.Yellow(fmt.Sprintf("warning: %d malformed line(s) were skipped and will be dropped on save", skipped)))
}
