package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/roster/internal/store"
	"github.com/jacksmith/roster/internal/table"
)

// RowArgError indicates a row number given on the command line is not in the
// table.
type RowArgError struct {
	Arg  string // the argument as typed
	Rows int    // rows currently in the table
}

func (e *RowArgError) Error() string {
	if e.Rows == 0 {
		return fmt.Sprintf("invalid row %s: the roster is empty", e.Arg)
	}
	return fmt.Sprintf("invalid row %s (expected 1-%d)", e.Arg, e.Rows)
}

// Describe turns an error from the store or controller into a notice for the
// user. Row numbers are shown 1-based. Unknown errors use their own message.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		emptyErr *store.EmptyIDError
		dupErr   *store.DuplicateIDError
		encErr   *store.UnencodableFieldError
		loadErr  *store.LoadError
		saveErr  *store.SaveError
	)

	switch {
	case errors.As(err, &emptyErr):
		return fmt.Sprintf("row %d: student ID must not be empty", emptyErr.Row+1)
	case errors.As(err, &dupErr):
		return fmt.Sprintf("row %d: student ID %q already exists in row %d",
			dupErr.Row+1, dupErr.ID, dupErr.Conflict+1)
	case errors.As(err, &encErr):
		return fmt.Sprintf("row %d: %s must not contain %q or a line break",
			encErr.Row+1, encErr.Column, "，")
	case errors.As(err, &loadErr):
		if loadErr.Path == "" {
			return "cannot read roster data"
		}
		return fmt.Sprintf("cannot open %s", loadErr.Path)
	case errors.As(err, &saveErr):
		if saveErr.Path == "" {
			return "cannot write roster data"
		}
		return fmt.Sprintf("cannot save data to %s", saveErr.Path)
	case errors.Is(err, table.ErrNoSelection):
		return "select a row to delete first"
	case errors.Is(err, table.ErrEmptyQuery):
		return "enter something to search for"
	}

	return err.Error()
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + Describe(err)
}
