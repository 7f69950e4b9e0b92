package store

import (
	"errors"
	"fmt"

	"github.com/jacksmith/roster/internal/model"
)

var (
	// ErrSourceUnavailable matches load failures where the source could not be
	// opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDestinationUnavailable matches save failures where the destination
	// could not be opened or written.
	ErrDestinationUnavailable = errors.New("destination unavailable")

	// ErrValidation matches every error returned by Validate and every
	// pre-write check in Save.
	ErrValidation = errors.New("validation failed")

	// ErrRowOutOfRange is returned by accessors given a row outside the table.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrColumnOutOfRange is returned by accessors given an invalid column.
	ErrColumnOutOfRange = errors.New("column out of range")
)

// LoadError indicates the record source could not be read.
// The store is left unchanged.
type LoadError struct {
	Path string // empty when loading from a reader
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot read records: %v", e.Err)
	}
	return fmt.Sprintf("cannot open %s for reading: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}

// SaveError indicates the destination could not be written.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot write records: %v", e.Err)
	}
	return fmt.Sprintf("cannot open %s for writing: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() []error {
	return []error{ErrDestinationUnavailable, e.Err}
}

// EmptyIDError reports a record whose trimmed ID is empty.
type EmptyIDError struct {
	Row int
}

func (e *EmptyIDError) Error() string {
	return fmt.Sprintf("row %d: student ID is empty", e.Row)
}

func (e *EmptyIDError) Unwrap() error { return ErrValidation }

// DuplicateIDError reports a record whose trimmed ID equals an earlier one.
// Row is the later (offending) index, Conflict the earlier one.
type DuplicateIDError struct {
	Row      int
	Conflict int
	ID       string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("row %d: student ID %q already used by row %d", e.Row, e.ID, e.Conflict)
}

func (e *DuplicateIDError) Unwrap() error { return ErrValidation }

// UnencodableFieldError reports a value that would break the file format
// because it contains the field delimiter or a line break.
type UnencodableFieldError struct {
	Row    int
	Column model.Column
}

func (e *UnencodableFieldError) Error() string {
	return fmt.Sprintf("row %d: %s contains the field delimiter or a line break", e.Row, e.Column)
}

func (e *UnencodableFieldError) Unwrap() error { return ErrValidation }
