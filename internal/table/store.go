package table

import "github.com/jacksmith/roster/internal/model"

// Store defines the record operations the controller needs.
// The concrete implementation is store.Store; tests and alternative
// front ends may substitute their own.
type Store interface {
	Len() int
	Record(row int) (model.Record, error)
	Cell(row int, col model.Column) (string, error)
	SetCell(row int, col model.Column, value string) error
	InsertEmpty() int
	RemoveAt(indices ...int)
	FindFirst(match func(model.Record) bool, startAfter int) (int, bool)
	Validate() error
	LoadFile(path string) error
	SaveFile(path string) error
}
