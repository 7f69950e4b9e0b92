// Package table mediates between a record store and a presentation surface.
//
// A Controller exposes the user-facing commands (add, delete, find, save,
// load), row and cell access for rendering, and two independent pieces of
// view state: a multi-row selection used by delete, and a single-cell cursor
// used for keyboard movement and edit entry. Every command runs to
// completion on the calling goroutine and reports its outcome as a value or
// a typed error; the controller never prompts or renders anything itself.
package table

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/store"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

var (
	// ErrNoSelection is returned by DeleteSelected when no row is selected.
	ErrNoSelection = errors.New("no row selected")

	// ErrEmptyQuery is returned by Find when the query is blank.
	ErrEmptyQuery = errors.New("empty search query")
)

// idQueryMinLen is the query length above which Find searches the ID column
// instead of the name column.
const idQueryMinLen = 5

// Cursor is the active cell.
type Cursor struct {
	Row int
	Col model.Column
}

// FindOutcome is the result of a Find that did not fail.
type FindOutcome struct {
	Found  bool
	Row    int
	Column model.Column
	Value  string // the full cell value that matched
}

// Controller holds a store plus selection and cursor state.
type Controller struct {
	store     Store
	selection []int // sorted, unique, always valid
	cursor    Cursor
	log       *zap.Logger
}

// New returns a controller over s. A nil logger disables logging.
func New(s Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: s, log: log}
}

// Store returns the underlying store.
func (c *Controller) Store() Store {
	return c.store
}

// RowCount returns the number of rows.
func (c *Controller) RowCount() int {
	return c.store.Len()
}

// ColumnCount returns the number of columns.
func (c *Controller) ColumnCount() int {
	return model.FieldCount
}

// Headers returns the column titles in display order.
func (c *Controller) Headers() []string {
	return model.Titles()
}

// Cell returns the text at (row, col).
func (c *Controller) Cell(row int, col model.Column) (string, error) {
	return c.store.Cell(row, col)
}

// SetCell commits an edit of a single cell.
func (c *Controller) SetCell(row int, col model.Column, value string) error {
	if err := c.store.SetCell(row, col, value); err != nil {
		return err
	}
	c.log.Debug("cell edited", zap.Int("row", row), zap.Stringer("column", col))
	return nil
}

// Selection returns the selected rows in ascending order.
func (c *Controller) Selection() []int {
	return append([]int(nil), c.selection...)
}

// SetSelection replaces the selection. Out-of-range and duplicate rows are
// dropped.
func (c *Controller) SetSelection(rows ...int) {
	c.selection = store.SortedUnique(rows, c.store.Len())
}

// IsSelected reports whether row is in the selection.
func (c *Controller) IsSelected(row int) bool {
	for _, r := range c.selection {
		if r == row {
			return true
		}
	}
	return false
}

// ToggleSelected adds row to the selection, or removes it if present.
func (c *Controller) ToggleSelected(row int) {
	if c.IsSelected(row) {
		kept := c.selection[:0:0]
		for _, r := range c.selection {
			if r != row {
				kept = append(kept, r)
			}
		}
		c.selection = kept
		return
	}
	c.SetSelection(append(c.Selection(), row)...)
}

// Cursor returns the active cell.
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// SetCursor moves the active cell, clamped to the table bounds.
func (c *Controller) SetCursor(row int, col model.Column) {
	c.cursor = Cursor{Row: row, Col: col}
	c.clampCursor()
}

// AddRow appends an empty row and selects it. The returned row is the one the
// view should scroll to.
func (c *Controller) AddRow() int {
	row := c.store.InsertEmpty()
	c.selection = []int{row}
	c.cursor = Cursor{Row: row, Col: model.ColumnID}
	c.log.Debug("row added", zap.Int("row", row))
	return row
}

// DeleteSelected removes every selected row. Afterwards the last remaining
// row is selected, or the selection is empty if no rows remain.
func (c *Controller) DeleteSelected() error {
	if len(c.selection) == 0 {
		return ErrNoSelection
	}

	removed := len(c.selection)
	c.store.RemoveAt(c.selection...)

	if n := c.store.Len(); n > 0 {
		c.selection = []int{n - 1}
		c.cursor = Cursor{Row: n - 1, Col: model.ColumnID}
	} else {
		c.selection = nil
		c.cursor = Cursor{}
	}

	c.log.Debug("rows deleted", zap.Int("count", removed), zap.Int("remaining", c.store.Len()))
	return nil
}

// SearchColumn returns the column Find uses for query: the ID column when the
// trimmed query is longer than five characters, otherwise the name column.
func SearchColumn(query string) model.Column {
	if utf8.RuneCountInString(strings.TrimSpace(query)) > idQueryMinLen {
		return model.ColumnID
	}
	return model.ColumnName
}

// matcher returns the column Find searches for query and a case-folded
// substring test over that column.
func matcher(query string) (model.Column, func(model.Record) bool) {
	col := SearchColumn(query)
	needle := cases.Fold().String(query)
	return col, func(r model.Record) bool {
		return strings.Contains(cases.Fold().String(r.Field(col)), needle)
	}
}

// Find performs a case-insensitive substring search from the first row and
// selects the first match. When nothing matches the selection is unchanged.
func (c *Controller) Find(query string) (FindOutcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return FindOutcome{}, ErrEmptyQuery
	}

	col, match := matcher(query)
	row, ok := c.store.FindFirst(match, store.NoIndex)
	if !ok {
		c.log.Debug("find: no match", zap.String("query", query), zap.Stringer("column", col))
		return FindOutcome{Column: col, Row: store.NoIndex}, nil
	}

	value, err := c.store.Cell(row, col)
	if err != nil {
		return FindOutcome{}, err
	}
	c.selection = []int{row}
	c.cursor = Cursor{Row: row, Col: col}

	c.log.Debug("find: match", zap.String("query", query), zap.Int("row", row))
	return FindOutcome{Found: true, Row: row, Column: col, Value: value}, nil
}

// FindAll returns every row that Find would consider a match, in order. The
// selection becomes the matching rows; the cursor moves to the first one.
func (c *Controller) FindAll(query string) ([]FindOutcome, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	col, match := matcher(query)
	var out []FindOutcome
	var rows []int
	for row, ok := c.store.FindFirst(match, store.NoIndex); ok; row, ok = c.store.FindFirst(match, row) {
		value, err := c.store.Cell(row, col)
		if err != nil {
			return nil, err
		}
		out = append(out, FindOutcome{Found: true, Row: row, Column: col, Value: value})
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		c.selection = rows
		c.cursor = Cursor{Row: rows[0], Col: col}
	}
	return out, nil
}

// Validate reports the first empty or duplicate ID without saving.
func (c *Controller) Validate() error {
	return c.store.Validate()
}

// SaveAll writes every row to path. Validation failures are returned as the
// store reports them.
func (c *Controller) SaveAll(path string) error {
	return c.store.SaveFile(path)
}

// LoadAll replaces every row with the contents of path and resets selection
// and cursor. A failed load changes nothing.
func (c *Controller) LoadAll(path string) error {
	if err := c.store.LoadFile(path); err != nil {
		return err
	}
	c.selection = nil
	c.cursor = Cursor{}
	return nil
}

// MoveUp moves the cursor one row up. It reports whether the cursor moved.
func (c *Controller) MoveUp() bool {
	if c.cursor.Row <= 0 {
		return false
	}
	c.cursor.Row--
	return true
}

// MoveDown moves the cursor one row down.
func (c *Controller) MoveDown() bool {
	if c.cursor.Row >= c.store.Len()-1 {
		return false
	}
	c.cursor.Row++
	return true
}

// MoveLeft moves the cursor one column left.
func (c *Controller) MoveLeft() bool {
	if c.cursor.Col <= 0 {
		return false
	}
	c.cursor.Col--
	return true
}

// MoveRight moves the cursor one column right.
func (c *Controller) MoveRight() bool {
	if int(c.cursor.Col) >= model.FieldCount-1 {
		return false
	}
	c.cursor.Col++
	return true
}

func (c *Controller) clampCursor() {
	n := c.store.Len()
	switch {
	case n == 0:
		c.cursor.Row = 0
	case c.cursor.Row >= n:
		c.cursor.Row = n - 1
	case c.cursor.Row < 0:
		c.cursor.Row = 0
	}
	if c.cursor.Col < 0 {
		c.cursor.Col = 0
	}
	if int(c.cursor.Col) >= model.FieldCount {
		c.cursor.Col = model.FieldCount - 1
	}
}
