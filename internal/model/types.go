// Package model defines the student record and its column layout.
package model

import (
	"fmt"
	"strings"
)

// Column identifies one of the six record fields by position.
type Column int

const (
	ColumnID Column = iota
	ColumnName
	ColumnGender
	ColumnAge
	ColumnProvince
	ColumnMajor
)

// FieldCount is the number of fields every record carries.
const FieldCount = 6

// columnNames are the machine names used on the command line and in YAML.
var columnNames = [FieldCount]string{"id", "name", "gender", "age", "province", "major"}

// columnTitles are the human-readable table headers.
var columnTitles = [FieldCount]string{"Student ID", "Name", "Gender", "Age", "Province", "Major"}

// Valid reports whether c names one of the six fields.
func (c Column) Valid() bool {
	return c >= 0 && int(c) < FieldCount
}

// String returns the machine name of the column (e.g. "id").
func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("column(%d)", int(c))
	}
	return columnNames[c]
}

// Title returns the display header for the column.
func (c Column) Title() string {
	if !c.Valid() {
		return c.String()
	}
	return columnTitles[c]
}

// Columns returns all columns in storage order.
func Columns() []Column {
	cols := make([]Column, FieldCount)
	for i := range cols {
		cols[i] = Column(i)
	}
	return cols
}

// Titles returns the display headers in storage order.
func Titles() []string {
	return append([]string(nil), columnTitles[:]...)
}

// ParseColumn resolves a column by machine name (case-insensitive) or by
// 1-based position ("1" is id, "6" is major).
func ParseColumn(s string) (Column, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range columnNames {
		if n == name {
			return Column(i), nil
		}
	}
	if len(name) == 1 && name[0] >= '1' && name[0] <= '0'+FieldCount {
		return Column(name[0] - '1'), nil
	}
	return 0, fmt.Errorf("unknown column %q (expected one of: %s)", s, strings.Join(columnNames[:], ", "))
}

// Record is one student entry. All fields are free-form text; Age is not
// checked for being numeric.
type Record struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Gender   string `yaml:"gender"`
	Age      string `yaml:"age"`
	Province string `yaml:"province"`
	Major    string `yaml:"major"`
}

// NewRecord builds a record from exactly FieldCount values in storage order.
func NewRecord(fields []string) (Record, error) {
	if len(fields) != FieldCount {
		return Record{}, fmt.Errorf("record needs %d fields, got %d", FieldCount, len(fields))
	}
	return Record{
		ID:       fields[ColumnID],
		Name:     fields[ColumnName],
		Gender:   fields[ColumnGender],
		Age:      fields[ColumnAge],
		Province: fields[ColumnProvince],
		Major:    fields[ColumnMajor],
	}, nil
}

// Fields returns the record's values in storage order.
func (r Record) Fields() []string {
	return []string{r.ID, r.Name, r.Gender, r.Age, r.Province, r.Major}
}

// Field returns the value in column c, or "" for an invalid column.
func (r Record) Field(c Column) string {
	switch c {
	case ColumnID:
		return r.ID
	case ColumnName:
		return r.Name
	case ColumnGender:
		return r.Gender
	case ColumnAge:
		return r.Age
	case ColumnProvince:
		return r.Province
	case ColumnMajor:
		return r.Major
	}
	return ""
}

// SetField sets the value in column c. Invalid columns are ignored.
func (r *Record) SetField(c Column, value string) {
	switch c {
	case ColumnID:
		r.ID = value
	case ColumnName:
		r.Name = value
	case ColumnGender:
		r.Gender = value
	case ColumnAge:
		r.Age = value
	case ColumnProvince:
		r.Province = value
	case ColumnMajor:
		r.Major = value
	}
}

// Key returns the trimmed student ID used for uniqueness checks.
func (r Record) Key() string {
	return strings.TrimSpace(r.ID)
}
