// Package store holds the authoritative, ordered sequence of student records
// and the rules for loading, validating and saving it.
package store

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jacksmith/roster/internal/model"
	"go.uber.org/zap"
)

// NoIndex is passed as startAfter to FindFirst to scan from the first row.
const NoIndex = -1

// Store is an ordered sequence of records. Insertion order is the display and
// storage order. The zero value is not usable; call New.
type Store struct {
	records []model.Record
	skipped int // lines dropped by the last successful load
	log     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save events.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Skipped returns how many malformed lines the last successful load dropped.
func (s *Store) Skipped() int {
	return s.skipped
}

// Records returns a copy of all records in order.
func (s *Store) Records() []model.Record {
	return append([]model.Record(nil), s.records...)
}

// Record returns a copy of the record at row.
func (s *Store) Record(row int) (model.Record, error) {
	if row < 0 || row >= len(s.records) {
		return model.Record{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	return s.records[row], nil
}

// SetRecord replaces the record at row.
func (s *Store) SetRecord(row int, r model.Record) error {
	if row < 0 || row >= len(s.records) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	s.records[row] = r
	return nil
}

// Cell returns the value at (row, col).
func (s *Store) Cell(row int, col model.Column) (string, error) {
	if !col.Valid() {
		return "", fmt.Errorf("%w: %d", ErrColumnOutOfRange, int(col))
	}
	r, err := s.Record(row)
	if err != nil {
		return "", err
	}
	return r.Field(col), nil
}

// SetCell sets the value at (row, col). Values are not validated here; that
// happens at save time.
func (s *Store) SetCell(row int, col model.Column, value string) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %d", ErrColumnOutOfRange, int(col))
	}
	if row < 0 || row >= len(s.records) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	s.records[row].SetField(col, value)
	return nil
}

// Load replaces every record with those read from r.
// Lines without exactly six fields are skipped; see Skipped.
// On a read error the store is left unchanged.
func (s *Store) Load(r io.Reader) error {
	records, skipped, err := model.ReadRecords(r)
	if err != nil {
		return &LoadError{Err: err}
	}
	s.replace(records, skipped)
	return nil
}

// LoadFile replaces every record with the contents of path.
// A missing or unreadable file is an error, not an empty store.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		s.log.Warn("cannot open record source", zap.String("path", path), zap.Error(err))
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	records, skipped, err := model.ReadRecords(f)
	if err != nil {
		s.log.Warn("cannot read record source", zap.String("path", path), zap.Error(err))
		return &LoadError{Path: path, Err: err}
	}
	s.replace(records, skipped)

	s.log.Info("records loaded", zap.String("path", path), zap.Int("records", len(records)))
	return nil
}

func (s *Store) replace(records []model.Record, skipped int) {
	s.records = records
	s.skipped = skipped
	if skipped > 0 {
		s.log.Warn("skipped malformed lines", zap.Int("lines", skipped),
			zap.Int("fields_expected", model.FieldCount))
	}
}

// Validate checks that every ID is non-empty and unique after trimming.
// Rows are scanned in ascending order and the first offending row wins.
func (s *Store) Validate() error {
	seen := make(map[string]int, len(s.records))
	for i, r := range s.records {
		key := r.Key()
		if key == "" {
			return &EmptyIDError{Row: i}
		}
		if prev, ok := seen[key]; ok {
			return &DuplicateIDError{Row: i, Conflict: prev, ID: key}
		}
		seen[key] = i
	}
	return nil
}

// checkEncodable rejects values the line format cannot represent.
func (s *Store) checkEncodable() error {
	for i, r := range s.records {
		for _, col := range model.Columns() {
			if !model.Encodable(r.Field(col)) {
				return &UnencodableFieldError{Row: i, Column: col}
			}
		}
	}
	return nil
}

// Save validates the records and, only if they pass, writes them to w.
func (s *Store) Save(w io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.checkEncodable(); err != nil {
		return err
	}
	if err := model.WriteRecords(w, s.records); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// SaveFile validates the records and writes them to path, replacing any
// existing content. If validation fails the file is not opened.
func (s *Store) SaveFile(path string) error {
	if err := s.Validate(); err != nil {
		s.log.Debug("save rejected", zap.String("path", path), zap.Error(err))
		return err
	}
	if err := s.checkEncodable(); err != nil {
		s.log.Debug("save rejected", zap.String("path", path), zap.Error(err))
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		s.log.Warn("cannot open record destination", zap.String("path", path), zap.Error(err))
		return &SaveError{Path: path, Err: err}
	}
	if err := model.WriteRecords(f, s.records); err != nil {
		f.Close()
		return &SaveError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &SaveError{Path: path, Err: err}
	}

	s.log.Info("records saved", zap.String("path", path), zap.Int("records", len(s.records)))
	return nil
}

// InsertEmpty appends a record with all fields empty and returns its index.
func (s *Store) InsertEmpty() int {
	s.records = append(s.records, model.Record{})
	return len(s.records) - 1
}

// Append adds a copy of r at the end and returns its index.
func (s *Store) Append(r model.Record) int {
	s.records = append(s.records, r)
	return len(s.records) - 1
}

// RemoveAt removes the records at the given indices. Duplicate and
// out-of-range indices are ignored. The result is the same as removing each
// index one at a time from highest to lowest.
func (s *Store) RemoveAt(indices ...int) {
	if len(indices) == 0 {
		return
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(s.records) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := make([]model.Record, 0, len(s.records)-len(drop))
	for i, r := range s.records {
		if !drop[i] {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

// FindFirst returns the first row after startAfter whose record satisfies
// match. Pass NoIndex to scan from row 0.
func (s *Store) FindFirst(match func(model.Record) bool, startAfter int) (int, bool) {
	start := 0
	if startAfter >= 0 {
		start = startAfter + 1
	}
	for i := start; i < len(s.records); i++ {
		if match(s.records[i]) {
			return i, true
		}
	}
	return NoIndex, false
}

// SortedUnique returns the valid, distinct indices among rows in ascending
// order, given a table of n rows.
func SortedUnique(rows []int, n int) []int {
	seen := make(map[int]bool, len(rows))
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if r < 0 || r >= n || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
