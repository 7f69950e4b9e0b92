package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Delimiter separates fields within a stored line. It is U+FF0C FULLWIDTH
// COMMA, so values may contain ASCII commas.
const Delimiter = "，"

// ParseLine splits a stored line into a record.
// Returns false if the line does not have exactly FieldCount fields.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, Delimiter)
	if len(fields) != FieldCount {
		return Record{}, false
	}
	r, err := NewRecord(fields)
	if err != nil {
		return Record{}, false
	}
	return r, true
}

// FormatLine joins the record's fields with Delimiter. It does not append a
// newline and does not check Encodable.
func FormatLine(r Record) string {
	return strings.Join(r.Fields(), Delimiter)
}

// Encodable reports whether value can be stored without corrupting the line
// structure. Values must not contain the delimiter or a line break.
func Encodable(value string) bool {
	return !strings.Contains(value, Delimiter) && !strings.ContainsAny(value, "\r\n")
}

// ReadRecords reads one record per line from r.
// Lines with the wrong number of fields are skipped and counted.
func ReadRecords(r io.Reader) (records []Record, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		rec, ok := ParseLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read records: %w", err)
	}

	return records, skipped, nil
}

// WriteRecords writes records to w, one line each, in the given order.
func WriteRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(FormatLine(rec)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}
