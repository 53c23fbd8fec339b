// Package export renders the registry collections as downloadable CSV and
// XLSX files.
package export

import (
	"fmt"
	"io"
	"strings"
)

type (
	// Field is one named cell. Records keep fields as ordered pairs so the
	// column order is stable across rows.
	Field struct {
		Key   string
		Value string
	}

	Record []Field
)

// CSV writes records as comma-separated values. The header comes from the
// first record; fields containing commas, quotes or newlines are quoted with
// doubled inner quotes.
func CSV(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	header := make([]string, len(records[0]))
	for i, f := range records[0] {
		header[i] = escapeCSV(f.Key)
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, ",")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := make([]string, len(rec))
		for i, f := range rec {
			row[i] = escapeCSV(f.Value)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
