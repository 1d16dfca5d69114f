package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Export writes csv-tagged rows (a slice of structs) to w using delim.
func Export(w io.Writer, rows any, delim rune) error {
	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}

// ExportString renders rows as comma separated text.
func ExportString(rows any) (string, error) {
	out, err := gocsv.MarshalString(rows)
	if err != nil {
		return "", fmt.Errorf("export csv: %w", err)
	}
	return out, nil
}

// ExportFile replaces the file at path with the exported rows.
func ExportFile(path string, rows any, delim rune) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Export(out, rows, delim); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Columnar is a record that knows its own column order.
type Columnar interface {
	model.Record
	Columns() []string
}

// ExportRecords writes rows with every column they carry, known and extra.
// Known columns come first in sheet order, then the union of extra columns
// sorted by name.
func ExportRecords[T Columnar](w io.Writer, rows []T, delim rune) error {
	var zero T
	header := zero.Columns()
	seen := make(map[string]bool, len(header))
	for _, c := range header {
		seen[c] = true
	}
	var extra []string
	for _, r := range rows {
		for name := range r.Values() {
			if !seen[name] {
				seen[name] = true
				extra = append(extra, name)
			}
		}
	}
	sort.Strings(extra)
	header = append(header, extra...)

	cw := csv.NewWriter(w)
	if delim != 0 {
		cw.Comma = delim
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	for _, r := range rows {
		values := r.Values()
		line := make([]string, len(header))
		for i, name := range header {
			line[i] = values[name]
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	return nil
}
