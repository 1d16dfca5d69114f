package csvio

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

// tableReader feeds an in-memory table to gocsv.
type tableReader struct {
	rows [][]string
	pos  int
}

func (t *tableReader) Read() ([]string, error) {
	if t.pos >= len(t.rows) {
		return nil, io.EOF
	}
	row := t.rows[t.pos]
	t.pos++
	return row, nil
}

func (t *tableReader) ReadAll() ([][]string, error) {
	rest := t.rows[t.pos:]
	t.pos = len(t.rows)
	return rest, nil
}

// prepare trims the header cells and drops rows without any content.
func prepare(table [][]string) (header []string, body [][]string) {
	if len(table) == 0 {
		return nil, nil
	}
	header = make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	for _, row := range table[1:] {
		for _, cell := range row {
			if !model.Blank(cell) {
				body = append(body, row)
				break
			}
		}
	}
	return header, body
}

// decode unmarshals the known columns with gocsv and collects every other
// column into the row's extension map.
func decode[T model.Record](table [][]string, setExtra func(*T, map[string]string)) ([]T, error) {
	header, body := prepare(table)
	if len(header) == 0 {
		return nil, nil
	}

	rows := make([]T, 0, len(body))
	in := &tableReader{rows: append([][]string{header}, body...)}
	if err := gocsv.UnmarshalCSV(in, &rows); err != nil {
		return nil, err
	}

	var zero T
	known := zero.Values()
	for i, cells := range body {
		var extra map[string]string
		for j, name := range header {
			if name == "" || j >= len(cells) {
				continue
			}
			if _, ok := known[name]; ok {
				continue
			}
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[name] = cells[j]
		}
		if extra != nil {
			setExtra(&rows[i], extra)
		}
	}
	return rows, nil
}

// DecodeSections decodes a section table whose first row is the header.
func DecodeSections(table [][]string) ([]model.SectionRow, error) {
	return decode(table, func(r *model.SectionRow, extra map[string]string) { r.Extra = extra })
}

func DecodePrograms(table [][]string) ([]model.ProgramRow, error) {
	return decode(table, func(r *model.ProgramRow, extra map[string]string) { r.Extra = extra })
}

func DecodeClassrooms(table [][]string) ([]model.ClassroomRow, error) {
	return decode(table, func(r *model.ClassroomRow, extra map[string]string) { r.Extra = extra })
}

func DecodeStudents(table [][]string) ([]model.StudentRow, error) {
	return decode(table, func(r *model.StudentRow, extra map[string]string) { r.Extra = extra })
}

// DecodeRegistered reads the registration sheet as sparse rows: only
// non-blank cells are kept and empty rows are dropped.
func DecodeRegistered(table [][]string) []model.RegisteredRow {
	header, body := prepare(table)
	var rows []model.RegisteredRow
	for _, cells := range body {
		row := make(model.RegisteredRow)
		for j, name := range header {
			if name == "" || j >= len(cells) || model.Blank(cells[j]) {
				continue
			}
			row[name] = strings.TrimSpace(cells[j])
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
