// Package csvio reads dashboard snapshots from CSV files or an XLSX workbook
// and writes summaries back out as CSV.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/internal/admission"
	"github.com/rhyrak/go-dashboard/internal/config"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Supported snapshot formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Table names used in load reports.
const (
	TableSections   = "sections"
	TablePrograms   = "programs"
	TableClassrooms = "classrooms"
	TableStudents   = "students"
	TableRegistered = "registered"
)

// ErrUnsupportedFormat is returned for a source format other than csv or xlsx.
var ErrUnsupportedFormat = errors.New("unsupported data format")

// Tables names the location of each table: a file path for CSV sources, a
// sheet name for workbooks. Blank locations are skipped.
type Tables struct {
	Sections   string
	Programs   string
	Classrooms string
	Students   string
	Registered string
}

// Source describes where a snapshot is read from.
type Source struct {
	Format    string
	Delimiter rune
	Files     Tables
	Workbook  string
	Sheets    Tables
}

// SourceFromConfig maps the data section of the configuration to a Source.
func SourceFromConfig(cfg config.DataConfig) Source {
	return Source{
		Format:    cfg.Format,
		Delimiter: cfg.DelimiterRune(),
		Files: Tables{
			Sections:   cfg.Sections,
			Programs:   cfg.Programs,
			Classrooms: cfg.Classrooms,
			Students:   cfg.Students,
			Registered: cfg.Registered,
		},
		Workbook: cfg.Workbook,
		Sheets: Tables{
			Sections:   cfg.Sheets.Sections,
			Programs:   cfg.Sheets.Programs,
			Classrooms: cfg.Sheets.Classrooms,
			Students:   cfg.Sheets.Students,
			Registered: cfg.Sheets.Registered,
		},
	}
}

// LoadReport records what a load read and what went wrong.
type LoadReport struct {
	Rows     map[string]int
	Failures []string
}

func (r LoadReport) String() string {
	var b strings.Builder
	for _, name := range []string{TableSections, TablePrograms, TableClassrooms, TableStudents, TableRegistered} {
		if n, ok := r.Rows[name]; ok {
			fmt.Fprintf(&b, "Loaded %d rows from %s.\n", n, name)
		}
	}
	for _, f := range r.Failures {
		b.WriteString(f + "\n")
	}
	return b.String()
}

// Loader reads snapshots from a Source.
type Loader struct {
	src    Source
	logger *zap.Logger
}

// NewLoader reads from src; a zero Delimiter means a comma.
func NewLoader(src Source, logger *zap.Logger) *Loader {
	if src.Delimiter == 0 {
		src.Delimiter = ','
	}
	return &Loader{src: src, logger: logger}
}

// Load reads a fresh snapshot.
func (l *Loader) Load(ctx context.Context) (*model.Snapshot, error) {
	snap, report, err := l.LoadWithReport(ctx)
	if err != nil {
		l.logger.Error("snapshot load failed", zap.Strings("failures", report.Failures), zap.Error(err))
		return nil, err
	}
	l.logger.Info("snapshot loaded",
		zap.Int(TableSections, report.Rows[TableSections]),
		zap.Int(TablePrograms, report.Rows[TablePrograms]),
		zap.Int(TableClassrooms, report.Rows[TableClassrooms]),
		zap.Int(TableStudents, report.Rows[TableStudents]),
		zap.Int(TableRegistered, report.Rows[TableRegistered]),
	)
	return snap, nil
}

// LoadWithReport reads every configured table. Failures do not stop the
// load; they are collected in the report and joined into the returned
// error, in which case the snapshot is nil.
func (l *Loader) LoadWithReport(ctx context.Context) (*model.Snapshot, LoadReport, error) {
	report := LoadReport{Rows: make(map[string]int)}

	read, locations, closeFn, err := l.open()
	if err != nil {
		report.Failures = append(report.Failures, err.Error())
		return nil, report, err
	}
	defer closeFn()

	var errs []error
	fail := func(table, location string, err error) {
		report.Failures = append(report.Failures, fmt.Sprintf("Failed to load %s from %s: %v", table, location, err))
		errs = append(errs, fmt.Errorf("load %s from %s: %w", table, location, err))
	}

	snap := &model.Snapshot{Students: make(map[string][]model.StudentRow)}
	steps := []struct {
		table    string
		location string
		apply    func([][]string) (int, error)
	}{
		{TableSections, locations.Sections, func(t [][]string) (int, error) {
			rows, err := DecodeSections(t)
			snap.Sections = rows
			return len(rows), err
		}},
		{TablePrograms, locations.Programs, func(t [][]string) (int, error) {
			rows, err := DecodePrograms(t)
			snap.Programs = rows
			return len(rows), err
		}},
		{TableClassrooms, locations.Classrooms, func(t [][]string) (int, error) {
			rows, err := DecodeClassrooms(t)
			snap.Classrooms = rows
			return len(rows), err
		}},
		{TableStudents, locations.Students, func(t [][]string) (int, error) {
			rows, err := DecodeStudents(t)
			snap.Students = admission.GroupBySemester(rows)
			return len(rows), err
		}},
		{TableRegistered, locations.Registered, func(t [][]string) (int, error) {
			rows := DecodeRegistered(t)
			snap.Registered = rows
			return len(rows), nil
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		location := strings.TrimSpace(step.location)
		if location == "" {
			continue
		}
		table, err := read(location)
		if err != nil {
			fail(step.table, location, err)
			continue
		}
		n, err := step.apply(table)
		if err != nil {
			fail(step.table, location, err)
			continue
		}
		report.Rows[step.table] = n
	}

	if len(errs) > 0 {
		return nil, report, errors.Join(errs...)
	}
	return snap, report, nil
}

func (l *Loader) open() (func(string) ([][]string, error), Tables, func(), error) {
	switch strings.ToLower(strings.TrimSpace(l.src.Format)) {
	case FormatCSV, "":
		read := func(path string) ([][]string, error) {
			return ReadCSVFile(path, l.src.Delimiter)
		}
		return read, l.src.Files, func() {}, nil
	case FormatXLSX:
		f, err := excelize.OpenFile(l.src.Workbook)
		if err != nil {
			return nil, Tables{}, nil, fmt.Errorf("open workbook %s: %w", l.src.Workbook, err)
		}
		closeFn := func() {
			if err := f.Close(); err != nil {
				l.logger.Warn("close workbook", zap.String("path", l.src.Workbook), zap.Error(err))
			}
		}
		read := func(sheet string) ([][]string, error) {
			return f.GetRows(sheet)
		}
		return read, l.src.Sheets, closeFn, nil
	default:
		return nil, Tables{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, l.src.Format)
	}
}

// ReadCSVFile reads a whole delimited file. Rows may have differing lengths.
func ReadCSVFile(path string, delim rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, delim)
}

// ReadCSV reads delimited rows from r.
func ReadCSV(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}
