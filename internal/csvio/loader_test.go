package csvio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeSections_KnownAndExtraColumns(t *testing.T) {
	table := [][]string{
		{" Semester ", "PID", "Course Code", "Student", "Capacity", "Teacher ID", "Remarks"},
		{"Fall 2024", "CSE", "CSE101", "35", "40", "T1", "lab heavy"},
		{"", "", "", "", "", "", ""},
		{"Fall 2024", "CSE", "CSE102", "20"},
	}

	rows, err := DecodeSections(table)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Fall 2024", rows[0].Semester)
	assert.Equal(t, "CSE101", rows[0].CourseCode)
	assert.Equal(t, "40", rows[0].Capacity)
	assert.Equal(t, "lab heavy", rows[0].Field("Remarks"))
	assert.Equal(t, "CSE102", rows[1].CourseCode)
	assert.Empty(t, rows[1].Capacity)
	assert.Nil(t, rows[1].Extra)
}

func TestDecodeSections_EmptyTable(t *testing.T) {
	rows, err := DecodeSections(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = DecodeSections([][]string{{"Semester", "PID"}})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeRegistered_Sparse(t *testing.T) {
	table := [][]string{
		{"Fall 2024", "Spring 2025"},
		{"S-1", ""},
		{"", ""},
		{"", " s2 "},
	}

	rows := DecodeRegistered(table)

	require.Len(t, rows, 2)
	assert.Equal(t, "S-1", rows[0]["Fall 2024"])
	_, ok := rows[0]["Spring 2025"]
	assert.False(t, ok)
	assert.Equal(t, "s2", rows[1]["Spring 2025"])
}

func TestLoader_CSV(t *testing.T) {
	dir := t.TempDir()
	src := Source{
		Format:    FormatCSV,
		Delimiter: ';',
		Files: Tables{
			Sections:   writeFile(t, dir, "sections.csv", "Semester;PID;Course Code;Student;Capacity\nFall 2024;CSE;CSE101;30;40\n"),
			Programs:   writeFile(t, dir, "programs.csv", "PID;Faculty Short Name\nCSE;FSIT\n"),
			Classrooms: writeFile(t, dir, "rooms.csv", "Room;Room Type;Capacity\n101;Theory;40\n"),
			Students:   writeFile(t, dir, "students.csv", "Student ID;PID;Semester\nS1;CSE;Fall 2024\nS2;CSE;Spring 2024\n"),
			Registered: writeFile(t, dir, "registered.csv", "Fall 2024;Spring 2025\nS1;\n"),
		},
	}

	snap, report, err := NewLoader(src, zap.NewNop()).LoadWithReport(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Sections, 1)
	assert.Equal(t, "CSE101", snap.Sections[0].CourseCode)
	require.Len(t, snap.Programs, 1)
	assert.Equal(t, "FSIT", snap.Programs[0].FacultyShortName)
	require.Len(t, snap.Classrooms, 1)
	assert.Len(t, snap.Students["Fall 2024"], 1)
	assert.Len(t, snap.Students["Spring 2024"], 1)
	require.Len(t, snap.Registered, 1)
	assert.Equal(t, 2, report.Rows[TableStudents])
	assert.Empty(t, report.Failures)
	assert.Contains(t, report.String(), "Loaded 1 rows from sections.")
}

func TestLoader_SkipsBlankLocations(t *testing.T) {
	dir := t.TempDir()
	src := Source{Files: Tables{Sections: writeFile(t, dir, "s.csv", "Semester,PID\nFall 2024,CSE\n")}}

	snap, err := NewLoader(src, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Sections, 1)
	assert.Empty(t, snap.Programs)
}

func TestLoader_MissingFilesAreJoined(t *testing.T) {
	dir := t.TempDir()
	src := Source{
		Format: FormatCSV,
		Files: Tables{
			Sections: filepath.Join(dir, "missing-sections.csv"),
			Programs: filepath.Join(dir, "missing-programs.csv"),
		},
	}

	snap, report, err := NewLoader(src, zap.NewNop()).LoadWithReport(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Len(t, report.Failures, 2)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing-programs.csv")
}

func TestLoader_UnsupportedFormat(t *testing.T) {
	_, err := NewLoader(Source{Format: "ods"}, zap.NewNop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoader_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	src := Source{Files: Tables{Sections: writeFile(t, dir, "s.csv", "Semester\nFall 2024\n")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(src, zap.NewNop()).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoader_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Semester", "PID", "Course Code", "Course Type"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Fall 2024", "EEE", "EEE201", "Lab"}))
	_, err := f.NewSheet("Rooms")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Rooms", "A1", &[]interface{}{"Room", "Slot Per Room"}))
	require.NoError(t, f.SetSheetRow("Rooms", "A2", &[]interface{}{"L1", 4}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src := Source{
		Format:   FormatXLSX,
		Workbook: path,
		Sheets:   Tables{Sections: "Sheet1", Classrooms: "Rooms"},
	}
	snap, err := NewLoader(src, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Sections, 1)
	assert.Equal(t, "EEE201", snap.Sections[0].CourseCode)
	assert.Equal(t, "Lab", snap.Sections[0].CourseType)
	require.Len(t, snap.Classrooms, 1)
	assert.Equal(t, "4", snap.Classrooms[0].SlotPerRoom)
}

func TestLoader_WorkbookMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src := Source{Format: FormatXLSX, Workbook: path, Sheets: Tables{Sections: "Nope"}}
	_, report, err := NewLoader(src, zap.NewNop()).LoadWithReport(context.Background())
	require.Error(t, err)
	assert.Len(t, report.Failures, 1)
}

func TestSourceFromConfig(t *testing.T) {
	src := SourceFromConfig(config.DataConfig{
		Format:    FormatXLSX,
		Delimiter: ";",
		Sections:  "sections.csv",
		Workbook:  "data.xlsx",
		Sheets:    config.SheetsConfig{Sections: "Offered", Registered: "Reg"},
	})

	assert.Equal(t, FormatXLSX, src.Format)
	assert.Equal(t, ';', src.Delimiter)
	assert.Equal(t, "sections.csv", src.Files.Sections)
	assert.Equal(t, "data.xlsx", src.Workbook)
	assert.Equal(t, "Offered", src.Sheets.Sections)
	assert.Equal(t, "Reg", src.Sheets.Registered)
	assert.Empty(t, src.Sheets.Students)
}
