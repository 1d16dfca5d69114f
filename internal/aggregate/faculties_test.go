package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

func TestFaculties(t *testing.T) {
	idx := program.NewIndex([]model.ProgramRow{
		{PID: "CSE", FacultyShortName: "FSIT"},
		{PID: "SWE", FacultyShortName: "FSIT"},
		{PID: "BBA", FacultyShortName: "FBE"},
	})

	got := Faculties([]model.SectionRow{
		section("cse", "A", "30", "20"),
		section("CSE", "B", "30", "10"),
		section("S-W-E", "C", "40", "5"),
		section("BBA", "D", "50", "50"),
		section("XYZ", "E", "10", "1"),
	}, idx)

	require.Len(t, got, 3)
	assert.Equal(t, "FBE", got[0].Faculty)
	assert.Equal(t, "FSIT", got[1].Faculty)
	assert.Equal(t, 2, got[1].Programs)
	assert.Equal(t, 3, got[1].Sections)
	assert.Equal(t, 35, got[1].Students)
	assert.Equal(t, 100, got[1].Capacity)
	assert.Equal(t, model.OtherFaculty, got[2].Faculty, "unmatched PIDs go last")
	assert.Equal(t, 1, got[2].Sections)
}
