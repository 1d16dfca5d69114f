package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

func TestIndex_LookupNormalizesBothSides(t *testing.T) {
	idx := NewIndex([]model.ProgramRow{
		{PID: "CSE-15", FacultyShortName: "FSIT"},
		{PID: "cse15", FacultyShortName: "DUPLICATE"},
		{PID: "", FacultyShortName: "EMPTY"},
	})
	require.Len(t, idx, 1)

	p, ok := idx.Lookup(" Cse 15 ")
	require.True(t, ok)
	assert.Equal(t, "FSIT", p.FacultyShortName)

	_, ok = idx.Lookup("")
	assert.False(t, ok)
}

func TestIndex_Faculty(t *testing.T) {
	idx := NewIndex([]model.ProgramRow{
		{PID: "A", FacultyFullName: "Faculty of Engineering"},
		{PID: "B"},
	})
	assert.Equal(t, "Faculty of Engineering", idx.Faculty("a"))
	assert.Equal(t, model.OtherFaculty, idx.Faculty("B"))
	assert.Equal(t, model.OtherFaculty, idx.Faculty("missing"))
}
