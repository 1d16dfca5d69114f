package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

func section(pid, code, capacity, student string) model.SectionRow {
	return model.SectionRow{
		Semester:    "Spring 2025",
		PID:         pid,
		CourseCode:  code,
		CourseTitle: code + " title",
		Credit:      "3",
		Capacity:    capacity,
		Student:     student,
	}
}

func TestCourses_TwoSectionsNoExtra(t *testing.T) {
	got := Courses([]model.SectionRow{
		section("A", "CSE101", "30", "25"),
		section("A", "CSE101", "30", "20"),
	}, 0)

	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, 2, c.TotalSections)
	assert.Equal(t, 60, c.TotalCapacity)
	assert.Equal(t, 45, c.TotalStudents)
	assert.Equal(t, 15, c.TotalVacancy)
	assert.Equal(t, 30, c.AvgCapacity)
	assert.Equal(t, 0, c.ExtraSections, "15 seats do not fill a 30-seat section")
}

func TestCourses_ExtraSection(t *testing.T) {
	got := Courses([]model.SectionRow{
		section("A", "CSE101", "60", "25"),
		section("A", "CSE101", "30", "20"),
	}, 0)

	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, 90, c.TotalCapacity)
	assert.Equal(t, 45, c.TotalVacancy)
	assert.Equal(t, 45, c.AvgCapacity)
	assert.Equal(t, 1, c.ExtraSections)
}

func TestCourses_CapacityBonusPerSection(t *testing.T) {
	got := Courses([]model.SectionRow{
		section("A", "CSE101", "30", "30"),
		section("A", "CSE101", "30", "30"),
	}, 5)

	require.Len(t, got, 1)
	assert.Equal(t, 70, got[0].TotalCapacity)
	assert.Equal(t, 10, got[0].TotalVacancy)
}

func TestCourses_OverEnrolled(t *testing.T) {
	got := Courses([]model.SectionRow{section("A", "CSE101", "30", "41")}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, -11, got[0].TotalVacancy)
	assert.Equal(t, 0, got[0].ExtraSections)
	assert.True(t, got[0].OverEnrolled())
}

func TestCourses_MalformedNumbersAreZero(t *testing.T) {
	got := Courses([]model.SectionRow{section("A", "CSE101", "n/a", "")}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].TotalCapacity)
	assert.Equal(t, 0, got[0].TotalStudents)
	assert.Equal(t, 0, got[0].AvgCapacity)
	assert.Equal(t, 0, got[0].ExtraSections)
}

func TestCourses_GroupingKeyAndOrder(t *testing.T) {
	other := section("A", "CSE101", "30", "10")
	other.Credit = "1.5"

	got := Courses([]model.SectionRow{
		section("B", "MAT101", "40", "10"),
		section("A", "CSE101", "30", "10"),
		other,
		section("B", "MAT101", "40", "10"),
	}, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "MAT101", got[0].CourseCode, "first-seen order")
	assert.Equal(t, 2, got[0].TotalSections)
	assert.Equal(t, "3", got[1].Credit)
	assert.Equal(t, "1.5", got[2].Credit, "credit is part of the key")
}

func TestCourses_FirstNonEmptyWins(t *testing.T) {
	first := section("A", "CSE101", "", "10")
	second := section("A", "CSE101", "35", "10")
	second.CourseType = "Lab"
	second.WeeklyClass = "3"
	third := section("A", "CSE101", "40", "10")
	third.CourseType = "Theory"

	got := Courses([]model.SectionRow{first, second, third}, 0)

	require.Len(t, got, 1)
	assert.Equal(t, "35", got[0].Capacity)
	assert.Equal(t, "Lab", got[0].CourseType)
	assert.Equal(t, "3", got[0].WeeklyClass)
}

func TestCourses_StudentTotalsPreserved(t *testing.T) {
	rows := []model.SectionRow{
		section("A", "CSE101", "30", "25"),
		section("A", "CSE102", "30", "7"),
		section("B", "CSE101", "30", "x"),
		section("B", "CSE101", "30", "12"),
	}
	want := 0
	for _, r := range rows {
		want += model.ParseInt(r.Student)
	}

	got := 0
	for _, c := range Courses(rows, 3) {
		got += c.TotalStudents
		assert.Equal(t, c.TotalCapacity-c.TotalStudents, c.TotalVacancy)
		if c.TotalVacancy <= 0 {
			assert.Zero(t, c.ExtraSections)
		}
	}
	assert.Equal(t, want, got)
}

func TestCourses_Empty(t *testing.T) {
	got := Courses(nil, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBySemester(t *testing.T) {
	a := section("A", "X", "1", "1")
	b := section("A", "X", "1", "1")
	b.Semester = "Fall 2024"

	assert.Len(t, BySemester([]model.SectionRow{a, b}, " fall 2024"), 1)
	assert.Len(t, BySemester([]model.SectionRow{a, b}, ""), 2)
}
