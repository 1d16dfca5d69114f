package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

func TestRoomSlots(t *testing.T) {
	assert.Equal(t, 30, RoomSlots(model.ClassroomRow{SlotPerRoom: "5"}))
	assert.Equal(t, 36, RoomSlots(model.ClassroomRow{SlotPerRoom: "0", SlotDuration: "90"}))
	assert.Equal(t, 36, RoomSlots(model.ClassroomRow{}), "90 minute default")
	assert.Equal(t, 18, RoomSlots(model.ClassroomRow{SlotDuration: "180"}))
	assert.Equal(t, 42, RoomSlots(model.ClassroomRow{SlotDuration: "75 min"}))
}

func TestSectionSlots(t *testing.T) {
	assert.Equal(t, 3.0, SectionSlots(model.SectionRow{WeeklyClass: "3"}))
	assert.Equal(t, 1.5, SectionSlots(model.SectionRow{WeeklyClass: "1.5"}))
	assert.Equal(t, 2.0, SectionSlots(model.SectionRow{WeeklyClass: ""}))
	assert.Equal(t, 2.0, SectionSlots(model.SectionRow{WeeklyClass: "tbd"}))
	assert.Equal(t, 2.0, SectionSlots(model.SectionRow{WeeklyClass: "0"}))
	assert.Equal(t, 2.0, SectionSlots(model.SectionRow{WeeklyClass: "-3"}))
}

func TestActiveSemester(t *testing.T) {
	sections := []model.SectionRow{
		{Semester: "Spring 2024"},
		{Semester: "Fall 2024"},
		{Semester: "Summer 2024"},
	}
	assert.Equal(t, "Spring 2024", ActiveSemester(sections, "Spring 2024"))
	assert.Equal(t, "Fall 2024", ActiveSemester(sections, ""))
	assert.Equal(t, "Fall 2024", ActiveSemester(sections, "Winter 2030"), "unknown semesters fall back to the latest")
	assert.Equal(t, "", ActiveSemester(nil, ""))
}

func TestCompute(t *testing.T) {
	rooms := []model.ClassroomRow{
		{Room: "101", RoomType: "Theory", SlotDuration: "90"},
		{Room: "102", RoomType: "Theory", SlotPerRoom: "4", PID: "CSE"},
		{Room: "L1", RoomType: "Computer LAB", SlotDuration: "180", PID: "CSE"},
	}
	sections := []model.SectionRow{
		{Semester: "Fall 2024", PID: "CSE", CourseType: "Theory", WeeklyClass: "2", Student: "40"},
		{Semester: "Fall 2024", PID: "CSE", CourseType: "Theory", WeeklyClass: "1.5", Student: "8"},
		{Semester: "Fall 2024", PID: "EEE", CourseType: "Theory", Student: "30"},
		{Semester: "Fall 2024", PID: "CSE", CourseType: "Lab", WeeklyClass: "1", Student: "5"},
		{Semester: "Spring 2024", PID: "CSE", CourseType: "Theory", WeeklyClass: "9"},
	}

	got := Compute(rooms, sections, Options{LowStudentThreshold: 10})

	assert.Equal(t, "Fall 2024", got.Semester)
	assert.Equal(t, model.ResourceStats{
		Rooms: 2, RoomSlots: 36 + 24,
		Sections: 3, RequiredSlots: 6, Surplus: 54,
		LowStudentSections: 1, LowStudentSlots: 2,
	}, got.Theory)
	assert.Equal(t, model.ResourceStats{
		Rooms: 1, RoomSlots: 18,
		Sections: 1, RequiredSlots: 1, Surplus: 17,
		LowStudentSections: 1, LowStudentSlots: 1,
	}, got.Lab)
}

func TestCompute_ProgramScope(t *testing.T) {
	rooms := []model.ClassroomRow{
		{Room: "101", RoomType: "Theory"},
		{Room: "102", RoomType: "Theory", SlotPerRoom: "1", PID: "cse"},
	}
	sections := []model.SectionRow{
		{Semester: "Fall 2024", PID: "C-S-E", WeeklyClass: "10"},
		{Semester: "Fall 2024", PID: "EEE", WeeklyClass: "3"},
	}

	got := Compute(rooms, sections, Options{Semester: "Fall 2024", ProgramID: "CSE"})

	assert.Equal(t, 1, got.Theory.Rooms)
	assert.Equal(t, 6, got.Theory.RoomSlots)
	assert.Equal(t, 10, got.Theory.RequiredSlots)
	assert.Equal(t, -4, got.Theory.Surplus)
	assert.Zero(t, got.Theory.LowStudentSections, "threshold disabled")
}

func TestCompute_NegativeWeeklyClassCountsAsDefault(t *testing.T) {
	sections := []model.SectionRow{
		{Semester: "Fall 2024", CourseType: "Theory", WeeklyClass: "-3", Student: "30"},
		{Semester: "Fall 2024", CourseType: "Theory", WeeklyClass: "3", Student: "30"},
	}
	report := Compute(nil, sections, Options{})
	assert.Equal(t, 5, report.Theory.RequiredSlots)
}
