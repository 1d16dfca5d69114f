// Package aggregate rolls section rows up into course, teacher and faculty
// summaries. Every function is a pure function of its inputs.
package aggregate

import (
	"math"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Courses groups sections into one summary per course offering. Every
// section counts its capacity plus capacityBonus. Summaries come out in the
// order their first section was seen.
func Courses(sections []model.SectionRow, capacityBonus int) []model.CourseSummary {
	index := make(map[string]int)
	out := make([]model.CourseSummary, 0)

	for _, s := range sections {
		key := model.CourseKey(s.Semester, s.PID, s.CourseCode, s.CourseTitle, s.Credit)
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, model.CourseSummary{
				Semester:    s.Semester,
				PID:         s.PID,
				CourseCode:  s.CourseCode,
				CourseTitle: s.CourseTitle,
				Credit:      s.Credit,
				CourseType:  s.CourseType,
				Capacity:    s.Capacity,
				WeeklyClass: s.WeeklyClass,
			})
		}
		c := &out[i]
		// first non-empty value wins
		backfill(&c.CourseType, s.CourseType)
		backfill(&c.Capacity, s.Capacity)
		backfill(&c.WeeklyClass, s.WeeklyClass)

		c.TotalCapacity += model.ParseInt(s.Capacity) + capacityBonus
		c.TotalStudents += model.ParseInt(s.Student)
		c.TotalSections++
	}

	for i := range out {
		c := &out[i]
		c.TotalVacancy = c.TotalCapacity - c.TotalStudents
		c.AvgCapacity = roundHalfUp(float64(c.TotalCapacity) / float64(c.TotalSections))
		if c.TotalVacancy > 0 && c.AvgCapacity > 0 {
			c.ExtraSections = c.TotalVacancy / c.AvgCapacity
		}
	}
	return out
}

func backfill(dst *string, v string) {
	if model.Blank(*dst) && !model.Blank(v) {
		*dst = v
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// BySemester keeps the sections of one semester. A blank semester keeps
// everything.
func BySemester(sections []model.SectionRow, semester string) []model.SectionRow {
	if model.Blank(semester) {
		return sections
	}
	out := make([]model.SectionRow, 0, len(sections))
	for _, s := range sections {
		if sameLabel(s.Semester, semester) {
			out = append(out, s)
		}
	}
	return out
}
