package aggregate

import (
	"strings"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Teachers sums the load of every assigned teacher. Sections without a
// teacher or marked TBA are skipped. Teacher IDs are matched exactly.
func Teachers(sections []model.SectionRow) []model.TeacherSummary {
	index := make(map[string]int)
	out := make([]model.TeacherSummary, 0)

	for _, s := range sections {
		if s.Unassigned() {
			continue
		}
		i, seen := index[s.TeacherID]
		if !seen {
			i = len(out)
			index[s.TeacherID] = i
			out = append(out, model.TeacherSummary{
				TeacherID:    s.TeacherID,
				EmployeeName: s.EmployeeName,
				Designation:  s.Designation,
				Email:        s.Email,
				Mobile:       s.Mobile,
			})
		}
		t := &out[i]
		t.CreditLoad += model.ParseFloat(s.Credit)
		t.StudentCount += model.ParseInt(s.Student)
		t.TotalSections++
		t.Sections = append(t.Sections, s)
	}
	return out
}

// Unassigned lists the sections nobody teaches yet.
func Unassigned(sections []model.SectionRow) []model.SectionRow {
	out := make([]model.SectionRow, 0)
	for _, s := range sections {
		if s.Unassigned() {
			out = append(out, s)
		}
	}
	return out
}

func sameLabel(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
