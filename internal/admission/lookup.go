// Package admission cross-references admitted students with the semesters
// they registered in.
package admission

import (
	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/internal/semester"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// RegistrationLookup maps a normalized student ID to the normalized labels
// of the semesters the student registered in.
type RegistrationLookup map[string]map[string]bool

// BuildRegistrationLookup inverts the registration sheet. Each row holds,
// per semester column, the ID of a student registered in that semester.
func BuildRegistrationLookup(rows []model.RegisteredRow) RegistrationLookup {
	lookup := make(RegistrationLookup)
	for _, row := range rows {
		for label, id := range row {
			lookup.Add(id, label)
		}
	}
	return lookup
}

// Add records that student id registered in semester.
func (l RegistrationLookup) Add(id, semesterLabel string) {
	sid, sem := ident.Normalize(id), ident.Normalize(semesterLabel)
	if sid == "" || sem == "" {
		return
	}
	set, ok := l[sid]
	if !ok {
		set = make(map[string]bool)
		l[sid] = set
	}
	set[sem] = true
}

// Registered reports whether student id registered in semester.
func (l RegistrationLookup) Registered(id, semesterLabel string) bool {
	return l[ident.Normalize(id)][ident.Normalize(semesterLabel)]
}

// RegistrationSemesters lists the semester columns of the registration
// sheet that hold at least one student, latest first.
func RegistrationSemesters(rows []model.RegisteredRow) []string {
	var labels []string
	for _, row := range rows {
		for label, id := range row {
			if !model.Blank(id) {
				labels = append(labels, label)
			}
		}
	}
	return semester.Distinct(labels)
}
