package dashboard

import (
	"maps"
	"slices"

	"github.com/rhyrak/go-dashboard/internal/audit"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Cached views are shared between callers; everything handed out goes
// through one of these copies.

func cloneSections(rows []model.SectionRow) []model.SectionRow {
	if rows == nil {
		return nil
	}
	out := slices.Clone(rows)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

func cloneClassrooms(rows []model.ClassroomRow) []model.ClassroomRow {
	if rows == nil {
		return nil
	}
	out := slices.Clone(rows)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

func cloneTeachers(rows []model.TeacherSummary) []model.TeacherSummary {
	if rows == nil {
		return nil
	}
	out := slices.Clone(rows)
	for i := range out {
		out[i].Sections = cloneSections(out[i].Sections)
	}
	return out
}

func cloneDirectory(rows []model.DirectoryEntry) []model.DirectoryEntry {
	if rows == nil {
		return nil
	}
	out := slices.Clone(rows)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

func cloneAdmitted(r model.AdmittedReport) model.AdmittedReport {
	r.Semesters = slices.Clone(r.Semesters)
	r.SemesterStats = slices.Clone(r.SemesterStats)
	r.ProgramStats = slices.Clone(r.ProgramStats)
	for i := range r.ProgramStats {
		r.ProgramStats[i].Semesters = maps.Clone(r.ProgramStats[i].Semesters)
	}
	return r
}

func cloneAudit(r audit.Result) audit.Result {
	r.Findings = audit.Findings{
		Unassigned:        cloneSections(r.Findings.Unassigned),
		UnmatchedPrograms: slices.Clone(r.Findings.UnmatchedPrograms),
		OverEnrolled:      slices.Clone(r.Findings.OverEnrolled),
		DuplicateSections: slices.Clone(r.Findings.DuplicateSections),
	}
	return r
}
