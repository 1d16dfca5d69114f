package admission

import (
	"sort"
	"strings"

	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/internal/semester"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// GroupBySemester buckets a flat student sheet by admission semester.
// Students without a semester are dropped.
func GroupBySemester(students []model.StudentRow) map[string][]model.StudentRow {
	out := make(map[string][]model.StudentRow)
	for _, s := range students {
		label := strings.TrimSpace(s.Semester)
		if label == "" {
			continue
		}
		out[label] = append(out[label], s)
	}
	return out
}

// AdmittedSemesters lists the admission semesters of the cache, latest first.
func AdmittedSemesters(cache map[string][]model.StudentRow) []string {
	labels := make([]string, 0, len(cache))
	for label := range cache {
		labels = append(labels, label)
	}
	return semester.Distinct(labels)
}

// ComputeReport counts, for each selected admission semester, how many of
// its students did not register in target. Counts are rolled up per
// semester and per normalized PID.
func ComputeReport(selected []string, cache map[string][]model.StudentRow, lookup RegistrationLookup, target string) model.AdmittedReport {
	semesters := semester.Distinct(selected)
	report := model.AdmittedReport{
		Target:        target,
		Semesters:     semesters,
		SemesterStats: make([]model.SemesterStat, 0, len(semesters)),
		ProgramStats:  make([]model.ProgramStat, 0),
	}
	programs := make(map[string]*model.ProgramStat)

	for _, label := range semesters {
		stat := model.SemesterStat{Semester: label}
		for _, s := range cache[label] {
			registered := lookup.Registered(s.StudentID, target)
			stat.Total++
			if registered {
				stat.Registered++
			} else {
				stat.Unregistered++
			}

			pid := ident.Normalize(s.PID)
			p, ok := programs[pid]
			if !ok {
				p = &model.ProgramStat{PID: pid, Semesters: make(map[string]model.ProgramCell)}
				programs[pid] = p
			}
			if p.Program == "" && !model.Blank(s.Program) {
				p.Program = strings.TrimSpace(s.Program)
			}
			cell := p.Semesters[label]
			cell.Total++
			p.Total++
			if !registered {
				cell.Unregistered++
				p.Unregistered++
			}
			p.Semesters[label] = cell
		}
		report.SemesterStats = append(report.SemesterStats, stat)
	}

	for _, p := range programs {
		report.ProgramStats = append(report.ProgramStats, *p)
	}
	sort.Slice(report.ProgramStats, func(i, j int) bool {
		return report.ProgramStats[i].PID < report.ProgramStats[j].PID
	})
	return report
}

// MergeDirectory flattens the selected admission semesters into one student
// directory, latest semester first. A student ID seen again in an older
// semester is dropped.
func MergeDirectory(selected []string, cache map[string][]model.StudentRow, lookup RegistrationLookup, target string) []model.DirectoryEntry {
	seen := make(map[string]bool)
	out := make([]model.DirectoryEntry, 0)
	for _, label := range semester.Distinct(selected) {
		for _, s := range cache[label] {
			id := ident.Normalize(s.StudentID)
			if id != "" {
				if seen[id] {
					continue
				}
				seen[id] = true
			}
			out = append(out, model.DirectoryEntry{
				StudentRow: s,
				Registered: lookup.Registered(s.StudentID, target),
			})
		}
	}
	return out
}
