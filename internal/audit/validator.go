// Package audit checks a snapshot for the data problems the dashboard
// otherwise tolerates silently.
package audit

import (
	"fmt"
	"strings"

	"github.com/rhyrak/go-dashboard/internal/aggregate"
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Findings are the rows behind failed checks.
type Findings struct {
	Unassigned        []model.SectionRow    `json:"unassigned"`
	UnmatchedPrograms []string              `json:"unmatchedPrograms"`
	OverEnrolled      []model.CourseSummary `json:"overEnrolled"`
	DuplicateSections []string              `json:"duplicateSections"`
}

// Result is the outcome of Validate.
type Result struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message"`
	Findings Findings `json:"findings"`
}

// Validate runs every check against the snapshot and returns a check list
// plus the offending rows.
func Validate(snap *model.Snapshot, capacityBonus int) Result {
	var message string
	var f Findings
	programs := program.NewIndex(snap.Programs)

	f.Unassigned = aggregate.Unassigned(snap.Sections)
	if n := len(f.Unassigned); n > 0 {
		message += fmt.Sprintf("- There are %d sections without a teacher:\n", n)
		for _, s := range f.Unassigned {
			message += fmt.Sprintf("    %s %s %s %s\n", s.Semester, s.PID, s.CourseCode, s.Section)
		}
	}

	seen := make(map[string]bool)
	note := func(pid string) {
		pid = strings.TrimSpace(pid)
		if pid == "" || seen[pid] {
			return
		}
		if _, ok := programs.Lookup(pid); !ok {
			seen[pid] = true
			f.UnmatchedPrograms = append(f.UnmatchedPrograms, pid)
		}
	}
	for _, s := range snap.Sections {
		note(s.PID)
	}
	for _, c := range snap.Classrooms {
		note(c.PID)
	}
	for _, pid := range f.UnmatchedPrograms {
		message += "- Program " + pid + " is missing from the program sheet\n"
	}

	for _, c := range aggregate.Courses(snap.Sections, capacityBonus) {
		if c.OverEnrolled() {
			f.OverEnrolled = append(f.OverEnrolled, c)
			message += fmt.Sprintf("- Course %s %s (%s) is over capacity by %d\n", c.PID, c.CourseCode, c.Semester, -c.TotalVacancy)
		}
	}

	instances := make(map[string]int)
	for _, s := range snap.Sections {
		instances[s.InstanceKey()]++
	}
	for _, s := range snap.Sections {
		key := s.InstanceKey()
		if instances[key] > 1 {
			f.DuplicateSections = append(f.DuplicateSections, key)
			message += "- Section " + key + " appears multiple times\n"
			instances[key] = 0
		}
	}

	checks := []struct {
		name string
		ok   bool
	}{
		{"Teacher assignment check.", len(f.Unassigned) == 0},
		{"Program reference check.", len(f.UnmatchedPrograms) == 0},
		{"Course capacity check.", len(f.OverEnrolled) == 0},
		{"Section identity check.", len(f.DuplicateSections) == 0},
	}
	valid := true
	var header string
	for _, c := range checks {
		if c.ok {
			header += "[  OK]: " + c.name + "\n"
		} else {
			header += "[FAIL]: " + c.name + "\n"
			valid = false
		}
	}

	return Result{Valid: valid, Message: header + message, Findings: f}
}
