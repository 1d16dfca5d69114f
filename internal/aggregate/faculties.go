package aggregate

import (
	"sort"

	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Faculties rolls sections up to the faculty of their program. Sections
// whose PID is missing from the program sheet land in model.OtherFaculty.
// Faculties are sorted by name with Other last.
func Faculties(sections []model.SectionRow, programs program.Index) []model.FacultySummary {
	byName := make(map[string]*model.FacultySummary)
	pids := make(map[string]map[string]bool)

	for _, s := range sections {
		name := programs.Faculty(s.PID)
		f, ok := byName[name]
		if !ok {
			f = &model.FacultySummary{Faculty: name}
			byName[name] = f
			pids[name] = make(map[string]bool)
		}
		if pid := ident.Normalize(s.PID); pid != "" && !pids[name][pid] {
			pids[name][pid] = true
			f.Programs++
		}
		f.Sections++
		f.Students += model.ParseInt(s.Student)
		f.Capacity += model.ParseInt(s.Capacity)
	}

	out := make([]model.FacultySummary, 0, len(byName))
	for _, f := range byName {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Faculty == model.OtherFaculty, out[j].Faculty == model.OtherFaculty
		if oi != oj {
			return oj
		}
		return out[i].Faculty < out[j].Faculty
	})
	return out
}
