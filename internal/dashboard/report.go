package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

// ErrUnknownReport is returned by Generate for a kind it does not know.
var ErrUnknownReport = errors.New("unknown report kind")

// ReportParams is the union of every view's parameters. Each kind reads the
// fields it understands.
type ReportParams struct {
	Semester            string                `json:"semester,omitempty"`
	CapacityBonus       *int                  `json:"capacityBonus,omitempty"`
	ProgramID           string                `json:"programId,omitempty"`
	LowStudentThreshold *int                  `json:"lowStudentThreshold,omitempty"`
	Admitted            AdmittedQuery         `json:"admitted"`
	Sections            model.SectionFilter   `json:"sections"`
	Classrooms          model.ClassroomFilter `json:"classrooms"`
}

var generators = map[string]func(*Service, ReportParams) any{
	"semesters": func(s *Service, _ ReportParams) any { return s.Semesters() },
	"courses": func(s *Service, p ReportParams) any {
		return s.Courses(CourseQuery{Semester: p.Semester, CapacityBonus: p.CapacityBonus})
	},
	"teachers":   func(s *Service, p ReportParams) any { return s.Teachers(p.Semester) },
	"unassigned": func(s *Service, p ReportParams) any { return s.Unassigned(p.Semester) },
	"faculties":  func(s *Service, p ReportParams) any { return s.Faculties(p.Semester) },
	"sections":   func(s *Service, p ReportParams) any { return s.Sections(p.Sections) },
	"classrooms": func(s *Service, p ReportParams) any { return s.Classrooms(p.Classrooms) },
	"admitted":   func(s *Service, p ReportParams) any { return s.Admitted(p.Admitted) },
	"directory":  func(s *Service, p ReportParams) any { return s.Directory(p.Admitted) },
	"resources": func(s *Service, p ReportParams) any {
		return s.Resources(ResourceQuery{Semester: p.Semester, ProgramID: p.ProgramID, LowStudentThreshold: p.LowStudentThreshold})
	},
	"audit": func(s *Service, _ ReportParams) any { return s.Audit() },
}

// ReportKinds lists the kinds Generate accepts, sorted.
func ReportKinds() []string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Generate renders the view named kind.
func (s *Service) Generate(kind string, params ReportParams) (any, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
	}
	return gen(s, params), nil
}

// GenerateJSON is Generate with params given as raw JSON.
func (s *Service) GenerateJSON(kind string, raw json.RawMessage) (any, error) {
	var params ReportParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("decode %s params: %w", kind, err)
		}
	}
	return s.Generate(kind, params)
}
