// Package dashboard serves every dashboard view from the current snapshot.
// Views are memoized on their inputs, and a reload swaps the snapshot
// without disturbing readers.
package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/internal/admission"
	"github.com/rhyrak/go-dashboard/internal/aggregate"
	"github.com/rhyrak/go-dashboard/internal/audit"
	"github.com/rhyrak/go-dashboard/internal/filter"
	"github.com/rhyrak/go-dashboard/internal/memo"
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/internal/resource"
	"github.com/rhyrak/go-dashboard/internal/semester"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Options are the defaults applied when a query leaves a setting out.
type Options struct {
	CapacityBonus       int
	LowStudentThreshold int
	LatestAdmitted      int
}

// Loader produces a fresh snapshot.
type Loader interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// state is one loaded snapshot plus the joins derived from it.
type state struct {
	generation uint64
	snap       *model.Snapshot
	programs   program.Index
	lookup     admission.RegistrationLookup
}

func newState(generation uint64, snap *model.Snapshot) *state {
	if snap == nil {
		snap = &model.Snapshot{}
	}
	return &state{
		generation: generation,
		snap:       snap,
		programs:   program.NewIndex(snap.Programs),
		lookup:     admission.BuildRegistrationLookup(snap.Registered),
	}
}

// key pairs the snapshot generation with a view's parameters. The state
// itself is carried along but not hashed.
type key[P any] struct {
	Generation uint64
	Params     P
	State      *state `hash:"ignore"`
}

// Service answers every dashboard view from the current snapshot. It is
// safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	cur    *state
	opts   Options
	logger *zap.Logger

	semesters  *memo.Cache[key[struct{}], []string]
	courses    *memo.Cache[key[CourseQuery], []model.CourseSummary]
	teachers   *memo.Cache[key[string], []model.TeacherSummary]
	unassigned *memo.Cache[key[string], []model.SectionRow]
	faculties  *memo.Cache[key[string], []model.FacultySummary]
	sections   *memo.Cache[key[model.SectionFilter], []model.SectionRow]
	classrooms *memo.Cache[key[model.ClassroomFilter], []model.ClassroomRow]
	admitted   *memo.Cache[key[resolvedAdmitted], model.AdmittedReport]
	directory  *memo.Cache[key[resolvedAdmitted], []model.DirectoryEntry]
	resources  *memo.Cache[key[ResourceQuery], model.ResourceReport]
	audit      *memo.Cache[key[int], audit.Result]
}

// NewService serves snap with opts as the query defaults.
func NewService(snap *model.Snapshot, opts Options, logger *zap.Logger) *Service {
	s := &Service{cur: newState(1, snap), opts: opts, logger: logger}

	s.semesters = memo.New(func(k key[struct{}]) []string {
		labels := make([]string, 0, len(k.State.snap.Sections))
		for _, row := range k.State.snap.Sections {
			labels = append(labels, row.Semester)
		}
		return semester.Distinct(labels)
	})
	s.courses = memo.New(func(k key[CourseQuery]) []model.CourseSummary {
		rows := aggregate.BySemester(k.State.snap.Sections, k.Params.Semester)
		return aggregate.Courses(rows, *k.Params.CapacityBonus)
	})
	s.teachers = memo.New(func(k key[string]) []model.TeacherSummary {
		return aggregate.Teachers(aggregate.BySemester(k.State.snap.Sections, k.Params))
	})
	s.unassigned = memo.New(func(k key[string]) []model.SectionRow {
		return aggregate.Unassigned(aggregate.BySemester(k.State.snap.Sections, k.Params))
	})
	s.faculties = memo.New(func(k key[string]) []model.FacultySummary {
		return aggregate.Faculties(aggregate.BySemester(k.State.snap.Sections, k.Params), k.State.programs)
	})
	s.sections = memo.New(func(k key[model.SectionFilter]) []model.SectionRow {
		return filter.Sections(k.State.snap.Sections, k.Params, k.State.programs)
	})
	s.classrooms = memo.New(func(k key[model.ClassroomFilter]) []model.ClassroomRow {
		return filter.Classrooms(k.State.snap.Classrooms, k.Params, k.State.programs)
	})
	s.admitted = memo.New(func(k key[resolvedAdmitted]) model.AdmittedReport {
		return admission.ComputeReport(k.Params.Semesters, k.State.snap.Students, k.State.lookup, k.Params.Target)
	})
	s.directory = memo.New(func(k key[resolvedAdmitted]) []model.DirectoryEntry {
		return admission.MergeDirectory(k.Params.Semesters, k.State.snap.Students, k.State.lookup, k.Params.Target)
	})
	s.resources = memo.New(func(k key[ResourceQuery]) model.ResourceReport {
		return resource.Compute(k.State.snap.Classrooms, k.State.snap.Sections, resource.Options{
			Semester:            k.Params.Semester,
			ProgramID:           k.Params.ProgramID,
			LowStudentThreshold: *k.Params.LowStudentThreshold,
		})
	})
	s.audit = memo.New(func(k key[int]) audit.Result {
		return audit.Validate(k.State.snap, k.Params)
	})
	return s
}

func (s *Service) current() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func keyOf[P any](st *state, params P) key[P] {
	return key[P]{Generation: st.generation, Params: params, State: st}
}

// Options returns the defaults of the service.
func (s *Service) Options() Options { return s.opts }

// Snapshot returns the snapshot currently served.
func (s *Service) Snapshot() *model.Snapshot { return s.current().snap }

// Generation counts the snapshots served so far, starting at 1.
func (s *Service) Generation() uint64 { return s.current().generation }

// Replace swaps in snap. Cached views of the old snapshot are never served
// again because their generation no longer matches.
func (s *Service) Replace(snap *model.Snapshot) {
	s.mu.Lock()
	s.cur = newState(s.cur.generation+1, snap)
	gen := s.cur.generation
	s.mu.Unlock()
	s.logger.Info("snapshot replaced", zap.Uint64("generation", gen))
}

// Reload reads a new snapshot from loader and swaps it in. On failure the
// current snapshot stays.
func (s *Service) Reload(ctx context.Context, loader Loader) error {
	snap, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload snapshot: %w", err)
	}
	s.Replace(snap)
	return nil
}

// Semesters lists the distinct section semesters, latest first.
func (s *Service) Semesters() []string {
	return slices.Clone(s.semesters.Get(keyOf(s.current(), struct{}{})))
}

// CourseQuery selects the course summary. A nil CapacityBonus uses the
// service default.
type CourseQuery struct {
	Semester      string `json:"semester" form:"semester"`
	CapacityBonus *int   `json:"capacityBonus" form:"capacityBonus"`
}

// Courses summarizes sections per course offering.
func (s *Service) Courses(q CourseQuery) []model.CourseSummary {
	bonus := s.opts.CapacityBonus
	if q.CapacityBonus != nil {
		bonus = *q.CapacityBonus
	}
	q.CapacityBonus = &bonus
	return slices.Clone(s.courses.Get(keyOf(s.current(), q)))
}

// Teachers sums the teaching load per teacher. A blank label means every
// semester.
func (s *Service) Teachers(semesterLabel string) []model.TeacherSummary {
	return cloneTeachers(s.teachers.Get(keyOf(s.current(), semesterLabel)))
}

// Unassigned lists sections nobody teaches yet.
func (s *Service) Unassigned(semesterLabel string) []model.SectionRow {
	return cloneSections(s.unassigned.Get(keyOf(s.current(), semesterLabel)))
}

// Faculties rolls sections up per faculty.
func (s *Service) Faculties(semesterLabel string) []model.FacultySummary {
	return slices.Clone(s.faculties.Get(keyOf(s.current(), semesterLabel)))
}

// Sections applies the section filter panel to the snapshot.
func (s *Service) Sections(f model.SectionFilter) []model.SectionRow {
	return cloneSections(s.sections.Get(keyOf(s.current(), f)))
}

// Classrooms applies the classroom filter panel to the snapshot.
func (s *Service) Classrooms(f model.ClassroomFilter) []model.ClassroomRow {
	return cloneClassrooms(s.classrooms.Get(keyOf(s.current(), f)))
}

// AdmittedQuery selects the admitted report. Without explicit Semesters the
// Latest admission semesters are used (service default when Latest is 0);
// without Target the latest registration semester is checked.
type AdmittedQuery struct {
	Semesters []string `json:"semesters" form:"semester"`
	Latest    int      `json:"latest" form:"latest"`
	Target    string   `json:"target" form:"target"`
}

type resolvedAdmitted struct {
	Semesters []string
	Target    string
}

func (s *Service) resolveAdmitted(st *state, q AdmittedQuery) resolvedAdmitted {
	selected := semester.Distinct(q.Semesters)
	if len(selected) == 0 {
		n := q.Latest
		if n <= 0 {
			n = s.opts.LatestAdmitted
		}
		all := admission.AdmittedSemesters(st.snap.Students)
		if n > 0 {
			selected = semester.LatestN(all, n)
		} else {
			selected = all
		}
	}
	target := q.Target
	if target == "" {
		target = semester.Latest(admission.RegistrationSemesters(st.snap.Registered))
	}
	return resolvedAdmitted{Semesters: selected, Target: target}
}

// Admitted counts admitted students who did not register in the target
// semester.
func (s *Service) Admitted(q AdmittedQuery) model.AdmittedReport {
	st := s.current()
	return cloneAdmitted(s.admitted.Get(keyOf(st, s.resolveAdmitted(st, q))))
}

// Directory merges the selected admission semesters into one student list.
func (s *Service) Directory(q AdmittedQuery) []model.DirectoryEntry {
	st := s.current()
	return cloneDirectory(s.directory.Get(keyOf(st, s.resolveAdmitted(st, q))))
}

// ResourceQuery scopes the resource analysis. A nil LowStudentThreshold
// uses the service default.
type ResourceQuery struct {
	Semester            string `json:"semester" form:"semester"`
	ProgramID           string `json:"programId" form:"programId"`
	LowStudentThreshold *int   `json:"lowStudentThreshold" form:"lowStudentThreshold"`
}

// Resources compares room slots with the slots the sections need.
func (s *Service) Resources(q ResourceQuery) model.ResourceReport {
	threshold := s.opts.LowStudentThreshold
	if q.LowStudentThreshold != nil {
		threshold = *q.LowStudentThreshold
	}
	q.LowStudentThreshold = &threshold
	return s.resources.Get(keyOf(s.current(), q))
}

// Audit runs the data checks with the default capacity bonus.
func (s *Service) Audit() audit.Result {
	return cloneAudit(s.audit.Get(keyOf(s.current(), s.opts.CapacityBonus)))
}
