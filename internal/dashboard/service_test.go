package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhyrak/go-dashboard/pkg/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Sections: []model.SectionRow{
			{Semester: "Fall 2024", PID: "CSE", CourseCode: "CSE101", Section: "A", Capacity: "40", Student: "35", TeacherID: "T1", Credit: "3"},
			{Semester: "Fall 2024", PID: "CSE", CourseCode: "CSE101", Section: "B", Capacity: "40", Student: "45", TeacherID: "TBA", Credit: "3"},
			{Semester: "Spring 2024", PID: "EEE", CourseCode: "EEE101", Section: "A", Capacity: "30", Student: "5", TeacherID: "T2", CourseType: "Lab"},
		},
		Programs: []model.ProgramRow{
			{PID: "CSE", FacultyShortName: "FSIT"},
			{PID: "EEE", FacultyShortName: "FE"},
		},
		Classrooms: []model.ClassroomRow{
			{Room: "101", RoomType: "Theory", PID: "CSE"},
			{Room: "L1", RoomType: "Lab", PID: "EEE"},
		},
		Students: map[string][]model.StudentRow{
			"Fall 2024":   {{StudentID: "S1", PID: "CSE"}, {StudentID: "S2", PID: "CSE"}},
			"Spring 2024": {{StudentID: "S3", PID: "EEE"}},
			"Fall 2023":   {{StudentID: "S4", PID: "CSE"}},
		},
		Registered: []model.RegisteredRow{
			{"Spring 2025": "S1"},
			{"Fall 2024": "S3"},
		},
	}
}

func newTestService() *Service {
	return NewService(testSnapshot(), Options{CapacityBonus: 0, LowStudentThreshold: 10, LatestAdmitted: 2}, zap.NewNop())
}

type stubLoader struct {
	snap *model.Snapshot
	err  error
}

func (l stubLoader) Load(context.Context) (*model.Snapshot, error) { return l.snap, l.err }

func TestService_Semesters(t *testing.T) {
	assert.Equal(t, []string{"Fall 2024", "Spring 2024"}, newTestService().Semesters())
}

func TestService_CoursesMemoized(t *testing.T) {
	s := newTestService()

	first := s.Courses(CourseQuery{Semester: "Fall 2024"})
	second := s.Courses(CourseQuery{Semester: "Fall 2024"})

	require.Len(t, first, 1)
	assert.Equal(t, first, second)
	assert.Equal(t, 80, first[0].TotalStudents)
	assert.Equal(t, 0, first[0].TotalVacancy)
	assert.Equal(t, 1, s.courses.Misses())

	bonus := 5
	withBonus := s.Courses(CourseQuery{Semester: "Fall 2024", CapacityBonus: &bonus})
	assert.Equal(t, 10, withBonus[0].TotalVacancy)
	assert.Equal(t, 2, s.courses.Misses())
}

func TestService_CoursesReturnsFreshSlice(t *testing.T) {
	s := newTestService()

	out := s.Courses(CourseQuery{})
	out[0].CourseCode = "changed"

	assert.Equal(t, "CSE101", s.Courses(CourseQuery{})[0].CourseCode)
}

func TestService_ReplaceRecomputes(t *testing.T) {
	s := newTestService()
	require.Len(t, s.Teachers(""), 2)

	snap := testSnapshot()
	snap.Sections = snap.Sections[:1]
	s.Replace(snap)

	assert.Equal(t, uint64(2), s.Generation())
	assert.Len(t, s.Teachers(""), 1)
	assert.Equal(t, 2, s.teachers.Misses())
}

func TestService_UnassignedAndFaculties(t *testing.T) {
	s := newTestService()

	unassigned := s.Unassigned("Fall 2024")
	require.Len(t, unassigned, 1)
	assert.Equal(t, "B", unassigned[0].Section)

	faculties := s.Faculties("")
	require.Len(t, faculties, 2)
	assert.Equal(t, "FE", faculties[0].Faculty)
	assert.Equal(t, "FSIT", faculties[1].Faculty)
	assert.Equal(t, 2, faculties[1].Sections)
}

func TestService_Filters(t *testing.T) {
	s := newTestService()

	sections := s.Sections(model.SectionFilter{Faculties: []string{"FE"}})
	require.Len(t, sections, 1)
	assert.Equal(t, "EEE101", sections[0].CourseCode)

	rooms := s.Classrooms(model.ClassroomFilter{RoomTypes: []string{"Lab"}})
	require.Len(t, rooms, 1)
	assert.Equal(t, "L1", rooms[0].Room)
}

func TestService_AdmittedDefaults(t *testing.T) {
	s := newTestService()

	report := s.Admitted(AdmittedQuery{})

	assert.Equal(t, "Spring 2025", report.Target)
	assert.Equal(t, []string{"Fall 2024", "Spring 2024"}, report.Semesters)
	require.Len(t, report.SemesterStats, 2)
	assert.Equal(t, model.SemesterStat{Semester: "Fall 2024", Total: 2, Registered: 1, Unregistered: 1}, report.SemesterStats[0])
	assert.Equal(t, model.SemesterStat{Semester: "Spring 2024", Total: 1, Registered: 0, Unregistered: 1}, report.SemesterStats[1])
}

func TestService_AdmittedExplicit(t *testing.T) {
	s := newTestService()

	report := s.Admitted(AdmittedQuery{Semesters: []string{"Spring 2024"}, Target: "Fall 2024"})
	require.Len(t, report.SemesterStats, 1)
	assert.Equal(t, 1, report.SemesterStats[0].Registered)

	dir := s.Directory(AdmittedQuery{Latest: 3})
	assert.Len(t, dir, 4)
	assert.Equal(t, "S1", dir[0].StudentID)
	assert.True(t, dir[0].Registered)
}

func TestService_Resources(t *testing.T) {
	s := newTestService()

	report := s.Resources(ResourceQuery{Semester: "Spring 2024"})
	assert.Equal(t, "Spring 2024", report.Semester)
	assert.Equal(t, 1, report.Lab.Sections)
	assert.Equal(t, 1, report.Lab.LowStudentSections)

	off := 0
	report = s.Resources(ResourceQuery{Semester: "Spring 2024", LowStudentThreshold: &off})
	assert.Zero(t, report.Lab.LowStudentSections)
}

func TestService_Audit(t *testing.T) {
	res := newTestService().Audit()
	assert.False(t, res.Valid)
	assert.Len(t, res.Findings.Unassigned, 1)
	assert.Len(t, res.Findings.OverEnrolled, 0)
}

func TestService_ResultsDoNotShareCachedState(t *testing.T) {
	s := newTestService()
	want := newTestService()

	report := s.Admitted(AdmittedQuery{})
	require.NotEmpty(t, report.ProgramStats)
	report.SemesterStats[0].Total = 999
	report.Semesters[0] = "Summer 1999"
	report.ProgramStats[0].Semesters["Fall 2024"] = model.ProgramCell{Total: 777}
	assert.Equal(t, want.Admitted(AdmittedQuery{}), s.Admitted(AdmittedQuery{}))

	res := s.Audit()
	require.NotEmpty(t, res.Findings.Unassigned)
	res.Findings.Unassigned[0].TeacherID = "changed"
	assert.Equal(t, want.Audit(), s.Audit())

	teachers := s.Teachers("")
	require.NotEmpty(t, teachers)
	require.NotEmpty(t, teachers[0].Sections)
	teachers[0].Sections[0].CourseCode = "changed"
	assert.Equal(t, want.Teachers(""), s.Teachers(""))
}

func TestService_SectionExtrasAreCopied(t *testing.T) {
	snap := testSnapshot()
	snap.Sections[0].Extra = map[string]string{"Remarks": "evening"}
	s := NewService(snap, Options{}, zap.NewNop())

	rows := s.Sections(model.SectionFilter{})
	require.NotEmpty(t, rows)
	rows[0].Extra["Remarks"] = "changed"

	assert.Equal(t, "evening", s.Sections(model.SectionFilter{})[0].Extra["Remarks"])
	assert.Equal(t, "evening", snap.Sections[0].Extra["Remarks"])
}

func TestService_Reload(t *testing.T) {
	s := newTestService()

	err := s.Reload(context.Background(), stubLoader{err: errors.New("disk on fire")})
	require.Error(t, err)
	assert.Equal(t, uint64(1), s.Generation())
	assert.Len(t, s.Snapshot().Sections, 3)

	require.NoError(t, s.Reload(context.Background(), stubLoader{snap: &model.Snapshot{}}))
	assert.Equal(t, uint64(2), s.Generation())
	assert.Empty(t, s.Semesters())
}

func TestService_Generate(t *testing.T) {
	s := newTestService()

	_, err := s.Generate("horoscope", ReportParams{})
	assert.ErrorIs(t, err, ErrUnknownReport)

	out, err := s.GenerateJSON("teachers", json.RawMessage(`{"semester":"Spring 2024"}`))
	require.NoError(t, err)
	teachers, ok := out.([]model.TeacherSummary)
	require.True(t, ok)
	require.Len(t, teachers, 1)
	assert.Equal(t, "T2", teachers[0].TeacherID)

	_, err = s.GenerateJSON("teachers", json.RawMessage(`{`))
	assert.Error(t, err)

	assert.Contains(t, ReportKinds(), "audit")
}

func TestService_ConcurrentReadsAndReplace(t *testing.T) {
	s := newTestService()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if i == 0 && j%10 == 0 {
					s.Replace(testSnapshot())
				}
				assert.Len(t, s.Courses(CourseQuery{Semester: "Fall 2024"}), 1)
				assert.Len(t, s.Semesters(), 2)
			}
		}(i)
	}
	wg.Wait()
}
