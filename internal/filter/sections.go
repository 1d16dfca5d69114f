package filter

import (
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Sections applies a section filter panel.
func Sections(rows []model.SectionRow, f model.SectionFilter, programs program.Index) []model.SectionRow {
	return Apply(rows,
		Search[model.SectionRow](f.Search),
		Missing[model.SectionRow](f.MissingFields),
		OneOf[model.SectionRow](model.ColSemester, f.Semesters),
		ProgramCascade[model.SectionRow](programs, Programs{
			ProgramIDs:    f.ProgramIDs,
			Faculties:     f.Faculties,
			ProgramTypes:  f.ProgramTypes,
			SemesterTypes: f.SemesterTypes,
		}),
		OneOf[model.SectionRow](model.ColCourseType, f.CourseTypes),
		OneOf[model.SectionRow](model.ColCredit, f.Credits),
		OneOf[model.SectionRow](model.ColTeacherID, f.TeacherIDs),
		OneOf[model.SectionRow](model.ColCapacity, f.Capacities),
		OneOf[model.SectionRow](model.ColStudent, f.StudentCounts),
		Between[model.SectionRow](model.ColStudent, f.Students),
		Between[model.SectionRow](model.ColClassTaken, f.ClassTaken),
		Between[model.SectionRow](model.ColCapacity, f.Capacity),
	)
}
