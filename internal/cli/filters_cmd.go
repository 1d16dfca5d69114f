package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-dashboard/internal/csvio"
	"github.com/rhyrak/go-dashboard/internal/formatter"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

func newSectionsCmd(app *App, out *printer) *cobra.Command {
	var f model.SectionFilter
	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Filter section rows",
		Long: "Filter section rows. Repeatable flags select any of their values;\n" +
			"different flags must all match. --missing keeps rows where every\n" +
			"named column is blank.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Service.Sections(f)
			writeCSV := func(w io.Writer, delim rune) error { return csvio.ExportRecords(w, rows, delim) }
			return out.print(cmd.OutOrStdout(), rows, writeCSV, func() string { return formatter.FormatSections(rows) })
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.Search, "search", "q", "", "case-insensitive text in any column")
	fl.StringSliceVar(&f.MissingFields, "missing", nil, "columns that must be blank")
	fl.StringSliceVarP(&f.Semesters, "semester", "s", nil, "semesters")
	fl.StringSliceVarP(&f.ProgramIDs, "program", "p", nil, "program IDs (overrides the faculty/type cascade)")
	fl.StringSliceVar(&f.Faculties, "faculty", nil, "faculty short or full names")
	fl.StringSliceVar(&f.ProgramTypes, "program-type", nil, "program types")
	fl.StringSliceVar(&f.SemesterTypes, "semester-type", nil, "semester types")
	fl.StringSliceVar(&f.CourseTypes, "course-type", nil, "course types")
	fl.StringSliceVar(&f.Credits, "credit", nil, "credit values")
	fl.StringSliceVar(&f.TeacherIDs, "teacher", nil, "teacher IDs")
	fl.StringSliceVar(&f.Capacities, "capacity", nil, "exact capacities")
	fl.StringSliceVar(&f.StudentCounts, "student-count", nil, "exact student counts")
	fl.StringVar(&f.Students.Min, "min-students", "", "at least this many students")
	fl.StringVar(&f.Students.Max, "max-students", "", "at most this many students")
	fl.StringVar(&f.ClassTaken.Min, "min-class-taken", "", "at least this many classes taken")
	fl.StringVar(&f.ClassTaken.Max, "max-class-taken", "", "at most this many classes taken")
	fl.StringVar(&f.Capacity.Min, "min-capacity", "", "capacity at least")
	fl.StringVar(&f.Capacity.Max, "max-capacity", "", "capacity at most")
	return cmd
}

func newClassroomsCmd(app *App, out *printer) *cobra.Command {
	var f model.ClassroomFilter
	cmd := &cobra.Command{
		Use:   "classrooms",
		Short: "Filter classroom rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Service.Classrooms(f)
			writeCSV := func(w io.Writer, delim rune) error { return csvio.ExportRecords(w, rows, delim) }
			return out.print(cmd.OutOrStdout(), rows, writeCSV, func() string { return formatter.FormatClassrooms(rows) })
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.Search, "search", "q", "", "case-insensitive text in any column")
	fl.StringSliceVar(&f.MissingFields, "missing", nil, "columns that must be blank")
	fl.StringSliceVarP(&f.ProgramIDs, "program", "p", nil, "owning program IDs")
	fl.StringSliceVar(&f.Faculties, "faculty", nil, "faculty short or full names")
	fl.StringSliceVar(&f.ProgramTypes, "program-type", nil, "program types")
	fl.StringSliceVar(&f.SemesterTypes, "semester-type", nil, "semester types")
	fl.StringSliceVar(&f.Buildings, "building", nil, "buildings")
	fl.StringSliceVar(&f.Floors, "floor", nil, "floors")
	fl.StringSliceVar(&f.RoomTypes, "room-type", nil, "room types")
	fl.StringSliceVar(&f.Capacities, "capacity", nil, "exact capacities")
	fl.StringSliceVar(&f.SlotDurations, "slot-duration", nil, "slot durations")
	fl.StringVar(&f.Capacity.Min, "min-capacity", "", "capacity at least")
	fl.StringVar(&f.Capacity.Max, "max-capacity", "", "capacity at most")
	return cmd
}
