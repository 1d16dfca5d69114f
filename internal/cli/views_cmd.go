package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-dashboard/internal/csvio"
	"github.com/rhyrak/go-dashboard/internal/dashboard"
	"github.com/rhyrak/go-dashboard/internal/formatter"
)

func exportRows(rows any) func(io.Writer, rune) error {
	return func(w io.Writer, delim rune) error { return csvio.Export(w, rows, delim) }
}

func newSemestersCmd(app *App, out *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "semesters",
		Short: "List section semesters, latest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := app.Service.Semesters()
			writeCSV := func(w io.Writer, _ rune) error {
				for _, l := range labels {
					if _, err := io.WriteString(w, l+"\n"); err != nil {
						return err
					}
				}
				return nil
			}
			return out.print(cmd.OutOrStdout(), labels, writeCSV, func() string { return formatter.FormatSemesters(labels) })
		},
	}
}

func newCoursesCmd(app *App, out *printer) *cobra.Command {
	var semester string
	var bonus int
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Summarize sections per course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := dashboard.CourseQuery{Semester: semester}
			if cmd.Flags().Changed("bonus") {
				q.CapacityBonus = &bonus
			}
			courses := app.Service.Courses(q)
			return out.print(cmd.OutOrStdout(), courses, exportRows(courses), func() string { return formatter.FormatCourses(courses) })
		},
	}
	cmd.Flags().StringVarP(&semester, "semester", "s", "", "only this semester (default all)")
	cmd.Flags().IntVar(&bonus, "bonus", 0, "extra seats added to every section's capacity")
	return cmd
}

func newTeachersCmd(app *App, out *printer) *cobra.Command {
	var semester string
	cmd := &cobra.Command{
		Use:   "teachers",
		Short: "Teaching load per teacher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			teachers := app.Service.Teachers(semester)
			return out.print(cmd.OutOrStdout(), teachers, exportRows(teachers), func() string { return formatter.FormatTeachers(teachers) })
		},
	}
	cmd.Flags().StringVarP(&semester, "semester", "s", "", "only this semester (default all)")
	return cmd
}

func newUnassignedCmd(app *App, out *printer) *cobra.Command {
	var semester string
	cmd := &cobra.Command{
		Use:   "unassigned",
		Short: "Sections without a teacher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Service.Unassigned(semester)
			return out.print(cmd.OutOrStdout(), rows, exportRows(rows), func() string { return formatter.FormatSections(rows) })
		},
	}
	cmd.Flags().StringVarP(&semester, "semester", "s", "", "only this semester (default all)")
	return cmd
}

func newFacultiesCmd(app *App, out *printer) *cobra.Command {
	var semester string
	cmd := &cobra.Command{
		Use:   "faculties",
		Short: "Sections rolled up per faculty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := app.Service.Faculties(semester)
			return out.print(cmd.OutOrStdout(), rows, exportRows(rows), func() string { return formatter.FormatFaculties(rows) })
		},
	}
	cmd.Flags().StringVarP(&semester, "semester", "s", "", "only this semester (default all)")
	return cmd
}

func newAdmittedCmd(app *App, out *printer) *cobra.Command {
	var q dashboard.AdmittedQuery
	cmd := &cobra.Command{
		Use:   "admitted",
		Short: "Admitted students who did not register in the target semester",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := app.Service.Admitted(q)
			return out.print(cmd.OutOrStdout(), report, exportRows(report.SemesterStats), func() string { return formatter.FormatAdmitted(report) })
		},
	}
	addAdmittedFlags(cmd, &q)
	return cmd
}

func newDirectoryCmd(app *App, out *printer) *cobra.Command {
	var q dashboard.AdmittedQuery
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Merged student directory of the selected admission semesters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Service.Directory(q)
			return out.print(cmd.OutOrStdout(), entries, exportRows(entries), func() string { return formatter.FormatDirectory(entries) })
		},
	}
	addAdmittedFlags(cmd, &q)
	return cmd
}

func addAdmittedFlags(cmd *cobra.Command, q *dashboard.AdmittedQuery) {
	cmd.Flags().StringSliceVarP(&q.Semesters, "semester", "s", nil, "admission semesters (repeatable)")
	cmd.Flags().IntVar(&q.Latest, "latest", 0, "use the latest N admission semesters")
	cmd.Flags().StringVarP(&q.Target, "target", "t", "", "registration semester to check (default latest)")
}

func newResourcesCmd(app *App, out *printer) *cobra.Command {
	var q dashboard.ResourceQuery
	var threshold int
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Room slots offered against slots required",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("low-threshold") {
				q.LowStudentThreshold = &threshold
			}
			report := app.Service.Resources(q)
			return out.print(cmd.OutOrStdout(), report, nil, func() string { return formatter.FormatResources(report) })
		},
	}
	cmd.Flags().StringVarP(&q.Semester, "semester", "s", "", "semester to analyse (default latest)")
	cmd.Flags().StringVarP(&q.ProgramID, "program", "p", "", "only rooms and sections of this program")
	cmd.Flags().IntVar(&threshold, "low-threshold", 0, "count sections with fewer students than this")
	return cmd
}

func newAuditCmd(app *App, out *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check the loaded data for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := app.Service.Audit()
			return out.print(cmd.OutOrStdout(), res, exportRows(res.Findings.Unassigned), func() string { return formatter.FormatAudit(res) })
		},
	}
}
