package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rhyrak/go-dashboard/internal/audit"
	"github.com/rhyrak/go-dashboard/internal/store"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

func itoa(n int) string { return strconv.Itoa(n) }

func empty(what string) string {
	return Dim("No "+what+" found.") + "\n"
}

// FormatSemesters lists semesters, latest first, marking the latest.
func FormatSemesters(labels []string) string {
	if len(labels) == 0 {
		return empty("semesters")
	}
	var b strings.Builder
	for i, l := range labels {
		if i == 0 {
			b.WriteString(Bold(l) + " " + Dim("(latest)") + "\n")
			continue
		}
		b.WriteString(l + "\n")
	}
	return b.String()
}

func FormatCourses(courses []model.CourseSummary) string {
	if len(courses) == 0 {
		return empty("courses")
	}
	headers := []string{"SEMESTER", "PID", "CODE", "TITLE", "CREDIT", "SECTIONS", "CAPACITY", "STUDENTS", "VACANCY", "AVG", "EXTRA"}
	rows := make([][]string, 0, len(courses))
	var sections, capacity, students int
	for _, c := range courses {
		vacancy := itoa(c.TotalVacancy)
		if c.OverEnrolled() {
			vacancy = StyleRed.Render(vacancy)
		}
		rows = append(rows, []string{
			c.Semester, c.PID, Bold(c.CourseCode), c.CourseTitle, OrDash(c.Credit),
			itoa(c.TotalSections), itoa(c.TotalCapacity), itoa(c.TotalStudents),
			vacancy, itoa(c.AvgCapacity), itoa(c.ExtraSections),
		})
		sections += c.TotalSections
		capacity += c.TotalCapacity
		students += c.TotalStudents
	}
	return RenderTable(headers, rows) + "\n" +
		Dim(fmt.Sprintf("%d courses, %d sections, %d seats, %d students", len(courses), sections, capacity, students)) + "\n"
}

func FormatTeachers(teachers []model.TeacherSummary) string {
	if len(teachers) == 0 {
		return empty("teachers")
	}
	headers := []string{"TEACHER", "NAME", "DESIGNATION", "SECTIONS", "STUDENTS", "CREDITS"}
	rows := make([][]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []string{
			Bold(t.TeacherID), OrDash(t.EmployeeName), OrDash(t.Designation),
			itoa(t.TotalSections), itoa(t.StudentCount), strconv.FormatFloat(t.CreditLoad, 'f', -1, 64),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSections renders section rows; also used for the unassigned view.
func FormatSections(sections []model.SectionRow) string {
	if len(sections) == 0 {
		return empty("sections")
	}
	headers := []string{"SEMESTER", "PID", "CODE", "SECTION", "TYPE", "CREDIT", "STUDENTS", "CAPACITY", "TEACHER"}
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		teacher := s.TeacherID
		if s.Unassigned() {
			teacher = StyleYellow.Render("unassigned")
		}
		rows = append(rows, []string{
			s.Semester, s.PID, Bold(s.CourseCode), s.Section, OrDash(s.CourseType),
			OrDash(s.Credit), OrDash(s.Student), OrDash(s.Capacity), teacher,
		})
	}
	return RenderTable(headers, rows) + "\n" + Dim(fmt.Sprintf("%d sections", len(sections))) + "\n"
}

func FormatFaculties(faculties []model.FacultySummary) string {
	if len(faculties) == 0 {
		return empty("faculties")
	}
	headers := []string{"FACULTY", "PROGRAMS", "SECTIONS", "STUDENTS", "CAPACITY"}
	rows := make([][]string, 0, len(faculties))
	for _, f := range faculties {
		name := Bold(f.Faculty)
		if f.Faculty == model.OtherFaculty {
			name = Dim(f.Faculty)
		}
		rows = append(rows, []string{name, itoa(f.Programs), itoa(f.Sections), itoa(f.Students), itoa(f.Capacity)})
	}
	return RenderTable(headers, rows)
}

func FormatClassrooms(rooms []model.ClassroomRow) string {
	if len(rooms) == 0 {
		return empty("classrooms")
	}
	headers := []string{"ROOM", "BUILDING", "FLOOR", "TYPE", "CAPACITY", "SLOT", "PER DAY", "PID"}
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		owner := r.PID
		if r.Shared() {
			owner = Dim("shared")
		}
		rows = append(rows, []string{
			Bold(r.Room), OrDash(r.Building), OrDash(r.Floor), OrDash(r.RoomType),
			OrDash(r.Capacity), OrDash(r.SlotDuration), OrDash(r.SlotPerRoom), owner,
		})
	}
	return RenderTable(headers, rows)
}

// FormatAdmitted renders the semester breakdown followed by the program
// breakdown of an admitted report.
func FormatAdmitted(r model.AdmittedReport) string {
	var b strings.Builder
	b.WriteString(Header("Registration in "+orElse(r.Target, "(none)")) + "\n")
	if len(r.SemesterStats) == 0 {
		b.WriteString(empty("admitted students"))
		return b.String()
	}

	rows := make([][]string, 0, len(r.SemesterStats))
	for _, s := range r.SemesterStats {
		rows = append(rows, []string{s.Semester, itoa(s.Total), itoa(s.Registered), unregistered(s.Unregistered)})
	}
	b.WriteString(RenderTable([]string{"ADMITTED", "TOTAL", "REGISTERED", "UNREGISTERED"}, rows))
	b.WriteString("\n")

	headers := []string{"PID", "PROGRAM"}
	for _, label := range r.Semesters {
		headers = append(headers, strings.ToUpper(label))
	}
	headers = append(headers, "TOTAL", "UNREGISTERED")
	rows = rows[:0]
	for _, p := range r.ProgramStats {
		row := []string{Bold(p.PID), OrDash(p.Program)}
		for _, label := range r.Semesters {
			cell := p.Semesters[label]
			row = append(row, fmt.Sprintf("%d/%d", cell.Unregistered, cell.Total))
		}
		row = append(row, itoa(p.Total), unregistered(p.Unregistered))
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// orElse returns s, or fallback when s is blank.
func orElse(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func unregistered(n int) string {
	if n > 0 {
		return StyleYellow.Render(itoa(n))
	}
	return itoa(n)
}

func FormatDirectory(entries []model.DirectoryEntry) string {
	if len(entries) == 0 {
		return empty("students")
	}
	headers := []string{"STUDENT", "NAME", "PID", "ADMITTED", "REGISTERED"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := StyleGreen.Render("yes")
		if !e.Registered {
			status = StyleRed.Render("no")
		}
		rows = append(rows, []string{Bold(e.StudentID), OrDash(e.StudentName), e.PID, e.Semester, status})
	}
	return RenderTable(headers, rows)
}

// FormatResources renders the theory and lab rows of a resource report.
func FormatResources(r model.ResourceReport) string {
	title := "Resources " + orElse(r.Semester, "(no semester)")
	if r.ProgramID != "" {
		title += " " + r.ProgramID
	}
	headers := []string{"KIND", "ROOMS", "ROOM SLOTS", "SECTIONS", "REQUIRED", "SURPLUS", "LOW SECTIONS", "LOW SLOTS"}
	row := func(kind model.ResourceKind, s model.ResourceStats) []string {
		return []string{
			Bold(string(kind)), itoa(s.Rooms), itoa(s.RoomSlots), itoa(s.Sections),
			itoa(s.RequiredSlots), Signed(s.Surplus), itoa(s.LowStudentSections), itoa(s.LowStudentSlots),
		}
	}
	return Header(title) + "\n" + RenderTable(headers, [][]string{row(model.Theory, r.Theory), row(model.Lab, r.Lab)})
}

// FormatAudit colours the check list of an audit result.
func FormatAudit(r audit.Result) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(r.Message, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "[  OK]"):
			b.WriteString(StyleGreen.Render(line))
		case strings.HasPrefix(line, "[FAIL]"):
			b.WriteString(StyleRed.Render(line))
		default:
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func FormatReports(reports []store.Report) string {
	if len(reports) == 0 {
		return empty("saved reports")
	}
	headers := []string{"ID", "KIND", "CREATED", "PARAMS"}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.ID, Bold(r.Kind), r.CreatedAt.Format("2006-01-02 15:04"), Dim(string(r.Params))})
	}
	return RenderTable(headers, rows)
}
