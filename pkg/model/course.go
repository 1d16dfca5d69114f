package model

// CourseSummary groups every section of one course offering, keyed by
// semester, program, code, title and credit.
type CourseSummary struct {
	Semester      string `csv:"Semester" json:"semester"`
	PID           string `csv:"PID" json:"pid"`
	CourseCode    string `csv:"Course Code" json:"courseCode"`
	CourseTitle   string `csv:"Course Title" json:"courseTitle"`
	Credit        string `csv:"Credit" json:"credit"`
	CourseType    string `csv:"Course Type" json:"courseType"`
	Capacity      string `csv:"Capacity" json:"capacity"`
	WeeklyClass   string `csv:"Weekly Class" json:"weeklyClass"`
	TotalSections int    `csv:"Sections" json:"totalSections"`
	TotalCapacity int    `csv:"Total Capacity" json:"totalCapacity"`
	TotalStudents int    `csv:"Total Students" json:"totalStudents"`
	TotalVacancy  int    `csv:"Vacancy" json:"totalVacancy"`
	AvgCapacity   int    `csv:"Avg Capacity" json:"avgCapacity"`
	ExtraSections int    `csv:"Extra Sections" json:"extraSections"`
}

// Key is the grouping key of the course.
func (c CourseSummary) Key() string {
	return CourseKey(c.Semester, c.PID, c.CourseCode, c.CourseTitle, c.Credit)
}

// CourseKey joins the columns that identify a course offering.
func CourseKey(semester, pid, code, title, credit string) string {
	return semester + "|" + pid + "|" + code + "|" + title + "|" + credit
}

// OverEnrolled reports whether more students sit in the course than it seats.
func (c CourseSummary) OverEnrolled() bool {
	return c.TotalVacancy < 0
}
