package model

// Section sheet columns.
const (
	ColSemester     = "Semester"
	ColPID          = "PID"
	ColProgram      = "Program"
	ColRef          = "Ref"
	ColCourseCode   = "Course Code"
	ColCourseTitle  = "Course Title"
	ColSection      = "Section"
	ColCredit       = "Credit"
	ColCourseType   = "Course Type"
	ColStudent      = "Student"
	ColCapacity     = "Capacity"
	ColTeacherID    = "Teacher ID"
	ColEmployeeName = "Employee Name"
	ColDesignation  = "Designation"
	ColEmail        = "Email"
	ColMobile       = "Mobile"
	ColClassTaken   = "Class Taken"
	ColWeeklyClass  = "Weekly Class"
	ColRoom         = "Room"
)

// TBA is the placeholder teacher ID of a section nobody teaches yet.
const TBA = "TBA"

// SectionRow is one offered course section. Numeric columns are kept as the
// sheet stores them and parsed leniently where they are used.
type SectionRow struct {
	Semester     string            `csv:"Semester" json:"semester"`
	PID          string            `csv:"PID" json:"pid"`
	Program      string            `csv:"Program" json:"program,omitempty"`
	Ref          string            `csv:"Ref" json:"ref,omitempty"`
	CourseCode   string            `csv:"Course Code" json:"courseCode"`
	CourseTitle  string            `csv:"Course Title" json:"courseTitle"`
	Section      string            `csv:"Section" json:"section"`
	Credit       string            `csv:"Credit" json:"credit"`
	CourseType   string            `csv:"Course Type" json:"courseType,omitempty"`
	Student      string            `csv:"Student" json:"student"`
	Capacity     string            `csv:"Capacity" json:"capacity"`
	TeacherID    string            `csv:"Teacher ID" json:"teacherId"`
	EmployeeName string            `csv:"Employee Name" json:"employeeName,omitempty"`
	Designation  string            `csv:"Designation" json:"designation,omitempty"`
	Email        string            `csv:"Email" json:"email,omitempty"`
	Mobile       string            `csv:"Mobile" json:"mobile,omitempty"`
	ClassTaken   string            `csv:"Class Taken" json:"classTaken,omitempty"`
	WeeklyClass  string            `csv:"Weekly Class" json:"weeklyClass,omitempty"`
	Room         string            `csv:"Room" json:"room,omitempty"`
	Extra        map[string]string `csv:"-" json:"extra,omitempty"`
}

func (r *SectionRow) columns() []column {
	return []column{
		{ColSemester, &r.Semester},
		{ColPID, &r.PID},
		{ColProgram, &r.Program},
		{ColRef, &r.Ref},
		{ColCourseCode, &r.CourseCode},
		{ColCourseTitle, &r.CourseTitle},
		{ColSection, &r.Section},
		{ColCredit, &r.Credit},
		{ColCourseType, &r.CourseType},
		{ColStudent, &r.Student},
		{ColCapacity, &r.Capacity},
		{ColTeacherID, &r.TeacherID},
		{ColEmployeeName, &r.EmployeeName},
		{ColDesignation, &r.Designation},
		{ColEmail, &r.Email},
		{ColMobile, &r.Mobile},
		{ColClassTaken, &r.ClassTaken},
		{ColWeeklyClass, &r.WeeklyClass},
		{ColRoom, &r.Room},
	}
}

func (r SectionRow) Field(name string) string  { return lookup(r.columns(), r.Extra, name) }
func (r SectionRow) Values() map[string]string { return values(r.columns(), r.Extra) }

// Columns lists the known columns in sheet order.
func (r SectionRow) Columns() []string { return names(r.columns()) }

// SectionFromValues builds a section from a header→cell map.
func SectionFromValues(raw map[string]string) SectionRow {
	var r SectionRow
	r.Extra = bind(r.columns(), raw)
	return r
}

// Unassigned reports whether nobody teaches the section yet.
func (r SectionRow) Unassigned() bool {
	return Blank(r.TeacherID) || r.TeacherID == TBA
}

// InstanceKey identifies a unique section instance.
func (r SectionRow) InstanceKey() string {
	return r.Ref + "|" + r.Section + "|" + r.Semester + "|" + r.PID
}
