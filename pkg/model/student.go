package model

// Student sheet columns.
const (
	ColStudentID   = "Student ID"
	ColStudentName = "Student Name"
	ColSex         = "Sex"
)

// StudentRow is a student admitted in Semester.
type StudentRow struct {
	StudentID   string            `csv:"Student ID" json:"studentId"`
	StudentName string            `csv:"Student Name" json:"studentName"`
	PID         string            `csv:"PID" json:"pid"`
	Program     string            `csv:"Program" json:"program,omitempty"`
	Semester    string            `csv:"Semester" json:"semester"`
	Sex         string            `csv:"Sex" json:"sex,omitempty"`
	Mobile      string            `csv:"Mobile" json:"mobile,omitempty"`
	Email       string            `csv:"Email" json:"email,omitempty"`
	Extra       map[string]string `csv:"-" json:"extra,omitempty"`
}

func (s *StudentRow) columns() []column {
	return []column{
		{ColStudentID, &s.StudentID},
		{ColStudentName, &s.StudentName},
		{ColPID, &s.PID},
		{ColProgram, &s.Program},
		{ColSemester, &s.Semester},
		{ColSex, &s.Sex},
		{ColMobile, &s.Mobile},
		{ColEmail, &s.Email},
	}
}

func (s StudentRow) Field(name string) string  { return lookup(s.columns(), s.Extra, name) }
func (s StudentRow) Values() map[string]string { return values(s.columns(), s.Extra) }

// Columns lists the known columns in sheet order.
func (s StudentRow) Columns() []string { return names(s.columns()) }

// StudentFromValues builds a student from a header→cell map.
func StudentFromValues(raw map[string]string) StudentRow {
	var s StudentRow
	s.Extra = bind(s.columns(), raw)
	return s
}

// RegisteredRow is one row of the registration sheet: semester label to the
// student ID registered in that semester. Most cells are empty.
type RegisteredRow map[string]string
