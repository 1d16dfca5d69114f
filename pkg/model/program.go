package model

// Program sheet columns.
const (
	ColProgramFullName  = "Program Full Name"
	ColProgramShortName = "Program Short Name"
	ColFacultyFullName  = "Faculty Full Name"
	ColFacultyShortName = "Faculty Short Name"
	ColProgramType      = "Program Type"
	ColSemesterType     = "Semester Type"
)

// OtherFaculty collects rows whose program is not in the program sheet.
const OtherFaculty = "Other"

// ProgramRow is read-only reference data joined by normalized PID.
type ProgramRow struct {
	PID              string            `csv:"PID" json:"pid"`
	ProgramFullName  string            `csv:"Program Full Name" json:"programFullName"`
	ProgramShortName string            `csv:"Program Short Name" json:"programShortName"`
	FacultyFullName  string            `csv:"Faculty Full Name" json:"facultyFullName"`
	FacultyShortName string            `csv:"Faculty Short Name" json:"facultyShortName"`
	ProgramType      string            `csv:"Program Type" json:"programType"`
	SemesterType     string            `csv:"Semester Type" json:"semesterType"`
	Extra            map[string]string `csv:"-" json:"extra,omitempty"`
}

func (r *ProgramRow) columns() []column {
	return []column{
		{ColPID, &r.PID},
		{ColProgramFullName, &r.ProgramFullName},
		{ColProgramShortName, &r.ProgramShortName},
		{ColFacultyFullName, &r.FacultyFullName},
		{ColFacultyShortName, &r.FacultyShortName},
		{ColProgramType, &r.ProgramType},
		{ColSemesterType, &r.SemesterType},
	}
}

func (r ProgramRow) Field(name string) string  { return lookup(r.columns(), r.Extra, name) }
func (r ProgramRow) Values() map[string]string { return values(r.columns(), r.Extra) }

// Columns lists the known columns in sheet order.
func (r ProgramRow) Columns() []string { return names(r.columns()) }

// ProgramFromValues builds a program from a header→cell map.
func ProgramFromValues(raw map[string]string) ProgramRow {
	var r ProgramRow
	r.Extra = bind(r.columns(), raw)
	return r
}

// Faculty is the display name of the owning faculty, short name first.
func (r ProgramRow) Faculty() string {
	if !Blank(r.FacultyShortName) {
		return r.FacultyShortName
	}
	if !Blank(r.FacultyFullName) {
		return r.FacultyFullName
	}
	return OtherFaculty
}

// InFaculty reports whether either faculty name is in the selection.
func (r ProgramRow) InFaculty(selected map[string]bool) bool {
	return selected[r.FacultyShortName] || selected[r.FacultyFullName]
}

// FacultySummary rolls sections up to the faculty of their program.
type FacultySummary struct {
	Faculty  string `csv:"Faculty" json:"faculty"`
	Programs int    `csv:"Programs" json:"programs"`
	Sections int    `csv:"Sections" json:"sections"`
	Students int    `csv:"Students" json:"students"`
	Capacity int    `csv:"Capacity" json:"capacity"`
}
