package model

// ResourceStats compares the weekly slots a room pool offers with the slots
// its sections need.
type ResourceStats struct {
	Rooms              int `json:"rooms"`
	RoomSlots          int `json:"roomSlots"`
	Sections           int `json:"sections"`
	RequiredSlots      int `json:"requiredSlots"`
	Surplus            int `json:"surplus"`
	LowStudentSections int `json:"lowStudentSections"`
	LowStudentSlots    int `json:"lowStudentSlots"`
}

// ResourceReport is the resource analysis of one semester.
type ResourceReport struct {
	Semester  string        `json:"semester"`
	ProgramID string        `json:"programId,omitempty"`
	Theory    ResourceStats `json:"Theory"`
	Lab       ResourceStats `json:"Lab"`
}

// SemesterStat counts one admission semester against the target semester.
type SemesterStat struct {
	Semester     string `csv:"Semester" json:"semester"`
	Total        int    `csv:"Admitted" json:"total"`
	Registered   int    `csv:"Registered" json:"registered"`
	Unregistered int    `csv:"Unregistered" json:"unregistered"`
}

// ProgramCell is one program × admission semester cell.
type ProgramCell struct {
	Total        int `json:"total"`
	Unregistered int `json:"unregistered"`
}

// ProgramStat is one program row of the admitted report, keyed by the
// normalized PID.
type ProgramStat struct {
	PID          string                 `json:"pid"`
	Program      string                 `json:"program"`
	Semesters    map[string]ProgramCell `json:"semesters"`
	Total        int                    `json:"total"`
	Unregistered int                    `json:"unregistered"`
}

// AdmittedReport cross-references admitted students with registrations in
// the target semester.
type AdmittedReport struct {
	Target        string         `json:"target"`
	Semesters     []string       `json:"semesters"`
	SemesterStats []SemesterStat `json:"semesterStats"`
	ProgramStats  []ProgramStat  `json:"programStats"`
}

// DirectoryEntry is a student of the merged admitted directory.
type DirectoryEntry struct {
	StudentRow
	Registered bool `csv:"Registered" json:"registered"`
}
