package model

// Range is an inclusive numeric bound pair as typed into a filter panel. A
// side that is empty or not a number does not constrain.
type Range struct {
	Min string `json:"min,omitempty" form:"min"`
	Max string `json:"max,omitempty" form:"max"`
}

// SectionFilter is the selection state of the section filter panel. Empty
// sets do not constrain.
type SectionFilter struct {
	Search        string   `json:"search,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
	Semesters     []string `json:"semesters,omitempty"`
	ProgramIDs    []string `json:"programIds,omitempty"`
	Faculties     []string `json:"faculties,omitempty"`
	ProgramTypes  []string `json:"programTypes,omitempty"`
	SemesterTypes []string `json:"semesterTypes,omitempty"`
	CourseTypes   []string `json:"courseTypes,omitempty"`
	Credits       []string `json:"credits,omitempty"`
	TeacherIDs    []string `json:"teacherIds,omitempty"`
	Capacities    []string `json:"capacities,omitempty"`
	StudentCounts []string `json:"studentCounts,omitempty"`
	Students      Range    `json:"students"`
	ClassTaken    Range    `json:"classTaken"`
	Capacity      Range    `json:"capacity"`
}

// ClassroomFilter is the selection state of the classroom filter panel.
type ClassroomFilter struct {
	Search        string   `json:"search,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
	ProgramIDs    []string `json:"programIds,omitempty"`
	Faculties     []string `json:"faculties,omitempty"`
	ProgramTypes  []string `json:"programTypes,omitempty"`
	SemesterTypes []string `json:"semesterTypes,omitempty"`
	Buildings     []string `json:"buildings,omitempty"`
	Floors        []string `json:"floors,omitempty"`
	RoomTypes     []string `json:"roomTypes,omitempty"`
	Capacities    []string `json:"capacities,omitempty"`
	SlotDurations []string `json:"slotDurations,omitempty"`
	Capacity      Range    `json:"capacity"`
}
