package model

// Snapshot is every table the dashboard works on, as loaded at one moment.
type Snapshot struct {
	Sections   []SectionRow            `json:"sections"`
	Programs   []ProgramRow            `json:"programs"`
	Classrooms []ClassroomRow          `json:"classrooms"`
	Students   map[string][]StudentRow `json:"students"`
	Registered []RegisteredRow         `json:"registered"`
}
