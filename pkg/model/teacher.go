package model

// TeacherSummary is the teaching load of one teacher. Contact details come
// from the first section seen for the teacher.
type TeacherSummary struct {
	TeacherID     string       `csv:"Teacher ID" json:"teacherId"`
	EmployeeName  string       `csv:"Employee Name" json:"employeeName"`
	Designation   string       `csv:"Designation" json:"designation"`
	Email         string       `csv:"Email" json:"email"`
	Mobile        string       `csv:"Mobile" json:"mobile"`
	CreditLoad    float64      `csv:"Credit Load" json:"creditLoad"`
	StudentCount  int          `csv:"Students" json:"studentCount"`
	TotalSections int          `csv:"Sections" json:"totalSections"`
	Sections      []SectionRow `csv:"-" json:"sections,omitempty"`
}
