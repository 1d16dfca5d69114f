// Package resource compares weekly classroom slot capacity with the slots
// the offered sections need.
package resource

import (
	"math"
	"strings"

	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/internal/semester"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Operating week assumed by the slot arithmetic.
const (
	OperatingDays          = 6
	OperatingMinutesPerDay = 540
	DefaultSlotDuration    = 90
	DefaultWeeklyClass     = 2
)

// Options scope an analysis. A blank Semester means the latest one in the
// section data; a blank ProgramID means every program. A threshold of zero
// or less disables the low-enrolment counts.
type Options struct {
	Semester            string
	ProgramID           string
	LowStudentThreshold int
}

// ActiveSemester returns requested when some section belongs to it, and the
// latest semester of the sections otherwise.
func ActiveSemester(sections []model.SectionRow, requested string) string {
	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Semester)
	}
	if req := strings.TrimSpace(requested); req != "" {
		for _, l := range labels {
			if strings.TrimSpace(l) == req {
				return req
			}
		}
	}
	return semester.Latest(labels)
}

// RoomSlots is the number of weekly slots a room offers. An explicit slot
// count per day wins; otherwise the slot duration (90 minutes when absent)
// is fitted into the operating day.
func RoomSlots(room model.ClassroomRow) int {
	if perDay := model.ParseInt(room.SlotPerRoom); perDay > 0 {
		return perDay * OperatingDays
	}
	duration := model.ParseInt(room.SlotDuration)
	if duration <= 0 {
		duration = DefaultSlotDuration
	}
	return OperatingMinutesPerDay / duration * OperatingDays
}

// SectionSlots is the weekly class count of a section, 2 when the sheet
// gives none or a count that is not positive.
func SectionSlots(s model.SectionRow) float64 {
	if v := model.ParseFloat(s.WeeklyClass); v > 0 {
		return v
	}
	return DefaultWeeklyClass
}

// Compute runs the analysis for one semester, split into theory and lab.
func Compute(classrooms []model.ClassroomRow, sections []model.SectionRow, opts Options) model.ResourceReport {
	active := ActiveSemester(sections, opts.Semester)
	pid := ident.Normalize(opts.ProgramID)
	report := model.ResourceReport{Semester: active, ProgramID: opts.ProgramID}

	for _, room := range classrooms {
		if pid != "" && ident.Normalize(room.PID) != pid {
			continue
		}
		stats := pick(&report, room.Kind())
		stats.Rooms++
		stats.RoomSlots += RoomSlots(room)
	}

	required := map[model.ResourceKind]float64{}
	low := map[model.ResourceKind]float64{}
	for _, s := range sections {
		if strings.TrimSpace(s.Semester) != active {
			continue
		}
		if pid != "" && ident.Normalize(s.PID) != pid {
			continue
		}
		kind := s.Kind()
		stats := pick(&report, kind)
		stats.Sections++
		slots := SectionSlots(s)
		required[kind] += slots
		if opts.LowStudentThreshold > 0 && model.ParseInt(s.Student) < opts.LowStudentThreshold {
			stats.LowStudentSections++
			low[kind] += slots
		}
	}

	for _, kind := range []model.ResourceKind{model.Theory, model.Lab} {
		stats := pick(&report, kind)
		stats.RequiredSlots = int(math.Ceil(required[kind]))
		stats.LowStudentSlots = int(math.Ceil(low[kind]))
		stats.Surplus = stats.RoomSlots - stats.RequiredSlots
	}
	return report
}

func pick(r *model.ResourceReport, kind model.ResourceKind) *model.ResourceStats {
	if kind == model.Lab {
		return &r.Lab
	}
	return &r.Theory
}
