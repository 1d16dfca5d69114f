package filter

import (
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Classrooms applies a classroom filter panel.
func Classrooms(rows []model.ClassroomRow, f model.ClassroomFilter, programs program.Index) []model.ClassroomRow {
	return Apply(rows,
		Search[model.ClassroomRow](f.Search),
		Missing[model.ClassroomRow](f.MissingFields),
		ProgramCascade[model.ClassroomRow](programs, Programs{
			ProgramIDs:    f.ProgramIDs,
			Faculties:     f.Faculties,
			ProgramTypes:  f.ProgramTypes,
			SemesterTypes: f.SemesterTypes,
		}),
		OneOf[model.ClassroomRow](model.ColBuilding, f.Buildings),
		OneOf[model.ClassroomRow](model.ColFloor, f.Floors),
		OneOf[model.ClassroomRow](model.ColRoomType, f.RoomTypes),
		OneOf[model.ClassroomRow](model.ColCapacity, f.Capacities),
		OneOf[model.ClassroomRow](model.ColSlotDuration, f.SlotDurations),
		Between[model.ClassroomRow](model.ColCapacity, f.Capacity),
	)
}
