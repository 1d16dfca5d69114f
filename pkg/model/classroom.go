package model

// Classroom sheet columns.
const (
	ColBuilding     = "Building"
	ColFloor        = "Floor"
	ColRoomType     = "Room Type"
	ColSlotDuration = "Slot Duration"
	ColSlotPerRoom  = "Slot Per Room"
)

// ClassroomRow is a room, optionally owned by a program.
type ClassroomRow struct {
	Room         string            `csv:"Room" json:"room"`
	Building     string            `csv:"Building" json:"building"`
	Floor        string            `csv:"Floor" json:"floor"`
	RoomType     string            `csv:"Room Type" json:"roomType"`
	Capacity     string            `csv:"Capacity" json:"capacity"`
	SlotDuration string            `csv:"Slot Duration" json:"slotDuration,omitempty"`
	SlotPerRoom  string            `csv:"Slot Per Room" json:"slotPerRoom,omitempty"`
	PID          string            `csv:"PID" json:"pid,omitempty"`
	Extra        map[string]string `csv:"-" json:"extra,omitempty"`
}

func (c *ClassroomRow) columns() []column {
	return []column{
		{ColRoom, &c.Room},
		{ColBuilding, &c.Building},
		{ColFloor, &c.Floor},
		{ColRoomType, &c.RoomType},
		{ColCapacity, &c.Capacity},
		{ColSlotDuration, &c.SlotDuration},
		{ColSlotPerRoom, &c.SlotPerRoom},
		{ColPID, &c.PID},
	}
}

func (c ClassroomRow) Field(name string) string  { return lookup(c.columns(), c.Extra, name) }
func (c ClassroomRow) Values() map[string]string { return values(c.columns(), c.Extra) }

// Columns lists the known columns in sheet order.
func (c ClassroomRow) Columns() []string { return names(c.columns()) }

// ClassroomFromValues builds a classroom from a header→cell map.
func ClassroomFromValues(raw map[string]string) ClassroomRow {
	var c ClassroomRow
	c.Extra = bind(c.columns(), raw)
	return c
}

// Shared reports whether the room belongs to no program.
func (c ClassroomRow) Shared() bool {
	return Blank(c.PID)
}
