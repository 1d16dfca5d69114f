package model

import "strings"

// ResourceKind splits rooms and sections into theory and lab pools.
type ResourceKind string

const (
	Theory ResourceKind = "Theory"
	Lab    ResourceKind = "Lab"
)

// KindOf classifies a room type or course type. Anything mentioning "lab",
// in any case, is a lab.
func KindOf(kind string) ResourceKind {
	if strings.Contains(strings.ToLower(kind), "lab") {
		return Lab
	}
	return Theory
}

// Kind is the pool a room belongs to.
func (c ClassroomRow) Kind() ResourceKind { return KindOf(c.RoomType) }

// Kind is the pool a section draws from.
func (r SectionRow) Kind() ResourceKind { return KindOf(r.CourseType) }
