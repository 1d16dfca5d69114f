// Package program joins rows to the program reference sheet.
package program

import (
	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Index maps a normalized PID to its program row. It is built once per
// program sheet; the first row of a duplicated PID wins.
type Index map[string]model.ProgramRow

// NewIndex builds the index from the program sheet.
func NewIndex(programs []model.ProgramRow) Index {
	idx := make(Index, len(programs))
	for _, p := range programs {
		key := ident.Normalize(p.PID)
		if key == "" {
			continue
		}
		if _, dup := idx[key]; !dup {
			idx[key] = p
		}
	}
	return idx
}

// Lookup finds the program of a raw PID.
func (idx Index) Lookup(pid string) (model.ProgramRow, bool) {
	key := ident.Normalize(pid)
	if key == "" {
		return model.ProgramRow{}, false
	}
	p, ok := idx[key]
	return p, ok
}

// Faculty returns the faculty of a raw PID, or model.OtherFaculty when the
// PID is not in the program sheet.
func (idx Index) Faculty(pid string) string {
	if p, ok := idx.Lookup(pid); ok {
		return p.Faculty()
	}
	return model.OtherFaculty
}
