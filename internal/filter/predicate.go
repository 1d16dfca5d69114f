// Package filter narrows row sets down to what a filter panel selects. A
// filter is the logical AND of its active predicates and is recomputed from
// scratch on every call.
package filter

import (
	"strings"

	"github.com/rhyrak/go-dashboard/internal/ident"
	"github.com/rhyrak/go-dashboard/internal/program"
	"github.com/rhyrak/go-dashboard/pkg/model"
)

// Predicate reports whether a row passes. A nil predicate is inactive.
type Predicate[T model.Record] func(T) bool

// Apply returns the rows that pass every active predicate, in input order.
// The result is always a new slice.
func Apply[T model.Record](rows []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	out := make([]T, 0, len(rows))
rows:
	for _, r := range rows {
		for _, p := range active {
			if !p(r) {
				continue rows
			}
		}
		out = append(out, r)
	}
	return out
}

// Search matches rows where any column contains query, ignoring case.
func Search[T model.Record](query string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(r T) bool {
		for _, v := range r.Values() {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
		return false
	}
}

// Missing keeps rows where every selected column is blank.
func Missing[T model.Record](fields []string) Predicate[T] {
	if len(fields) == 0 {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields {
			if !model.Blank(r.Field(f)) {
				return false
			}
		}
		return true
	}
}

// OneOf keeps rows whose column value is one of values.
func OneOf[T model.Record](field string, values []string) Predicate[T] {
	set := stringSet(values)
	if len(set) == 0 {
		return nil
	}
	return func(r T) bool {
		return set[strings.TrimSpace(r.Field(field))]
	}
}

// Between keeps rows whose column, read as an integer, lies within rng.
// Malformed cells read as 0.
func Between[T model.Record](field string, rng model.Range) Predicate[T] {
	lo, hasLo := model.ParseIntOK(rng.Min)
	hi, hasHi := model.ParseIntOK(rng.Max)
	if !hasLo && !hasHi {
		return nil
	}
	return func(r T) bool {
		v := model.ParseInt(r.Field(field))
		if hasLo && v < lo {
			return false
		}
		if hasHi && v > hi {
			return false
		}
		return true
	}
}

// Programs is the program/faculty part of a filter panel.
type Programs struct {
	ProgramIDs    []string
	Faculties     []string
	ProgramTypes  []string
	SemesterTypes []string
}

// ProgramCascade filters on the PID column. A program ID selection decides
// on its own. Otherwise faculty, program type and semester type are read
// from the program sheet through the normalized PID, and rows whose program
// is not in the sheet are dropped.
func ProgramCascade[T model.Record](programs program.Index, sel Programs) Predicate[T] {
	ids := ident.Set(sel.ProgramIDs)
	if len(ids) > 0 {
		return func(r T) bool {
			return ids[ident.Normalize(r.Field(model.ColPID))]
		}
	}

	faculties := stringSet(sel.Faculties)
	types := stringSet(sel.ProgramTypes)
	semTypes := stringSet(sel.SemesterTypes)
	if len(faculties) == 0 && len(types) == 0 && len(semTypes) == 0 {
		return nil
	}
	return func(r T) bool {
		p, ok := programs.Lookup(r.Field(model.ColPID))
		if !ok {
			return false
		}
		if len(faculties) > 0 && !p.InFaculty(faculties) {
			return false
		}
		if len(types) > 0 && !types[strings.TrimSpace(p.ProgramType)] {
			return false
		}
		if len(semTypes) > 0 && !semTypes[strings.TrimSpace(p.SemesterType)] {
			return false
		}
		return true
	}
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}
