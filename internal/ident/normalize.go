// Package ident canonicalizes the identifiers used to join sheets.
package ident

import "strings"

// Normalize drops every character that is not an ASCII letter or digit and
// lowercases the rest, so "CSE-101" and "cse101" join. Apply it on both sides
// of a join.
func Normalize(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Set normalizes every value into a membership set. Values that normalize to
// nothing are dropped.
func Set(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			set[n] = true
		}
	}
	return set
}
