package model

import "strings"

// Record is a spreadsheet row with named columns. Known columns are exposed
// as struct fields; anything else ends up in the row's extension map.
type Record interface {
	// Field returns the value of the named column, or "" when absent.
	Field(name string) string
	// Values returns every column of the row, known and extra.
	Values() map[string]string
}

type column struct {
	name  string
	value *string
}

func lookup(cols []column, extra map[string]string, name string) string {
	for _, c := range cols {
		if c.name == name {
			return *c.value
		}
	}
	return extra[name]
}

func values(cols []column, extra map[string]string) map[string]string {
	out := make(map[string]string, len(cols)+len(extra))
	for k, v := range extra {
		out[k] = v
	}
	for _, c := range cols {
		out[c.name] = *c.value
	}
	return out
}

// bind copies raw values into the known columns and returns whatever did not
// match as the extension map (nil when every header was known).
func bind(cols []column, raw map[string]string) map[string]string {
	var extra map[string]string
	for k, v := range raw {
		name := strings.TrimSpace(k)
		if name == "" {
			continue
		}
		matched := false
		for _, c := range cols {
			if c.name == name {
				*c.value = v
				matched = true
				break
			}
		}
		if !matched {
			if extra == nil {
				extra = make(map[string]string)
			}
			extra[name] = v
		}
	}
	return extra
}

// Blank reports whether a cell holds nothing but whitespace.
func Blank(v string) bool {
	return strings.TrimSpace(v) == ""
}

func names(cols []column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.name
	}
	return out
}
