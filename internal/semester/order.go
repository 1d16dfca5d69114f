// Package semester orders semester labels such as "Fall 2024" or "Spring-24".
package semester

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var labelPattern = regexp.MustCompile(`([A-Za-z]+)[\s\-_/.']*(\d{4}|\d{2})`)

// Season weights within a year, earliest first.
const (
	Winter = iota
	Spring
	Summer
	Fall
)

// Label is a parsed semester label.
type Label struct {
	Season int
	Year   int
}

// Parse extracts the season and year of a label. Two-digit years are taken
// as 20xx. ok is false when no known season word is followed by a year.
func Parse(s string) (Label, bool) {
	for _, m := range labelPattern.FindAllStringSubmatch(s, -1) {
		season, ok := seasonOf(m[1])
		if !ok {
			continue
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if len(m[2]) == 2 {
			year += 2000
		}
		return Label{Season: season, Year: year}, true
	}
	return Label{}, false
}

func seasonOf(word string) (int, bool) {
	w := strings.ToLower(word)
	switch {
	case strings.Contains(w, "winter"):
		return Winter, true
	case strings.Contains(w, "spring"):
		return Spring, true
	case strings.Contains(w, "summer"), strings.Contains(w, "short"):
		return Summer, true
	case strings.Contains(w, "fall"), strings.Contains(w, "autumn"):
		return Fall, true
	}
	return 0, false
}

// Compare orders labels latest first: it is negative when a is more recent
// than b. Unparseable labels sort after every parseable one, and two
// unparseable labels fall back to reverse lexicographic order.
func Compare(a, b string) int {
	la, oka := Parse(a)
	lb, okb := Parse(b)
	switch {
	case !oka && !okb:
		return strings.Compare(b, a)
	case !oka:
		return 1
	case !okb:
		return -1
	}
	if la.Year != lb.Year {
		if la.Year > lb.Year {
			return -1
		}
		return 1
	}
	if la.Season != lb.Season {
		if la.Season > lb.Season {
			return -1
		}
		return 1
	}
	return 0
}

// Sort returns a copy of labels ordered latest first. Equal labels keep
// their input order.
func Sort(labels []string) []string {
	out := slices.Clone(labels)
	slices.SortStableFunc(out, Compare)
	return out
}

// Distinct returns the distinct non-blank labels, latest first.
func Distinct(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return Sort(out)
}

// Latest returns the most recent label, or "" when there is none.
func Latest(labels []string) string {
	d := Distinct(labels)
	if len(d) == 0 {
		return ""
	}
	return d[0]
}

// LatestN returns the n most recent distinct labels.
func LatestN(labels []string, n int) []string {
	d := Distinct(labels)
	if n <= 0 {
		return nil
	}
	if n < len(d) {
		d = d[:n]
	}
	return d
}
