package model

import (
	"math"
	"strconv"
	"strings"
)

// ParseIntOK parses the leading integer of s the way spreadsheet cells are
// usually read: surrounding whitespace is ignored and trailing garbage after
// the digits is dropped ("25 seats" is 25, "12.7" is 12). ok is false when s
// does not start with a number.
func ParseIntOK(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseInt is ParseIntOK with malformed input treated as 0.
func ParseInt(s string) int {
	n, _ := ParseIntOK(s)
	return n
}

// ParseFloat parses the leading decimal number of s. Malformed input is 0.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
