package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CSE-101", "cse101"},
		{"cse101", "cse101"},
		{" STU_001 ", "stu001"},
		{"Fall 2024", "fall2024"},
		{"é-42", "42"},
		{"", ""},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_CaseAndPunctuationInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("CSE-101"), Normalize("cse101"))
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"CSE-101", "B.Sc. in SWE", "  x  y  "} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestSet(t *testing.T) {
	set := Set([]string{"CSE-1", "cse1", "EEE", "--"})
	assert.Len(t, set, 2)
	assert.True(t, set["cse1"])
	assert.True(t, set["eee"])
}
