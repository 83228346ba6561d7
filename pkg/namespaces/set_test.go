package namespaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "keeps input order",
			input:    []string{"pkg.c.", "pkg.a.", "pkg.b."},
			expected: []string{"pkg.c.", "pkg.a.", "pkg.b."},
		},
		{
			name:     "collapses duplicates keeping the first",
			input:    []string{"pkg.a.", "pkg.b.", "pkg.a.", "pkg.c.", "pkg.b."},
			expected: []string{"pkg.a.", "pkg.b.", "pkg.c."},
		},
		{
			name:     "drops empty prefixes",
			input:    []string{"", "pkg.a.", ""},
			expected: []string{"pkg.a."},
		},
		{
			name:     "empty input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input...)
			assert.Equal(t, tt.expected, s.Prefixes())
			assert.Equal(t, len(tt.expected), s.Len())
		})
	}
}

func TestFromPackages(t *testing.T) {
	s := FromPackages("ruleset.checks", "ruleset.checks.", " vendor.rules ", "")
	assert.Equal(t, []string{"ruleset.checks.", "vendor.rules."}, s.Prefixes())
}

func TestPrefixesIsACopy(t *testing.T) {
	s := New("pkg.a.", "pkg.b.")
	got := s.Prefixes()
	got[0] = "mutated."
	assert.Equal(t, []string{"pkg.a.", "pkg.b."}, s.Prefixes())
}

func TestCandidates(t *testing.T) {
	s := New("pkg.a.", "pkg.b.", "pkg.c.")
	assert.Equal(t, []string{"pkg.a.Bogus", "pkg.b.Bogus", "pkg.c.Bogus"}, s.Candidates("Bogus"))
	assert.Empty(t, New().Candidates("Bogus"))
}
