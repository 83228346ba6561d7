package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity(t *testing.T) {
	tests := []struct {
		text string
		want Severity
	}{
		{"ignore", SeverityIgnore},
		{"info", SeverityInfo},
		{"warning", SeverityWarning},
		{"ERROR", SeverityError},
		{" Warning ", SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSeverity(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var s Severity
			require.NoError(t, s.UnmarshalText([]byte(tt.text)))
			assert.Equal(t, tt.want, s)
		})
	}

	_, err := ParseSeverity("fatal")
	assert.Error(t, err)

	s := SeverityWarning
	assert.Error(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, SeverityWarning, s, "failed unmarshal leaves the value alone")

	assert.Equal(t, "invalid(42)", Severity(42).String())
	text, err := SeverityInfo.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "info", string(text))
}

func TestSortMessages(t *testing.T) {
	msgs := []Message{
		{File: "b.xml", Line: -1, Key: "k", Text: "z"},
		{File: "a.xml", Line: -1, Key: "k", Text: "y"},
		{File: "a.xml", Line: -1, Key: "k", Text: "x"},
		{File: "a.xml", Line: -1, Key: "k", Text: "y"},
	}
	got := SortMessages(msgs)
	assert.Equal(t, []Message{
		{File: "a.xml", Line: -1, Key: "k", Text: "x"},
		{File: "a.xml", Line: -1, Key: "k", Text: "y"},
		{File: "b.xml", Line: -1, Key: "k", Text: "z"},
	}, got)

	assert.Empty(t, SortMessages(nil))
}

func TestMessageString(t *testing.T) {
	m := Message{File: "s.xml", Line: -1, Key: "suppression.unused", Text: "Unused suppression", Severity: SeverityInfo}
	assert.Equal(t, "[info] s.xml: Unused suppression [suppression.unused]", m.String())

	m.Line, m.Column = 3, 7
	assert.Equal(t, "[info] s.xml:3:7: Unused suppression [suppression.unused]", m.String())
}
