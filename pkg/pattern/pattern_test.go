package pattern

import (
	"testing"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	re, err := Compile(`(?<=Foo)\.Generated`)
	require.NoError(t, err, "lookbehind is supported")
	assert.Equal(t, `(?<=Foo)\.Generated`, String(re))

	_, err = Compile(`([unclosed`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	assert.Equal(t, "([unclosed", errors.GetErrorDetails(err)["pattern"])
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		input string
		want  bool
	}{
		{"matches inside", "Generated", "Foo.Generated.java", true},
		{"not anchored", "oo", "Foo.java", true},
		{"anchored miss", "^oo", "Foo.java", false},
		{"backreference", `(\w)\1`, "Foo.java", true},
		{"no match", "Bar", "Foo.java", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Find(re, tt.input))
		})
	}

	assert.False(t, Find(nil, "anything"))
	assert.Equal(t, "", String(nil))
}
