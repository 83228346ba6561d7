package config

import (
	"bytes"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# ruleset configuration
#
# Modules are named by alias (LineLength), suffixed alias (LineLengthCheck),
# canonical identifier (ruleset.checks.sizes.LineLengthCheck) or a name found
# under one of the packages below.

`

// Starter is the configuration written by Generate.
func Starter() Config {
	return Config{
		Packages:    []string{"ruleset.checks"},
		Concurrency: 8,
		Exclude:     []string{`\.pb\.go$`, `(^|/)vendor/`},
		Modules: []ModuleConfig{
			{Name: "FileContentsHolder"},
			{Name: "LineLength", Properties: map[string]string{"max": "120"}},
			{Name: "ReceiverName"},
			{Name: "AvoidDotImport"},
			{Name: "CyclomaticComplexity", Properties: map[string]string{"max": "15", "severity": "warning"}},
			{Name: "SuppressionCommentFilter"},
		},
	}
}

// Generate renders the starter configuration as TOML.
func Generate() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(Starter()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render starter configuration")
	}
	return buf.Bytes(), nil
}
