// pkg/config/config_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: Temporary directories, environment variables
// PURPOSE: Test configuration layering, decoding, validation and generation

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolated(t *testing.T) (Options, string) {
	t.Helper()
	dir := t.TempDir()
	return Options{
		ProjectDir: dir,
		UserConfig: filepath.Join(dir, "no-user-config.toml"),
		NoEnv:      true,
	}, dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	opts, _ := isolated(t)
	cfg, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"ruleset.checks"}, cfg.Packages)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Empty(t, cfg.Modules)
	assert.Empty(t, cfg.Exclude)
	assert.Equal(t, "", cfg.Suppressions)
}

func TestLoadProjectTOML(t *testing.T) {
	opts, dir := isolated(t)
	write(t, filepath.Join(dir, "ruleset.toml"), `
packages = ["ruleset.checks", "acme.rules"]
exclude = ['\.pb\.go$']
suppressions = "suppressions.xml"

[[modules]]
name = "LineLength"
  [modules.properties]
  max = 120
  severity = "warning"

[[modules]]
name = "ReceiverName"
`)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"ruleset.checks", "acme.rules"}, cfg.Packages)
	assert.Equal(t, []string{`\.pb\.go$`}, cfg.Exclude)
	assert.Equal(t, "suppressions.xml", cfg.Suppressions)
	assert.Equal(t, 8, cfg.Concurrency, "unset keys keep their defaults")
	require.Len(t, cfg.Modules, 2)
	assert.Equal(t, map[string]string{"max": "120", "severity": "warning"}, cfg.Modules[0].Properties)
	assert.Equal(t, []string{"LineLength", "ReceiverName"}, cfg.ModuleNames())
}

func TestLoadProjectYAML(t *testing.T) {
	opts, dir := isolated(t)
	write(t, filepath.Join(dir, "ruleset.yaml"), `
concurrency: 2
modules:
  - name: MagicNumber
    properties:
      ignoreNumbers: "0,1"
`)

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
	require.Len(t, cfg.Modules, 1)
	assert.Equal(t, "MagicNumber", cfg.Modules[0].Name)
	assert.Equal(t, "0,1", cfg.Modules[0].Properties["ignoreNumbers"])
}

func TestLayerPrecedence(t *testing.T) {
	opts, dir := isolated(t)
	opts.UserConfig = filepath.Join(dir, "xdg", "ruleset", "config.toml")
	opts.NoEnv = false
	write(t, opts.UserConfig, "concurrency = 4\nsuppressions = \"user.xml\"\n")
	write(t, filepath.Join(dir, "ruleset.toml"), "concurrency = 6\n")
	t.Setenv("RULESET_PACKAGES", "a.b,c.d")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Concurrency, "project beats user")
	assert.Equal(t, "user.xml", cfg.Suppressions, "user beats defaults")
	assert.Equal(t, []string{"a.b", "c.d"}, cfg.Packages, "environment beats everything")

	t.Setenv("RULESET_CONCURRENCY", "3")
	cfg, err = Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Concurrency)
}

func TestExplicitFile(t *testing.T) {
	opts, dir := isolated(t)
	write(t, filepath.Join(dir, "ruleset.toml"), "concurrency = 6\n")
	opts.File = filepath.Join(dir, "other.toml")
	write(t, opts.File, "concurrency = 12\n")

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Concurrency)

	opts.File = filepath.Join(dir, "missing.toml")
	_, err = Load(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"broken toml", "packages = [", errors.ErrConfigParse},
		{"concurrency too low", "concurrency = 0", errors.ErrConfigValid},
		{"concurrency too high", "concurrency = 65", errors.ErrConfigValid},
		{"module without name", "[[modules]]\n[modules.properties]\nmax = 1\n", errors.ErrConfigValid},
		{"empty package", `packages = [""]`, errors.ErrConfigValid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, dir := isolated(t)
			write(t, filepath.Join(dir, "ruleset.toml"), tt.content)
			_, err := Load(opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestValidateDetails(t *testing.T) {
	cfg := &Config{Concurrency: 0, Modules: []ModuleConfig{{}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{
		"Config.Concurrency (min)",
		"Config.Modules[0].Name (required)",
	}, errors.GetErrorDetails(err)["fields"])
}

func TestGenerateRoundTrip(t *testing.T) {
	out, err := Generate()
	require.NoError(t, err)
	assert.Contains(t, string(out), "# ruleset configuration")

	opts, dir := isolated(t)
	write(t, filepath.Join(dir, "ruleset.toml"), string(out))

	cfg, err := Load(opts)
	require.NoError(t, err)
	starter := Starter()
	assert.Equal(t, starter.Packages, cfg.Packages)
	assert.Equal(t, starter.Exclude, cfg.Exclude)
	assert.Equal(t, starter.Concurrency, cfg.Concurrency)
	assert.Equal(t, starter.Modules, cfg.Modules)
}

func TestUserConfigPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(UserConfigPath()))
	assert.Equal(t, "ruleset", filepath.Base(filepath.Dir(UserConfigPath())))
}
