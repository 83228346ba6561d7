// TEST TYPE: Integration Tests
// DEPENDENCIES: Shipped module catalog, temp files
// PURPOSE: Test configuration to module setup, including implied filters

package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ruleset/pkg/audit"
	"github.com/arthur-debert/ruleset/pkg/checks"
	"github.com/arthur-debert/ruleset/pkg/config"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/loader"
	"github.com/arthur-debert/ruleset/pkg/metrics"
	"github.com/arthur-debert/ruleset/pkg/suppression"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suppressionsXML = `<?xml version="1.0"?>
<suppressions>
  <suppress files="legacy/" checks="LineLength"/>
  <suppress id="neverMatched"/>
</suppressions>`

func baseConfig() *config.Config {
	return &config.Config{
		Packages:    []string{checks.Root},
		Concurrency: 4,
	}
}

func TestSetupResolvesAndConfigures(t *testing.T) {
	cfg := baseConfig()
	cfg.Modules = []config.ModuleConfig{
		{Name: "LineLength", Properties: map[string]string{"max": "120"}},
		{Name: "ruleset.checks.naming.TypeNameCheck"},
		{Name: "SeverityMatchFilter", Properties: map[string]string{"severity": "info", "acceptOnMatch": "false"}},
	}

	res, err := Setup(context.Background(), SetupOptions{Config: cfg})
	require.NoError(t, err)
	require.Len(t, res.Modules, 3)

	assert.Equal(t, "LineLength", res.Modules[0].Name)
	ll, ok := res.Modules[0].Instance.(*checks.LineLength)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"severity":      "error",
		"max":           "120",
		"ignorePattern": "^$",
		"tabWidth":      "8",
	}, ll.Properties())

	_, ok = res.Modules[1].Instance.(*checks.TypeName)
	assert.True(t, ok)

	require.Len(t, res.EventFilters, 1)
	assert.False(t, res.Accept(audit.Event{Severity: audit.SeverityInfo}))
	assert.True(t, res.Accept(audit.Event{Severity: audit.SeverityError}))
}

func TestSetupImpliedFilters(t *testing.T) {
	dir := t.TempDir()
	supp := filepath.Join(dir, "suppressions.xml")
	require.NoError(t, os.WriteFile(supp, []byte(suppressionsXML), 0o644))

	cfg := baseConfig()
	cfg.Exclude = []string{`_gen\.go$`, `^vendor/`}
	cfg.Suppressions = supp

	files := []string{"main.go", "api_gen.go", "vendor/x/y.go", "legacy/old.go"}
	res, err := Setup(context.Background(), SetupOptions{Config: cfg, Files: files})
	require.NoError(t, err)

	assert.Len(t, res.Modules, 3)
	assert.Len(t, res.FileFilters, 2)
	require.Len(t, res.Suppressions, 1)
	assert.Equal(t, supp, res.Suppressions[0].File())

	assert.Equal(t, []string{"main.go", "legacy/old.go"}, res.Files)
	assert.Equal(t, []string{"api_gen.go", "vendor/x/y.go"}, res.Excluded)

	suppressed := audit.Event{FileName: "legacy/old.go", Source: "ruleset.checks.sizes.LineLengthCheck"}
	assert.False(t, res.Accept(suppressed))
	assert.True(t, res.Accept(audit.Event{FileName: "main.go", Source: "ruleset.checks.sizes.LineLengthCheck"}))

	unused := res.Finish()
	require.Len(t, unused, 1)
	assert.Equal(t, suppression.UnusedKey, unused[0].Key)
	assert.Equal(t, supp, unused[0].File)
	assert.Contains(t, unused[0].Text, "neverMatched")
}

func TestSetupErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil config", func(t *testing.T) {
		_, err := Setup(ctx, SetupOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown module", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Modules = []config.ModuleConfig{{Name: "NoSuchThing"}}
		_, err := Setup(ctx, SetupOptions{Config: cfg})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrModuleNotFound))
	})

	t.Run("bad property", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Modules = []config.ModuleConfig{{Name: "LineLength", Properties: map[string]string{"colour": "red"}}}
		_, err := Setup(ctx, SetupOptions{Config: cfg})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrModuleProperty))
		assert.Equal(t, "LineLength", errors.GetErrorDetails(err)["module"])
	})

	t.Run("missing suppressions file", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Suppressions = filepath.Join(t.TempDir(), "absent.xml")
		_, err := Setup(ctx, SetupOptions{Config: cfg})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSuppressionLoad))
	})
}

func TestSetupCustomLoaderAndObserver(t *testing.T) {
	type custom struct{ n int }
	ctor := loader.ConstructorFunc(func(id string) (any, bool) {
		if id == "acme.Widget" {
			return &custom{n: 1}, true
		}
		return nil, false
	})

	cfg := &config.Config{Packages: []string{"acme"}, Concurrency: 1}
	cfg.Modules = []config.ModuleConfig{{Name: "Widget"}}

	collector := metrics.NewCollector()
	res, err := Setup(context.Background(), SetupOptions{Config: cfg, Loader: ctor, Observer: collector})
	require.NoError(t, err)
	require.Len(t, res.Modules, 1)
	assert.IsType(t, &custom{}, res.Modules[0].Instance)

	samples, err := collector.Snapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, samples)
	assert.Equal(t, "1 modules, 0 files kept, 0 excluded", res.String())
}

type gadget struct{ size int }

func TestSetupChainsLoaders(t *testing.T) {
	first := loader.ConstructorFunc(func(id string) (any, bool) {
		if id == "ruleset.checks.sizes.LineLengthCheck" {
			return "shadowed", true
		}
		return nil, false
	})

	cfg := &config.Config{Packages: []string{"acme", checks.Root}, Concurrency: 2}
	cfg.Modules = []config.ModuleConfig{
		{Name: "Gadget"},
		{Name: "TypeName"},
	}

	res, err := Setup(context.Background(), SetupOptions{
		Config: cfg,
		Loader: first,
		Factories: map[string]loader.Factory{
			"acme.Gadget": func() (any, error) { return &gadget{size: 3}, nil },
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Modules, 2)
	assert.Equal(t, &gadget{size: 3}, res.Modules[0].Instance)
	assert.IsType(t, &checks.TypeName{}, res.Modules[1].Instance, "shipped catalog stays reachable")

	cfg.Modules = []config.ModuleConfig{{Name: "LineLength"}}
	res, err = Setup(context.Background(), SetupOptions{Config: cfg, Loader: first})
	require.NoError(t, err)
	assert.Equal(t, "shadowed", res.Modules[0].Instance, "the caller's loader is tried first")
}

func TestSetupLogsResolution(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	cfg := baseConfig()
	cfg.Modules = []config.ModuleConfig{{Name: "LineLength"}}
	_, err := Setup(context.Background(), SetupOptions{Config: cfg})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"operation":"resolve modules"`)
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"component":"core.setup"`)
}
