package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix marks environment variables read as configuration.
// RULESET_CONCURRENCY=4 sets concurrency.
const EnvPrefix = "RULESET_"

// ProjectFiles are looked up, in order, in the project directory. The first
// one found is used.
var ProjectFiles = []string{"ruleset.toml", ".ruleset.toml", "ruleset.yaml", "ruleset.yml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options selects the files Load reads.
type Options struct {
	// ProjectDir is searched for ProjectFiles. Empty means the working
	// directory.
	ProjectDir string
	// File, when set, replaces the project file lookup and must exist.
	File string
	// UserConfig overrides the XDG user config path.
	UserConfig string
	// NoEnv skips environment variables.
	NoEnv bool
}

// UserConfigPath is where the per-user configuration lives.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// Load merges every configuration layer and validates the result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userPath := opts.UserConfig
	if userPath == "" {
		userPath = UserConfigPath()
	}
	if exists(userPath) {
		if err := loadFile(k, userPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 3. Project config
	projectPath, err := projectFile(opts)
	if err != nil {
		return nil, err
	}
	if projectPath != "" {
		if err := loadFile(k, projectPath); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", projectPath).Msg("Loaded project config")
	}

	// 4. Environment
	if !opts.NoEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func projectFile(opts Options) (string, error) {
	if opts.File != "" {
		if !exists(opts.File) {
			return "", errors.Newf(errors.ErrConfigLoad, "config file '%s' does not exist", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectFiles {
		path := filepath.Join(dir, name)
		if exists(path) {
			return path, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
