// Package config loads ruleset configuration.
//
// Layers are merged in order, later layers winning key by key: embedded
// defaults, the user file under the XDG config directory, the project file
// (ruleset.toml or ruleset.yaml) and RULESET_* environment variables.
package config
