// File: settings.go
// Title: Command Line Settings
// Description: Typed settings for the mathsex command: log level and format,
//              output format, decimal scale and color. Loaded from an optional
//              file plus MATHSEX_* environment variables and validated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"strings"
)

// EnvPrefix is the environment variable prefix of the mathsex command
const EnvPrefix = "MATHSEX"

// Configuration keys
const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyOutputFormat = "output.format"
	KeyOutputScale  = "output.scale"
	KeyOutputColor  = "output.color"
)

// MaxScale is the largest accepted output.scale
const MaxScale = 18

// Settings is the validated configuration of the command line tool
type Settings struct {
	LogLevel     string
	LogFormat    string
	OutputFormat string
	OutputScale  int
	OutputColor  bool
}

// DefaultSettings returns the settings used without a configuration file
func DefaultSettings() Settings {
	return Settings{
		LogLevel:     "warn",
		LogFormat:    "text",
		OutputFormat: "text",
		OutputScale:  6,
		OutputColor:  true,
	}
}

// DefaultValues returns DefaultSettings as nested configuration data
func DefaultValues() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  d.LogLevel,
			"format": d.LogFormat,
		},
		"output": map[string]interface{}{
			"format": d.OutputFormat,
			"scale":  d.OutputScale,
			"color":  d.OutputColor,
		},
	}
}

// SettingsRules returns the validation rules for Settings
func SettingsRules() ValidationRules {
	minScale, maxScale := 0, MaxScale
	return ValidationRules{
		KeyLogLevel:     {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal"}},
		KeyLogFormat:    {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
		KeyOutputFormat: {Type: "string", OneOf: []string{"text", "json"}},
		KeyOutputScale:  {Type: "int", Min: &minScale, Max: &maxScale},
		KeyOutputColor:  {Type: "bool"},
	}
}

// LoadSettings loads and validates settings. An empty path uses the defaults
// with environment overrides only.
func LoadSettings(path, envPrefix string) (Settings, error) {
	var cfg *Config
	if strings.TrimSpace(path) == "" {
		cfg = New(DefaultValues(), envPrefix)
	} else {
		var err error
		cfg, err = LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  DefaultValues(),
		})
		if err != nil {
			return Settings{}, err
		}
	}
	return SettingsFrom(cfg)
}

// SettingsFrom validates cfg and converts it into Settings
func SettingsFrom(cfg *Config) (Settings, error) {
	if err := cfg.Validate(SettingsRules()).Err(); err != nil {
		return Settings{}, err
	}

	d := DefaultSettings()
	return Settings{
		LogLevel:     strings.ToLower(strings.TrimSpace(cfg.GetString(KeyLogLevel, d.LogLevel))),
		LogFormat:    strings.ToLower(strings.TrimSpace(cfg.GetString(KeyLogFormat, d.LogFormat))),
		OutputFormat: strings.ToLower(strings.TrimSpace(cfg.GetString(KeyOutputFormat, d.OutputFormat))),
		OutputScale:  cfg.GetInt(KeyOutputScale, d.OutputScale),
		OutputColor:  cfg.GetBool(KeyOutputColor, d.OutputColor),
	}, nil
}
