// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads TOML and YAML configuration for the mathsex
//              command line tool, applies environment overrides and validates
//              the result into typed Settings.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-12
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-12 v0.1.0: TOML/YAML loader with dot-notation access
// - 2026-10-16 v0.2.0: Settings and rule based validation

/*
Package config provides configuration loading for mathsex.

# Loading

	cfg, err := mxconfig.LoadWithOptions("mathsex.toml", mxconfig.LoadOptions{
		EnvPrefix: "MATHSEX",
		Defaults:  mxconfig.DefaultValues(),
	})
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	scale := cfg.GetInt("output.scale", 6)

Keys use dot notation for nested tables. With an EnvPrefix, the environment
variable MATHSEX_OUTPUT_SCALE overrides output.scale.

# Settings

Settings is the typed view used by the command layer:

	settings, err := mxconfig.LoadSettings(path, "MATHSEX")

An empty path yields DefaultSettings with environment overrides applied.
Invalid values are reported as a single error with code INVALID_CONFIG
listing every offending key.

# File Format

	[log]
	level = "info"     # trace, debug, info, warn, error, fatal
	format = "text"    # text, json, console, logfmt

	[output]
	format = "text"    # text, json
	scale = 6          # digits after the decimal point for decimal output
	color = true
*/
package config
