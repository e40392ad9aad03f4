// Package config loads, normalizes, and validates cluttercutter's TOML
// configuration.
//
// Configuration is optional: every field has a default and the CLI flags
// override whatever the file provides. Load resolves the file location
// (explicit path, CLUTTERCUTTER_CONFIG, ~/.config/cluttercutter/config.toml,
// then ./cluttercutter.toml), parses it when present, and returns a fully
// normalized and validated Config either way.
package config
