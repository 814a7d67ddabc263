// Package config loads, normalizes, and validates recrate configuration data.
//
// The TOML file only seeds the interactive session: default input and output
// directories, the default encoding preset, the external tool commands, and
// logging settings. Everything it seeds can be changed from the menu for the
// duration of the process, and nothing is written back.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
