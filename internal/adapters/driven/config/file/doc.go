// Package file stores SameDiff settings in a TOML file, usually
// ~/.samediff/config.toml, with SAMEDIFF_* environment overrides.
package file
