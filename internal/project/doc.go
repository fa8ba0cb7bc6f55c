// Package project loads bundle project files: TOML descriptions of a
// bundle's manifest and payload that the CLI turns into bundle archives.
package project
