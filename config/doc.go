// Package config defines the YAML/JSON configuration model shared by the
// devkit sub-commands together with helpers to load, default and validate it.
package config
