// Package config loads and validates application configuration from the
// environment and an optional YAML file, using viper for sourcing and
// validator struct tags for constraint checking.
package config
