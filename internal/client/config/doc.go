// Package config assembles the CLI runtime configuration from defaults,
// an optional JSON config file and command-line flags, in that order of
// precedence.
package config
