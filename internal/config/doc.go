// Package config loads, merges and validates mathdemo settings from defaults,
// an optional config file and MATHDEMO_-prefixed environment variables.
package config
