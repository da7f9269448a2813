// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Boolean settings are phrased so that false is the default, because a zero
// value never overrides anything during the merge.
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the view the terminal client uses.
package config
