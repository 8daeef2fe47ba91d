// Package cli defines the Cobra command tree for the guigen CLI. The root
// command generates a scaffold; every other file registers one subcommand
// with it. Commands delegate to internal packages for the work and only
// handle flag parsing, output formatting, and exit codes.
package cli
