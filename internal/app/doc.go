// Package app wires application dependencies for the CLI.
//
// It builds the entropy source, the signing primitive for the configured
// verify policy and the signature service from a loaded config.Config,
// exposing them via the App struct for commands to use.
package app
