// Package app wires application dependencies for the CLI.
//
// It builds the concrete store, stream and capture services and the optional
// hub client from Config, exposing them via the Wire struct for commands to
// use.
package app
