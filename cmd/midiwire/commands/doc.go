// Package commands defines the midiwire CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - decode     Decode hex wire bytes into readable messages
//   - encode     Build a message and print its wire bytes
//   - monitor    Print messages from a raw stream or a hub port
//   - send       Render a message and publish it to a hub port
//   - record     Capture a raw stream from stdin into a stored take
//   - play       Play a stored take to stdout or a hub port
//   - takes      List stored takes
//
// # Implementation
//
// The root command builds the dependency graph (take store, stream and
// capture services, optional hub client) before any subcommand runs, so
// handlers share one app context.
package commands
