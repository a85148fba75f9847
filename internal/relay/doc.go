// Package relay provides the HTTP implementation of the domain.HubClient
// interface used by the CLI.
//
// A midihub instance queues events per named port and fans them out over
// websockets. This package offers a concrete client for that API:
//
//   - Publishing rendered MIDI events to a port.
//   - Draining queued events from a port.
//   - Subscribing to a port's live event stream over websocket.
//
// Requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// path, and status text to aid diagnostics.
package relay
