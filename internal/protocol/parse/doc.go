// Package parse decodes MIDI 1.0 wire bytes into domain messages.
//
// Parser consumes a stream one byte at a time and emits a message whenever
// one completes. It honours running status (data bytes after a completed
// voice message reuse the previous status) and system realtime interleaving
// (realtime bytes may arrive in the middle of another message without
// disturbing it). System exclusive payloads are skipped: 0xF0 and 0xF7 reset
// the parser without emitting anything.
//
// Slice decodes a single message from the front of a byte slice without any
// carried state.
//
// Concurrency: Parser is NOT safe for concurrent use. Callers must serialise
// access per stream.
package parse
