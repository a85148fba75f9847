// Package store provides file-based persistence for recorded takes.
//
// Each take is serialised as one JSON file under the configured home
// directory, written via a temp file and rename so a crash never leaves a
// half-written take. All methods are concurrency-safe via internal locking.
package store
