// Package stream pumps raw MIDI bytes from an io.Reader through the
// streaming parser, handing each completed message to a caller-supplied sink.
// The pump stops on EOF, read error or context cancellation.
package stream
