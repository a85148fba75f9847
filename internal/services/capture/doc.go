// Package capture records parsed MIDI streams into takes and plays stored
// takes back out as wire bytes. Message timing is kept as millisecond
// offsets from the start of the recording.
package capture
