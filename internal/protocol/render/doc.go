// Package render encodes domain messages into MIDI 1.0 wire bytes.
//
// Render writes into a caller-provided buffer and fails with
// ErrBufferTooShort when the buffer cannot hold the message. Append grows a
// byte slice instead and never fails. Length reports the wire size of a
// message (1, 2 or 3 bytes) without encoding it.
package render
