package domain

import "time"

// Event is the hub wire envelope: one rendered MIDI message on a named port.
type Event struct {
	Port   string    `json:"port"`
	Data   []byte    `json:"data"`
	Origin string    `json:"origin,omitempty"`
	At     time.Time `json:"at"`
}

// TimedMessage is one rendered message inside a take, stamped with its
// offset from the start of the recording.
type TimedMessage struct {
	OffsetMS int64  `json:"offset_ms"`
	Data     []byte `json:"data"`
}

// Take is a recorded sequence of messages from a single port.
type Take struct {
	ID        string         `json:"id"`
	Port      string         `json:"port"`
	CreatedAt time.Time      `json:"created_at"`
	Messages  []TimedMessage `json:"messages"`
}
