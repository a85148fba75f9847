package domain

// Channel is a MIDI channel number (0..15).
type Channel byte

// NewChannel masks b to the 4-bit channel range.
func NewChannel(b byte) Channel { return Channel(b & 0x0F) }

// Value7 is a 7-bit data value (0..127).
type Value7 byte

// NewValue7 masks b to the 7-bit data range.
func NewValue7(b byte) Value7 { return Value7(b & 0x7F) }

// Note is a MIDI note number (0..127). 60 is middle C.
type Note byte

// NewNote masks b to the 7-bit note range.
func NewNote(b byte) Note { return Note(b & 0x7F) }

// Control is a control change number (0..127).
type Control byte

// NewControl masks b to the 7-bit controller range.
func NewControl(b byte) Control { return Control(b & 0x7F) }

// Program is a program number (0..127).
type Program byte

// NewProgram masks b to the 7-bit program range.
func NewProgram(b byte) Program { return Program(b & 0x7F) }

// QuarterFrameValue is the raw 7-bit payload of an MTC quarter frame:
// the message type in bits 4..6 and the data nibble in bits 0..3.
type QuarterFrameValue byte

// NewQuarterFrameValue masks b to the 7-bit quarter frame payload range.
func NewQuarterFrameValue(b byte) QuarterFrameValue { return QuarterFrameValue(b & 0x7F) }

// Value14 is a 14-bit value (0..16383) carried on the wire as two 7-bit
// bytes, least significant first. Pitch bend centre is 0x2000.
type Value14 uint16

// NewValue14 builds a Value14 from its wire bytes, LSB first.
func NewValue14(lsb, msb byte) Value14 {
	return Value14(uint16(msb&0x7F)<<7 | uint16(lsb&0x7F))
}

// Bytes returns the wire form of v, LSB first.
func (v Value14) Bytes() (lsb, msb byte) {
	return byte(v & 0x7F), byte(v >> 7 & 0x7F)
}
