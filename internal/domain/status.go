package domain

// Status bytes. Channel voice statuses occupy a 16-value range, one per
// channel; the constants below are the channel-0 form.
const (
	StatusNoteOff         byte = 0x80
	StatusNoteOn          byte = 0x90
	StatusKeyPressure     byte = 0xA0
	StatusControlChange   byte = 0xB0
	StatusProgramChange   byte = 0xC0
	StatusChannelPressure byte = 0xD0
	StatusPitchBendChange byte = 0xE0

	StatusSysExStart          byte = 0xF0
	StatusQuarterFrame        byte = 0xF1
	StatusSongPositionPointer byte = 0xF2
	StatusSongSelect          byte = 0xF3
	StatusTuneRequest         byte = 0xF6
	StatusSysExEnd            byte = 0xF7

	StatusTimingClock   byte = 0xF8
	StatusStart         byte = 0xFA
	StatusContinue      byte = 0xFB
	StatusStop          byte = 0xFC
	StatusActiveSensing byte = 0xFE
	StatusReset         byte = 0xFF
)

// IsStatusByte reports whether b has the status bit set.
func IsStatusByte(b byte) bool { return b&0x80 == 0x80 }

// IsSystemStatus reports whether b is a system common or realtime status
// (0xF0..0xFF).
func IsSystemStatus(b byte) bool { return b&0xF0 == 0xF0 }

// SplitVoiceStatus splits a channel voice status byte into its message
// nibble and channel.
func SplitVoiceStatus(b byte) (status byte, ch Channel) {
	return b & 0xF0, NewChannel(b)
}
