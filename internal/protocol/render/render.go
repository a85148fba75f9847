package render

import (
	"errors"

	"midiwire/internal/domain"
)

// ErrBufferTooShort means the output buffer cannot hold the rendered message.
var ErrBufferTooShort = errors.New("buffer too short to render message")

// Length returns the wire size of msg in bytes.
func Length(msg domain.Message) int {
	switch msg.(type) {
	case domain.NoteOff, domain.NoteOn, domain.KeyPressure,
		domain.ControlChange, domain.PitchBendChange, domain.SongPositionPointer:
		return 3
	case domain.ProgramChange, domain.ChannelPressure,
		domain.QuarterFrame, domain.SongSelect:
		return 2
	default:
		return 1
	}
}

// Render writes the wire form of msg into buf and returns the number of
// bytes written.
func Render(msg domain.Message, buf []byte) (int, error) {
	if len(buf) < Length(msg) {
		return 0, ErrBufferTooShort
	}
	return len(Append(msg, buf[:0])), nil
}

// Append appends the wire form of msg to dst and returns the extended slice.
func Append(msg domain.Message, dst []byte) []byte {
	switch m := msg.(type) {
	case domain.NoteOff:
		return append(dst, domain.StatusNoteOff|byte(m.Channel), byte(m.Note), byte(m.Velocity))
	case domain.NoteOn:
		return append(dst, domain.StatusNoteOn|byte(m.Channel), byte(m.Note), byte(m.Velocity))
	case domain.KeyPressure:
		return append(dst, domain.StatusKeyPressure|byte(m.Channel), byte(m.Note), byte(m.Pressure))
	case domain.ControlChange:
		return append(dst, domain.StatusControlChange|byte(m.Channel), byte(m.Control), byte(m.Value))
	case domain.PitchBendChange:
		lsb, msb := m.Value.Bytes()
		return append(dst, domain.StatusPitchBendChange|byte(m.Channel), lsb, msb)
	case domain.SongPositionPointer:
		lsb, msb := m.Position.Bytes()
		return append(dst, domain.StatusSongPositionPointer, lsb, msb)
	case domain.ProgramChange:
		return append(dst, domain.StatusProgramChange|byte(m.Channel), byte(m.Program))
	case domain.ChannelPressure:
		return append(dst, domain.StatusChannelPressure|byte(m.Channel), byte(m.Pressure))
	case domain.QuarterFrame:
		return append(dst, domain.StatusQuarterFrame, byte(m.Value))
	case domain.SongSelect:
		return append(dst, domain.StatusSongSelect, byte(m.Song))
	case domain.TuneRequest:
		return append(dst, domain.StatusTuneRequest)
	case domain.TimingClock:
		return append(dst, domain.StatusTimingClock)
	case domain.Start:
		return append(dst, domain.StatusStart)
	case domain.Continue:
		return append(dst, domain.StatusContinue)
	case domain.Stop:
		return append(dst, domain.StatusStop)
	case domain.ActiveSensing:
		return append(dst, domain.StatusActiveSensing)
	case domain.Reset:
		return append(dst, domain.StatusReset)
	}
	return dst
}
