package parse

import (
	"errors"

	"midiwire/internal/domain"
)

var (
	// ErrBufferTooShort means the input had a valid status but not enough
	// data bytes to complete the message.
	ErrBufferTooShort = errors.New("buffer too short to parse a message")

	// ErrMessageNotFound means no valid message starts at the input.
	ErrMessageNotFound = errors.New("no valid message found")
)

type state int

const (
	idle state = iota

	noteOffStatus
	noteOffNote
	noteOnStatus
	noteOnNote
	keyPressureStatus
	keyPressureNote
	controlChangeStatus
	controlChangeControl
	programChangeStatus
	channelPressureStatus
	pitchBendStatus
	pitchBendLSB
	quarterFrameStatus
	songPositionStatus
	songPositionLSB
	songSelectStatus
)

// Parser decodes a MIDI byte stream one byte at a time.
type Parser struct {
	state   state
	channel domain.Channel
	note    domain.Note
	control domain.Control
	lsb     byte
}

// New returns a Parser in the idle state.
func New() *Parser { return &Parser{} }

// Reset returns the parser to the idle state, discarding any partial message.
func (p *Parser) Reset() { p.state = idle }

// Feed consumes one byte. When that byte completes a message, the message is
// returned with ok set; otherwise only internal state advances.
func (p *Parser) Feed(b byte) (msg domain.Message, ok bool) {
	if domain.IsStatusByte(b) {
		if domain.IsSystemStatus(b) {
			return p.feedSystem(b)
		}
		return p.feedVoiceStatus(b)
	}
	return p.feedData(b)
}

// feedSystem handles 0xF0..0xFF. System common statuses replace any
// in-progress parse; realtime statuses leave it untouched.
func (p *Parser) feedSystem(b byte) (domain.Message, bool) {
	switch b {
	case domain.StatusSysExStart:
		p.state = idle
		return nil, false
	case domain.StatusQuarterFrame:
		p.state = quarterFrameStatus
		return nil, false
	case domain.StatusSongPositionPointer:
		p.state = songPositionStatus
		return nil, false
	case domain.StatusSongSelect:
		p.state = songSelectStatus
		return nil, false
	case domain.StatusTuneRequest:
		p.state = idle
		return domain.TuneRequest{}, true
	case domain.StatusSysExEnd:
		p.state = idle
		return nil, false

	case domain.StatusTimingClock:
		return domain.TimingClock{}, true
	case domain.StatusStart:
		return domain.Start{}, true
	case domain.StatusContinue:
		return domain.Continue{}, true
	case domain.StatusStop:
		return domain.Stop{}, true
	case domain.StatusActiveSensing:
		return domain.ActiveSensing{}, true
	case domain.StatusReset:
		return domain.Reset{}, true

	case 0xF9, 0xFD:
		// Reserved realtime bytes pass through without effect.
		return nil, false

	default:
		// Undefined system common (0xF4, 0xF5) aborts the current message.
		p.state = idle
		return nil, false
	}
}

func (p *Parser) feedVoiceStatus(b byte) (domain.Message, bool) {
	status, ch := domain.SplitVoiceStatus(b)
	p.channel = ch
	switch status {
	case domain.StatusNoteOff:
		p.state = noteOffStatus
	case domain.StatusNoteOn:
		p.state = noteOnStatus
	case domain.StatusKeyPressure:
		p.state = keyPressureStatus
	case domain.StatusControlChange:
		p.state = controlChangeStatus
	case domain.StatusProgramChange:
		p.state = programChangeStatus
	case domain.StatusChannelPressure:
		p.state = channelPressureStatus
	case domain.StatusPitchBendChange:
		p.state = pitchBendStatus
	}
	return nil, false
}

// feedData consumes a data byte. Completing a multi-byte message re-arms the
// state so a following data byte continues under running status.
func (p *Parser) feedData(b byte) (domain.Message, bool) {
	switch p.state {
	case noteOffStatus:
		p.note = domain.NewNote(b)
		p.state = noteOffNote
	case noteOffNote:
		p.state = noteOffStatus
		return domain.NoteOff{Channel: p.channel, Note: p.note, Velocity: domain.NewValue7(b)}, true

	case noteOnStatus:
		p.note = domain.NewNote(b)
		p.state = noteOnNote
	case noteOnNote:
		p.state = noteOnStatus
		return domain.NoteOn{Channel: p.channel, Note: p.note, Velocity: domain.NewValue7(b)}, true

	case keyPressureStatus:
		p.note = domain.NewNote(b)
		p.state = keyPressureNote
	case keyPressureNote:
		p.state = keyPressureStatus
		return domain.KeyPressure{Channel: p.channel, Note: p.note, Pressure: domain.NewValue7(b)}, true

	case controlChangeStatus:
		p.control = domain.NewControl(b)
		p.state = controlChangeControl
	case controlChangeControl:
		p.state = controlChangeStatus
		return domain.ControlChange{Channel: p.channel, Control: p.control, Value: domain.NewValue7(b)}, true

	case programChangeStatus:
		return domain.ProgramChange{Channel: p.channel, Program: domain.NewProgram(b)}, true

	case channelPressureStatus:
		return domain.ChannelPressure{Channel: p.channel, Pressure: domain.NewValue7(b)}, true

	case pitchBendStatus:
		p.lsb = b
		p.state = pitchBendLSB
	case pitchBendLSB:
		p.state = pitchBendStatus
		return domain.PitchBendChange{Channel: p.channel, Value: domain.NewValue14(p.lsb, b)}, true

	case quarterFrameStatus:
		return domain.QuarterFrame{Value: domain.NewQuarterFrameValue(b)}, true

	case songPositionStatus:
		p.lsb = b
		p.state = songPositionLSB
	case songPositionLSB:
		p.state = songPositionStatus
		return domain.SongPositionPointer{Position: domain.NewValue14(p.lsb, b)}, true

	case songSelectStatus:
		return domain.SongSelect{Song: domain.NewValue7(b)}, true
	}
	return nil, false
}

// Slice parses one message from the front of buf. Trailing bytes are ignored.
func Slice(buf []byte) (domain.Message, error) {
	if len(buf) == 0 {
		return nil, ErrBufferTooShort
	}
	s := buf[0]

	switch s {
	case domain.StatusTuneRequest:
		return domain.TuneRequest{}, nil
	case domain.StatusTimingClock:
		return domain.TimingClock{}, nil
	case domain.StatusStart:
		return domain.Start{}, nil
	case domain.StatusContinue:
		return domain.Continue{}, nil
	case domain.StatusStop:
		return domain.Stop{}, nil
	case domain.StatusActiveSensing:
		return domain.ActiveSensing{}, nil
	case domain.StatusReset:
		return domain.Reset{}, nil

	case domain.StatusQuarterFrame:
		if len(buf) < 2 {
			return nil, ErrBufferTooShort
		}
		return domain.QuarterFrame{Value: domain.NewQuarterFrameValue(buf[1])}, nil
	case domain.StatusSongSelect:
		if len(buf) < 2 {
			return nil, ErrBufferTooShort
		}
		return domain.SongSelect{Song: domain.NewValue7(buf[1])}, nil
	case domain.StatusSongPositionPointer:
		if len(buf) < 3 {
			return nil, ErrBufferTooShort
		}
		return domain.SongPositionPointer{Position: domain.NewValue14(buf[1], buf[2])}, nil
	}

	if !domain.IsStatusByte(s) || domain.IsSystemStatus(s) {
		return nil, ErrMessageNotFound
	}

	status, ch := domain.SplitVoiceStatus(s)
	switch status {
	case domain.StatusProgramChange:
		if len(buf) < 2 {
			return nil, ErrBufferTooShort
		}
		return domain.ProgramChange{Channel: ch, Program: domain.NewProgram(buf[1])}, nil
	case domain.StatusChannelPressure:
		if len(buf) < 2 {
			return nil, ErrBufferTooShort
		}
		return domain.ChannelPressure{Channel: ch, Pressure: domain.NewValue7(buf[1])}, nil
	}

	if len(buf) < 3 {
		return nil, ErrBufferTooShort
	}
	switch status {
	case domain.StatusNoteOff:
		return domain.NoteOff{Channel: ch, Note: domain.NewNote(buf[1]), Velocity: domain.NewValue7(buf[2])}, nil
	case domain.StatusNoteOn:
		return domain.NoteOn{Channel: ch, Note: domain.NewNote(buf[1]), Velocity: domain.NewValue7(buf[2])}, nil
	case domain.StatusKeyPressure:
		return domain.KeyPressure{Channel: ch, Note: domain.NewNote(buf[1]), Pressure: domain.NewValue7(buf[2])}, nil
	case domain.StatusControlChange:
		return domain.ControlChange{Channel: ch, Control: domain.NewControl(buf[1]), Value: domain.NewValue7(buf[2])}, nil
	case domain.StatusPitchBendChange:
		return domain.PitchBendChange{Channel: ch, Value: domain.NewValue14(buf[1], buf[2])}, nil
	}
	return nil, ErrMessageNotFound
}
