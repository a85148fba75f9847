package commands

import (
	"fmt"
	"strconv"

	"midiwire/internal/domain"
)

// buildMessage turns a name plus numeric arguments into a message, e.g.
// ("note-on", ["0", "60", "100"]). Names match the String() form of each
// message type.
func buildMessage(name string, args []string) (domain.Message, error) {
	arg := func(i int, max int) (byte, error) {
		if i >= len(args) {
			return 0, fmt.Errorf("%s: missing argument %d", name, i+1)
		}
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		if n < 0 || n > max {
			return 0, fmt.Errorf("%s: argument %d out of range 0..%d", name, i+1, max)
		}
		return byte(n), nil
	}
	arg14 := func(i int) (domain.Value14, error) {
		if i >= len(args) {
			return 0, fmt.Errorf("%s: missing argument %d", name, i+1)
		}
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return 0, fmt.Errorf("%s: argument %d: %w", name, i+1, err)
		}
		if n < 0 || n > 0x3FFF {
			return 0, fmt.Errorf("%s: argument %d out of range 0..16383", name, i+1)
		}
		return domain.Value14(n), nil
	}

	switch name {
	case "note-on", "note-off", "key-pressure":
		ch, err := arg(0, 15)
		if err != nil {
			return nil, err
		}
		note, err := arg(1, 127)
		if err != nil {
			return nil, err
		}
		val, err := arg(2, 127)
		if err != nil {
			return nil, err
		}
		switch name {
		case "note-on":
			return domain.NoteOn{Channel: domain.Channel(ch), Note: domain.Note(note), Velocity: domain.Value7(val)}, nil
		case "note-off":
			return domain.NoteOff{Channel: domain.Channel(ch), Note: domain.Note(note), Velocity: domain.Value7(val)}, nil
		default:
			return domain.KeyPressure{Channel: domain.Channel(ch), Note: domain.Note(note), Pressure: domain.Value7(val)}, nil
		}

	case "control-change":
		ch, err := arg(0, 15)
		if err != nil {
			return nil, err
		}
		ctrl, err := arg(1, 127)
		if err != nil {
			return nil, err
		}
		val, err := arg(2, 127)
		if err != nil {
			return nil, err
		}
		return domain.ControlChange{Channel: domain.Channel(ch), Control: domain.Control(ctrl), Value: domain.Value7(val)}, nil

	case "program-change":
		ch, err := arg(0, 15)
		if err != nil {
			return nil, err
		}
		prog, err := arg(1, 127)
		if err != nil {
			return nil, err
		}
		return domain.ProgramChange{Channel: domain.Channel(ch), Program: domain.Program(prog)}, nil

	case "channel-pressure":
		ch, err := arg(0, 15)
		if err != nil {
			return nil, err
		}
		val, err := arg(1, 127)
		if err != nil {
			return nil, err
		}
		return domain.ChannelPressure{Channel: domain.Channel(ch), Pressure: domain.Value7(val)}, nil

	case "pitch-bend":
		ch, err := arg(0, 15)
		if err != nil {
			return nil, err
		}
		val, err := arg14(1)
		if err != nil {
			return nil, err
		}
		return domain.PitchBendChange{Channel: domain.Channel(ch), Value: val}, nil

	case "quarter-frame":
		val, err := arg(0, 127)
		if err != nil {
			return nil, err
		}
		return domain.QuarterFrame{Value: domain.QuarterFrameValue(val)}, nil

	case "song-position":
		pos, err := arg14(0)
		if err != nil {
			return nil, err
		}
		return domain.SongPositionPointer{Position: pos}, nil

	case "song-select":
		song, err := arg(0, 127)
		if err != nil {
			return nil, err
		}
		return domain.SongSelect{Song: domain.Value7(song)}, nil

	case "tune-request":
		return domain.TuneRequest{}, nil
	case "timing-clock":
		return domain.TimingClock{}, nil
	case "start":
		return domain.Start{}, nil
	case "continue":
		return domain.Continue{}, nil
	case "stop":
		return domain.Stop{}, nil
	case "active-sensing":
		return domain.ActiveSensing{}, nil
	case "reset":
		return domain.Reset{}, nil
	}
	return nil, fmt.Errorf("unknown message type %q", name)
}
