package domain

import "fmt"

// Message is a complete MIDI channel voice, system common or system realtime
// message. All implementations are comparable value types, so two Message
// values can be compared with ==.
type Message interface {
	fmt.Stringer
	isMessage()
}

// NoteOff releases a note.
type NoteOff struct {
	Channel  Channel
	Note     Note
	Velocity Value7
}

// NoteOn strikes a note. Velocity 0 is commonly treated as a note off by
// receivers; this package preserves it as sent.
type NoteOn struct {
	Channel  Channel
	Note     Note
	Velocity Value7
}

// KeyPressure is polyphonic aftertouch for a single note.
type KeyPressure struct {
	Channel  Channel
	Note     Note
	Pressure Value7
}

// ControlChange sets a controller value.
type ControlChange struct {
	Channel Channel
	Control Control
	Value   Value7
}

// ProgramChange selects a patch.
type ProgramChange struct {
	Channel Channel
	Program Program
}

// ChannelPressure is channel-wide aftertouch.
type ChannelPressure struct {
	Channel  Channel
	Pressure Value7
}

// PitchBendChange moves the pitch wheel. Centre is 0x2000.
type PitchBendChange struct {
	Channel Channel
	Value   Value14
}

// QuarterFrame carries one MIDI time code quarter frame.
type QuarterFrame struct {
	Value QuarterFrameValue
}

// SongPositionPointer sets the playback position in MIDI beats.
type SongPositionPointer struct {
	Position Value14
}

// SongSelect chooses a song or sequence.
type SongSelect struct {
	Song Value7
}

// TuneRequest asks analogue synths to retune.
type TuneRequest struct{}

// TimingClock is the 24-per-quarter-note realtime clock tick.
type TimingClock struct{}

// Start begins playback from the top.
type Start struct{}

// Continue resumes playback from the current position.
type Continue struct{}

// Stop halts playback.
type Stop struct{}

// ActiveSensing is the keep-alive realtime message.
type ActiveSensing struct{}

// Reset asks receivers to return to power-up state.
type Reset struct{}

func (NoteOff) isMessage()             {}
func (NoteOn) isMessage()              {}
func (KeyPressure) isMessage()         {}
func (ControlChange) isMessage()       {}
func (ProgramChange) isMessage()       {}
func (ChannelPressure) isMessage()     {}
func (PitchBendChange) isMessage()     {}
func (QuarterFrame) isMessage()        {}
func (SongPositionPointer) isMessage() {}
func (SongSelect) isMessage()          {}
func (TuneRequest) isMessage()         {}
func (TimingClock) isMessage()         {}
func (Start) isMessage()               {}
func (Continue) isMessage()            {}
func (Stop) isMessage()                {}
func (ActiveSensing) isMessage()       {}
func (Reset) isMessage()               {}

func (m NoteOff) String() string {
	return fmt.Sprintf("note-off ch=%d note=%d vel=%d", m.Channel, m.Note, m.Velocity)
}

func (m NoteOn) String() string {
	return fmt.Sprintf("note-on ch=%d note=%d vel=%d", m.Channel, m.Note, m.Velocity)
}

func (m KeyPressure) String() string {
	return fmt.Sprintf("key-pressure ch=%d note=%d val=%d", m.Channel, m.Note, m.Pressure)
}

func (m ControlChange) String() string {
	return fmt.Sprintf("control-change ch=%d ctrl=%d val=%d", m.Channel, m.Control, m.Value)
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("program-change ch=%d prog=%d", m.Channel, m.Program)
}

func (m ChannelPressure) String() string {
	return fmt.Sprintf("channel-pressure ch=%d val=%d", m.Channel, m.Pressure)
}

func (m PitchBendChange) String() string {
	return fmt.Sprintf("pitch-bend ch=%d val=%d", m.Channel, m.Value)
}

func (m QuarterFrame) String() string {
	return fmt.Sprintf("quarter-frame val=0x%02x", byte(m.Value))
}

func (m SongPositionPointer) String() string {
	return fmt.Sprintf("song-position pos=%d", m.Position)
}

func (m SongSelect) String() string {
	return fmt.Sprintf("song-select song=%d", m.Song)
}

func (TuneRequest) String() string    { return "tune-request" }
func (TimingClock) String() string    { return "timing-clock" }
func (Start) String() string          { return "start" }
func (Continue) String() string       { return "continue" }
func (Stop) String() string           { return "stop" }
func (ActiveSensing) String() string  { return "active-sensing" }
func (Reset) String() string          { return "reset" }
