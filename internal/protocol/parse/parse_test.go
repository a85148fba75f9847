package parse_test

import (
	"errors"
	"testing"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/parse"
)

// feed pushes bytes through a fresh parser and collects completed messages.
func feed(t *testing.T, bytes []byte) []domain.Message {
	t.Helper()
	p := parse.New()
	var out []domain.Message
	for _, b := range bytes {
		if msg, ok := p.Feed(b); ok {
			out = append(out, msg)
		}
	}
	return out
}

func assertFeed(t *testing.T, bytes []byte, want []domain.Message) {
	t.Helper()
	got := feed(t, bytes)
	if len(got) != len(want) {
		t.Fatalf("got %d messages %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFeedNoteOff(t *testing.T) {
	assertFeed(t, []byte{0x82, 0x76, 0x34}, []domain.Message{
		domain.NoteOff{Channel: 2, Note: 0x76, Velocity: 0x34},
	})
}

func TestFeedNoteOffRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0x82, 0x76, 0x34, // first note off
		0x33, 0x65, // second note off without status byte
	}, []domain.Message{
		domain.NoteOff{Channel: 2, Note: 0x76, Velocity: 0x34},
		domain.NoteOff{Channel: 2, Note: 0x33, Velocity: 0x65},
	})
}

func TestFeedNoteOn(t *testing.T) {
	assertFeed(t, []byte{0x91, 0x04, 0x34}, []domain.Message{
		domain.NoteOn{Channel: 1, Note: 4, Velocity: 0x34},
	})
}

func TestFeedNoteOnRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0x92, 0x76, 0x34,
		0x33, 0x65,
	}, []domain.Message{
		domain.NoteOn{Channel: 2, Note: 0x76, Velocity: 0x34},
		domain.NoteOn{Channel: 2, Note: 0x33, Velocity: 0x65},
	})
}

func TestFeedKeyPressure(t *testing.T) {
	assertFeed(t, []byte{0xAA, 0x13, 0x34}, []domain.Message{
		domain.KeyPressure{Channel: 10, Note: 0x13, Pressure: 0x34},
	})
}

func TestFeedKeyPressureRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xA8, 0x77, 0x03,
		0x14, 0x56,
	}, []domain.Message{
		domain.KeyPressure{Channel: 8, Note: 0x77, Pressure: 0x03},
		domain.KeyPressure{Channel: 8, Note: 0x14, Pressure: 0x56},
	})
}

func TestFeedControlChange(t *testing.T) {
	assertFeed(t, []byte{0xB2, 0x76, 0x34}, []domain.Message{
		domain.ControlChange{Channel: 2, Control: 0x76, Value: 0x34},
	})
}

func TestFeedControlChangeRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xB3, 0x3C, 0x18,
		0x43, 0x01,
	}, []domain.Message{
		domain.ControlChange{Channel: 3, Control: 0x3C, Value: 0x18},
		domain.ControlChange{Channel: 3, Control: 0x43, Value: 0x01},
	})
}

func TestFeedProgramChange(t *testing.T) {
	assertFeed(t, []byte{0xC9, 0x15}, []domain.Message{
		domain.ProgramChange{Channel: 9, Program: 0x15},
	})
}

func TestFeedProgramChangeRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xC3, 0x67,
		0x01,
	}, []domain.Message{
		domain.ProgramChange{Channel: 3, Program: 0x67},
		domain.ProgramChange{Channel: 3, Program: 0x01},
	})
}

func TestFeedChannelPressure(t *testing.T) {
	assertFeed(t, []byte{0xDD, 0x37}, []domain.Message{
		domain.ChannelPressure{Channel: 13, Pressure: 0x37},
	})
}

func TestFeedChannelPressureRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xD6, 0x77,
		0x43,
	}, []domain.Message{
		domain.ChannelPressure{Channel: 6, Pressure: 0x77},
		domain.ChannelPressure{Channel: 6, Pressure: 0x43},
	})
}

func TestFeedPitchBend(t *testing.T) {
	assertFeed(t, []byte{0xE8, 0x14, 0x56}, []domain.Message{
		domain.PitchBendChange{Channel: 8, Value: domain.NewValue14(0x14, 0x56)},
	})
}

func TestFeedPitchBendRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xE3, 0x3C, 0x18,
		0x43, 0x01,
	}, []domain.Message{
		domain.PitchBendChange{Channel: 3, Value: domain.NewValue14(0x3C, 0x18)},
		domain.PitchBendChange{Channel: 3, Value: domain.NewValue14(0x43, 0x01)},
	})
}

func TestFeedQuarterFrame(t *testing.T) {
	assertFeed(t, []byte{0xF1, 0x7F}, []domain.Message{
		domain.QuarterFrame{Value: 0x7F},
	})
}

func TestFeedQuarterFrameRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xF1, 0x7F,
		0x56, // data of the next quarter frame, status omitted
	}, []domain.Message{
		domain.QuarterFrame{Value: 0x7F},
		domain.QuarterFrame{Value: 0x56},
	})
}

func TestFeedSongPositionPointer(t *testing.T) {
	assertFeed(t, []byte{0xF2, 0x7F, 0x68}, []domain.Message{
		domain.SongPositionPointer{Position: domain.NewValue14(0x7F, 0x68)},
	})
}

func TestFeedSongPositionPointerRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xF2, 0x7F, 0x68,
		0x23, 0x7B,
	}, []domain.Message{
		domain.SongPositionPointer{Position: domain.NewValue14(0x7F, 0x68)},
		domain.SongPositionPointer{Position: domain.NewValue14(0x23, 0x7B)},
	})
}

func TestFeedSongSelect(t *testing.T) {
	assertFeed(t, []byte{0xF3, 0x3F}, []domain.Message{
		domain.SongSelect{Song: 0x3F},
	})
}

func TestFeedSongSelectRunningStatus(t *testing.T) {
	assertFeed(t, []byte{
		0xF3, 0x3F,
		0x00,
	}, []domain.Message{
		domain.SongSelect{Song: 0x3F},
		domain.SongSelect{Song: 0x00},
	})
}

func TestFeedTuneRequest(t *testing.T) {
	assertFeed(t, []byte{0xF6}, []domain.Message{domain.TuneRequest{}})
}

func TestTuneRequestInterruptsParsing(t *testing.T) {
	assertFeed(t, []byte{
		0x92, 0x76, // start a note on
		0xF6, // tune request aborts it
		0x34, // would have finished the note on; ignored
	}, []domain.Message{domain.TuneRequest{}})
}

func TestUndefinedSystemCommonInterruptsParsing(t *testing.T) {
	assertFeed(t, []byte{
		0x92, 0x76,
		0xF5, // undefined system common aborts the note on
		0x34,
	}, nil)
}

func TestSysExDiscarded(t *testing.T) {
	assertFeed(t, []byte{
		0xF0, 0x01, 0x02, 0x03, 0xF7, // sysex payload is skipped
		0x91, 0x3C, 0x40,
	}, []domain.Message{
		domain.NoteOn{Channel: 1, Note: 0x3C, Velocity: 0x40},
	})
}

func TestRealtimeInterleaved(t *testing.T) {
	realtime := map[byte]domain.Message{
		0xF8: domain.TimingClock{},
		0xFA: domain.Start{},
		0xFB: domain.Continue{},
		0xFC: domain.Stop{},
		0xFE: domain.ActiveSensing{},
		0xFF: domain.Reset{},
	}
	for b, want := range realtime {
		assertFeed(t, []byte{b}, []domain.Message{want})

		// A realtime byte in the middle of a channel pressure message must
		// not disturb it.
		assertFeed(t, []byte{0xD6, b, 0x77}, []domain.Message{
			want,
			domain.ChannelPressure{Channel: 6, Pressure: 0x77},
		})
	}
}

func TestReservedRealtimeIgnored(t *testing.T) {
	assertFeed(t, []byte{
		0xD6, 0xF9, 0xFD, 0x77,
	}, []domain.Message{
		domain.ChannelPressure{Channel: 6, Pressure: 0x77},
	})
}

func TestIncompleteMessageDropped(t *testing.T) {
	assertFeed(t, []byte{
		0x92, 0x1B, // note on missing its velocity
		0x82, 0x76, 0x34, // complete note off
	}, []domain.Message{
		domain.NoteOff{Channel: 2, Note: 0x76, Velocity: 0x34},
	})
}

func TestDataBytesWhileIdleIgnored(t *testing.T) {
	assertFeed(t, []byte{0x00, 0x42, 0x7F}, nil)
}

func TestReset(t *testing.T) {
	p := parse.New()
	p.Feed(0x92)
	p.Feed(0x40)
	p.Reset()
	if msg, ok := p.Feed(0x40); ok {
		t.Fatalf("got %v after Reset, want no message", msg)
	}
}

func TestSliceEmpty(t *testing.T) {
	if _, err := parse.Slice(nil); !errors.Is(err, parse.ErrBufferTooShort) {
		t.Fatalf("got %v, want ErrBufferTooShort", err)
	}
}

func TestSliceNoStatus(t *testing.T) {
	for _, buf := range [][]byte{{0x00}, {0x42, 0x91}, {0xF0}, {0xF4}, {0xF7}, {0xF9}} {
		if _, err := parse.Slice(buf); !errors.Is(err, parse.ErrMessageNotFound) {
			t.Fatalf("Slice(% x): got %v, want ErrMessageNotFound", buf, err)
		}
	}
}

func TestSliceTruncated(t *testing.T) {
	for _, buf := range [][]byte{
		{0x91},       // note on needs 3 bytes
		{0x91, 0x3C}, // still short
		{0xC0},       // program change needs 2
		{0xF1},       // quarter frame needs 2
		{0xF2, 0x10}, // song position needs 3
		{0xE0, 0x00}, // pitch bend needs 3
	} {
		if _, err := parse.Slice(buf); !errors.Is(err, parse.ErrBufferTooShort) {
			t.Fatalf("Slice(% x): got %v, want ErrBufferTooShort", buf, err)
		}
	}
}

func TestSliceMessages(t *testing.T) {
	cases := []struct {
		buf  []byte
		want domain.Message
	}{
		{[]byte{0xF6}, domain.TuneRequest{}},
		{[]byte{0xF8}, domain.TimingClock{}},
		{[]byte{0xFA}, domain.Start{}},
		{[]byte{0xFB}, domain.Continue{}},
		{[]byte{0xFC}, domain.Stop{}},
		{[]byte{0xFE}, domain.ActiveSensing{}},
		{[]byte{0xFF}, domain.Reset{}},
		{[]byte{0xC0, 0x00}, domain.ProgramChange{Channel: 0, Program: 0}},
		{[]byte{0xD1, 0x02}, domain.ChannelPressure{Channel: 1, Pressure: 2}},
		{[]byte{0xF1, 0x17}, domain.QuarterFrame{Value: 0x17}},
		{[]byte{0xF3, 0x03}, domain.SongSelect{Song: 3}},
		{[]byte{0x82, 0x03, 0x01}, domain.NoteOff{Channel: 2, Note: 3, Velocity: 1}},
		{[]byte{0x93, 0x78, 0x78}, domain.NoteOn{Channel: 3, Note: 120, Velocity: 120}},
		{[]byte{0xA3, 0x78, 0x01}, domain.KeyPressure{Channel: 3, Note: 120, Pressure: 1}},
		{[]byte{0xB5, 0x17, 0x17}, domain.ControlChange{Channel: 5, Control: 0x17, Value: 0x17}},
		{[]byte{0xEF, 0x17, 0x17}, domain.PitchBendChange{Channel: 15, Value: domain.NewValue14(0x17, 0x17)}},
		{[]byte{0xF2, 0x00, 0x00}, domain.SongPositionPointer{Position: 0}},
	}
	for _, c := range cases {
		got, err := parse.Slice(c.buf)
		if err != nil {
			t.Fatalf("Slice(% x): %v", c.buf, err)
		}
		if got != c.want {
			t.Fatalf("Slice(% x): got %v, want %v", c.buf, got, c.want)
		}
	}
}

func TestSliceIgnoresTrailingBytes(t *testing.T) {
	got, err := parse.Slice([]byte{0x91, 0x3C, 0x40, 0x99, 0x99})
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	want := domain.NoteOn{Channel: 1, Note: 0x3C, Velocity: 0x40}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}
