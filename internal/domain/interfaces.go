package domain

import (
	"context"
	"io"
)

// TakeStore persists recorded takes.
type TakeStore interface {
	SaveTake(t Take) error
	LoadTake(id string) (Take, error)
	ListTakes() ([]Take, error)
	DeleteTake(id string) error
}

// HubClient talks to a midihub instance.
type HubClient interface {
	Publish(ctx context.Context, ev Event) error
	Drain(ctx context.Context, port string, limit int) ([]Event, error)
	Subscribe(ctx context.Context, port string) (<-chan Event, error)
}

// Sink receives messages as a stream completes them.
type Sink func(Message)

// StreamService pumps raw MIDI bytes from a reader through the parser.
type StreamService interface {
	Pump(ctx context.Context, r io.Reader, sink Sink) error
}

// CaptureService records streams into takes and plays them back.
type CaptureService interface {
	Record(ctx context.Context, r io.Reader, port string) (Take, error)
	Replay(t Take, w io.Writer) error
}
