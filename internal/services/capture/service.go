package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/render"
)

// Service records streams into the take store and replays them.
type Service struct {
	streams domain.StreamService
	takes   domain.TakeStore
	log     *logrus.Logger
}

func New(streams domain.StreamService, takes domain.TakeStore, log *logrus.Logger) *Service {
	return &Service{streams: streams, takes: takes, log: log}
}

// Record streams r to completion, stamping each message with its offset from
// the start, then persists the take. Recording an empty stream still yields
// a (message-less) take.
func (s *Service) Record(ctx context.Context, r io.Reader, port string) (domain.Take, error) {
	start := time.Now().UTC()
	take := domain.Take{
		ID:        uuid.NewString(),
		Port:      port,
		CreatedAt: start,
	}

	err := s.streams.Pump(ctx, r, func(m domain.Message) {
		take.Messages = append(take.Messages, domain.TimedMessage{
			OffsetMS: time.Since(start).Milliseconds(),
			Data:     render.Append(m, nil),
		})
	})
	// Cancellation stops the recording but keeps what was captured.
	if err != nil && !errors.Is(err, context.Canceled) {
		return domain.Take{}, fmt.Errorf("recording port %q: %w", port, err)
	}

	if err := s.takes.SaveTake(take); err != nil {
		return domain.Take{}, fmt.Errorf("saving take %s: %w", take.ID, err)
	}
	s.log.WithFields(logrus.Fields{
		"take":     take.ID,
		"port":     port,
		"messages": len(take.Messages),
	}).Info("take recorded")
	return take, nil
}

// Replay writes the wire bytes of t to w in recorded order.
func (s *Service) Replay(t domain.Take, w io.Writer) error {
	for i, m := range t.Messages {
		if _, err := w.Write(m.Data); err != nil {
			return fmt.Errorf("replaying take %s at message %d: %w", t.ID, i, err)
		}
	}
	return nil
}

var _ domain.CaptureService = (*Service)(nil)
