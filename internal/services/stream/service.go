package stream

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/parse"
)

// Service reads byte streams and emits parsed messages.
type Service struct {
	log *logrus.Logger
}

func New(log *logrus.Logger) *Service {
	return &Service{log: log}
}

// Pump reads r until EOF or ctx is done, feeding every byte to the parser
// and every completed message to sink. Partial trailing messages are
// discarded, matching wire semantics.
func (s *Service) Pump(ctx context.Context, r io.Reader, sink domain.Sink) error {
	p := parse.New()
	buf := make([]byte, 512)
	var bytesRead, messages int

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if msg, ok := p.Feed(b); ok {
				messages++
				sink(msg)
			}
		}
		bytesRead += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.WithFields(logrus.Fields{
					"bytes":    bytesRead,
					"messages": messages,
				}).Debug("stream ended")
				return nil
			}
			return fmt.Errorf("reading stream after %d bytes: %w", bytesRead, err)
		}
	}
}

var _ domain.StreamService = (*Service)(nil)
