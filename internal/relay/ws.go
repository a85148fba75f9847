package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"midiwire/internal/domain"
)

// Subscribe dials the hub websocket and yields events for port until ctx is
// done or the connection drops. The returned channel is closed on exit.
func (c *HTTP) Subscribe(ctx context.Context, port string) (<-chan domain.Event, error) {
	wsBase := c.Base
	switch {
	case strings.HasPrefix(wsBase, "https://"):
		wsBase = "wss://" + strings.TrimPrefix(wsBase, "https://")
	case strings.HasPrefix(wsBase, "http://"):
		wsBase = "ws://" + strings.TrimPrefix(wsBase, "http://")
	}
	wsURL := wsBase + "/ws?port=" + url.QueryEscape(port)

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("hub dial %s: %w", wsURL, err)
	}
	if resp != nil {
		resp.Body.Close()
	}

	events := make(chan domain.Event)

	// Closing the connection unblocks the reader when ctx ends.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev domain.Event
			if err := json.Unmarshal(payload, &ev); err != nil {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
