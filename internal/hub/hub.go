package hub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"midiwire/internal/domain"
	"midiwire/internal/protocol/parse"
	"midiwire/internal/protocol/render"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub queues events per port and broadcasts them to websocket subscribers.
type Hub struct {
	log       *logrus.Logger
	queueSize int

	register   chan *client
	unregister chan *client
	broadcast  chan domain.Event

	mu      sync.RWMutex
	queues  map[string][]domain.Event
	clients map[*client]bool
}

// client is one websocket subscriber, bound to a single port.
type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	port string
}

// New returns a Hub whose per-port queues hold at most queueSize events.
func New(log *logrus.Logger, queueSize int) *Hub {
	return &Hub{
		log:        log,
		queueSize:  queueSize,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan domain.Event, 256),
		queues:     make(map[string][]domain.Event),
		clients:    make(map[*client]bool),
	}
}

// Run drives the register/unregister/broadcast loop. It does not return.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			n := len(h.clients)
			h.mu.Unlock()
			wsClients.Set(float64(n))
			h.log.WithFields(logrus.Fields{
				"port":    c.port,
				"clients": n,
			}).Info("subscriber connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			n := len(h.clients)
			h.mu.Unlock()
			wsClients.Set(float64(n))
			h.log.WithFields(logrus.Fields{
				"clients": n,
			}).Info("subscriber disconnected")

		case ev := <-h.broadcast:
			h.broadcastEvent(ev)
		}
	}
}

// Publish validates and accepts one event: queued for pollers, fanned out to
// subscribers. The payload must be exactly one wire message.
func (h *Hub) Publish(ev domain.Event) error {
	msg, err := parse.Slice(ev.Data)
	if err != nil {
		eventsRejected.Inc()
		return fmt.Errorf("rejecting event on port %q: %w", ev.Port, err)
	}
	if got := render.Length(msg); got != len(ev.Data) {
		eventsRejected.Inc()
		return fmt.Errorf("rejecting event on port %q: %d trailing bytes", ev.Port, len(ev.Data)-got)
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	h.mu.Lock()
	q := append(h.queues[ev.Port], ev)
	if len(q) > h.queueSize {
		q = q[len(q)-h.queueSize:]
		eventsDropped.Inc()
	}
	h.queues[ev.Port] = q
	h.mu.Unlock()

	eventsPublished.WithLabelValues(ev.Port).Inc()

	select {
	case h.broadcast <- ev:
	default:
		h.log.Warn("broadcast channel full, event queued but not fanned out")
	}
	return nil
}

// Drain removes and returns up to limit queued events for port, oldest
// first. limit <= 0 drains everything.
func (h *Hub) Drain(port string, limit int) []domain.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	q := h.queues[port]
	if limit <= 0 || limit > len(q) {
		limit = len(q)
	}
	out := make([]domain.Event, limit)
	copy(out, q[:limit])
	rest := q[limit:]
	if len(rest) == 0 {
		delete(h.queues, port)
	} else {
		h.queues[port] = append([]domain.Event(nil), rest...)
	}
	return out
}

// Stats reports queue depths and the subscriber count.
func (h *Hub) Stats() (queued map[string]int, clients int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	queued = make(map[string]int, len(h.queues))
	for port, q := range h.queues {
		queued[port] = len(q)
	}
	return queued, len(h.clients)
}

func (h *Hub) broadcastEvent(ev domain.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).Error("failed to marshal broadcast event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if c.port != ev.Port {
			continue
		}
		select {
		case c.send <- payload:
		default:
			// Slow client: drop it rather than stall the loop.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// ServeWS upgrades the request and subscribes the connection to port.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, port string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("websocket upgrade failed")
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
		port: port,
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// readPump discards inbound frames and keeps the read deadline fresh via
// pongs. Subscribers only receive.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Error("websocket connection error")
			}
			return
		}
	}
}

// writePump forwards broadcast payloads to the connection and pings the peer.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
