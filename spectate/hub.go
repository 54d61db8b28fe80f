package spectate

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"airhockey/game"
)

const (
	// DefaultQueueSize is the number of frames buffered per spectator before frames are dropped
	DefaultQueueSize = 8

	// DefaultWriteTimeout bounds a single websocket write
	DefaultWriteTimeout = 2 * time.Second
)

type client struct {
	conn    *websocket.Conn
	format  Format
	send    chan []byte
	dropped int
}

// Hub fans match frames out to websocket spectators.
// Publish never blocks: a spectator that falls behind loses frames.
type Hub struct {
	upgrader     websocket.Upgrader
	queueSize    int
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		queueSize:    DefaultQueueSize,
		writeTimeout: DefaultWriteTimeout,
		clients:      make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and streams frames until the spectator goes away
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectate: upgrade failed: %v", err)
		return
	}

	c := &client{
		conn:   conn,
		format: ParseFormat(r.URL.Query().Get("format")),
		send:   make(chan []byte, h.queueSize),
	}
	if !h.register(c) {
		conn.Close()
		return
	}
	log.Printf("spectate: %s connected (%s)", conn.RemoteAddr(), c.format)

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	if c.dropped > 0 {
		log.Printf("spectate: %s left after dropping %d frames", c.conn.RemoteAddr(), c.dropped)
	}
}

// readLoop discards anything the spectator sends and returns once the connection fails
func (h *Hub) readLoop(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	messageType := websocket.BinaryMessage
	if c.format == FormatJSON {
		messageType = websocket.TextMessage
	}

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(messageType, data); err != nil {
			log.Printf("spectate: write to %s failed: %v", c.conn.RemoteAddr(), err)
			c.conn.Close()
			return
		}
	}

	c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

// Publish encodes the frame once per format in use and queues it for every spectator
func (h *Hub) Publish(s game.Snapshot, events []game.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	frame := Frame{Snapshot: s, Events: events}
	encoded := map[Format][]byte{}
	for c := range h.clients {
		data, ok := encoded[c.format]
		if !ok {
			var err error
			data, err = Encode(c.format, frame)
			if err != nil {
				log.Printf("spectate: %v", err)
				return
			}
			encoded[c.format] = data
		}

		select {
		case c.send <- data:
		default:
			c.dropped++
		}
	}
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// NewServer returns an HTTP server exposing the hub on /spectate
func NewServer(addr string, h *Hub) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/spectate", h)
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
