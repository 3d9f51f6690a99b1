package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AaronLay10/SaiScope/internal/events"
)

const (
	// Number of recent events to send on connection
	recentEventsCount = 50

	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// eventFilter keeps events whose name starts with one of the comma separated
// prefixes in ?prefix=. No prefixes keeps everything.
type eventFilter []string

func parseFilter(r *http.Request) eventFilter {
	var f eventFilter
	for _, p := range strings.Split(r.URL.Query().Get("prefix"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			f = append(f, p)
		}
	}
	return f
}

func (f eventFilter) keep(e events.Event) bool {
	if len(f) == 0 {
		return true
	}
	for _, p := range f {
		if strings.HasPrefix(e.Name, p) {
			return true
		}
	}
	return false
}

// streamConn writes events to one WebSocket peer.
type streamConn struct {
	conn   *websocket.Conn
	filter eventFilter
}

func (c *streamConn) send(e events.Event) error {
	if !c.filter.keep(e) {
		return nil
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// wsEventsHandler streams analysis events, starting with the most recent
// ones still buffered.
func wsEventsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	c := &streamConn{conn: conn, filter: parseFilter(r)}

	sub := events.Subscribe()
	defer func() {
		events.Unsubscribe(sub)
		conn.Close()
	}()

	for _, e := range events.RecentEvents(recentEventsCount) {
		if err := c.send(e); err != nil {
			log.Printf("ws write recent event failed: %v", err)
			return
		}
	}

	// the reader only handles pongs and notices the peer closing
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return

		case e, ok := <-sub:
			if !ok {
				return
			}
			if err := c.send(e); err != nil {
				log.Printf("ws write event failed: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
