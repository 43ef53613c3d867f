package websocket

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const ( // defaults used when the registry is built without options
	WriteWait      = 10 * time.Second // max time to write one message to the peer
	MaxMessageSize = 512              // inbound frames are only read to detect close
)

// Client is one registered notification channel.
// id distinguishes two channels of the same user (multi-tab reconnects).
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn

	writeWait      time.Duration
	pingInterval   time.Duration // 0 = no liveness probing
	maxMessageSize int64

	writeMu   sync.Mutex // gorilla allows a single concurrent writer
	closeOnce sync.Once
}

func newClient(userID string, conn *websocket.Conn, writeWait, pingInterval time.Duration, maxMessageSize int64) *Client {
	return &Client{
		ID:             uuid.NewString(),
		UserID:         userID,
		Conn:           conn,
		writeWait:      writeWait,
		pingInterval:   pingInterval,
		maxMessageSize: maxMessageSize,
	}
}

// Send writes one text frame. The write deadline bounds the write itself.
// Concurrent callers queue on writeMu, so with a slow peer a caller may also
// wait out the deadlines of writes queued ahead of it. Each of those writes
// fails on its own deadline and the first failure evicts the client, so the
// queue drains once the peer is dead.
func (c *Client) Send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// ReadPump consumes inbound frames until the peer goes away or the transport
// fails, and returns that error. Frame content is discarded.
func (c *Client) ReadPump() error {
	if c.maxMessageSize > 0 {
		c.Conn.SetReadLimit(c.maxMessageSize)
	}

	if c.pingInterval > 0 {
		pongWait := 2 * c.pingInterval // one missed pong is tolerated
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return err
		}
		c.Conn.SetPongHandler(func(string) error {
			return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		done := make(chan struct{})
		defer close(done)
		go c.pingLoop(done)
	}

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return err
		}
	}
}

// pingLoop probes the peer until done is closed or a ping cannot be written.
// A failed ping closes the transport so ReadPump returns.
func (c *Client) pingLoop(done <-chan struct{}) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// WriteControl may run concurrently with Send
			if err := c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.writeWait)); err != nil {
				c.Close()
				return
			}
		case <-done:
			return
		}
	}
}

// CloseWith sends a close frame with the given code and closes the transport.
func (c *Client) CloseWith(code int, reason string) {
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(code, reason)
		_ = c.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(c.writeWait))
		_ = c.Conn.Close()
	})
}

// Close closes the transport without a close frame.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		_ = c.Conn.Close()
	})
}
