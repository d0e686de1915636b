package chat

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongTimeout    = 60 * time.Second
	pingInterval   = 54 * time.Second
	maxFrameSize   = 4096
	sendBufferSize = 64
)

// Client is one websocket chat connection. The read and write pumps each own
// one side of the connection; the hub only ever touches the send channel.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userIP string
	send   chan []byte

	closed   bool
	closedMu sync.RWMutex
}

// NewClient wraps an upgraded websocket connection
func NewClient(hub *Hub, conn *websocket.Conn, userIP string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userIP: userIP,
		send:   make(chan []byte, sendBufferSize),
	}
}

// UserIP returns the client's resolved IP address
func (c *Client) UserIP() string {
	return c.userIP
}

// Send queues a payload for delivery. Returns false when the client is
// closed or its buffer is full.
func (c *Client) Send(data []byte) bool {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close marks the client closed and closes its send channel. Safe to call
// once; the hub is the only caller.
func (c *Client) Close() {
	c.closedMu.Lock()
	defer c.closedMu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// ReadPump consumes frames until the connection drops, handing each one to
// the hub. Must run in its own goroutine.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxFrameSize)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}
		c.hub.HandleInbound(context.Background(), c, message)
	}
}

// WritePump drains the send channel onto the wire and keeps the connection
// alive with pings. Must run in its own goroutine.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
