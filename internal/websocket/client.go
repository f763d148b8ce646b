package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one connected view (office dashboard or mechanic tablet). Views
// only subscribe and receive committed snapshots; they never mutate state
// over the socket.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	subscriptions map[ChannelType]bool
	subMutex      sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		hub:           hub,
		conn:          conn,
		send:          make(chan []byte, 256),
		subscriptions: make(map[ChannelType]bool),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (c *Client) Subscribe(channel ChannelType) {
	c.subMutex.Lock()
	defer c.subMutex.Unlock()
	c.subscriptions[channel] = true
}

func (c *Client) Unsubscribe(channel ChannelType) {
	c.subMutex.Lock()
	defer c.subMutex.Unlock()
	delete(c.subscriptions, channel)
}

func (c *Client) IsSubscribed(channel ChannelType) bool {
	c.subMutex.RLock()
	defer c.subMutex.RUnlock()
	return c.subscriptions[channel]
}

// SendMessage queues a message, dropping the client if its buffer is full.
func (c *Client) SendMessage(msg *WSMessage) {
	data, err := msg.ToJSON()
	if err != nil {
		log.Printf("websocket: failed to encode message: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.hub.unregister <- c
	}
}

func (c *Client) Close() {
	c.cancel()
	close(c.send)
}

// ReadPump consumes subscribe/unsubscribe requests until the peer goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
			_, message, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("websocket error: %v", err)
				}
				return
			}
			c.handleMessage(message)
		}
	}
}

// WritePump flushes queued messages and keeps the connection alive.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
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

func (c *Client) handleMessage(data []byte) {
	var req SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		c.SendMessage(NewMessage(EventTypeError, map[string]string{
			"error": "invalid subscribe request",
		}))
		return
	}

	for _, channel := range req.Channels {
		switch channel {
		case ChannelRecords, ChannelInventory:
			if req.Action == "unsubscribe" {
				c.Unsubscribe(channel)
			} else {
				c.Subscribe(channel)
			}
		default:
			c.SendMessage(NewMessage(EventTypeError, map[string]string{
				"error": "unknown channel: " + string(channel),
			}))
		}
	}
}
