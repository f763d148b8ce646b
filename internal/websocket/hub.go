package websocket

import (
	"context"
	"log"
	"sync"

	"workshop-service/internal/domain/inventory"
	"workshop-service/internal/domain/job"
)

// Hub fans committed snapshots out to every connected view. Publishing
// happens after persistence succeeds, so views never see state that was not
// accepted by the record store.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	Register   chan *Client
	unregister chan *Client
	broadcast  chan *BroadcastMessage
}

type BroadcastMessage struct {
	Channel ChannelType
	Message *WSMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.Register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

// PublishRecord pushes a persisted record snapshot to subscribed views.
func (h *Hub) PublishRecord(eventType EventType, record job.VehicleRecord) {
	h.broadcast <- &BroadcastMessage{
		Channel: ChannelRecords,
		Message: NewMessage(eventType, record),
	}
}

// PublishInventory pushes the persisted parts collection to subscribed views.
func (h *Hub) PublishInventory(parts []inventory.Part) {
	h.broadcast <- &BroadcastMessage{
		Channel: ChannelInventory,
		Message: NewMessage(EventTypeInventoryUpdated, parts),
	}
}

func (h *Hub) TotalClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("websocket client connected, total=%d", len(h.clients))

	client.SendMessage(NewMessage(EventTypeConnected, map[string]interface{}{
		"channels": []ChannelType{ChannelRecords, ChannelInventory},
	}))
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.clients[client]; exists {
		delete(h.clients, client)
		client.Close()
		log.Printf("websocket client disconnected, total=%d", len(h.clients))
	}
}

func (h *Hub) broadcastMessage(msg *BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.IsSubscribed(msg.Channel) {
			client.SendMessage(msg.Message)
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
