package websocket

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
)

type EventType string
type ChannelType string

const (
	EventTypeConnected        EventType = "connected"
	EventTypeRecordCreated    EventType = "record.created"
	EventTypeRecordUpdated    EventType = "record.updated"
	EventTypeInventoryUpdated EventType = "inventory.updated"
	EventTypeError            EventType = "error"

	ChannelRecords   ChannelType = "records"
	ChannelInventory ChannelType = "inventory"
)

// WSMessage is the wire envelope between the hub and connected views.
type WSMessage struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// SubscribeRequest is the only message views send: pick the channels to follow.
type SubscribeRequest struct {
	Action   string        `json:"action"` // "subscribe" or "unsubscribe"
	Channels []ChannelType `json:"channels"`
}

func NewMessage(eventType EventType, data interface{}) *WSMessage {
	return &WSMessage{
		ID:        ulid.Make().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

func (m *WSMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
