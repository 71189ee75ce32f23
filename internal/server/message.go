package server

import (
	"encoding/json"
	"time"
)

// MessageType identifies a websocket message
type MessageType string

const (
	// Client → Server
	MessageTypeSeed  MessageType = "seed"
	MessageTypeNext  MessageType = "next"
	MessageTypeReset MessageType = "reset"

	// Server → Client
	MessageTypeState  MessageType = "state"
	MessageTypeValues MessageType = "values"
	MessageTypeError  MessageType = "error"
)

// Error codes sent in ErrorData
const (
	ErrCodeNotSeeded      = "not_seeded"
	ErrCodeInvalidMessage = "invalid_message"
	ErrCodeBatchTooLarge  = "batch_too_large"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message stamped with the given time
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// SeedData seeds the connection's generator. Key takes precedence over Seed.
type SeedData struct {
	Seed *uint64  `json:"seed,omitempty"`
	Key  []uint64 `json:"key,omitempty"`
}

// NextData requests Count values; zero means one.
type NextData struct {
	Count int `json:"count"`
}

// StateData reports the generator state after seed and reset.
type StateData struct {
	Seeded bool `json:"seeded"`
	Cursor int  `json:"cursor"`
}

// ValuesData carries drawn values.
type ValuesData struct {
	Values []uint64 `json:"values"`
	Cursor int      `json:"cursor"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
