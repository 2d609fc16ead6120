// Package hub fans websocket text frames out to every connected viewer
// through one goroutine that owns the client set.
package hub

import (
	"encoding/json"
	"fmt"
)

// Message is one text frame queued for clients. Data is shared between
// clients and must not be modified after queueing.
type Message struct {
	Data []byte
}

// NewJSONMessage wraps pre-encoded JSON.
func NewJSONMessage(data []byte) Message {
	return Message{Data: data}
}

// Encode marshals v into a Message.
func Encode(v interface{}) (Message, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Message{}, fmt.Errorf("hub: encode message: %w", err)
	}
	return NewJSONMessage(data), nil
}
