// Package codec serializes domain events for the outbox.
package codec

import "encoding/json"

// JSONCodec encodes events as JSON.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Encode marshals event to JSON.
func (c *JSONCodec) Encode(event any) ([]byte, error) {
	return json.Marshal(event)
}
