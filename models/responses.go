package models

import "encoding/json"

// Envelope is the wrapper shared by every API response:
//
//	{"success": true, "message": "...", "data": ...}
//
// Data is kept raw so callers decode it into the type they expect.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// DataEnvelope is the typed form of [Envelope] used when writing responses.
type DataEnvelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// MessageEnvelope is an [Envelope] without data, used for failures and for
// operations such as delete that only report an outcome.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
