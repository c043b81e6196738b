package models

import (
	"encoding/json"
	"time"
)

// StandardMessage is the JSON envelope carried on broker subjects.
type StandardMessage struct {
	ID        string                 `json:"id"`
	Event     string                 `json:"event"`
	Entity    string                 `json:"entity"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

// ClientMessage represents a message from a connected client.
type ClientMessage struct {
	Type    string          `json:"type"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage represents a message pushed to clients. Event is one of the
// change-notification names the desktop shells listen for
// ("folders-updated", "notes-updated").
type ServerMessage struct {
	Type    string      `json:"type"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

func (m ServerMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func (m *StandardMessage) FromJSON(data []byte) error {
	return json.Unmarshal(data, m)
}

func (m *StandardMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
