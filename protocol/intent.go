package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Intent types
const (
	IntentRegenerate = "RequestRegenerate"
	IntentSetPaused  = "RequestSetPaused"
	IntentStep       = "RequestStep"
)

// RequestRegenerate wipes the map. A nil Seed keeps the current random stream.
type RequestRegenerate struct {
	Seed *int64 `json:"seed,omitempty"`
}

type RequestSetPaused struct {
	Paused bool `json:"paused"`
}

type RequestStep struct {
}
