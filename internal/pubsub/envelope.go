package pubsub

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PushEnvelope is the JSON body of one push delivery, as posted by the
// messaging channel to the receiver endpoint.
//
//	{
//	  "message": {"data": "<base64>", "messageId": "...", "publishTime": "...", "attributes": {...}},
//	  "subscription": "..."
//	}
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the delivery metadata plus the opaque payload.
// It is immutable for the duration of one request.
type PushMessage struct {
	// Data carries the original message bytes, base64-encoded by the channel.
	Data string `json:"data"`

	// MessageID is the transport-level identifier. Redeliveries of the same
	// message reuse it; this service does not deduplicate on it.
	MessageID string `json:"messageId"`

	// PublishTime is the RFC3339 timestamp assigned by the channel.
	PublishTime string `json:"publishTime"`

	Attributes map[string]string `json:"attributes,omitempty"`
}

// Validate checks the structural contract of the push envelope itself.
// A violation here is transport misuse, not bad event data, and maps to
// HTTP 400 rather than the ack-bad-data path.
func (e *PushEnvelope) Validate() error {
	if e.Message.MessageID == "" {
		return fmt.Errorf("invalid push envelope: missing message.messageId")
	}
	if e.Message.Data == "" {
		return fmt.Errorf("invalid push envelope: missing message.data")
	}
	return nil
}

// PublishedAt parses the channel publish timestamp, normalized to UTC.
// Returns nil when the timestamp is absent or unparseable; publish time is
// delivery metadata and never worth failing a message over.
func (m *PushMessage) PublishedAt() *time.Time {
	raw := strings.TrimSpace(m.PublishTime)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// DecodePayload base64-decodes the message data and parses it as a JSON
// object. Producers publishing through the channel always arrive base64
// encoded; raw JSON is accepted as a fallback for direct callers.
//
// Numbers are decoded via json.Number so monetary values survive exactly.
// Any failure here is a decode failure: permanently malformed input,
// distinct from schema validation.
func (m *PushMessage) DecodePayload() (map[string]interface{}, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		raw = []byte(m.Data)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("payload contains trailing data after JSON object")
	}
	return payload, nil
}
