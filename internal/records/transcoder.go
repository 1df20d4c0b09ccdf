package records

import (
	"encoding/json"
	"time"

	v1 "github.com/streamcart-lab/streamcart/internal/api/v1"
	"github.com/streamcart-lab/streamcart/internal/pubsub"
	"github.com/streamcart-lab/streamcart/internal/validation"
)

// Transcoder maps one delivery (message metadata + decoded payload +
// validation result) into the three sink record shapes. Pure data shaping:
// the only thing it supplies itself is the ingestion wall-clock timestamp.
type Transcoder struct {
	source string
	now    func() time.Time
}

// NewTranscoder creates a transcoder stamping records with the given source
// tag.
func NewTranscoder(source string) *Transcoder {
	return &Transcoder{
		source: source,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Raw builds the unconditional raw capture for one delivery.
// A nil payload means decode failed: RawPayload stays nil and the record is
// marked invalid regardless of the (necessarily empty) validation result.
func (t *Transcoder) Raw(msg *pubsub.PushMessage, payload map[string]interface{}, res validation.Result) *RawRecord {
	return &RawRecord{
		MessageID:        msg.MessageID,
		EventID:          eventIDOf(payload),
		PublishTime:      msg.PublishedAt(),
		IngestionTime:    t.now(),
		RawPayload:       marshalPayload(payload),
		Source:           t.source,
		Attributes:       msg.Attributes,
		IsValid:          payload != nil && res.Valid(),
		ValidationErrors: res.Strings(),
	}
}

// Processed builds the typed projection for a validated event.
func (t *Transcoder) Processed(evt *v1.EcommerceEvent) *ProcessedRecord {
	return &ProcessedRecord{
		EventID:       evt.EventID,
		UserID:        evt.UserID,
		EventType:     evt.EventType,
		ProductID:     evt.ProductID,
		Category:      evt.Category,
		Price:         evt.Price,
		Device:        evt.Device,
		City:          evt.City,
		EventTime:     evt.EventTime,
		IngestionTime: t.now(),
	}
}

// Error builds the error capture for one failure stage. details is marshaled
// to JSON when non-nil (e.g. the validation error list); payload may be nil
// on decode failures.
func (t *Transcoder) Error(msg *pubsub.PushMessage, payload map[string]interface{}, stage Stage, errMsg string, details interface{}) *ErrorRecord {
	return &ErrorRecord{
		MessageID:     msg.MessageID,
		EventID:       eventIDOf(payload),
		PublishTime:   msg.PublishedAt(),
		IngestionTime: t.now(),
		Stage:         stage,
		ErrorMessage:  errMsg,
		ErrorDetails:  marshalDetails(details),
		RawPayload:    marshalPayload(payload),
		Attributes:    msg.Attributes,
		Source:        t.source,
	}
}

// eventIDOf pulls a usable event_id out of an arbitrary payload, valid or
// not. Nil when the payload is missing, or the field isn't a non-empty
// string.
func eventIDOf(payload map[string]interface{}) *string {
	if payload == nil {
		return nil
	}
	if s, ok := payload["event_id"].(string); ok && s != "" {
		return &s
	}
	return nil
}

func marshalPayload(payload map[string]interface{}) json.RawMessage {
	if payload == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// Decoded JSON always re-marshals; this guards payloads built in-process.
		return nil
	}
	return data
}

func marshalDetails(details interface{}) json.RawMessage {
	if details == nil {
		return nil
	}
	data, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return data
}
