package records

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Stage names the point in the pipeline where a failure was observed.
type Stage string

const (
	// StageDecode covers base64/JSON decode failures: the payload never
	// became an object.
	StageDecode Stage = "decode"

	// StageValidation covers schema violations on a decodable payload.
	StageValidation Stage = "validation"

	// StageProcessedWrite covers processed-sink append failures after
	// validation succeeded. The only transient (retryable) stage.
	StageProcessedWrite Stage = "processed_write"
)

// RawRecord is the unconditional forensic capture of one delivery attempt.
// Exactly one is produced per delivery, even when decode or validation
// failed: RawPayload may be nil, but MessageID and IngestionTime are always
// present. Never mutated after construction.
type RawRecord struct {
	MessageID     string
	EventID       *string
	PublishTime   *time.Time
	IngestionTime time.Time

	// RawPayload is the verbatim decoded JSON object, nil when decode failed.
	RawPayload json.RawMessage

	Source     string
	Attributes map[string]string

	IsValid          bool
	ValidationErrors []string
}

// ProcessedRecord is the typed projection written to the processed sink.
// Produced only for valid events.
type ProcessedRecord struct {
	EventID       string
	UserID        string
	EventType     string
	ProductID     string
	Category      string
	Price         decimal.Decimal
	Device        string
	City          string
	EventTime     time.Time
	IngestionTime time.Time
}

// ErrorRecord captures one distinct failure stage of a delivery attempt.
// At most one per stage per attempt.
type ErrorRecord struct {
	MessageID     string
	EventID       *string
	PublishTime   *time.Time
	IngestionTime time.Time

	Stage        Stage
	ErrorMessage string

	// ErrorDetails is structured context (e.g. the validation error list),
	// nil when the message alone suffices.
	ErrorDetails json.RawMessage

	RawPayload json.RawMessage
	Attributes map[string]string
	Source     string
}
