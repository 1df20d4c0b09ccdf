package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// EcommerceEvent is the typed projection of an interaction event that passed
// schema validation. It is the only shape the processed sink accepts.
//
// The wire payload is dynamic JSON; field presence and types are checked by
// the validator before this struct is ever constructed, so every field here
// is guaranteed populated.
type EcommerceEvent struct {
	// EventID is the producer-assigned identifier. Expected to be UUID-shaped
	// but only required to be a non-empty string.
	EventID string `json:"event_id"`

	// UserID identifies the shopper that generated the interaction.
	UserID string `json:"user_id"`

	// EventType is the interaction kind (view, add_to_cart, purchase, ...).
	// The allowed set is configuration, not code.
	EventType string `json:"event_type"`

	ProductID string `json:"product_id"`
	Category  string `json:"category"`

	// Price is monetary; decimal avoids float drift downstream.
	Price decimal.Decimal `json:"price"`

	Device string `json:"device"`
	City   string `json:"city"`

	// EventTime is the producer-declared occurrence time (client clock).
	// Distinct from the ingestion time stamped by this service.
	EventTime time.Time `json:"event_time"`
}
