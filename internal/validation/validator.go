package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	v1 "github.com/streamcart-lab/streamcart/internal/api/v1"
)

// FieldError is one schema violation: the offending field plus the reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Reason
}

// Result collects every violation found in one payload. The order is the
// fixed field-check order, so identical payloads always produce identical
// results.
type Result struct {
	Errors []FieldError `json:"errors,omitempty"`
}

// Valid reports whether the payload satisfied every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Strings renders the violations as "field: reason" lines for storage.
func (r Result) Strings() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.String()
	}
	return out
}

// Validator checks decoded payloads against the e-commerce event schema.
// It is pure and deterministic: no I/O, no clock, total over any JSON-shaped
// input. All rules are applied independently: violations accumulate rather
// than short-circuit, so one response enumerates everything wrong with an
// event.
type Validator struct {
	eventTypes map[string]struct{}
	devices    map[string]struct{}

	// Pre-rendered for error reasons; sets alone lose the configured order.
	eventTypeList string
	deviceList    string
}

// NewValidator builds a validator from the configured vocabulary.
func NewValidator(rules SchemaRules) *Validator {
	v := &Validator{
		eventTypes:    make(map[string]struct{}, len(rules.EventTypes)),
		devices:       make(map[string]struct{}, len(rules.Devices)),
		eventTypeList: strings.Join(rules.EventTypes, ", "),
		deviceList:    strings.Join(rules.Devices, ", "),
	}
	for _, et := range rules.EventTypes {
		v.eventTypes[et] = struct{}{}
	}
	for _, d := range rules.Devices {
		v.devices[d] = struct{}{}
	}
	return v
}

// Validate checks one decoded payload. When the result is valid the typed
// event is returned alongside it; otherwise the event is nil and the result
// carries one FieldError per violated rule. Unknown extra fields are ignored
// for forward compatibility.
func (v *Validator) Validate(payload map[string]interface{}) (*v1.EcommerceEvent, Result) {
	var res Result

	eventID := requireString(payload, "event_id", &res)
	userID := requireString(payload, "user_id", &res)

	eventType := requireString(payload, "event_type", &res)
	if eventType != "" {
		if _, ok := v.eventTypes[eventType]; !ok {
			res.add("event_type", fmt.Sprintf("must be one of: %s", v.eventTypeList))
		}
	}

	productID := requireString(payload, "product_id", &res)
	category := requireString(payload, "category", &res)
	price := requirePrice(payload, &res)

	device := requireString(payload, "device", &res)
	if device != "" && len(v.devices) > 0 {
		if _, ok := v.devices[device]; !ok {
			res.add("device", fmt.Sprintf("must be one of: %s", v.deviceList))
		}
	}

	city := requireString(payload, "city", &res)
	eventTime := requireTimestamp(payload, "event_time", &res)

	if !res.Valid() {
		return nil, res
	}

	return &v1.EcommerceEvent{
		EventID:   eventID,
		UserID:    userID,
		EventType: eventType,
		ProductID: productID,
		Category:  category,
		Price:     price,
		Device:    device,
		City:      city,
		EventTime: eventTime,
	}, res
}

func (r *Result) add(field, reason string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Reason: reason})
}

// requireString checks presence plus non-empty string type.
// Returns "" when the rule is violated (after recording the violation).
func requireString(payload map[string]interface{}, field string, res *Result) string {
	raw, ok := payload[field]
	if !ok || raw == nil {
		res.add(field, "required")
		return ""
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		res.add(field, "must be a non-empty string")
		return ""
	}
	return s
}

// requirePrice checks presence, numeric type, and the >= 0 floor.
// JSON numbers arrive as json.Number (the decoder uses UseNumber); float64
// and ints are accepted for payloads built in-process.
func requirePrice(payload map[string]interface{}, res *Result) decimal.Decimal {
	raw, ok := payload["price"]
	if !ok || raw == nil {
		res.add("price", "required")
		return decimal.Zero
	}

	var d decimal.Decimal
	switch val := raw.(type) {
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			res.add("price", "must be numeric")
			return decimal.Zero
		}
		d = parsed
	case float64:
		d = decimal.NewFromFloat(val)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	default:
		res.add("price", "must be numeric")
		return decimal.Zero
	}

	if d.IsNegative() {
		res.add("price", "must be >= 0")
		return decimal.Zero
	}
	return d
}

// requireTimestamp checks presence plus RFC3339 parseability, normalizing
// the parsed time to UTC.
func requireTimestamp(payload map[string]interface{}, field string, res *Result) time.Time {
	raw, ok := payload[field]
	if !ok || raw == nil {
		res.add(field, "required")
		return time.Time{}
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		res.add(field, "must be an RFC3339 timestamp")
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		res.add(field, "must be an RFC3339 timestamp")
		return time.Time{}
	}
	return t.UTC()
}
