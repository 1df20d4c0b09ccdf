package ingestion

// Outcome is the delivery signal returned to the push channel. Ack maps to a
// success-class HTTP status (channel must not redeliver); Retry maps to an
// error-class status (channel redelivers with backoff).
type Outcome int

const (
	Ack Outcome = iota
	Retry
)

func (o Outcome) String() string {
	if o == Retry {
		return "RETRY"
	}
	return "ACK"
}

// Class classifies how decode/validation/processing went for one delivery,
// independent of the raw capture.
type Class int

const (
	// ClassOK: decoded, validated, and (if attempted) processed cleanly.
	ClassOK Class = iota

	// ClassMalformed: decode or schema validation failed. Permanent; the
	// payload will never get better on redelivery.
	ClassMalformed

	// ClassTransient: the event was valid but the processed append failed.
	// Assumed to be an infrastructure hiccup worth retrying.
	ClassTransient
)

// Resolve computes the delivery outcome from the raw-append result and the
// processing class.
//
// The asymmetry is deliberate: malformed data is acked so poison messages
// don't burn the channel's bounded retry budget, while storage failures are
// retried because redelivery is expected to succeed. The raw capture is the
// non-negotiable durability floor: if it failed, nothing downstream is
// trusted and the delivery retries unconditionally.
func Resolve(rawAppendErr error, class Class) Outcome {
	if rawAppendErr != nil {
		return Retry
	}

	switch class {
	case ClassTransient:
		return Retry
	default:
		// ClassOK and ClassMalformed both ack: done, or permanently bad.
		return Ack
	}
}
