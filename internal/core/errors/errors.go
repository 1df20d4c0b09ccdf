package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidEnvelopeError = "invalid_envelope"
	HttpSinkWriteError       = "sink_write_failed"
)

// ErrorResponse is the error response body for non-2xx push responses.
// The messaging channel only inspects the status class; the body is for
// humans reading delivery logs.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
