package ingestion

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/streamcart-lab/streamcart/internal/core/errors"
	"github.com/streamcart-lab/streamcart/internal/pubsub"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidEnvelope = "Invalid push envelope"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// PushHandler handles one push delivery.
//
// Response classes carry the delivery contract: 2xx means the channel must
// not redeliver, 5xx means redeliver with backoff. 4xx is reserved for
// structurally invalid envelopes: transport misuse, not event data.
func (s *Service) PushHandler(c *gin.Context) {
	env, err := s.parseEnvelope(c)
	if err != nil {
		writeError(c, err)
		return
	}

	outcome, detail := s.process(c.Request.Context(), &env.Message)

	if outcome == Retry {
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpSinkWriteError,
			message:    detail,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// parseEnvelope reads the raw request body and binds it into a PushEnvelope.
// Envelope-level failures never reach the sinks: there is no message
// identity to record yet.
func (s *Service) parseEnvelope(c *gin.Context) (*pubsub.PushEnvelope, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpInvalidEnvelopeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	var env pubsub.PushEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		slog.Warn("Invalid envelope body received", "error", err, "payload_size", len(bodyBytes))
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidEnvelopeError,
			message:    msgInvalidEnvelope,
		}
	}

	if err := env.Validate(); err != nil {
		slog.Warn("Envelope validation failed", "error", err)
		return nil, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidEnvelopeError,
			message:    err.Error(),
		}
	}

	return &env, nil
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
