package ingestion

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	v1 "github.com/streamcart-lab/streamcart/internal/api/v1"
	"github.com/streamcart-lab/streamcart/internal/core/storage"
	"github.com/streamcart-lab/streamcart/internal/pubsub"
	"github.com/streamcart-lab/streamcart/internal/records"
	"github.com/streamcart-lab/streamcart/internal/validation"
)

// Service is the push receiver: it owns one delivery from envelope to
// outcome. Stateless: every invocation is processed independently and
// fully, so redeliveries of the same message are just more invocations.
type Service struct {
	validator        *validation.Validator
	transcoder       *records.Transcoder
	sinks            storage.SinkWriter
	maxBodySizeBytes int
}

func NewService(val *validation.Validator, trans *records.Transcoder, sinks storage.SinkWriter, maxBodySizeMB int) *Service {
	if val == nil {
		panic("ingestion: validator must not be nil")
	}
	if trans == nil {
		panic("ingestion: transcoder must not be nil")
	}
	if sinks == nil {
		panic("ingestion: sink writer must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		validator:        val,
		transcoder:       trans,
		sinks:            sinks,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers the push receiver endpoint.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/pubsub/push", s.PushHandler)
}

// process runs the full intake sequence for one delivery:
//
//	decode → validate → raw capture (always) → processed or error capture → resolve
//
// The raw append happens regardless of decode/validation outcome; error-sink
// failures are absorbed; only the combination of raw result and processing
// class decides the returned outcome.
func (s *Service) process(ctx context.Context, msg *pubsub.PushMessage) (Outcome, string) {
	payload, decodeErr := msg.DecodePayload()

	var evt *v1.EcommerceEvent
	var res validation.Result
	class := ClassOK
	if decodeErr != nil {
		class = ClassMalformed
	} else {
		evt, res = s.validator.Validate(payload)
		if !res.Valid() {
			class = ClassMalformed
		}
	}

	rawErr := s.sinks.AppendRaw(ctx, s.transcoder.Raw(msg, payload, res))
	if rawErr != nil {
		slog.Error("Raw sink append failed", "message_id", msg.MessageID, "error", rawErr)
	}

	var detail string
	switch {
	case decodeErr != nil:
		slog.Warn("Payload decode failed", "message_id", msg.MessageID, "error", decodeErr)
		s.appendError(ctx, s.transcoder.Error(msg, nil, records.StageDecode, decodeErr.Error(), nil))
		detail = "payload decode failed"

	case !res.Valid():
		slog.Warn("Schema validation failed",
			"message_id", msg.MessageID,
			"violations", len(res.Errors))
		s.appendError(ctx, s.transcoder.Error(msg, payload, records.StageValidation, "schema validation failed", res.Errors))
		detail = "schema validation failed"

	default:
		slog.Info("Received event",
			"message_id", msg.MessageID,
			"event_id", evt.EventID,
			"event_type", evt.EventType)

		if procErr := s.sinks.AppendProcessed(ctx, s.transcoder.Processed(evt)); procErr != nil {
			slog.Error("Processed sink append failed",
				"message_id", msg.MessageID,
				"event_id", evt.EventID,
				"error", procErr)
			class = ClassTransient
			s.appendError(ctx, s.transcoder.Error(msg, payload, records.StageProcessedWrite, procErr.Error(), nil))
			detail = "processed sink append failed"
		}
	}

	if rawErr != nil {
		detail = "raw sink append failed"
	}

	return Resolve(rawErr, class), detail
}

// appendError is best-effort: a failure to record an error record must never
// itself change the delivery outcome, or a broken error sink would cascade
// into infinite redelivery of otherwise-settled messages.
func (s *Service) appendError(ctx context.Context, rec *records.ErrorRecord) {
	if err := s.sinks.AppendError(ctx, rec); err != nil {
		slog.Error("Error sink append failed (absorbed)",
			"message_id", rec.MessageID,
			"stage", rec.Stage,
			"error", err)
	}
}
