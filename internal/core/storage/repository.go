package storage

import (
	"context"

	"github.com/streamcart-lab/streamcart/internal/records"
)

// SinkTables names the three append-only destinations. Sourced from
// configuration; the surrounding deployment owns the actual identifiers.
type SinkTables struct {
	Raw       string
	Processed string
	Error     string
}

// SinkWriter is the durable append interface over the three destinations.
//
// Each append is independent: a failure in one destination says nothing
// about the others, and callers aggregate outcomes themselves. Appends are
// plain inserts: concurrent invocations never coordinate, and redelivered
// duplicates land as additional rows.
type SinkWriter interface {
	// AppendRaw writes the unconditional forensic capture. This is the
	// durability floor: if it fails the whole delivery must be retried.
	AppendRaw(ctx context.Context, rec *records.RawRecord) error

	// AppendProcessed writes the typed projection of a valid event.
	// A failure here is treated as transient.
	AppendProcessed(ctx context.Context, rec *records.ProcessedRecord) error

	// AppendError writes one failure-stage capture. Best effort: callers
	// absorb failures rather than letting error bookkeeping block an ack.
	AppendError(ctx context.Context, rec *records.ErrorRecord) error
}
