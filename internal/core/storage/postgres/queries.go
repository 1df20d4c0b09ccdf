package postgres

// SQL templates for the three sink appends. Table names come from
// configuration, so each template takes one quoted identifier; the adapter
// renders and prepares them once at startup.

const (
	// queryAppendRawTemplate inserts the unconditional raw capture.
	// No conflict target: redeliveries append additional rows on purpose.
	queryAppendRawTemplate = `
		INSERT INTO %s (
			message_id, event_id, publish_time, ingestion_time,
			raw_payload, source, attributes, is_valid, validation_errors
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	// queryAppendProcessedTemplate inserts the typed projection of a valid
	// event.
	queryAppendProcessedTemplate = `
		INSERT INTO %s (
			event_id, user_id, event_type, product_id, category,
			price, device, city, event_time, ingestion_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	// queryAppendErrorTemplate inserts one failure-stage capture.
	queryAppendErrorTemplate = `
		INSERT INTO %s (
			message_id, event_id, publish_time, ingestion_time, stage,
			error_message, error_details, raw_payload, attributes, source
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
)
