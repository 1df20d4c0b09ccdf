package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/streamcart-lab/streamcart/internal/records"
)

var testTime = time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)

func renderedQueries() (rawQ, procQ, errQ string) {
	rawQ = fmt.Sprintf(queryAppendRawTemplate, pq.QuoteIdentifier("raw_events"))
	procQ = fmt.Sprintf(queryAppendProcessedTemplate, pq.QuoteIdentifier("processed_events"))
	errQ = fmt.Sprintf(queryAppendErrorTemplate, pq.QuoteIdentifier("error_events"))
	return rawQ, procQ, errQ
}

// newMockAdapter builds an adapter over sqlmock with the default sink
// tables, registering the three prepare expectations the constructor would
// issue.
func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	rawQ, procQ, errQ := renderedQueries()
	mock.ExpectPrepare(regexp.QuoteMeta(rawQ))
	mock.ExpectPrepare(regexp.QuoteMeta(procQ))
	mock.ExpectPrepare(regexp.QuoteMeta(errQ))

	stmtRaw, err := db.Prepare(rawQ)
	require.NoError(t, err)
	stmtProc, err := db.Prepare(procQ)
	require.NoError(t, err)
	stmtErr, err := db.Prepare(errQ)
	require.NoError(t, err)

	adapter := &Adapter{
		db:             db,
		stmtAppendRaw:  stmtRaw,
		stmtAppendProc: stmtProc,
		stmtAppendErr:  stmtErr,
	}
	return adapter, mock, db
}

func TestAdapter_AppendRaw(t *testing.T) {
	rawQ, _, _ := renderedQueries()
	eventID := "evt-1"

	tests := []struct {
		name       string
		record     *records.RawRecord
		mockResult func(mock sqlmock.Sqlmock)
		assertions func(t *testing.T, err error)
	}{
		{
			name: "valid record",
			record: &records.RawRecord{
				MessageID:     "msg-1",
				EventID:       &eventID,
				PublishTime:   &testTime,
				IngestionTime: testTime,
				RawPayload:    []byte(`{"event_id":"evt-1"}`),
				Source:        "pubsub",
				Attributes:    map[string]string{"producer": "test"},
				IsValid:       true,
			},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(rawQ)).
					WithArgs(
						"msg-1",
						&eventID,
						&testTime,
						testTime,
						[]byte(`{"event_id":"evt-1"}`),
						"pubsub",
						[]byte(`{"producer":"test"}`),
						true,
						[]byte(nil),
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "decode-failure record has null payload and event id",
			record: &records.RawRecord{
				MessageID:     "msg-2",
				IngestionTime: testTime,
				Source:        "pubsub",
				IsValid:       false,
			},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(rawQ)).
					WithArgs(
						"msg-2",
						nil,
						nil,
						testTime,
						[]byte(nil),
						"pubsub",
						[]byte(nil),
						false,
						[]byte(nil),
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "invalid record carries validation errors",
			record: &records.RawRecord{
				MessageID:        "msg-3",
				IngestionTime:    testTime,
				RawPayload:       []byte(`{"user_id":"U1"}`),
				Source:           "pubsub",
				IsValid:          false,
				ValidationErrors: []string{"event_id: required"},
			},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(rawQ)).
					WithArgs(
						"msg-3",
						nil,
						nil,
						testTime,
						[]byte(`{"user_id":"U1"}`),
						"pubsub",
						[]byte(nil),
						false,
						[]byte(`["event_id: required"]`),
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertions: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "insert failure wraps",
			record: &records.RawRecord{
				MessageID:     "msg-4",
				IngestionTime: testTime,
				Source:        "pubsub",
			},
			mockResult: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(rawQ)).
					WillReturnError(errors.New("connection reset"))
			},
			assertions: func(t *testing.T, err error) {
				require.Error(t, err)
				require.ErrorContains(t, err, "failed to append raw record")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, mock, db := newMockAdapter(t)
			defer db.Close()

			tc.mockResult(mock)

			err := adapter.AppendRaw(context.Background(), tc.record)
			tc.assertions(t, err)

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdapter_AppendProcessed(t *testing.T) {
	_, procQ, _ := renderedQueries()

	rec := &records.ProcessedRecord{
		EventID:       "evt-1",
		UserID:        "U123",
		EventType:     "purchase",
		ProductID:     "P456",
		Category:      "electronics",
		Price:         decimal.RequireFromString("1999.99"),
		Device:        "mobile",
		City:          "Hyderabad",
		EventTime:     testTime,
		IngestionTime: testTime,
	}

	t.Run("success", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(procQ)).
			WithArgs(
				"evt-1", "U123", "purchase", "P456", "electronics",
				sqlmock.AnyArg(), "mobile", "Hyderabad", testTime, testTime,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, adapter.AppendProcessed(context.Background(), rec))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure wraps", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(procQ)).
			WillReturnError(errors.New("timeout"))

		err := adapter.AppendProcessed(context.Background(), rec)
		require.ErrorContains(t, err, "failed to append processed record")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_AppendError(t *testing.T) {
	_, _, errQ := renderedQueries()
	eventID := "evt-1"

	rec := &records.ErrorRecord{
		MessageID:     "msg-1",
		EventID:       &eventID,
		IngestionTime: testTime,
		Stage:         records.StageValidation,
		ErrorMessage:  "schema validation failed",
		ErrorDetails:  []byte(`[{"field":"price","reason":"required"}]`),
		RawPayload:    []byte(`{"event_id":"evt-1"}`),
		Source:        "pubsub",
	}

	t.Run("success", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(errQ)).
			WithArgs(
				"msg-1",
				&eventID,
				nil,
				testTime,
				"validation",
				"schema validation failed",
				[]byte(`[{"field":"price","reason":"required"}]`),
				[]byte(`{"event_id":"evt-1"}`),
				[]byte(nil),
				"pubsub",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, adapter.AppendError(context.Background(), rec))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure wraps", func(t *testing.T) {
		adapter, mock, db := newMockAdapter(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta(errQ)).
			WillReturnError(errors.New("disk full"))

		err := adapter.AppendError(context.Background(), rec)
		require.ErrorContains(t, err, "failed to append error record")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdapter_Close(t *testing.T) {
	adapter, mock, _ := newMockAdapter(t)

	mock.ExpectClose()
	require.NoError(t, adapter.Close())
	require.NoError(t, mock.ExpectationsWereMet())
}
