package ingestion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	sinkErr := errors.New("connection refused")

	tests := []struct {
		name    string
		rawErr  error
		class   Class
		outcome Outcome
	}{
		{"valid event fully stored", nil, ClassOK, Ack},
		{"malformed data is acked, not retried", nil, ClassMalformed, Ack},
		{"transient processed failure retries", nil, ClassTransient, Retry},
		{"raw failure retries regardless of class ok", sinkErr, ClassOK, Retry},
		{"raw failure retries regardless of class malformed", sinkErr, ClassMalformed, Retry},
		{"raw failure retries regardless of class transient", sinkErr, ClassTransient, Retry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.outcome, Resolve(tc.rawErr, tc.class))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "ACK", Ack.String())
	require.Equal(t, "RETRY", Retry.String())
}
