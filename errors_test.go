package dohdns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindFromHTTPStatus(t *testing.T) {
	tests := []struct {
		status    int
		kind      QueryErrorKind
		retryable bool
	}{
		{400, KindBadRequest, false},
		{413, KindPayloadTooLarge, false},
		{414, KindURITooLong, false},
		{415, KindUnsupportedMediaType, false},
		{501, KindNotImplemented, false},
		{429, KindTooManyRequests, true},
		{500, KindInternalServerError, true},
		{502, KindBadGateway, true},
		{504, KindResolverTimeout, true},
		// Anything else is unexpected and worth a try elsewhere
		{201, KindUnknown, true},
		{301, KindUnknown, true},
		{403, KindUnknown, true},
		{503, KindUnknown, true},
	}
	for _, test := range tests {
		kind := kindFromHTTPStatus(test.status)
		require.Equal(t, test.kind, kind, "status %d", test.status)
		require.Equal(t, test.retryable, kind.Retryable(), "status %d", test.status)
	}
}

func TestKindRetryable(t *testing.T) {
	require.True(t, KindConnection.Retryable())
	require.True(t, KindUnknown.Retryable())
	require.False(t, KindInvalidName.Retryable())
	require.False(t, KindInvalidEndpoint.Retryable())
	require.False(t, KindReadResponse.Retryable())
	require.False(t, KindParseResponse.Retryable())
}

func TestQueryErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &QueryError{Kind: KindConnection, Err: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection error")
	require.Contains(t, err.Error(), "connection refused")

	err = &QueryError{Kind: KindBadRequest}
	require.Equal(t, KindBadRequest.String(), err.Error())
}
