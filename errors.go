package dohdns

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidRecordType is returned when a symbolic record type name is not
// in the supported table.
var ErrInvalidRecordType = errors.New("invalid record type")

// ErrNoEndpoints is returned when a client is constructed without any
// endpoints to query.
var ErrNoEndpoints = errors.New("no endpoints given to resolve query")

// StatusError is returned when the DoH server answered the HTTPS exchange
// but signaled a DNS-level failure, such as a name that does not exist.
// It is never retried on another endpoint.
type StatusError struct {
	RCode RCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("DNS response error: %s", e.RCode)
}

// QueryErrorKind classifies failures that occur while building a request or
// exchanging it with a DoH server, before the DNS-level status is known.
type QueryErrorKind int

const (
	// KindUnknown covers unexpected results, such as HTTP status codes
	// outside the set documented by the DoH providers.
	KindUnknown QueryErrorKind = iota

	// KindInvalidName - the queried name cannot be encoded.
	KindInvalidName

	// KindInvalidEndpoint - the query URL could not be built.
	KindInvalidEndpoint

	// KindConnection - connecting to the server failed or the exchange
	// timed out.
	KindConnection

	// KindReadResponse - reading the response body failed.
	KindReadResponse

	// KindParseResponse - the response body is not valid JSON.
	KindParseResponse

	// HTTP status codes documented by Google and Cloudflare, see
	// https://developers.google.com/speed/public-dns/docs/doh and
	// https://developers.cloudflare.com/1.1.1.1/dns-over-https/request-structure
	KindBadRequest           // 400
	KindPayloadTooLarge      // 413
	KindURITooLong           // 414
	KindUnsupportedMediaType // 415
	KindTooManyRequests      // 429
	KindInternalServerError  // 500
	KindNotImplemented       // 501
	KindBadGateway           // 502
	KindResolverTimeout      // 504
)

var kindText = map[QueryErrorKind]string{
	KindUnknown:              "unknown query error",
	KindInvalidName:          "invalid name",
	KindInvalidEndpoint:      "invalid endpoint",
	KindConnection:           "connection error",
	KindReadResponse:         "error reading response",
	KindParseResponse:        "error parsing response",
	KindBadRequest:           "problems parsing the GET parameters, or an invalid DNS request message",
	KindPayloadTooLarge:      "an RFC 8484 POST request body exceeded the 512 byte maximum message size",
	KindURITooLong:           "the GET query header was too large or the dns parameter had a Base64Url encoded DNS message exceeding the 512 byte maximum message size",
	KindUnsupportedMediaType: "the POST body did not have an application/dns-message Content-Type header",
	KindTooManyRequests:      "the client has sent too many requests in a given amount of time",
	KindInternalServerError:  "internal DoH server error",
	KindNotImplemented:       "only GET and POST methods are implemented, other methods get this error",
	KindBadGateway:           "the DoH service could not contact the upstream resolvers",
	KindResolverTimeout:      "resolver timeout while waiting for the query response",
}

func (k QueryErrorKind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown query error"
}

// Retryable reports whether a failure of this kind is worth retrying on the
// next configured endpoint. Failures caused by the request itself would be
// identical on every server and are terminal; transient or server-specific
// trouble is not.
func (k QueryErrorKind) Retryable() bool {
	switch k {
	case KindConnection, KindTooManyRequests, KindInternalServerError, KindBadGateway, KindResolverTimeout, KindUnknown:
		return true
	}
	return false
}

// kindFromHTTPStatus maps a non-200 HTTP response status to an error kind.
func kindFromHTTPStatus(code int) QueryErrorKind {
	switch code {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case http.StatusRequestURITooLong:
		return KindURITooLong
	case http.StatusUnsupportedMediaType:
		return KindUnsupportedMediaType
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	case http.StatusInternalServerError:
		return KindInternalServerError
	case http.StatusNotImplemented:
		return KindNotImplemented
	case http.StatusBadGateway:
		return KindBadGateway
	case http.StatusGatewayTimeout:
		return KindResolverTimeout
	}
	return KindUnknown
}

// QueryError is the error returned for failures at the transport or
// formatting layer. Err, when set, carries the underlying cause.
type QueryError struct {
	Kind QueryErrorKind
	Err  error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
