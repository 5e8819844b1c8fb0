package dohdns

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const mxResponse = `{
  "Status": 0,
  "Answer": [
    {"name": "gmail.com.", "type": 15, "TTL": 3599, "data": "30 alt3.gmail-smtp-in.l.google.com."},
    {"name": "gmail.com.", "type": 15, "TTL": 3599, "data": "5 gmail-smtp-in.l.google.com."},
    {"name": "gmail.com.", "type": 15, "TTL": 3599, "data": "40 alt4.gmail-smtp-in.l.google.com."},
    {"name": "gmail.com.", "type": 15, "TTL": 3599, "data": "10 alt1.gmail-smtp-in.l.google.com."},
    {"name": "gmail.com.", "type": 15, "TTL": 3599, "data": "20 alt2.gmail-smtp-in.l.google.com."}
  ]
}`

func TestResolveMXSorted(t *testing.T) {
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mxResponse)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	answers, err := c.ResolveMXSorted("gmail.com")
	require.NoError(t, err)
	require.Len(t, answers, 5)
	want := []string{
		"gmail-smtp-in.l.google.com.",
		"alt1.gmail-smtp-in.l.google.com.",
		"alt2.gmail-smtp-in.l.google.com.",
		"alt3.gmail-smtp-in.l.google.com.",
		"alt4.gmail-smtp-in.l.google.com.",
	}
	for i, data := range want {
		require.Equal(t, data, answers[i].Data)
		require.Equal(t, "gmail.com.", answers[i].Name)
		require.Equal(t, uint32(15), answers[i].Type)
		require.Equal(t, uint32(3599), answers[i].TTL)
	}
}

func TestResolveMXUnsorted(t *testing.T) {
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, mxResponse)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	// Plain MX queries keep the received order and leave the data untouched
	answers, err := c.ResolveMX("gmail.com")
	require.NoError(t, err)
	require.Len(t, answers, 5)
	require.Equal(t, "30 alt3.gmail-smtp-in.l.google.com.", answers[0].Data)
	require.Equal(t, "5 gmail-smtp-in.l.google.com.", answers[1].Data)
	require.Equal(t, "40 alt4.gmail-smtp-in.l.google.com.", answers[2].Data)
	require.Equal(t, "10 alt1.gmail-smtp-in.l.google.com.", answers[3].Data)
	require.Equal(t, "20 alt2.gmail-smtp-in.l.google.com.", answers[4].Data)
}

func TestResolveStringType(t *testing.T) {
	var gotType string
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		fmt.Fprint(w, `{"Status":0}`)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	// Every supported type dispatches to the same query as the typed call
	for _, rt := range rtypes {
		_, err := c.ResolveStringType("example.com", rt.Name)
		require.NoError(t, err)
		require.Equal(t, rt.Name, gotType)
	}
}

func TestResolveStringTypeCaseInsensitive(t *testing.T) {
	var gotType string
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.URL.Query().Get("type")
		fmt.Fprint(w, `{"Status":0}`)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	for _, name := range []string{"MX", "mx", "Mx"} {
		_, err := c.ResolveStringType("example.com", name)
		require.NoError(t, err)
		require.Equal(t, "mx", gotType)
	}
}

func TestResolveStringTypeInvalid(t *testing.T) {
	var hits int
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"Status":0}`)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	// Fails fast, before any network activity
	_, err = c.ResolveStringType("example.com", "bogus")
	require.ErrorIs(t, err, ErrInvalidRecordType)
	require.Equal(t, 0, hits)
}

func TestResolveANYPassthrough(t *testing.T) {
	s := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
  "Status": 0,
  "Answer": [
    {"name": "example.com.", "type": 1, "TTL": 300, "data": "192.0.2.10"},
    {"name": "example.com.", "type": 15, "TTL": 300, "data": "10 mail.example.com."},
    {"name": "example.com.", "type": 16, "TTL": 300, "data": "\"text\""}
  ]
}`)
	}))
	defer s.Close()

	c, err := NewClient(testOptions(), testEndpoint(s))
	require.NoError(t, err)

	answers, err := c.ResolveANY("example.com")
	require.NoError(t, err)
	require.Len(t, answers, 3)
	require.Equal(t, uint32(1), answers[0].Type)
	require.Equal(t, uint32(15), answers[1].Type)
	require.Equal(t, uint32(16), answers[2].Type)
}
