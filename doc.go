/*
Package dohdns implements a client for the DNS-over-HTTPS JSON API as
served by Google and Cloudflare. Queries are sent as HTTPS GET requests
and answers are returned as typed records decoded from the JSON response.

A client is built from an ordered list of endpoints. Each endpoint carries
its own timeout, and a failed query is retried on the next endpoint in the
list when the failure is transient (connection errors, timeouts, and a
number of server-side HTTP status codes). Failures caused by the request
itself, such as a malformed name, are returned immediately without
involving further endpoints.

# Endpoints

Endpoints describe one DoH server each: its hostname, the path of the
resolve API, an optional fixed set of IP addresses, and the query timeout.
Fixed addresses are used to reach the resolver without relying on plain
DNS for the resolver's own hostname; when more than one address is given
they are used in round-robin fashion. Built-in endpoints for Google and
Cloudflare are provided, custom ones can be constructed directly.

# Record types

Queries are typed. The full table of supported record types is available
both by symbolic name and by IANA-assigned numeric code, and responses are
filtered down to the requested type. Address queries (A and AAAA) retain
CNAME records so alias chains remain visible, and the ANY pseudo-type
returns every record unfiltered. MX records can additionally be queried
pre-sorted by priority.
*/
package dohdns
