package dohdns

import (
	"expvar"
	"fmt"
)

// Get an *expvar.Int with the given path.
func getVarInt(base string, id string, name string) *expvar.Int {
	fullname := fmt.Sprintf("dohdns.%s.%s.%s", base, id, name)
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Int)
	}
	return expvar.NewInt(fullname)
}

// Get an *expvar.Map with the given path.
func getVarMap(base string, id string, name string) *expvar.Map {
	fullname := fmt.Sprintf("dohdns.%s.%s.%s", base, id, name)
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Map)
	}
	return expvar.NewMap(fullname)
}

// EndpointMetrics hold expvar counters for one endpoint. Endpoints with the
// same domain share counters.
type EndpointMetrics struct {
	// Query count
	query *expvar.Int
	// Error count by failure stage
	err *expvar.Map
	// Response count by DNS status
	response *expvar.Map
}

func NewEndpointMetrics(id string) *EndpointMetrics {
	return &EndpointMetrics{
		query:    getVarInt("endpoint", id, "query"),
		err:      getVarMap("endpoint", id, "error"),
		response: getVarMap("endpoint", id, "response"),
	}
}
