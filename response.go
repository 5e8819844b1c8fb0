package dohdns

import (
	"sort"
	"strconv"
	"strings"
)

// Answer is a single record as returned by the DoH JSON API.
type Answer struct {
	// The name of the record.
	Name string `json:"name"`
	// The numeric record type. Use TypeName for a string representation.
	Type uint32 `json:"type"`
	// Time to live in seconds.
	TTL uint32 `json:"TTL"`
	// The data associated with the record.
	Data string `json:"data"`
}

// response is the JSON body of a successful HTTPS exchange with a DoH
// server. Only the fields consumed by this client are decoded; a missing
// Answer list is treated as empty.
type response struct {
	Status uint32   `json:"Status"`
	Answer []Answer `json:"Answer"`
}

// filterAnswers retains the answers matching the requested record type,
// preserving their order. The ANY pseudo-type passes everything through
// unfiltered, and address queries (A/AAAA) additionally retain CNAME
// records so alias chains stay visible.
func filterAnswers(answers []Answer, rtype RType) []Answer {
	if rtype.Code == TypeANY.Code {
		return answers
	}
	filtered := make([]Answer, 0, len(answers))
	for _, a := range answers {
		if a.Type == rtype.Code || allowCNAME(a, rtype) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func allowCNAME(a Answer, rtype RType) bool {
	if rtype.Code == TypeA.Code || rtype.Code == TypeAAAA.Code {
		return a.Type == TypeCNAME.Code
	}
	return false
}

// extractMXSorted parses the priority from MX record data, strips it, and
// sorts the records by it in ascending order. The sort is stable, records
// with equal priority keep the order they were received in. Records whose
// data doesn't parse as "<priority> <exchange>" are dropped.
func extractMXSorted(answers []Answer) []Answer {
	type prioritized struct {
		answer   Answer
		priority uint32
	}
	var mxs []prioritized
	for _, a := range answers {
		if a.Type != TypeMX.Code {
			continue
		}
		fields := strings.Fields(a.Data)
		if len(fields) < 2 {
			continue
		}
		priority, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			continue
		}
		a.Data = fields[1]
		mxs = append(mxs, prioritized{a, uint32(priority)})
	}
	sort.SliceStable(mxs, func(i, j int) bool {
		return mxs[i].priority < mxs[j].priority
	})
	out := make([]Answer, 0, len(mxs))
	for _, mx := range mxs {
		out = append(out, mx.answer)
	}
	return out
}
