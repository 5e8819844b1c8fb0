package dohdns

import (
	"fmt"
)

// RCode is the DNS response code returned in the Status field of a DoH
// response. Values as per
// https://www.iana.org/assignments/dns-parameters/dns-parameters.xhtml#dns-parameters-6
type RCode uint32

const (
	RCodeNoError RCode = iota
	RCodeFormErr
	RCodeServFail
	RCodeNXDomain
	RCodeNotImp
	RCodeRefused
	RCodeYXDomain
	RCodeYXRRSet
	RCodeNXRRSet
	RCodeNotAuth
	RCodeNotZone
	RCodeDSOTYPENI
	RCodeUnassigned12
	RCodeUnassigned13
	RCodeUnassigned14
	RCodeUnassigned15
	RCodeBadVers
	RCodeBadKey
	RCodeBadTime
	RCodeBadMode
	RCodeBadName
	RCodeBadAlg
	RCodeBadTrunc
	RCodeBadCookie

	// RCodeUnknown represents any status value outside the table above.
	RCodeUnknown
)

var rcodeText = map[RCode]string{
	RCodeNoError:      "No Error",
	RCodeFormErr:      "Format Error",
	RCodeServFail:     "Server Failure",
	RCodeNXDomain:     "Non-Existent Domain",
	RCodeNotImp:       "Not Implemented",
	RCodeRefused:      "Query Refused",
	RCodeYXDomain:     "Name Exists when it should not",
	RCodeYXRRSet:      "RR Set Exists when it should not",
	RCodeNXRRSet:      "RR Set that should exist does not",
	RCodeNotAuth:      "Server Not Authoritative for zone",
	RCodeNotZone:      "Name not contained in zone",
	RCodeDSOTYPENI:    "DSO-TYPE Not Implemented",
	RCodeUnassigned12: "Unassigned",
	RCodeUnassigned13: "Unassigned",
	RCodeUnassigned14: "Unassigned",
	RCodeUnassigned15: "Unassigned",
	RCodeBadVers:      "Bad OPT Version",
	RCodeBadKey:       "Key not recognized",
	RCodeBadTime:      "Signature out of time window",
	RCodeBadMode:      "Bad TKEY Mode",
	RCodeBadName:      "Duplicate key name",
	RCodeBadAlg:       "Algorithm not supported",
	RCodeBadTrunc:     "Bad Truncation",
	RCodeBadCookie:    "Bad/missing Server Cookie",
	RCodeUnknown:      "Unknown",
}

func (c RCode) String() string {
	if s, ok := rcodeText[c]; ok {
		return s
	}
	return fmt.Sprintf("Unknown (%d)", uint32(c))
}

// rcodeFromStatus maps the numeric Status value of a DoH response to an
// RCode. Values outside the assigned range collapse to RCodeUnknown.
func rcodeFromStatus(status uint32) RCode {
	if status <= uint32(RCodeBadCookie) {
		return RCode(status)
	}
	return RCodeUnknown
}
