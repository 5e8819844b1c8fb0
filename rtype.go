package dohdns

import (
	"strings"
)

// RType identifies a DNS record type, both by its IANA-assigned numeric
// code and by the symbolic name used in the DoH query URL.
type RType struct {
	Code uint32
	Name string
}

// String returns the uppercase symbolic name of the record type.
func (t RType) String() string {
	return strings.ToUpper(t.Name)
}

// Record types supported in queries. Codes as per
// https://www.iana.org/assignments/dns-parameters/dns-parameters.xhtml#dns-parameters-4
// with ANY being the pseudo-type matching every record in a response.
var (
	TypeA          = RType{1, "a"}
	TypeAAAA       = RType{28, "aaaa"}
	TypeANY        = RType{0, "any"}
	TypeCAA        = RType{257, "caa"}
	TypeCDS        = RType{59, "cds"}
	TypeCERT       = RType{37, "cert"}
	TypeCNAME      = RType{5, "cname"}
	TypeDNAME      = RType{39, "dname"}
	TypeDNSKEY     = RType{48, "dnskey"}
	TypeDS         = RType{43, "ds"}
	TypeHINFO      = RType{13, "hinfo"}
	TypeIPSECKEY   = RType{45, "ipseckey"}
	TypeMX         = RType{15, "mx"}
	TypeNAPTR      = RType{35, "naptr"}
	TypeNS         = RType{2, "ns"}
	TypeNSEC       = RType{47, "nsec"}
	TypeNSEC3      = RType{50, "nsec3"}
	TypeNSEC3PARAM = RType{51, "nsec3param"}
	TypePTR        = RType{12, "ptr"}
	TypeRP         = RType{17, "rp"}
	TypeRRSIG      = RType{46, "rrsig"}
	TypeSOA        = RType{6, "soa"}
	TypeSPF        = RType{99, "spf"}
	TypeSRV        = RType{33, "srv"}
	TypeSSHFP      = RType{44, "sshfp"}
	TypeTLSA       = RType{52, "tlsa"}
	TypeTXT        = RType{16, "txt"}
	TypeWKS        = RType{11, "wks"}
)

var rtypes = []RType{
	TypeA,
	TypeAAAA,
	TypeANY,
	TypeCAA,
	TypeCDS,
	TypeCERT,
	TypeCNAME,
	TypeDNAME,
	TypeDNSKEY,
	TypeDS,
	TypeHINFO,
	TypeIPSECKEY,
	TypeMX,
	TypeNAPTR,
	TypeNS,
	TypeNSEC,
	TypeNSEC3,
	TypeNSEC3PARAM,
	TypePTR,
	TypeRP,
	TypeRRSIG,
	TypeSOA,
	TypeSPF,
	TypeSRV,
	TypeSSHFP,
	TypeTLSA,
	TypeTXT,
	TypeWKS,
}

// TypeByName looks up a record type by its symbolic name, case-insensitively.
// Unrecognized names return ErrInvalidRecordType.
func TypeByName(name string) (RType, error) {
	name = strings.ToLower(name)
	for _, t := range rtypes {
		if t.Name == name {
			return t, nil
		}
	}
	return RType{}, ErrInvalidRecordType
}

// TypeName returns the uppercase symbolic name for a numeric record type
// code, or "UNKNOWN" if the code is not in the table.
func TypeName(code uint32) string {
	for _, t := range rtypes {
		if t.Code == code {
			return t.String()
		}
	}
	return "UNKNOWN"
}
