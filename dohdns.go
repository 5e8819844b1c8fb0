package dohdns

// Resolve queries the given record type for a name. The answers are
// filtered to the requested type, in the order they were received, with two
// exceptions: TypeANY returns every record unfiltered, and A/AAAA queries
// retain CNAME records.
func (c *Client) Resolve(name string, rtype RType) ([]Answer, error) {
	res, err := c.query(name, rtype)
	if err != nil {
		return nil, err
	}
	if rc := rcodeFromStatus(res.Status); rc != RCodeNoError {
		return nil, &StatusError{RCode: rc}
	}
	return filterAnswers(res.Answer, rtype), nil
}

// ResolveStringType resolves a record type given by its symbolic name,
// case-insensitively. Unrecognized names fail with ErrInvalidRecordType.
func (c *Client) ResolveStringType(name, rtype string) ([]Answer, error) {
	t, err := TypeByName(rtype)
	if err != nil {
		return nil, err
	}
	return c.Resolve(name, t)
}

// ResolveMXSorted returns MX records in order of priority for the given
// name, with the priority removed from the data. Ties keep the order the
// records were received in.
func (c *Client) ResolveMXSorted(name string) ([]Answer, error) {
	res, err := c.query(name, TypeMX)
	if err != nil {
		return nil, err
	}
	if rc := rcodeFromStatus(res.Status); rc != RCodeNoError {
		return nil, &StatusError{RCode: rc}
	}
	return extractMXSorted(res.Answer), nil
}

// ResolveA queries host address records for the given name.
func (c *Client) ResolveA(name string) ([]Answer, error) { return c.Resolve(name, TypeA) }

// ResolveAAAA queries IP6 address records for the given name.
func (c *Client) ResolveAAAA(name string) ([]Answer, error) { return c.Resolve(name, TypeAAAA) }

// ResolveANY queries all record types for the given name.
func (c *Client) ResolveANY(name string) ([]Answer, error) { return c.Resolve(name, TypeANY) }

// ResolveCAA queries certification authority restriction records for the given name.
func (c *Client) ResolveCAA(name string) ([]Answer, error) { return c.Resolve(name, TypeCAA) }

// ResolveCDS queries child DS records for the given name.
func (c *Client) ResolveCDS(name string) ([]Answer, error) { return c.Resolve(name, TypeCDS) }

// ResolveCERT queries CERT records for the given name.
func (c *Client) ResolveCERT(name string) ([]Answer, error) { return c.Resolve(name, TypeCERT) }

// ResolveCNAME queries the canonical name for an alias for the given name.
func (c *Client) ResolveCNAME(name string) ([]Answer, error) { return c.Resolve(name, TypeCNAME) }

// ResolveDNAME queries DNAME records for the given name.
func (c *Client) ResolveDNAME(name string) ([]Answer, error) { return c.Resolve(name, TypeDNAME) }

// ResolveDNSKEY queries DNSKEY records for the given name.
func (c *Client) ResolveDNSKEY(name string) ([]Answer, error) { return c.Resolve(name, TypeDNSKEY) }

// ResolveDS queries delegation signer records for the given name.
func (c *Client) ResolveDS(name string) ([]Answer, error) { return c.Resolve(name, TypeDS) }

// ResolveHINFO queries host information records for the given name.
func (c *Client) ResolveHINFO(name string) ([]Answer, error) { return c.Resolve(name, TypeHINFO) }

// ResolveIPSECKEY queries IPSECKEY records for the given name.
func (c *Client) ResolveIPSECKEY(name string) ([]Answer, error) {
	return c.Resolve(name, TypeIPSECKEY)
}

// ResolveMX queries mail exchange records for the given name, in the order
// they were received and with the priority left in the data. Use
// ResolveMXSorted for records ordered by priority.
func (c *Client) ResolveMX(name string) ([]Answer, error) { return c.Resolve(name, TypeMX) }

// ResolveNAPTR queries naming authority pointer records for the given name.
func (c *Client) ResolveNAPTR(name string) ([]Answer, error) { return c.Resolve(name, TypeNAPTR) }

// ResolveNS queries authoritative name server records for the given name.
func (c *Client) ResolveNS(name string) ([]Answer, error) { return c.Resolve(name, TypeNS) }

// ResolveNSEC queries NSEC records for the given name.
func (c *Client) ResolveNSEC(name string) ([]Answer, error) { return c.Resolve(name, TypeNSEC) }

// ResolveNSEC3 queries NSEC3 records for the given name.
func (c *Client) ResolveNSEC3(name string) ([]Answer, error) { return c.Resolve(name, TypeNSEC3) }

// ResolveNSEC3PARAM queries NSEC3PARAM records for the given name.
func (c *Client) ResolveNSEC3PARAM(name string) ([]Answer, error) {
	return c.Resolve(name, TypeNSEC3PARAM)
}

// ResolvePTR queries domain name pointer records for the given name.
func (c *Client) ResolvePTR(name string) ([]Answer, error) { return c.Resolve(name, TypePTR) }

// ResolveRP queries responsible person records for the given name.
func (c *Client) ResolveRP(name string) ([]Answer, error) { return c.Resolve(name, TypeRP) }

// ResolveRRSIG queries RRSIG records for the given name.
func (c *Client) ResolveRRSIG(name string) ([]Answer, error) { return c.Resolve(name, TypeRRSIG) }

// ResolveSOA queries start of a zone of authority records for the given name.
func (c *Client) ResolveSOA(name string) ([]Answer, error) { return c.Resolve(name, TypeSOA) }

// ResolveSPF queries SPF records for the given name. See RFC7208.
func (c *Client) ResolveSPF(name string) ([]Answer, error) { return c.Resolve(name, TypeSPF) }

// ResolveSRV queries server selection records for the given name.
func (c *Client) ResolveSRV(name string) ([]Answer, error) { return c.Resolve(name, TypeSRV) }

// ResolveSSHFP queries SSH key fingerprint records for the given name.
func (c *Client) ResolveSSHFP(name string) ([]Answer, error) { return c.Resolve(name, TypeSSHFP) }

// ResolveTLSA queries TLSA records for the given name.
func (c *Client) ResolveTLSA(name string) ([]Answer, error) { return c.Resolve(name, TypeTLSA) }

// ResolveTXT queries text strings records for the given name.
func (c *Client) ResolveTXT(name string) ([]Answer, error) { return c.Resolve(name, TypeTXT) }

// ResolveWKS queries well known service description records for the given name.
func (c *Client) ResolveWKS(name string) ([]Answer, error) { return c.Resolve(name, TypeWKS) }
