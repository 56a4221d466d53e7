package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Protocol selects the transport scheme used to reach the storage endpoint.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

const (
	portHTTP  = 80
	portHTTPS = 443
)

// IsValid reports whether p is one of the supported protocols.
func (p Protocol) IsValid() bool {
	return p == ProtocolHTTP || p == ProtocolHTTPS
}

// Port returns the well-known port of the protocol, or 0 for an unknown one.
func (p Protocol) Port() int {
	switch p {
	case ProtocolHTTP:
		return portHTTP
	case ProtocolHTTPS:
		return portHTTPS
	default:
		return 0
	}
}

func (p Protocol) String() string {
	return string(p)
}

// UnmarshalYAML accepts only the lowercase protocol names.
func (p *Protocol) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	proto := Protocol(s)
	if !proto.IsValid() {
		return fmt.Errorf("line %d: unknown protocol %q, expected one of: http, https", value.Line, s)
	}

	*p = proto
	return nil
}
