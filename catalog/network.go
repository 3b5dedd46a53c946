package catalog

import (
	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// IP accepts an IPv4 or IPv6 address.
func IP() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,ip"), veriform.WithName("ip"))
}

// IPv4 accepts an IPv4 address.
func IPv4() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,ip4_addr"), veriform.WithName("ipv4"))
}

// IPv6 accepts an IPv6 address.
func IPv6() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,ip6_addr"), veriform.WithName("ipv6"))
}

// Hostname accepts an RFC 1123 hostname.
func Hostname() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,hostname_rfc1123"), veriform.WithName("hostname"))
}

// MAC accepts a hardware MAC address.
func MAC() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,mac"), veriform.WithName("mac"))
}

// Port accepts an integer TCP/UDP port between 1 and 65535.
func Port() *veriform.Schema[float64] {
	t := engine.Refine(
		engine.Integer(""),
		"port",
		"a port number between 1 and 65535",
		"invalid_port",
		func(v any) bool {
			n := v.(float64)
			return n >= 1 && n <= 65535
		},
	)
	return veriform.New[float64](t, veriform.WithName("port"))
}
