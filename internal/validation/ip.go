package validation

import (
	"net"
	"net/netip"
	"strings"
)

// Special-purpose IPv4 ranges the netip predicates do not cover.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
}

// checkHost rejects IP literals that point into private or reserved space.
// Hostnames pass untouched: nothing is resolved at validation time.
func checkHost(host string) error {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}
	hostname = strings.TrimSuffix(strings.TrimPrefix(hostname, "["), "]")

	addr, err := netip.ParseAddr(hostname)
	if err != nil {
		return nil
	}
	addr = addr.Unmap()

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}
	return nil
}
