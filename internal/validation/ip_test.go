package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHost(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		wantErr error
	}{
		{"hostname", "example.com", nil},
		{"hostname with port", "example.com:8080", nil},
		{"localhost hostname", "localhost", nil},
		{"public ipv4", "8.8.8.8", nil},
		{"public ipv4 with port", "8.8.8.8:80", nil},
		{"public ipv6", "[2001:4860:4860::8888]", nil},

		{"loopback ipv4 with port", "127.0.0.1:8080", ErrPrivateIPNotAllowed},
		{"loopback ipv6", "[::1]", ErrPrivateIPNotAllowed},
		{"loopback ipv6 with port", "[::1]:8080", ErrPrivateIPNotAllowed},
		{"private 172.31.x", "172.31.255.255", ErrPrivateIPNotAllowed},
		{"link-local ipv4", "169.254.1.1", ErrPrivateIPNotAllowed},
		{"cgnat upper", "100.127.255.255", ErrPrivateIPNotAllowed},
		{"outside cgnat", "100.128.0.1", nil},
		{"test-net-1", "192.0.2.1", ErrPrivateIPNotAllowed},
		{"test-net-2", "198.51.100.1", ErrPrivateIPNotAllowed},
		{"ietf protocol", "192.0.0.1", ErrPrivateIPNotAllowed},
		{"multicast", "224.0.0.1", ErrPrivateIPNotAllowed},
		{"unspecified ipv4", "0.0.0.0", ErrPrivateIPNotAllowed},
		{"unspecified ipv6", "[::]", ErrPrivateIPNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, checkHost(tt.host))
		})
	}
}
