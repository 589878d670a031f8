package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/validation"
)

func newValidator(allowPrivate bool) *validation.Validator {
	return validation.New(validation.Options{
		MaxURLLength:    2048,
		AllowPrivateIPs: allowPrivate,
		MinCodeLength:   6,
		MaxCodeLength:   8,
	})
}

func TestValidateURL(t *testing.T) {
	v := newValidator(false)

	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{"valid http", "http://example.com", nil},
		{"valid https", "https://example.com", nil},
		{"valid with path", "https://example.com/path", nil},
		{"valid with query", "https://example.com/path?q=1", nil},
		{"valid with fragment", "https://example.com/path#section", nil},
		{"valid with port", "https://example.com:8080/path", nil},
		{"uppercase scheme", "HTTPS://example.com", nil},

		{"empty string", "", validation.ErrEmptyURL},
		{"whitespace only", "   ", validation.ErrEmptyURL},

		{"no scheme", "example.com", validation.ErrInvalidURLFormat},
		{"relative path", "/just/a/path", validation.ErrInvalidURLFormat},
		{"no host", "http://", validation.ErrInvalidURLFormat},
		{"ftp scheme", "ftp://example.com", validation.ErrInvalidURLFormat},
		{"bad escape", "http://example.com/%zz", validation.ErrInvalidURLFormat},

		{"javascript protocol", "javascript:alert(1)", validation.ErrUnsafeProtocol},
		{"data protocol", "data:text/html,<script>", validation.ErrUnsafeProtocol},
		{"file protocol", "file:///etc/passwd", validation.ErrUnsafeProtocol},
		{"blob protocol", "blob:http://example.com/uuid", validation.ErrUnsafeProtocol},

		{"loopback", "http://127.0.0.1/path", validation.ErrPrivateIPNotAllowed},
		{"private 10.x", "http://10.0.0.1/", validation.ErrPrivateIPNotAllowed},
		{"private 192.168.x with port", "http://192.168.1.1:8080/", validation.ErrPrivateIPNotAllowed},
		{"ipv6 loopback", "http://[::1]/", validation.ErrPrivateIPNotAllowed},
		{"ipv4-mapped ipv6", "http://[::ffff:10.0.0.1]/", validation.ErrPrivateIPNotAllowed},
		{"cgnat", "http://100.64.0.1/", validation.ErrPrivateIPNotAllowed},
		{"test-net-3", "http://203.0.113.7/", validation.ErrPrivateIPNotAllowed},

		{"public ipv4", "http://8.8.8.8/", nil},
		{"public ipv6", "http://[2001:4860:4860::8888]:443/", nil},
		{"localhost hostname", "http://localhost/", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, v.ValidateURL(tt.url))
		})
	}
}

func TestValidateURL_Length(t *testing.T) {
	v := validation.New(validation.Options{MaxURLLength: 100})

	assert.NoError(t, v.ValidateURL("https://example.com"))
	assert.Equal(t, validation.ErrURLTooLong, v.ValidateURL("https://example.com/"+strings.Repeat("a", 100)))
}

func TestValidateURL_AllowPrivateIPs(t *testing.T) {
	v := newValidator(true)

	for _, u := range []string{"http://127.0.0.1/", "http://10.0.0.1/", "http://[::1]/"} {
		assert.NoError(t, v.ValidateURL(u), u)
	}
}

func TestValidateCode(t *testing.T) {
	v := newValidator(false)

	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"min length", "abc123", nil},
		{"max length", "ABCdef78", nil},
		{"too short", "abc12", validation.ErrCodeLength},
		{"too long", "abcdefghi", validation.ErrCodeLength},
		{"empty", "", validation.ErrCodeLength},
		{"dash", "abc-123", validation.ErrCodeCharset},
		{"underscore", "abc_123", validation.ErrCodeCharset},
		{"space", "abc 123", validation.ErrCodeCharset},
		{"non-ascii", "abcé12", validation.ErrCodeCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, v.ValidateCode(tt.code))
		})
	}
}
