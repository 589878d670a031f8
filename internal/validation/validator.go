package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

type Options struct {
	MaxURLLength    int
	AllowPrivateIPs bool
	MinCodeLength   int
	MaxCodeLength   int
}

// Validator checks link targets and caller-chosen short codes.
type Validator struct {
	opts Options
}

func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

func (v *Validator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if v.opts.MaxURLLength > 0 && len(rawURL) > v.opts.MaxURLLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] || !parsed.IsAbs() || parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.opts.AllowPrivateIPs {
		return checkHost(parsed.Host)
	}
	return nil
}

func (v *Validator) ValidateCode(code string) error {
	if len(code) < v.opts.MinCodeLength || len(code) > v.opts.MaxCodeLength {
		return ErrCodeLength
	}
	if !IsAlphanumeric(code) {
		return ErrCodeCharset
	}
	return nil
}

// IsAlphanumeric reports whether s consists only of ASCII letters and digits.
func IsAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
