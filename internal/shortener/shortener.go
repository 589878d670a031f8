package shortener

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/sqids/sqids-go"

	"shortlink/internal/config"
)

const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Largest multiple of len(Alphabet) that fits in a byte; bytes at or above it
// are discarded so every character is equally likely.
const rejectAbove = 256 - 256%len(Alphabet)

type Generator interface {
	Generate() (string, error)
}

type Option func(*options)

type options struct {
	entropy io.Reader
}

// WithEntropy replaces crypto/rand as the source of randomness.
func WithEntropy(r io.Reader) Option {
	return func(o *options) { o.entropy = r }
}

func New(cfg *config.ShortcodeConfig, opts ...Option) (Generator, error) {
	switch cfg.Strategy {
	case config.StrategySqids:
		return NewSqids(cfg.Length, opts...)
	case config.StrategyRandom, "":
		return NewRandom(cfg.Length, opts...)
	default:
		return nil, fmt.Errorf("unknown short code strategy %q", cfg.Strategy)
	}
}

func buildOptions(opts []Option) options {
	o := options{entropy: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Random draws every character independently and uniformly from Alphabet.
type Random struct {
	length  int
	entropy io.Reader
}

func NewRandom(length int, opts ...Option) (*Random, error) {
	if length < 1 {
		return nil, fmt.Errorf("short code length must be positive, got %d", length)
	}
	o := buildOptions(opts)
	return &Random{length: length, entropy: o.entropy}, nil
}

func (g *Random) Generate() (string, error) {
	code := make([]byte, 0, g.length)
	buf := make([]byte, g.length+g.length/2)

	for len(code) < g.length {
		if _, err := io.ReadFull(g.entropy, buf); err != nil {
			return "", fmt.Errorf("failed to read entropy: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			code = append(code, Alphabet[int(b)%len(Alphabet)])
			if len(code) == g.length {
				break
			}
		}
	}
	return string(code), nil
}

// Sqids encodes a random number with sqids, which pads to exactly the
// configured length and re-encodes around its profanity blocklist.
type Sqids struct {
	sqids   *sqids.Sqids
	limit   *big.Int
	entropy io.Reader
}

func NewSqids(length int, opts ...Option) (*Sqids, error) {
	if length < 2 || length > 255 {
		return nil, fmt.Errorf("sqids short code length must be in [2, 255], got %d", length)
	}

	s, err := sqids.New(sqids.Options{
		Alphabet:  Alphabet,
		MinLength: uint8(length),
	})
	if err != nil {
		return nil, err
	}

	// One character is the sqids prefix and the rest encode the number in
	// base len(Alphabet)-1, so numbers below this limit never exceed length.
	base := big.NewInt(int64(len(Alphabet) - 1))
	limit := new(big.Int).Exp(base, big.NewInt(int64(length-1)), nil)
	if limit.Cmp(new(big.Int).SetUint64(^uint64(0))) > 0 {
		limit.SetUint64(^uint64(0))
	}

	o := buildOptions(opts)
	return &Sqids{sqids: s, limit: limit, entropy: o.entropy}, nil
}

func (g *Sqids) Generate() (string, error) {
	n, err := rand.Int(g.entropy, g.limit)
	if err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}
	return g.sqids.Encode([]uint64{n.Uint64()})
}
