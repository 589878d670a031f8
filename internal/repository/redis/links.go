package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

// Each link is a hash at <prefix>link:<code>; <prefix>links indexes the codes.
// Every mutation runs as a single Lua script, which Redis executes atomically.
var (
	insertScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'url', ARGV[2], 'clicks', 0, 'created_at', ARGV[3])
redis.call('SADD', KEYS[2], ARGV[1])
return 1
`)

	incrementScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
redis.call('HINCRBY', KEYS[1], 'clicks', 1)
redis.call('HSET', KEYS[1], 'last_clicked', ARGV[1])
return redis.call('HGETALL', KEYS[1])
`)

	deleteScript = redis.NewScript(`
local fields = redis.call('HGETALL', KEYS[1])
if #fields == 0 then
	return false
end
redis.call('DEL', KEYS[1])
redis.call('SREM', KEYS[2], ARGV[1])
return fields
`)
)

const (
	fieldURL         = "url"
	fieldClicks      = "clicks"
	fieldLastClicked = "last_clicked"
	fieldCreatedAt   = "created_at"
)

type LinkStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

type Option func(*LinkStore)

func WithClock(now func() time.Time) Option {
	return func(s *LinkStore) { s.now = now }
}

func WithKeyPrefix(prefix string) Option {
	return func(s *LinkStore) { s.prefix = prefix }
}

// Connect dials Redis and verifies the connection.
func Connect(ctx context.Context, cfg *config.RedisConfig, opts ...Option) (*LinkStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	opts = append([]Option{WithKeyPrefix(cfg.KeyPrefix)}, opts...)
	return New(client, opts...), nil
}

func New(client redis.UniversalClient, opts ...Option) *LinkStore {
	s := &LinkStore{client: client, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LinkStore) linkKey(code string) string {
	return s.prefix + "link:" + code
}

func (s *LinkStore) indexKey() string {
	return s.prefix + "links"
}

func (s *LinkStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Stats reports connection pool usage.
func (s *LinkStore) Stats() *redis.PoolStats {
	return s.client.PoolStats()
}

func (s *LinkStore) Close() error {
	return s.client.Close()
}

func (s *LinkStore) InsertUnique(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	keys := []string{s.linkKey(link.ShortCode), s.indexKey()}
	created := link.CreatedAt.UnixNano()

	inserted, err := insertScript.Run(ctx, s.client, keys, link.ShortCode, link.OriginalURL, created).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}
	if inserted == 0 {
		return nil, domain.ErrDuplicateKey
	}

	return &domain.Link{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   time.Unix(0, created).UTC(),
	}, nil
}

func (s *LinkStore) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	fields, err := s.client.HGetAll(ctx, s.linkKey(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrNotFound
	}
	return linkFromHash(code, fields)
}

func (s *LinkStore) FindAll(ctx context.Context) ([]domain.Link, error) {
	codes, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	if len(codes) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.SliceCmd, len(codes))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, code := range codes {
			cmds[i] = pipe.HMGet(ctx, s.linkKey(code), fieldURL, fieldClicks, fieldLastClicked)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	links := make([]domain.Link, 0, len(codes))
	for i, cmd := range cmds {
		vals := cmd.Val()
		if len(vals) != 3 || vals[0] == nil {
			continue // deleted between SMEMBERS and HMGET
		}
		fields := map[string]string{fieldURL: asString(vals[0]), fieldClicks: asString(vals[1])}
		if vals[2] != nil {
			fields[fieldLastClicked] = asString(vals[2])
		}
		link, err := linkFromHash(codes[i], fields)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, nil
}

func (s *LinkStore) IncrementAndTouch(ctx context.Context, code string) (*domain.Link, error) {
	keys := []string{s.linkKey(code)}
	return s.runLinkScript(ctx, incrementScript, keys, code, "increment clicks for", s.now().UnixNano())
}

func (s *LinkStore) DeleteByCode(ctx context.Context, code string) (*domain.Link, error) {
	keys := []string{s.linkKey(code), s.indexKey()}
	return s.runLinkScript(ctx, deleteScript, keys, code, "delete", code)
}

// runLinkScript runs a script that answers with HGETALL output, or false
// when the link does not exist.
func (s *LinkStore) runLinkScript(ctx context.Context, script *redis.Script, keys []string, code, op string, args ...any) (*domain.Link, error) {
	reply, err := script.Run(ctx, s.client, keys, args...).StringSlice()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to %s link: %w", op, err)
	}

	fields := make(map[string]string, len(reply)/2)
	for i := 0; i+1 < len(reply); i += 2 {
		fields[reply[i]] = reply[i+1]
	}
	return linkFromHash(code, fields)
}

func linkFromHash(code string, fields map[string]string) (*domain.Link, error) {
	link := &domain.Link{ShortCode: code, OriginalURL: fields[fieldURL]}

	if v, ok := fields[fieldClicks]; ok && v != "" {
		clicks, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt clicks for link %s: %w", code, err)
		}
		link.Clicks = clicks
	}
	if v, ok := fields[fieldLastClicked]; ok && v != "" {
		ns, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt last_clicked for link %s: %w", code, err)
		}
		t := time.Unix(0, ns).UTC()
		link.LastClicked = &t
	}
	if v, ok := fields[fieldCreatedAt]; ok && v != "" {
		ns, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt created_at for link %s: %w", code, err)
		}
		link.CreatedAt = time.Unix(0, ns).UTC()
	}
	return link, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
