package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS links (
	short_code   VARCHAR(32) PRIMARY KEY,
	original_url TEXT        NOT NULL,
	clicks       BIGINT      NOT NULL DEFAULT 0 CHECK (clicks >= 0),
	last_clicked TIMESTAMPTZ NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const linkColumns = "short_code, original_url, clicks, last_clicked, created_at"

type LinkStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

type Option func(*LinkStore)

func WithClock(now func() time.Time) Option {
	return func(s *LinkStore) { s.now = now }
}

// New connects to Postgres and makes sure the links table exists.
func New(ctx context.Context, cfg *config.DatabaseConfig, opts ...Option) (*LinkStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := NewWithPool(pool, opts...)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func NewWithPool(pool *pgxpool.Pool, opts ...Option) *LinkStore {
	s := &LinkStore{pool: pool, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LinkStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *LinkStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *LinkStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *LinkStore) Close() error {
	s.pool.Close()
	return nil
}

// InsertUnique relies on the primary key: a conflicting insert returns no
// row instead of overwriting.
func (s *LinkStore) InsertUnique(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	rows, err := s.pool.Query(ctx, `
		INSERT INTO links (short_code, original_url, clicks, last_clicked, created_at)
		VALUES ($1, $2, 0, NULL, $3)
		ON CONFLICT (short_code) DO NOTHING
		RETURNING `+linkColumns,
		link.ShortCode, link.OriginalURL, link.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}

	inserted, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Link])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}
	return inserted, nil
}

func (s *LinkStore) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+linkColumns+` FROM links WHERE short_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return collectLink(rows, "find")
}

// FindAll returns every link without created_at.
func (s *LinkStore) FindAll(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT short_code, original_url, clicks, last_clicked
		FROM links
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	links, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[domain.Link])
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *LinkStore) IncrementAndTouch(ctx context.Context, code string) (*domain.Link, error) {
	rows, err := s.pool.Query(ctx, `
		UPDATE links
		SET clicks = clicks + 1, last_clicked = $2
		WHERE short_code = $1
		RETURNING `+linkColumns,
		code, s.now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to increment clicks: %w", err)
	}
	return collectLink(rows, "increment clicks for")
}

func (s *LinkStore) DeleteByCode(ctx context.Context, code string) (*domain.Link, error) {
	rows, err := s.pool.Query(ctx, `DELETE FROM links WHERE short_code = $1 RETURNING `+linkColumns, code)
	if err != nil {
		return nil, fmt.Errorf("failed to delete link: %w", err)
	}
	return collectLink(rows, "delete")
}

func collectLink(rows pgx.Rows, op string) (*domain.Link, error) {
	link, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[domain.Link])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to %s link: %w", op, err)
	}
	return link, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
