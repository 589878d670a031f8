package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"

	"shortlink/internal/domain"
)

// Timestamps are stored as Unix nanoseconds so local SQLite and remote
// libSQL round-trip them identically.
const schema = `
CREATE TABLE IF NOT EXISTS links (
	short_code   TEXT    PRIMARY KEY,
	original_url TEXT    NOT NULL,
	clicks       INTEGER NOT NULL DEFAULT 0 CHECK (clicks >= 0),
	last_clicked INTEGER NULL,
	created_at   INTEGER NOT NULL
) WITHOUT ROWID`

const linkColumns = "short_code, original_url, clicks, last_clicked, created_at"

type LinkStore struct {
	db  *sql.DB
	now func() time.Time
}

type Option func(*LinkStore)

func WithClock(now func() time.Time) Option {
	return func(s *LinkStore) { s.now = now }
}

// Open opens a local database file with modernc.org/sqlite, or a remote
// libSQL database when dsn is a libsql://, wss:// or https:// URL.
func Open(ctx context.Context, dsn string, opts ...Option) (*LinkStore, error) {
	driver := driverName(dsn)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == "sqlite" {
		// One writer connection; statements are serialized by SQLite anyway.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		for _, pragma := range []string{
			"PRAGMA busy_timeout = 5000",
			"PRAGMA journal_mode = WAL",
		} {
			if _, err := db.ExecContext(ctx, pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
			}
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &LinkStore{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func driverName(dsn string) string {
	for _, scheme := range []string{"libsql://", "wss://", "ws://", "https://", "http://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "libsql"
		}
	}
	return "sqlite"
}

func (s *LinkStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Stats reports connection pool usage.
func (s *LinkStore) Stats() sql.DBStats {
	return s.db.Stats()
}

func (s *LinkStore) Close() error {
	return s.db.Close()
}

func (s *LinkStore) InsertUnique(ctx context.Context, link *domain.Link) (*domain.Link, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO links (short_code, original_url, clicks, last_clicked, created_at)
		VALUES (?, ?, 0, NULL, ?)
		ON CONFLICT (short_code) DO NOTHING
		RETURNING `+linkColumns,
		link.ShortCode, link.OriginalURL, link.CreatedAt.UnixNano(),
	)

	inserted, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert link: %w", err)
	}
	return inserted, nil
}

func (s *LinkStore) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+linkColumns+` FROM links WHERE short_code = ?`, code)
	return collectLink(row, "find")
}

func (s *LinkStore) FindAll(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT short_code, original_url, clicks, last_clicked
		FROM links
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	defer rows.Close()

	var links []domain.Link
	for rows.Next() {
		var (
			l           domain.Link
			lastClicked sql.NullInt64
		)
		if err := rows.Scan(&l.ShortCode, &l.OriginalURL, &l.Clicks, &lastClicked); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		l.LastClicked = fromNullNanos(lastClicked)
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *LinkStore) IncrementAndTouch(ctx context.Context, code string) (*domain.Link, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE links
		SET clicks = clicks + 1, last_clicked = ?
		WHERE short_code = ?
		RETURNING `+linkColumns,
		s.now().UnixNano(), code,
	)
	return collectLink(row, "increment clicks for")
}

func (s *LinkStore) DeleteByCode(ctx context.Context, code string) (*domain.Link, error) {
	row := s.db.QueryRowContext(ctx, `DELETE FROM links WHERE short_code = ? RETURNING `+linkColumns, code)
	return collectLink(row, "delete")
}

func scanLink(row *sql.Row) (*domain.Link, error) {
	var (
		l           domain.Link
		lastClicked sql.NullInt64
		createdAt   int64
	)
	if err := row.Scan(&l.ShortCode, &l.OriginalURL, &l.Clicks, &lastClicked, &createdAt); err != nil {
		return nil, err
	}
	l.LastClicked = fromNullNanos(lastClicked)
	l.CreatedAt = time.Unix(0, createdAt).UTC()
	return &l, nil
}

func collectLink(row *sql.Row, op string) (*domain.Link, error) {
	link, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to %s link: %w", op, err)
	}
	return link, nil
}

func fromNullNanos(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := time.Unix(0, n.Int64).UTC()
	return &t
}
