// Package storetest holds the behaviour every link store must share. Store
// packages run it from their own tests against a fresh store per case.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
)

type Store interface {
	InsertUnique(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	FindAll(ctx context.Context) ([]domain.Link, error)
	IncrementAndTouch(ctx context.Context, code string) (*domain.Link, error)
	DeleteByCode(ctx context.Context, code string) (*domain.Link, error)
}

// Clock hands out strictly increasing whole-second timestamps so every
// backend stores them without loss of precision.
type Clock struct {
	mu   sync.Mutex
	next time.Time
	seen []time.Time
}

func NewClock() *Clock {
	return &Clock{next: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(time.Second)
	c.seen = append(c.seen, t)
	return t
}

// Issued returns every timestamp handed out so far.
func (c *Clock) Issued() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Time(nil), c.seen...)
}

// Factory builds an empty store that reads the current time from clock.
type Factory func(t *testing.T, clock *Clock) Store

var createdAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newLink(code string) *domain.Link {
	return &domain.Link{ShortCode: code, OriginalURL: "https://example.com/" + code, CreatedAt: createdAt}
}

func Run(t *testing.T, factory Factory) {
	t.Run("InsertThenFind", func(t *testing.T) {
		s := factory(t, NewClock())
		ctx := context.Background()

		inserted, err := s.InsertUnique(ctx, newLink("abc123"))
		require.NoError(t, err)
		assert.Equal(t, "abc123", inserted.ShortCode)
		assert.Equal(t, "https://example.com/abc123", inserted.OriginalURL)
		assert.Zero(t, inserted.Clicks)
		assert.Nil(t, inserted.LastClicked)
		assert.True(t, createdAt.Equal(inserted.CreatedAt), "created_at %v", inserted.CreatedAt)

		found, err := s.FindByCode(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, inserted.ShortCode, found.ShortCode)
		assert.Equal(t, inserted.OriginalURL, found.OriginalURL)
		assert.Zero(t, found.Clicks)
		assert.Nil(t, found.LastClicked)
	})

	t.Run("FindMissing", func(t *testing.T) {
		s := factory(t, NewClock())

		_, err := s.FindByCode(context.Background(), "nope42")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("InsertDuplicate", func(t *testing.T) {
		s := factory(t, NewClock())
		ctx := context.Background()

		_, err := s.InsertUnique(ctx, newLink("dup123"))
		require.NoError(t, err)

		second := newLink("dup123")
		second.OriginalURL = "https://other.example.com"
		_, err = s.InsertUnique(ctx, second)
		assert.ErrorIs(t, err, domain.ErrDuplicateKey)

		found, err := s.FindByCode(ctx, "dup123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/dup123", found.OriginalURL, "existing link must not be overwritten")
	})

	t.Run("ConcurrentInsertSameCode", func(t *testing.T) {
		s := factory(t, NewClock())
		ctx := context.Background()

		const writers = 16
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			dups      int
			other     []error
		)
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				link := newLink("race01")
				link.OriginalURL = fmt.Sprintf("https://example.com/writer/%d", i)
				_, err := s.InsertUnique(ctx, link)

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case errors.Is(err, domain.ErrDuplicateKey):
					dups++
				default:
					other = append(other, err)
				}
			}()
		}
		wg.Wait()

		require.Empty(t, other)
		assert.Equal(t, 1, successes)
		assert.Equal(t, writers-1, dups)
	})

	t.Run("IncrementAndTouch", func(t *testing.T) {
		clock := NewClock()
		s := factory(t, clock)
		ctx := context.Background()

		_, err := s.InsertUnique(ctx, newLink("inc123"))
		require.NoError(t, err)

		first, err := s.IncrementAndTouch(ctx, "inc123")
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.Clicks)
		require.NotNil(t, first.LastClicked)

		second, err := s.IncrementAndTouch(ctx, "inc123")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.Clicks)
		require.NotNil(t, second.LastClicked)
		assert.True(t, second.LastClicked.After(*first.LastClicked))

		issued := clock.Issued()
		require.NotEmpty(t, issued)
		assert.True(t, issued[len(issued)-1].Equal(*second.LastClicked))

		found, err := s.FindByCode(ctx, "inc123")
		require.NoError(t, err)
		assert.Equal(t, int64(2), found.Clicks)
		assert.Equal(t, "https://example.com/inc123", found.OriginalURL)
	})

	t.Run("IncrementMissing", func(t *testing.T) {
		s := factory(t, NewClock())

		_, err := s.IncrementAndTouch(context.Background(), "nope42")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ConcurrentIncrement", func(t *testing.T) {
		clock := NewClock()
		s := factory(t, clock)
		ctx := context.Background()

		_, err := s.InsertUnique(ctx, newLink("hot123"))
		require.NoError(t, err)

		const callers = 50
		var wg sync.WaitGroup
		errs := make(chan error, callers)
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.IncrementAndTouch(ctx, "hot123"); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		found, err := s.FindByCode(ctx, "hot123")
		require.NoError(t, err)
		assert.Equal(t, int64(callers), found.Clicks)
		require.NotNil(t, found.LastClicked)

		var matched bool
		for _, ts := range clock.Issued() {
			if ts.Equal(*found.LastClicked) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "last_clicked %v was not issued by any call", found.LastClicked)
	})

	t.Run("DeleteByCode", func(t *testing.T) {
		s := factory(t, NewClock())
		ctx := context.Background()

		_, err := s.InsertUnique(ctx, newLink("del123"))
		require.NoError(t, err)
		_, err = s.IncrementAndTouch(ctx, "del123")
		require.NoError(t, err)

		deleted, err := s.DeleteByCode(ctx, "del123")
		require.NoError(t, err)
		assert.Equal(t, "del123", deleted.ShortCode)
		assert.Equal(t, int64(1), deleted.Clicks)

		_, err = s.FindByCode(ctx, "del123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = s.IncrementAndTouch(ctx, "del123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = s.DeleteByCode(ctx, "del123")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		reused, err := s.InsertUnique(ctx, newLink("del123"))
		require.NoError(t, err)
		assert.Zero(t, reused.Clicks)
		assert.Nil(t, reused.LastClicked)
	})

	t.Run("FindAll", func(t *testing.T) {
		s := factory(t, NewClock())
		ctx := context.Background()

		empty, err := s.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		for _, code := range []string{"list01", "list02", "list03"} {
			_, err := s.InsertUnique(ctx, newLink(code))
			require.NoError(t, err)
		}
		_, err = s.IncrementAndTouch(ctx, "list02")
		require.NoError(t, err)

		links, err := s.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, links, 3)

		byCode := make(map[string]domain.Link, len(links))
		for _, l := range links {
			byCode[l.ShortCode] = l
			assert.True(t, l.CreatedAt.IsZero(), "created_at is not part of the listing projection")
		}
		assert.Equal(t, "https://example.com/list01", byCode["list01"].OriginalURL)
		assert.Equal(t, int64(1), byCode["list02"].Clicks)
		assert.NotNil(t, byCode["list02"].LastClicked)
		assert.Nil(t, byCode["list03"].LastClicked)
	})
}
