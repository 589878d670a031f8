package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/repository/memory"
	"shortlink/internal/repository/storetest"
)

func TestLinkStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T, clock *storetest.Clock) storetest.Store {
		return memory.New(memory.WithClock(clock.Now))
	})
}

func TestLinkStore_ReturnsCopies(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	_, err := s.InsertUnique(ctx, &domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com"})
	require.NoError(t, err)

	found, err := s.FindByCode(ctx, "abc123")
	require.NoError(t, err)
	found.OriginalURL = "https://evil.example"
	found.Clicks = 99

	again, err := s.FindByCode(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", again.OriginalURL)
	assert.Zero(t, again.Clicks)
}
