package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
)

func TestClone_Independent(t *testing.T) {
	clicked := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	orig := &domain.Link{
		ShortCode:   "abc123",
		OriginalURL: "https://example.com",
		Clicks:      3,
		LastClicked: &clicked,
	}

	c := orig.Clone()
	require.NotNil(t, c.LastClicked)
	assert.Equal(t, *orig, *c)

	c.Clicks++
	*c.LastClicked = clicked.Add(time.Hour)

	assert.Equal(t, int64(3), orig.Clicks)
	assert.Equal(t, clicked, *orig.LastClicked)
}

func TestClone_NilLastClicked(t *testing.T) {
	c := (&domain.Link{ShortCode: "abc123"}).Clone()
	assert.Nil(t, c.LastClicked)
}

func TestNewLinkResponse(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := &domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com", CreatedAt: created}

	resp := domain.NewLinkResponse(l, "http://sho.rt")
	assert.Equal(t, "http://sho.rt/abc123", resp.ShortURL)
	require.NotNil(t, resp.CreatedAt)
	assert.Equal(t, created, *resp.CreatedAt)
	assert.Nil(t, resp.LastClicked)

	projected := domain.NewLinkResponse(&domain.Link{ShortCode: "abc123"}, "http://sho.rt")
	assert.Nil(t, projected.CreatedAt)
}
