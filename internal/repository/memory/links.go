// Package memory keeps links in process memory. It backs tests and
// single-instance deployments that can afford to lose data on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"shortlink/internal/domain"
)

type LinkStore struct {
	mu    sync.Mutex
	links map[string]*domain.Link
	now   func() time.Time
}

type Option func(*LinkStore)

func WithClock(now func() time.Time) Option {
	return func(s *LinkStore) { s.now = now }
}

func New(opts ...Option) *LinkStore {
	s := &LinkStore{
		links: make(map[string]*domain.Link),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LinkStore) Ping(context.Context) error { return nil }

func (s *LinkStore) Close() error { return nil }

func (s *LinkStore) InsertUnique(_ context.Context, link *domain.Link) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[link.ShortCode]; ok {
		return nil, domain.ErrDuplicateKey
	}

	stored := &domain.Link{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	}
	s.links[link.ShortCode] = stored
	return stored.Clone(), nil
}

func (s *LinkStore) FindByCode(_ context.Context, code string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return link.Clone(), nil
}

func (s *LinkStore) FindAll(context.Context) ([]domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	links := make([]domain.Link, 0, len(s.links))
	for _, l := range s.links {
		c := l.Clone()
		c.CreatedAt = time.Time{}
		links = append(links, *c)
	}
	return links, nil
}

func (s *LinkStore) IncrementAndTouch(_ context.Context, code string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	now := s.now()
	link.Clicks++
	link.LastClicked = &now
	return link.Clone(), nil
}

func (s *LinkStore) DeleteByCode(_ context.Context, code string) (*domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(s.links, code)
	return link, nil
}
