package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/domain"
)

// Business event names reported to the BusinessRecorder.
const (
	EventLinkCreated    = "links_created"
	EventLinkDeleted    = "links_deleted"
	EventRedirect       = "redirects"
	EventCacheHit       = "cache_hit"
	EventCacheMiss      = "cache_miss"
	EventCodeCollision  = "code_collisions"
	EventAllocExhausted = "allocation_exhausted"
)

const DefaultMaxAttempts = 5

type LinkService struct {
	store       Store
	generator   CodeGenerator
	validator   Validator
	cache       Cache
	recorder    BusinessRecorder
	logger      *slog.Logger
	maxAttempts int
	now         func() time.Time
}

type Option func(*LinkService)

// WithCache enables the read-through cache used by Resolve.
func WithCache(c Cache) Option {
	return func(s *LinkService) { s.cache = c }
}

func WithRecorder(r BusinessRecorder) Option {
	return func(s *LinkService) { s.recorder = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *LinkService) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *LinkService) { s.now = now }
}

// WithMaxAttempts bounds how many generated codes Create tries before giving up.
func WithMaxAttempts(n int) Option {
	return func(s *LinkService) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func NewLinkService(store Store, generator CodeGenerator, validator Validator, opts ...Option) *LinkService {
	s := &LinkService{
		store:       store,
		generator:   generator,
		validator:   validator,
		recorder:    nopRecorder{},
		logger:      slog.Default(),
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores originalURL under customCode, or under a freshly generated
// code when customCode is empty.
func (s *LinkService) Create(ctx context.Context, originalURL, customCode string) (*domain.Link, error) {
	if err := s.validator.ValidateURL(originalURL); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}

	if customCode != "" {
		if err := s.validator.ValidateCode(customCode); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCode, err)
		}

		link, err := s.insert(ctx, customCode, originalURL)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return nil, domain.ErrCodeExists
			}
			return nil, fmt.Errorf("failed to create link: %w", err)
		}
		return link, nil
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := s.generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		link, err := s.insert(ctx, code, originalURL)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create link: %w", err)
		}

		s.recorder.RecordBusiness(EventCodeCollision, 1)
		s.logger.DebugContext(ctx, "short code collision",
			slog.String("code", code),
			slog.Int("attempt", attempt),
		)
	}

	s.recorder.RecordBusiness(EventAllocExhausted, 1)
	s.logger.WarnContext(ctx, "short code allocation exhausted",
		slog.Int("attempts", s.maxAttempts),
	)
	return nil, domain.ErrAllocationExhausted
}

func (s *LinkService) insert(ctx context.Context, code, originalURL string) (*domain.Link, error) {
	link, err := s.store.InsertUnique(ctx, &domain.Link{
		ShortCode:   code,
		OriginalURL: originalURL,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(link.ShortCode, link.OriginalURL)
	}
	s.recorder.RecordBusiness(EventLinkCreated, 1)
	return link, nil
}

func (s *LinkService) List(ctx context.Context) ([]domain.Link, error) {
	links, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// Get returns the link without recording a click.
func (s *LinkService) Get(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// Resolve looks the link up and records one click against it. The click is
// always counted by the store, so a stale cache entry cannot produce one.
func (s *LinkService) Resolve(ctx context.Context, code string) (*domain.Link, error) {
	if err := s.lookup(ctx, code); err != nil {
		return nil, err
	}

	link, err := s.store.IncrementAndTouch(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.evict(code)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to record click: %w", err)
	}

	s.recorder.RecordBusiness(EventRedirect, 1)
	return link, nil
}

func (s *LinkService) lookup(ctx context.Context, code string) error {
	if s.cache != nil {
		if _, ok := s.cache.Get(code); ok {
			s.recorder.RecordBusiness(EventCacheHit, 1)
			return nil
		}
		s.recorder.RecordBusiness(EventCacheMiss, 1)
	}

	link, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Set(link.ShortCode, link.OriginalURL)
	}
	return nil
}

func (s *LinkService) Delete(ctx context.Context, code string) (*domain.Link, error) {
	link, err := s.store.DeleteByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.evict(code)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete link: %w", err)
	}

	s.evict(code)
	s.recorder.RecordBusiness(EventLinkDeleted, 1)
	return link, nil
}

func (s *LinkService) evict(code string) {
	if s.cache != nil {
		s.cache.Delete(code)
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordBusiness(string, float64) {}
