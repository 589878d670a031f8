package handler

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type LinkService interface {
	Create(ctx context.Context, originalURL, customCode string) (*domain.Link, error)
	List(ctx context.Context) ([]domain.Link, error)
	Get(ctx context.Context, code string) (*domain.Link, error)
	Resolve(ctx context.Context, code string) (*domain.Link, error)
	Delete(ctx context.Context, code string) (*domain.Link, error)
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
