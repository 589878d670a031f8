package service

//go:generate go tool mockery

import (
	"context"

	"shortlink/internal/domain"
)

type Store interface {
	InsertUnique(ctx context.Context, link *domain.Link) (*domain.Link, error)
	FindByCode(ctx context.Context, code string) (*domain.Link, error)
	FindAll(ctx context.Context) ([]domain.Link, error)
	IncrementAndTouch(ctx context.Context, code string) (*domain.Link, error)
	DeleteByCode(ctx context.Context, code string) (*domain.Link, error)
}

type CodeGenerator interface {
	Generate() (string, error)
}

type Validator interface {
	ValidateURL(rawURL string) error
	ValidateCode(code string) error
}

type Cache interface {
	Get(code string) (string, bool)
	Set(code, originalURL string)
	Delete(code string)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64)
}
