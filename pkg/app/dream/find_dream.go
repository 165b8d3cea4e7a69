package dream

import (
	"context"

	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore --with-expecter
type Finder interface {
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domainDream.Dream, error)
	// ListByUser returns the user's journal newest first. Limits outside
	// [1, maxPageSize] are clamped.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domainDream.Dream, error)
}

type finder struct {
	logger *logrus.Logger
	repo   domainDream.Repository
}

func NewFinder(logger *logrus.Logger, repo domainDream.Repository) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
	}
}

func (f *finder) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domainDream.Dream, error) {
	return f.repo.GetByID(ctx, userID, id)
}

func (f *finder) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domainDream.Dream, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return f.repo.ListByUser(ctx, userID, limit, offset)
}
