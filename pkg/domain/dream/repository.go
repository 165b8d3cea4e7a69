package dream

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=dream_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, dream *Dream) error
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*Dream, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Dream, error)
	SetInterpretation(ctx context.Context, userID string, id uuid.UUID, interpretation string) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
