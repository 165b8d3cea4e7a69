package dream

import (
	"context"

	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=deleter_mock.go --case=underscore --with-expecter
type Deleter interface {
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type deleter struct {
	logger *logrus.Logger
	repo   domainDream.Repository
}

func NewDeleter(logger *logrus.Logger, repo domainDream.Repository) Deleter {
	return &deleter{
		logger: logger,
		repo:   repo,
	}
}

func (d *deleter) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := d.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	d.logger.WithFields(logrus.Fields{
		"dream_id": id,
		"user_id":  userID,
	}).Debug("dream deleted")
	return nil
}
