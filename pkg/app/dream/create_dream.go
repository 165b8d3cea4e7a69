package dream

import (
	"context"
	"strings"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateInput carries the user-editable fields of a journal entry.
type CreateInput struct {
	Title   string
	Content string
	Mood    string
	Tags    string
}

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=creator_mock.go --case=underscore --with-expecter
type Creator interface {
	Create(ctx context.Context, userID string, input CreateInput) (*domainDream.Dream, error)
}

type creator struct {
	logger *logrus.Logger
	repo   domainDream.Repository
}

func NewCreator(logger *logrus.Logger, repo domainDream.Repository) Creator {
	return &creator{
		logger: logger,
		repo:   repo,
	}
}

func (c *creator) Create(ctx context.Context, userID string, input CreateInput) (*domainDream.Dream, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrEmptyDreamText
	}

	entry := &domainDream.Dream{
		ID:      uuid.New(),
		UserID:  userID,
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Mood:    input.Mood,
		Tags:    input.Tags,
	}

	if err := c.repo.Save(ctx, entry); err != nil {
		c.logger.WithError(err).Error("failed to save dream")
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"dream_id": entry.ID,
		"user_id":  userID,
	}).Debug("dream recorded")
	return entry, nil
}
