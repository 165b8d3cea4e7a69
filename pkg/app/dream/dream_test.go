package dream_test

import (
	"context"
	"io"
	"testing"

	appDream "github.com/TaskGlass/dreamvault/pkg/app/dream"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainDream "github.com/TaskGlass/dreamvault/pkg/domain/dream"
	dreamMocks "github.com/TaskGlass/dreamvault/pkg/domain/dream/mocks"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestCreator_Create_SavesEntry(t *testing.T) {
	repo := dreamMocks.NewRepository(t)
	creator := appDream.NewCreator(quietLogger(), repo)

	ctx := context.Background()
	repo.On("Save", ctx, mock.MatchedBy(func(d *domainDream.Dream) bool {
		return d.UserID == "user-1" && d.Title == "Flying over the sea" && d.ID != uuid.Nil
	})).Return(nil)

	entry, err := creator.Create(ctx, "user-1", appDream.CreateInput{
		Title:   "  Flying over the sea  ",
		Content: "I was gliding above dark water toward a lighthouse.",
		Mood:    "calm",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Flying over the sea", entry.Title)
	assert.False(t, entry.HasInterpretation())
}

func TestCreator_Create_RejectsEmptyContent(t *testing.T) {
	repo := dreamMocks.NewRepository(t)
	creator := appDream.NewCreator(quietLogger(), repo)

	_, err := creator.Create(context.Background(), "user-1", appDream.CreateInput{
		Title:   "Untitled",
		Content: "   ",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyDreamText)
	repo.AssertNotCalled(t, "Save")
}

func TestFinder_ListByUser_ClampsPagination(t *testing.T) {
	repo := dreamMocks.NewRepository(t)
	finder := appDream.NewFinder(quietLogger(), repo)

	ctx := context.Background()
	repo.On("ListByUser", ctx, "user-1", 20, 0).Return([]domainDream.Dream{}, nil).Once()
	repo.On("ListByUser", ctx, "user-1", 100, 0).Return([]domainDream.Dream{}, nil).Once()

	_, err := finder.ListByUser(ctx, "user-1", 0, -5)
	assert.NoError(t, err)

	_, err = finder.ListByUser(ctx, "user-1", 500, 0)
	assert.NoError(t, err)
}

func TestFinder_GetByID_PropagatesNotFound(t *testing.T) {
	repo := dreamMocks.NewRepository(t)
	finder := appDream.NewFinder(quietLogger(), repo)

	ctx := context.Background()
	id := uuid.New()
	repo.On("GetByID", ctx, "user-1", id).Return(nil, domain.NewNotFoundError("dream", id))

	_, err := finder.GetByID(ctx, "user-1", id)

	assert.True(t, domain.IsNotFoundError(err))
}

func TestDeleter_Delete_RemovesOwnEntryOnly(t *testing.T) {
	repo := dreamMocks.NewRepository(t)
	deleter := appDream.NewDeleter(quietLogger(), repo)

	ctx := context.Background()
	id := uuid.New()
	repo.On("Delete", ctx, "user-2", id).Return(domain.NewNotFoundError("dream", id))

	err := deleter.Delete(ctx, "user-2", id)

	assert.True(t, domain.IsNotFoundError(err))
}
