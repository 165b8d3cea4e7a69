package usage_test

import (
	"context"
	"testing"
	"time"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainUsage "github.com/TaskGlass/dreamvault/pkg/domain/usage"
	usageMocks "github.com/TaskGlass/dreamvault/pkg/domain/usage/mocks"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type staticPlanResolver struct {
	plan string
	err  error
}

func (r *staticPlanResolver) Resolve(ctx context.Context, userID string) (string, error) {
	return r.plan, r.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func fixedClock(t time.Time) *appUsage.CheckerOpts {
	return &appUsage.CheckerOpts{TimeProvider: func() time.Time { return t }}
}

func TestCheckAndConsume_CountsDownToZeroThenDenies(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	periodStart, periodEnd := domainUsage.CurrentPeriod(now)

	repo := usageMocks.NewRepository(t)
	checker := appUsage.NewChecker(quietLogger(), repo, &staticPlanResolver{plan: plan.DreamLite}, fixedClock(now))

	ctx := context.Background()

	repo.On("EnsureRow", ctx, "user-1", periodStart, periodEnd).Return(nil).Times(6)
	for used := 1; used <= 5; used++ {
		repo.On("ConsumeIfBelow", ctx, "user-1", periodStart, plan.FeatureDreamInterpretation, 5).
			Return(used, true, nil).Once()
	}
	repo.On("ConsumeIfBelow", ctx, "user-1", periodStart, plan.FeatureDreamInterpretation, 5).
		Return(0, false, nil).Once()

	wantRemaining := []int{4, 3, 2, 1, 0}
	for i := 0; i < 5; i++ {
		result, err := checker.CheckAndConsume(ctx, "user-1", plan.FeatureDreamInterpretation)
		assert.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, wantRemaining[i], result.Remaining)
		assert.Equal(t, plan.DreamLite, result.Plan)
		assert.Equal(t, 5, result.Limit)
	}

	result, err := checker.CheckAndConsume(ctx, "user-1", plan.FeatureDreamInterpretation)
	assert.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, plan.DreamLite, result.Plan)
	assert.Equal(t, 5, result.Limit)
}

func TestCheckAndConsume_UnmeteredFeatureSkipsStorage(t *testing.T) {
	repo := usageMocks.NewRepository(t)
	checker := appUsage.NewChecker(quietLogger(), repo, &staticPlanResolver{plan: plan.DreamPro}, nil)

	result, err := checker.CheckAndConsume(context.Background(), "user-1", plan.FeatureDreamInterpretation)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.True(t, result.Unlimited)
	repo.AssertNotCalled(t, "ConsumeIfBelow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckAndConsume_StorageFailurePropagates(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	periodStart, periodEnd := domainUsage.CurrentPeriod(now)

	repo := usageMocks.NewRepository(t)
	checker := appUsage.NewChecker(quietLogger(), repo, &staticPlanResolver{plan: plan.DreamLite}, fixedClock(now))

	ctx := context.Background()
	storageErr := domain.NewStorageError("usage consume", assert.AnError)

	repo.On("EnsureRow", ctx, "user-1", periodStart, periodEnd).Return(nil)
	repo.On("ConsumeIfBelow", ctx, "user-1", periodStart, plan.FeatureDreamInterpretation, 5).
		Return(0, false, storageErr)

	result, err := checker.CheckAndConsume(ctx, "user-1", plan.FeatureDreamInterpretation)

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
}

func TestCheckAndConsume_MonthBoundaryStartsFreshPeriod(t *testing.T) {
	june := time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 1, 1, 0, 0, 0, time.UTC)
	juneStart, _ := domainUsage.CurrentPeriod(june)
	julyStart, julyEnd := domainUsage.CurrentPeriod(july)

	assert.NotEqual(t, juneStart, julyStart)

	repo := usageMocks.NewRepository(t)
	checker := appUsage.NewChecker(quietLogger(), repo, &staticPlanResolver{plan: plan.DreamLite}, fixedClock(july))

	ctx := context.Background()
	repo.On("EnsureRow", ctx, "user-1", julyStart, julyEnd).Return(nil)
	repo.On("ConsumeIfBelow", ctx, "user-1", julyStart, plan.FeatureDreamInterpretation, 5).
		Return(1, true, nil)

	result, err := checker.CheckAndConsume(ctx, "user-1", plan.FeatureDreamInterpretation)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, 4, result.Remaining)
}

func TestCheckAndConsume_PlanResolutionFailureFailsClosed(t *testing.T) {
	repo := usageMocks.NewRepository(t)
	resolver := &staticPlanResolver{err: domain.NewStorageError("subscription lookup", assert.AnError)}
	checker := appUsage.NewChecker(quietLogger(), repo, resolver, nil)

	result, err := checker.CheckAndConsume(context.Background(), "user-1", plan.FeatureDreamInterpretation)

	assert.Nil(t, result)
	assert.Error(t, err)
}
