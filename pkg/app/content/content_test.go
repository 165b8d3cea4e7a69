package content_test

import (
	"context"
	"io"
	"testing"
	"time"

	appContent "github.com/TaskGlass/dreamvault/pkg/app/content"
	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	usageMocks "github.com/TaskGlass/dreamvault/pkg/app/usage/mocks"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	cacheMocks "github.com/TaskGlass/dreamvault/pkg/infra/cache/mocks"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	providerMocks "github.com/TaskGlass/dreamvault/pkg/infra/providers/mocks"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func fixedClock(t time.Time) *appUsage.CheckerOpts {
	return &appUsage.CheckerOpts{TimeProvider: func() time.Time { return t }}
}

func allowed(remaining int) *appUsage.Result {
	return &appUsage.Result{Allowed: true, Remaining: remaining, Plan: plan.DreamLite, Limit: 30}
}

func TestNormalizeSign(t *testing.T) {
	sign, err := appContent.NormalizeSign("  Scorpio ")
	assert.NoError(t, err)
	assert.Equal(t, "scorpio", sign)

	_, err = appContent.NormalizeSign("ophiuchus")
	assert.ErrorIs(t, err, domain.ErrInvalidZodiac)
}

func TestHoroscoper_CacheHitSkipsProvider(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	releaser := usageMocks.NewReleaser(t)
	cacheClient := cacheMocks.NewClient(t)
	provider := providerMocks.NewClient(t)

	service := appContent.NewHoroscoper(
		quietLogger(), cacheClient, checker, releaser, provider,
		"openai", &providers.Config{Model: "gpt-4o-mini"}, fixedClock(now),
	)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureDailyHoroscope).
		Return(allowed(17), nil)
	cacheClient.On("Get", ctx, "horoscope:leo:2025-06-10").
		Return("A bright day for rest.", nil)

	daily, err := service.DailyHoroscope(ctx, "user-1", "Leo")

	assert.NoError(t, err)
	assert.Equal(t, "A bright day for rest.", daily.Text)
	assert.Equal(t, "2025-06-10", daily.Date)
	assert.Equal(t, 17, daily.Quota.Remaining)
	provider.AssertNotCalled(t, "Ask")
}

func TestHoroscoper_CacheMissGeneratesAndStores(t *testing.T) {
	now := time.Date(2025, time.June, 10, 21, 30, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	releaser := usageMocks.NewReleaser(t)
	cacheClient := cacheMocks.NewClient(t)
	provider := providerMocks.NewClient(t)

	service := appContent.NewHoroscoper(
		quietLogger(), cacheClient, checker, releaser, provider,
		"openai", &providers.Config{Model: "gpt-4o-mini"}, fixedClock(now),
	)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureDailyHoroscope).
		Return(allowed(29), nil)
	cacheClient.On("Get", ctx, "horoscope:aries:2025-06-10").
		Return("", redis.Nil)
	provider.On("Ask", ctx, mock.Anything, mock.Anything).
		Return(&providers.CompletionResponse{Response: "Mars favors an early night."}, nil)
	cacheClient.On("Set", ctx, "horoscope:aries:2025-06-10", "Mars favors an early night.", 2*time.Hour+30*time.Minute).
		Return(nil)

	daily, err := service.DailyHoroscope(ctx, "user-1", "aries")

	assert.NoError(t, err)
	assert.Equal(t, "Mars favors an early night.", daily.Text)
}

func TestHoroscoper_InvalidSignCostsNothing(t *testing.T) {
	checker := usageMocks.NewChecker(t)
	service := appContent.NewHoroscoper(
		quietLogger(), cacheMocks.NewClient(t), checker, usageMocks.NewReleaser(t),
		providerMocks.NewClient(t), "openai", &providers.Config{}, nil,
	)

	_, err := service.DailyHoroscope(context.Background(), "user-1", "dragon")

	assert.ErrorIs(t, err, domain.ErrInvalidZodiac)
	checker.AssertNotCalled(t, "CheckAndConsume")
}

func TestHoroscoper_ProviderFailureRefundsUnit(t *testing.T) {
	now := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	releaser := usageMocks.NewReleaser(t)
	cacheClient := cacheMocks.NewClient(t)
	provider := providerMocks.NewClient(t)

	service := appContent.NewHoroscoper(
		quietLogger(), cacheClient, checker, releaser, provider,
		"openai", &providers.Config{}, fixedClock(now),
	)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureDailyHoroscope).
		Return(allowed(10), nil)
	cacheClient.On("Get", ctx, "horoscope:virgo:2025-06-10").
		Return("", redis.Nil)
	provider.On("Ask", ctx, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	releaser.On("Release", ctx, "user-1", plan.FeatureDailyHoroscope).Return(nil)

	_, err := service.DailyHoroscope(ctx, "user-1", "virgo")

	assert.Error(t, err)
}

func TestHoroscoper_QuotaExhausted(t *testing.T) {
	checker := usageMocks.NewChecker(t)
	service := appContent.NewHoroscoper(
		quietLogger(), cacheMocks.NewClient(t), checker, usageMocks.NewReleaser(t),
		providerMocks.NewClient(t), "openai", &providers.Config{}, nil,
	)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureDailyHoroscope).
		Return(&appUsage.Result{Allowed: false, Plan: plan.DreamLite, Limit: 30}, nil)

	daily, err := service.DailyHoroscope(ctx, "user-1", "leo")

	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.False(t, daily.Quota.Allowed)
}

func TestAffirmer_SharedDailyAffirmation(t *testing.T) {
	now := time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	cacheClient := cacheMocks.NewClient(t)
	provider := providerMocks.NewClient(t)

	service := appContent.NewAffirmer(
		quietLogger(), cacheClient, checker, usageMocks.NewReleaser(t), provider,
		"openai", &providers.Config{}, fixedClock(now),
	)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureAffirmation).
		Return(allowed(25), nil)
	cacheClient.On("Get", ctx, "affirmation:2025-06-10").
		Return("I carry last night's calm into today.", nil)

	daily, err := service.DailyAffirmation(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "I carry last night's calm into today.", daily.Text)
	provider.AssertNotCalled(t, "Ask")
}

func TestMoonReader_KnownFullMoon(t *testing.T) {
	// 2024-01-25 was a full moon.
	now := time.Date(2024, time.January, 25, 12, 0, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	service := appContent.NewMoonReader(quietLogger(), checker, fixedClock(now))

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureMoonPhase).
		Return(allowed(29), nil)

	phase, err := service.CurrentPhase(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "full moon", phase.Phase)
	assert.Greater(t, phase.Illumination, 0.95)
	assert.Equal(t, "2024-01-25", phase.Date)
}

func TestMoonReader_KnownNewMoon(t *testing.T) {
	// 2024-01-11 was a new moon.
	now := time.Date(2024, time.January, 11, 12, 0, 0, 0, time.UTC)
	checker := usageMocks.NewChecker(t)
	service := appContent.NewMoonReader(quietLogger(), checker, fixedClock(now))

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureMoonPhase).
		Return(allowed(29), nil)

	phase, err := service.CurrentPhase(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "new moon", phase.Phase)
	assert.Less(t, phase.Illumination, 0.05)
}

func TestMoonReader_QuotaExhausted(t *testing.T) {
	checker := usageMocks.NewChecker(t)
	service := appContent.NewMoonReader(quietLogger(), checker, nil)

	ctx := context.Background()
	checker.On("CheckAndConsume", ctx, "user-1", plan.FeatureMoonPhase).
		Return(&appUsage.Result{Allowed: false, Plan: plan.DreamLite, Limit: 30}, nil)

	_, err := service.CurrentPhase(ctx, "user-1")

	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}
