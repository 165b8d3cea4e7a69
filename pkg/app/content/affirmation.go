package content

import (
	"context"
	"fmt"
	"time"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/infra/cache"
	"github.com/TaskGlass/dreamvault/pkg/infra/metrics"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const affirmationSystemPrompt = "You write one-sentence morning affirmations for a " +
	"dream journal app. Present tense, first person, no hashtags."

//go:generate mockery --name=Affirmer --dir=. --output=./mocks --filename=affirmer_mock.go --case=underscore --with-expecter
type Affirmer interface {
	// DailyAffirmation returns today's affirmation, generated at most once per
	// UTC day and shared across users.
	DailyAffirmation(ctx context.Context, userID string) (*Daily, error)
}

type affirmer struct {
	logger         *logrus.Logger
	cache          cache.Client
	checker        appUsage.Checker
	releaser       appUsage.Releaser
	provider       providers.Client
	providerName   string
	providerConfig *providers.Config
	group          singleflight.Group
	timeProvider   func() time.Time
}

func NewAffirmer(
	logger *logrus.Logger,
	cacheClient cache.Client,
	checker appUsage.Checker,
	releaser appUsage.Releaser,
	provider providers.Client,
	providerName string,
	providerConfig *providers.Config,
	opts *appUsage.CheckerOpts,
) Affirmer {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	cfg := *providerConfig
	cfg.SystemPrompt = affirmationSystemPrompt
	return &affirmer{
		logger:         logger,
		cache:          cacheClient,
		checker:        checker,
		releaser:       releaser,
		provider:       provider,
		providerName:   providerName,
		providerConfig: &cfg,
		timeProvider:   timeProvider,
	}
}

func (a *affirmer) DailyAffirmation(ctx context.Context, userID string) (*Daily, error) {
	result, err := a.checker.CheckAndConsume(ctx, userID, plan.FeatureAffirmation)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return &Daily{Quota: result}, domain.ErrQuotaExceeded
	}

	now := a.timeProvider()
	day := dayKey(now)
	key := "affirmation:" + day

	text, err := a.lookupOrGenerate(ctx, key, now)
	if err != nil {
		if releaseErr := a.releaser.Release(ctx, userID, plan.FeatureAffirmation); releaseErr != nil {
			a.logger.WithError(releaseErr).Warn("failed to refund affirmation quota unit")
		}
		return nil, err
	}

	return &Daily{Text: text, Date: day, Quota: result}, nil
}

func (a *affirmer) lookupOrGenerate(ctx context.Context, key string, now time.Time) (string, error) {
	if cached, err := a.cache.Get(ctx, key); err == nil {
		return cached, nil
	} else if !cache.IsCacheMiss(err) {
		a.logger.WithError(err).Warn("affirmation cache read failed, regenerating")
	}

	text, err, _ := a.group.Do(key, func() (interface{}, error) {
		prompt := fmt.Sprintf("Write the affirmation for %s.", dayKey(now))

		start := time.Now()
		resp, err := a.provider.Ask(ctx, a.providerConfig, prompt)
		metrics.ProviderRequestDuration.
			WithLabelValues(a.providerName, string(plan.FeatureAffirmation)).
			Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.ProviderErrors.
				WithLabelValues(a.providerName, string(plan.FeatureAffirmation)).
				Inc()
			return nil, fmt.Errorf("affirmation provider: %w", err)
		}

		if err := a.cache.Set(ctx, key, resp.Response, untilMidnightUTC(now)); err != nil {
			a.logger.WithError(err).Warn("failed to cache affirmation")
		}
		return resp.Response, nil
	})
	if err != nil {
		return "", err
	}
	return text.(string), nil
}
