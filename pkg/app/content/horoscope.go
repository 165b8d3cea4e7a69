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

const horoscopeSystemPrompt = "You write short daily horoscopes for a dream journal " +
	"app. Two or three sentences, warm and specific, focused on rest, dreams and " +
	"reflection. No disclaimers."

//go:generate mockery --name=Horoscoper --dir=. --output=./mocks --filename=horoscoper_mock.go --case=underscore --with-expecter
type Horoscoper interface {
	// DailyHoroscope returns today's horoscope for the sign, generating it at
	// most once per sign per UTC day. The user's allowance is charged per
	// request regardless of cache state.
	DailyHoroscope(ctx context.Context, userID, sign string) (*Daily, error)
}

type horoscoper struct {
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

func NewHoroscoper(
	logger *logrus.Logger,
	cacheClient cache.Client,
	checker appUsage.Checker,
	releaser appUsage.Releaser,
	provider providers.Client,
	providerName string,
	providerConfig *providers.Config,
	opts *appUsage.CheckerOpts,
) Horoscoper {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	cfg := *providerConfig
	cfg.SystemPrompt = horoscopeSystemPrompt
	return &horoscoper{
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

func (h *horoscoper) DailyHoroscope(ctx context.Context, userID, sign string) (*Daily, error) {
	normalized, err := NormalizeSign(sign)
	if err != nil {
		return nil, err
	}

	result, err := h.checker.CheckAndConsume(ctx, userID, plan.FeatureDailyHoroscope)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return &Daily{Quota: result}, domain.ErrQuotaExceeded
	}

	now := h.timeProvider()
	day := dayKey(now)
	key := fmt.Sprintf("horoscope:%s:%s", normalized, day)

	text, err := h.lookupOrGenerate(ctx, key, normalized, now)
	if err != nil {
		if releaseErr := h.releaser.Release(ctx, userID, plan.FeatureDailyHoroscope); releaseErr != nil {
			h.logger.WithError(releaseErr).Warn("failed to refund horoscope quota unit")
		}
		return nil, err
	}

	return &Daily{Text: text, Date: day, Quota: result}, nil
}

func (h *horoscoper) lookupOrGenerate(ctx context.Context, key, sign string, now time.Time) (string, error) {
	if cached, err := h.cache.Get(ctx, key); err == nil {
		return cached, nil
	} else if !cache.IsCacheMiss(err) {
		h.logger.WithError(err).Warn("horoscope cache read failed, regenerating")
	}

	// Collapse concurrent misses for the same sign into one provider call.
	text, err, _ := h.group.Do(key, func() (interface{}, error) {
		prompt := fmt.Sprintf("Write today's (%s) horoscope for %s.", dayKey(now), sign)

		start := time.Now()
		resp, err := h.provider.Ask(ctx, h.providerConfig, prompt)
		metrics.ProviderRequestDuration.
			WithLabelValues(h.providerName, string(plan.FeatureDailyHoroscope)).
			Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.ProviderErrors.
				WithLabelValues(h.providerName, string(plan.FeatureDailyHoroscope)).
				Inc()
			return nil, fmt.Errorf("horoscope provider: %w", err)
		}

		if err := h.cache.Set(ctx, key, resp.Response, untilMidnightUTC(now)); err != nil {
			h.logger.WithError(err).Warn("failed to cache horoscope")
		}
		return resp.Response, nil
	})
	if err != nil {
		return "", err
	}
	return text.(string), nil
}
