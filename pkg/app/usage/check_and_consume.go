package usage

import (
	"context"
	"time"

	domainUsage "github.com/TaskGlass/dreamvault/pkg/domain/usage"
	"github.com/TaskGlass/dreamvault/pkg/infra/metrics"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a quota check. When Unlimited is set the feature
// is unmetered for the plan and Remaining/Limit carry no meaning.
type Result struct {
	Allowed   bool   `json:"allowed"`
	Unlimited bool   `json:"unlimited"`
	Remaining int    `json:"remaining"`
	Plan      string `json:"plan"`
	Limit     int    `json:"limit"`
}

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=checker_mock.go --case=underscore --with-expecter
type Checker interface {
	// CheckAndConsume reserves one unit of the feature's monthly allowance.
	// It returns Allowed=false with Remaining=0 when the allowance is spent;
	// storage failures surface as errors and the caller must fail closed.
	CheckAndConsume(ctx context.Context, userID string, feature plan.Feature) (*Result, error)
}

type checker struct {
	logger       *logrus.Logger
	repo         domainUsage.Repository
	planResolver PlanResolver
	timeProvider func() time.Time
}

type CheckerOpts struct {
	TimeProvider func() time.Time
}

func NewChecker(
	logger *logrus.Logger,
	repo domainUsage.Repository,
	planResolver PlanResolver,
	opts *CheckerOpts,
) Checker {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &checker{
		logger:       logger,
		repo:         repo,
		planResolver: planResolver,
		timeProvider: timeProvider,
	}
}

func (c *checker) CheckAndConsume(ctx context.Context, userID string, feature plan.Feature) (*Result, error) {
	planName, err := c.planResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	limit, metered := plan.LimitFor(planName, feature)
	if !metered {
		return &Result{
			Allowed:   true,
			Unlimited: true,
			Plan:      planName,
		}, nil
	}

	periodStart, periodEnd := domainUsage.CurrentPeriod(c.timeProvider())

	if err := c.repo.EnsureRow(ctx, userID, periodStart, periodEnd); err != nil {
		return nil, err
	}

	used, consumed, err := c.repo.ConsumeIfBelow(ctx, userID, periodStart, feature, limit)
	if err != nil {
		return nil, err
	}

	if !consumed {
		metrics.QuotaDenials.WithLabelValues(string(feature), planName).Inc()
		c.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"feature": feature,
			"plan":    planName,
			"limit":   limit,
		}).Debug("monthly quota exhausted")
		return &Result{
			Allowed:   false,
			Remaining: 0,
			Plan:      planName,
			Limit:     limit,
		}, nil
	}

	metrics.QuotaConsumed.WithLabelValues(string(feature), planName).Inc()

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   true,
		Remaining: remaining,
		Plan:      planName,
		Limit:     limit,
	}, nil
}
