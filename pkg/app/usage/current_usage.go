package usage

import (
	"context"
	"errors"
	"time"

	domainUsage "github.com/TaskGlass/dreamvault/pkg/domain/usage"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

// FeatureUsage is the display view of one feature's consumption this month.
type FeatureUsage struct {
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
}

type Snapshot struct {
	Plan        string                        `json:"plan"`
	PeriodStart time.Time                     `json:"period_start"`
	Usage       map[plan.Feature]FeatureUsage `json:"usage"`
}

//go:generate mockery --name=Reader --dir=. --output=./mocks --filename=reader_mock.go --case=underscore --with-expecter
type Reader interface {
	// Current returns the month's consumption for every known feature without
	// mutating anything. Calling it any number of times is side-effect free.
	Current(ctx context.Context, userID string) (*Snapshot, error)
}

type reader struct {
	logger       *logrus.Logger
	repo         domainUsage.Repository
	planResolver PlanResolver
	timeProvider func() time.Time
}

func NewReader(
	logger *logrus.Logger,
	repo domainUsage.Repository,
	planResolver PlanResolver,
	opts *CheckerOpts,
) Reader {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &reader{
		logger:       logger,
		repo:         repo,
		planResolver: planResolver,
		timeProvider: timeProvider,
	}
}

func (r *reader) Current(ctx context.Context, userID string) (*Snapshot, error) {
	planName, err := r.planResolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	periodStart, _ := domainUsage.CurrentPeriod(r.timeProvider())

	row, err := r.repo.Get(ctx, userID, periodStart)
	if err != nil {
		if !errors.Is(err, domainUsage.ErrNoLedgerRow) {
			return nil, err
		}
		// No consumption yet this month; report zeros.
		row = &domainUsage.Monthly{UserID: userID, PeriodStart: periodStart}
	}

	snapshot := &Snapshot{
		Plan:        planName,
		PeriodStart: periodStart,
		Usage:       make(map[plan.Feature]FeatureUsage, len(plan.Features())),
	}

	for _, feature := range plan.Features() {
		used := row.UsedFor(feature)
		limit, metered := plan.LimitFor(planName, feature)
		if !metered {
			snapshot.Usage[feature] = FeatureUsage{Used: used, Unlimited: true}
			continue
		}
		remaining := limit - used
		if remaining < 0 {
			remaining = 0
		}
		snapshot.Usage[feature] = FeatureUsage{
			Used:      used,
			Limit:     limit,
			Remaining: remaining,
		}
	}

	return snapshot, nil
}
