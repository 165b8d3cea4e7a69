package usage

import (
	"context"
	"time"

	domainUsage "github.com/TaskGlass/dreamvault/pkg/domain/usage"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Releaser --dir=. --output=./mocks --filename=releaser_mock.go --case=underscore --with-expecter
type Releaser interface {
	// Release refunds a unit reserved by CheckAndConsume whose upstream call
	// failed, so users are only charged for successful work.
	Release(ctx context.Context, userID string, feature plan.Feature) error
}

type releaser struct {
	logger       *logrus.Logger
	repo         domainUsage.Repository
	planResolver PlanResolver
	timeProvider func() time.Time
}

func NewReleaser(
	logger *logrus.Logger,
	repo domainUsage.Repository,
	planResolver PlanResolver,
	opts *CheckerOpts,
) Releaser {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &releaser{
		logger:       logger,
		repo:         repo,
		planResolver: planResolver,
		timeProvider: timeProvider,
	}
}

func (r *releaser) Release(ctx context.Context, userID string, feature plan.Feature) error {
	planName, err := r.planResolver.Resolve(ctx, userID)
	if err != nil {
		return err
	}

	// Nothing was reserved for an unmetered feature.
	if _, metered := plan.LimitFor(planName, feature); !metered {
		return nil
	}

	periodStart, _ := domainUsage.CurrentPeriod(r.timeProvider())

	if err := r.repo.Refund(ctx, userID, periodStart, feature); err != nil {
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"feature": feature,
	}).Debug("refunded quota unit after upstream failure")
	return nil
}
