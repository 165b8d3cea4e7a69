package usage

import (
	"context"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	domainUsage "github.com/TaskGlass/dreamvault/pkg/domain/usage"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Resetter --dir=. --output=./mocks --filename=resetter_mock.go --case=underscore --with-expecter
type Resetter interface {
	// Reset deletes the current month's ledger row. It refuses to run outside
	// the development environment; this is a safety rail, not a user feature.
	Reset(ctx context.Context, userID string) error
}

type resetter struct {
	logger       *logrus.Logger
	repo         domainUsage.Repository
	development  bool
	timeProvider func() time.Time
}

func NewResetter(
	logger *logrus.Logger,
	repo domainUsage.Repository,
	development bool,
	opts *CheckerOpts,
) Resetter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &resetter{
		logger:       logger,
		repo:         repo,
		development:  development,
		timeProvider: timeProvider,
	}
}

func (r *resetter) Reset(ctx context.Context, userID string) error {
	if !r.development {
		return domain.ErrResetForbidden
	}

	periodStart, _ := domainUsage.CurrentPeriod(r.timeProvider())

	if err := r.repo.DeleteForPeriod(ctx, userID, periodStart); err != nil {
		return err
	}

	r.logger.WithField("user_id", userID).Info("usage ledger reset for current period")
	return nil
}
