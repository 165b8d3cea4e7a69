package usage

import (
	"context"
	"errors"

	"github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PlanResolver --dir=. --output=./mocks --filename=plan_resolver_mock.go --case=underscore --with-expecter
type PlanResolver interface {
	// Resolve returns the canonical plan name governing the user's
	// entitlements right now.
	Resolve(ctx context.Context, userID string) (string, error)
}

type planResolver struct {
	logger *logrus.Logger
	repo   subscription.Repository
}

func NewPlanResolver(logger *logrus.Logger, repo subscription.Repository) PlanResolver {
	return &planResolver{
		logger: logger,
		repo:   repo,
	}
}

func (r *planResolver) Resolve(ctx context.Context, userID string) (string, error) {
	sub, err := r.repo.FindLatestActive(ctx, userID)
	if err != nil {
		if errors.Is(err, subscription.ErrNoActiveSubscription) {
			return plan.DefaultPlan, nil
		}
		return "", err
	}

	resolved := plan.Canonical(sub.Plan)
	if !plan.Known(resolved) {
		// A subscription row carrying a name the registry has never heard of
		// is a configuration fault. Grant the smallest entitlement rather
		// than unlimited access.
		r.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"plan":    sub.Plan,
		}).Warn("subscription references unknown plan, falling back to most restrictive")
		return plan.MostRestrictive(), nil
	}
	return resolved, nil
}
