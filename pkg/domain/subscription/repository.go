package subscription

import (
	"context"
	"errors"
)

// ErrNoActiveSubscription signals that the user is on the default free plan.
var ErrNoActiveSubscription = errors.New("no active subscription")

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=subscription_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// FindLatestActive returns the most recent subscription for the user with
	// a status in ActiveStatuses, or a not-found error when none exists.
	FindLatestActive(ctx context.Context, userID string) (*Subscription, error)
	FindByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*Subscription, error)
	Upsert(ctx context.Context, sub *Subscription) error
	UpdateStatus(ctx context.Context, stripeSubscriptionID string, status Status) error
}
