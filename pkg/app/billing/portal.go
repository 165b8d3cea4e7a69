package billing

import (
	"context"

	domainSubscription "github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"github.com/TaskGlass/dreamvault/pkg/infra/stripepay"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PortalOpener --dir=. --output=./mocks --filename=portal_opener_mock.go --case=underscore --with-expecter
type PortalOpener interface {
	// OpenPortal returns a billing-portal URL for the user's active
	// subscription, or ErrNoActiveSubscription for free-plan users.
	OpenPortal(ctx context.Context, userID string) (string, error)
}

type portalOpener struct {
	logger        *logrus.Logger
	subscriptions domainSubscription.Repository
	gateway       stripepay.Gateway
}

func NewPortalOpener(
	logger *logrus.Logger,
	subscriptions domainSubscription.Repository,
	gateway stripepay.Gateway,
) PortalOpener {
	return &portalOpener{
		logger:        logger,
		subscriptions: subscriptions,
		gateway:       gateway,
	}
}

func (p *portalOpener) OpenPortal(ctx context.Context, userID string) (string, error) {
	sub, err := p.subscriptions.FindLatestActive(ctx, userID)
	if err != nil {
		return "", err
	}
	if sub.StripeCustomerID == "" {
		return "", domainSubscription.ErrNoActiveSubscription
	}
	return p.gateway.CreatePortalSession(sub.StripeCustomerID)
}
