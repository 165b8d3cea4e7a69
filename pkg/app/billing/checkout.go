package billing

import (
	"context"
	"errors"

	"github.com/TaskGlass/dreamvault/pkg/infra/stripepay"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

// ErrPlanNotPurchasable signals a plan with no configured Stripe price,
// including the free default plan.
var ErrPlanNotPurchasable = errors.New("plan has no purchasable price")

//go:generate mockery --name=CheckoutStarter --dir=. --output=./mocks --filename=checkout_starter_mock.go --case=underscore --with-expecter
type CheckoutStarter interface {
	// StartCheckout returns a hosted checkout URL for upgrading to planName.
	StartCheckout(ctx context.Context, userID, planName string) (string, error)
}

type checkoutStarter struct {
	logger     *logrus.Logger
	gateway    stripepay.Gateway
	planPrices map[string]string
}

func NewCheckoutStarter(logger *logrus.Logger, gateway stripepay.Gateway, planPrices map[string]string) CheckoutStarter {
	return &checkoutStarter{
		logger:     logger,
		gateway:    gateway,
		planPrices: planPrices,
	}
}

func (c *checkoutStarter) StartCheckout(ctx context.Context, userID, planName string) (string, error) {
	canonical := plan.Canonical(planName)
	priceID, ok := c.planPrices[canonical]
	if !ok || priceID == "" {
		return "", ErrPlanNotPurchasable
	}

	url, err := c.gateway.CreateCheckoutSession(userID, canonical, priceID)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"plan":    canonical,
		}).Error("failed to create checkout session")
		return "", err
	}
	return url, nil
}
