package http

import (
	"errors"

	appBilling "github.com/TaskGlass/dreamvault/pkg/app/billing"
	domainSubscription "github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type billingPortalHandler struct {
	logger *logrus.Logger
	opener appBilling.PortalOpener
}

func NewBillingPortalHandler(logger *logrus.Logger, opener appBilling.PortalOpener) Handler {
	return &billingPortalHandler{
		logger: logger,
		opener: opener,
	}
}

// Handle @Summary Open the billing portal
// @Description Creates a Stripe billing-portal session for the user's subscription
// @Tags Billing
// @Produce json
// @Success 200 {object} map[string]interface{} "Portal URL"
// @Failure 404 {object} map[string]interface{} "No active subscription"
// @Router /api/v1/billing/portal [post]
func (s *billingPortalHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	url, err := s.opener.OpenPortal(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domainSubscription.ErrNoActiveSubscription) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active subscription"})
		}
		s.logger.WithError(err).Error("failed to open billing portal")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open billing portal"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}
