package http

import (
	"errors"

	appBilling "github.com/TaskGlass/dreamvault/pkg/app/billing"
	"github.com/TaskGlass/dreamvault/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type billingCheckoutHandler struct {
	logger  *logrus.Logger
	starter appBilling.CheckoutStarter
}

func NewBillingCheckoutHandler(logger *logrus.Logger, starter appBilling.CheckoutStarter) Handler {
	return &billingCheckoutHandler{
		logger:  logger,
		starter: starter,
	}
}

// Handle @Summary Start a checkout
// @Description Creates a Stripe checkout session for upgrading to a paid plan
// @Tags Billing
// @Accept json
// @Produce json
// @Param checkout body request.CheckoutRequest true "Target plan"
// @Success 200 {object} map[string]interface{} "Checkout URL"
// @Failure 400 {object} map[string]interface{} "Plan not purchasable"
// @Router /api/v1/billing/checkout [post]
func (s *billingCheckoutHandler) Handle(c *fiber.Ctx) error {
	userID, ok := userIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	var req request.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		s.logger.WithError(err).Error("Failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	url, err := s.starter.StartCheckout(c.Context(), userID, req.Plan)
	if err != nil {
		if errors.Is(err, appBilling.ErrPlanNotPurchasable) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "plan is not purchasable"})
		}
		s.logger.WithError(err).Error("failed to start checkout")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to start checkout"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}
