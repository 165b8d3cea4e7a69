package http

import (
	appBilling "github.com/TaskGlass/dreamvault/pkg/app/billing"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type stripeWebhookHandler struct {
	logger    *logrus.Logger
	processor appBilling.WebhookProcessor
}

func NewStripeWebhookHandler(logger *logrus.Logger, processor appBilling.WebhookProcessor) Handler {
	return &stripeWebhookHandler{
		logger:    logger,
		processor: processor,
	}
}

// Handle @Summary Stripe webhook
// @Description Receives subscription lifecycle events from Stripe
// @Tags Billing
// @Accept json
// @Success 200 "Event processed"
// @Failure 400 {object} map[string]interface{} "Invalid signature or payload"
// @Router /api/v1/billing/webhook [post]
func (s *stripeWebhookHandler) Handle(c *fiber.Ctx) error {
	signature := c.Get("Stripe-Signature")
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing stripe signature"})
	}

	if err := s.processor.ProcessWebhook(c.Context(), c.Body(), signature); err != nil {
		s.logger.WithError(err).Error("failed to process stripe webhook")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "webhook processing failed"})
	}

	return c.SendStatus(fiber.StatusOK)
}
