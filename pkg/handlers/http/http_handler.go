package http

import (
	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid json payload"

// CodeQuotaExceeded marks quota-denied responses so clients can tell them
// apart from rate limiting and show an upgrade prompt instead of retrying.
const CodeQuotaExceeded = "quota_exceeded"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Journal
	CreateDreamHandler Handler
	ListDreamsHandler  Handler
	GetDreamHandler    Handler
	DeleteDreamHandler Handler

	// Interpretation
	InterpretDreamHandler Handler

	// Daily content
	GetHoroscopeHandler   Handler
	GetAffirmationHandler Handler
	GetMoonPhaseHandler   Handler

	// Usage
	GetUsageHandler   Handler
	ResetUsageHandler Handler

	// Billing
	BillingCheckoutHandler Handler
	BillingPortalHandler   Handler
	StripeWebhookHandler   Handler
}

// userIDFromCtx returns the authenticated user id stored by the auth
// middleware.
func userIDFromCtx(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(common.UserIDContextKey).(string)
	return userID, ok && userID != ""
}
