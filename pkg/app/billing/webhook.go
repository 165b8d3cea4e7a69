package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domainSubscription "github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"github.com/TaskGlass/dreamvault/pkg/infra/stripepay"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v79"
)

//go:generate mockery --name=WebhookProcessor --dir=. --output=./mocks --filename=webhook_processor_mock.go --case=underscore --with-expecter
type WebhookProcessor interface {
	// ProcessWebhook verifies and applies one Stripe event. Unhandled event
	// types are acknowledged and skipped so Stripe stops retrying them.
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
}

type webhookProcessor struct {
	logger        *logrus.Logger
	subscriptions domainSubscription.Repository
	gateway       stripepay.Gateway
	planPrices    map[string]string
}

func NewWebhookProcessor(
	logger *logrus.Logger,
	subscriptions domainSubscription.Repository,
	gateway stripepay.Gateway,
	planPrices map[string]string,
) WebhookProcessor {
	return &webhookProcessor{
		logger:        logger,
		subscriptions: subscriptions,
		gateway:       gateway,
		planPrices:    planPrices,
	}
}

func (w *webhookProcessor) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := w.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("webhook verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed":
		return w.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.created", "customer.subscription.updated":
		return w.handleSubscriptionChanged(ctx, event)
	case "customer.subscription.deleted":
		return w.handleSubscriptionDeleted(ctx, event)
	default:
		w.logger.WithField("event_type", event.Type).Debug("ignoring stripe event")
		return nil
	}
}

func (w *webhookProcessor) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("malformed checkout session payload: %w", err)
	}
	if sess.ClientReferenceID == "" || sess.Subscription == nil {
		w.logger.WithField("session_id", sess.ID).Warn("checkout session missing attribution, skipping")
		return nil
	}

	sub := &domainSubscription.Subscription{
		ID:                   uuid.New(),
		UserID:               sess.ClientReferenceID,
		Plan:                 plan.Canonical(sess.Metadata["plan"]),
		Status:               domainSubscription.StatusActive,
		StripeSubscriptionID: sess.Subscription.ID,
	}
	if sess.Customer != nil {
		sub.StripeCustomerID = sess.Customer.ID
	}

	if err := w.subscriptions.Upsert(ctx, sub); err != nil {
		return err
	}

	w.logger.WithFields(logrus.Fields{
		"user_id": sub.UserID,
		"plan":    sub.Plan,
	}).Info("subscription activated from checkout")
	return nil
}

func (w *webhookProcessor) handleSubscriptionChanged(ctx context.Context, event stripe.Event) error {
	var stripeSub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &stripeSub); err != nil {
		return fmt.Errorf("malformed subscription payload: %w", err)
	}

	userID := stripeSub.Metadata["user_id"]
	if userID == "" {
		w.logger.WithField("subscription_id", stripeSub.ID).
			Warn("subscription event missing user attribution, skipping")
		return nil
	}

	sub := &domainSubscription.Subscription{
		ID:                   uuid.New(),
		UserID:               userID,
		Plan:                 w.resolvePlan(stripeSub),
		Status:               mapStatus(stripeSub.Status),
		StripeSubscriptionID: stripeSub.ID,
		CurrentPeriodEnd:     time.Unix(stripeSub.CurrentPeriodEnd, 0).UTC(),
	}
	if stripeSub.Customer != nil {
		sub.StripeCustomerID = stripeSub.Customer.ID
	}

	return w.subscriptions.Upsert(ctx, sub)
}

func (w *webhookProcessor) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var stripeSub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &stripeSub); err != nil {
		return fmt.Errorf("malformed subscription payload: %w", err)
	}
	return w.subscriptions.UpdateStatus(ctx, stripeSub.ID, domainSubscription.StatusCanceled)
}

// resolvePlan maps the subscription's price back to a plan name, falling back
// to the metadata recorded at checkout.
func (w *webhookProcessor) resolvePlan(stripeSub stripe.Subscription) string {
	if stripeSub.Items != nil && len(stripeSub.Items.Data) > 0 && stripeSub.Items.Data[0].Price != nil {
		priceID := stripeSub.Items.Data[0].Price.ID
		for planName, configured := range w.planPrices {
			if configured == priceID {
				return planName
			}
		}
	}
	return plan.Canonical(stripeSub.Metadata["plan"])
}

func mapStatus(status stripe.SubscriptionStatus) domainSubscription.Status {
	switch status {
	case stripe.SubscriptionStatusActive:
		return domainSubscription.StatusActive
	case stripe.SubscriptionStatusTrialing:
		return domainSubscription.StatusTrialing
	case stripe.SubscriptionStatusPastDue:
		return domainSubscription.StatusPastDue
	default:
		return domainSubscription.StatusCanceled
	}
}
