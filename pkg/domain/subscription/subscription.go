package subscription

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusTrialing Status = "trialing"
	StatusPastDue  Status = "past_due"
	StatusCanceled Status = "canceled"
)

// ActiveStatuses are the states under which a subscription grants its plan's
// entitlements.
var ActiveStatuses = []Status{StatusActive, StatusTrialing}

type Subscription struct {
	ID                   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID               string    `json:"user_id" gorm:"index;not null"`
	Plan                 string    `json:"plan" gorm:"not null"`
	Status               Status    `json:"status" gorm:"index;not null"`
	StripeCustomerID     string    `json:"stripe_customer_id" gorm:"index"`
	StripeSubscriptionID string    `json:"stripe_subscription_id" gorm:"uniqueIndex"`
	CurrentPeriodEnd     time.Time `json:"current_period_end"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (s Subscription) TableName() string {
	return "public.subscriptions"
}

func (s Subscription) IsActive() bool {
	return s.Status == StatusActive || s.Status == StatusTrialing
}
