package repository

import (
	"context"
	"errors"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) subscription.Repository {
	return &SubscriptionRepository{
		db: db,
	}
}

func (r *SubscriptionRepository) FindLatestActive(ctx context.Context, userID string) (*subscription.Subscription, error) {
	entity := new(subscription.Subscription)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, subscription.ActiveStatuses).
		Order("created_at DESC").
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrNoActiveSubscription
		}
		return nil, domain.NewStorageError("subscription lookup", err)
	}
	return entity, nil
}

func (r *SubscriptionRepository) FindByStripeSubscriptionID(ctx context.Context, stripeSubscriptionID string) (*subscription.Subscription, error) {
	entity := new(subscription.Subscription)
	err := r.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscription.ErrNoActiveSubscription
		}
		return nil, domain.NewStorageError("subscription lookup", err)
	}
	return entity, nil
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *subscription.Subscription) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "stripe_subscription_id"}},
			// The unique index on stripe_subscription_id is partial, so the
			// conflict target must repeat its predicate for postgres to
			// infer it.
			TargetWhere: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("stripe_subscription_id <> ''"),
			}},
			DoUpdates: clause.AssignmentColumns([]string{
				"plan", "status", "stripe_customer_id", "current_period_end", "updated_at",
			}),
		}).
		Create(sub).Error
	if err != nil {
		return domain.NewStorageError("subscription upsert", err)
	}
	return nil
}

func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, stripeSubscriptionID string, status subscription.Status) error {
	err := r.db.WithContext(ctx).
		Model(&subscription.Subscription{}).
		Where("stripe_subscription_id = ?", stripeSubscriptionID).
		Update("status", status).Error
	if err != nil {
		return domain.NewStorageError("subscription status update", err)
	}
	return nil
}
