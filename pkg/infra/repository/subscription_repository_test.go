package repository_test

import (
	"context"
	"testing"

	"github.com/TaskGlass/dreamvault/pkg/domain/subscription"
	"github.com/TaskGlass/dreamvault/pkg/infra/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds a gorm handle that renders SQL without a live connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestUpsertConflictTargetMatchesPartialIndex(t *testing.T) {
	db := dryRunDB(t)

	var rendered string
	err := db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		rendered = tx.Statement.SQL.String()
	})
	require.NoError(t, err)

	repo := repository.NewSubscriptionRepository(db)
	err = repo.Upsert(context.Background(), &subscription.Subscription{
		ID:                   uuid.New(),
		UserID:               "user-1",
		Plan:                 "Dream Plus",
		Status:               subscription.StatusActive,
		StripeSubscriptionID: "sub_123",
	})
	require.NoError(t, err)

	// The unique index on stripe_subscription_id carries the predicate
	// stripe_subscription_id <> ''. Postgres only infers a partial index as
	// conflict target when the statement repeats that predicate; without it
	// every webhook upsert fails.
	assert.Contains(t, rendered, `ON CONFLICT ("stripe_subscription_id")`)
	assert.Contains(t, rendered, `stripe_subscription_id <> ''`)
	assert.Contains(t, rendered, "DO UPDATE")
}
