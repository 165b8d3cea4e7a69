package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/domain/usage"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) usage.Repository {
	return &UsageRepository{
		db: db,
	}
}

// counterColumn maps a feature to its ledger column. Features outside the
// closed enum never reach SQL.
func counterColumn(feature plan.Feature) (string, error) {
	switch feature {
	case plan.FeatureDreamInterpretation:
		return "dream_interpretation_used", nil
	case plan.FeatureDailyHoroscope:
		return "daily_horoscope_used", nil
	case plan.FeatureAffirmation:
		return "affirmation_used", nil
	case plan.FeatureMoonPhase:
		return "moon_phase_used", nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrInvalidFeature, feature)
}

func (r *UsageRepository) Get(ctx context.Context, userID string, periodStart time.Time) (*usage.Monthly, error) {
	entity := new(usage.Monthly)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND period_start = ?", userID, periodStart).
		First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usage.ErrNoLedgerRow
		}
		return nil, domain.NewStorageError("usage get", err)
	}
	return entity, nil
}

func (r *UsageRepository) EnsureRow(ctx context.Context, userID string, periodStart, periodEnd time.Time) error {
	row := &usage.Monthly{
		UserID:      userID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "period_start"}},
			DoNothing: true,
		}).
		Create(row).Error
	if err != nil {
		return domain.NewStorageError("usage row init", err)
	}
	return nil
}

func (r *UsageRepository) ConsumeIfBelow(
	ctx context.Context,
	userID string,
	periodStart time.Time,
	feature plan.Feature,
	limit int,
) (int, bool, error) {
	column, err := counterColumn(feature)
	if err != nil {
		return 0, false, err
	}

	// Single conditional update: the check and the increment are one
	// statement, so the counter can never pass the limit under concurrency.
	query := fmt.Sprintf(`
		UPDATE public.usage_monthly
		SET %s = %s + 1, updated_at = NOW()
		WHERE user_id = ? AND period_start = ? AND %s < ?
		RETURNING %s`, column, column, column, column)

	var used []int
	if err := r.db.WithContext(ctx).Raw(query, userID, periodStart, limit).Scan(&used).Error; err != nil {
		return 0, false, domain.NewStorageError("usage consume", err)
	}
	if len(used) == 0 {
		return 0, false, nil
	}
	return used[0], true, nil
}

func (r *UsageRepository) Refund(ctx context.Context, userID string, periodStart time.Time, feature plan.Feature) error {
	column, err := counterColumn(feature)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE public.usage_monthly
		SET %s = %s - 1, updated_at = NOW()
		WHERE user_id = ? AND period_start = ? AND %s > 0`, column, column, column)

	if err := r.db.WithContext(ctx).Exec(query, userID, periodStart).Error; err != nil {
		return domain.NewStorageError("usage refund", err)
	}
	return nil
}

func (r *UsageRepository) DeleteForPeriod(ctx context.Context, userID string, periodStart time.Time) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND period_start = ?", userID, periodStart).
		Delete(&usage.Monthly{}).Error
	if err != nil {
		return domain.NewStorageError("usage reset", err)
	}
	return nil
}
