package usage

import (
	"time"

	"github.com/TaskGlass/dreamvault/pkg/plan"
)

// Monthly is the durable per-user consumption ledger for one calendar month.
// At most one row exists per (user_id, period_start); counters only grow
// during normal operation and rows are kept as historical records.
type Monthly struct {
	UserID                  string    `json:"user_id" gorm:"primaryKey"`
	PeriodStart             time.Time `json:"period_start" gorm:"primaryKey;type:date"`
	PeriodEnd               time.Time `json:"period_end" gorm:"type:date;not null"`
	DreamInterpretationUsed int       `json:"dream_interpretation_used" gorm:"not null;default:0"`
	DailyHoroscopeUsed      int       `json:"daily_horoscope_used" gorm:"not null;default:0"`
	AffirmationUsed         int       `json:"affirmation_used" gorm:"not null;default:0"`
	MoonPhaseUsed           int       `json:"moon_phase_used" gorm:"not null;default:0"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (m Monthly) TableName() string {
	return "public.usage_monthly"
}

// UsedFor returns the consumed count for a feature.
func (m Monthly) UsedFor(feature plan.Feature) int {
	switch feature {
	case plan.FeatureDreamInterpretation:
		return m.DreamInterpretationUsed
	case plan.FeatureDailyHoroscope:
		return m.DailyHoroscopeUsed
	case plan.FeatureAffirmation:
		return m.AffirmationUsed
	case plan.FeatureMoonPhase:
		return m.MoonPhaseUsed
	}
	return 0
}

// CurrentPeriod returns the first and last calendar day of the month
// containing now, at date precision in UTC.
func CurrentPeriod(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
