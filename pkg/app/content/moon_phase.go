package content

import (
	"context"
	"math"
	"time"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/plan"
	"github.com/sirupsen/logrus"
)

// synodicMonth is the mean length of a lunar cycle in days.
const synodicMonth = 29.530588853

// lunarEpoch is the new moon of 2000-01-06 18:14 UTC, the reference point
// the cycle is counted from.
var lunarEpoch = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// MoonPhase describes the moon for one day.
type MoonPhase struct {
	Phase        string           `json:"phase"`
	Illumination float64          `json:"illumination"`
	AgeDays      float64          `json:"age_days"`
	Date         string           `json:"date"`
	Quota        *appUsage.Result `json:"quota"`
}

//go:generate mockery --name=MoonReader --dir=. --output=./mocks --filename=moon_reader_mock.go --case=underscore --with-expecter
type MoonReader interface {
	// CurrentPhase returns today's moon phase computed from the mean synodic
	// cycle; accurate to well under a day, which is all the journal needs.
	CurrentPhase(ctx context.Context, userID string) (*MoonPhase, error)
}

type moonReader struct {
	logger       *logrus.Logger
	checker      appUsage.Checker
	timeProvider func() time.Time
}

func NewMoonReader(logger *logrus.Logger, checker appUsage.Checker, opts *appUsage.CheckerOpts) MoonReader {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &moonReader{
		logger:       logger,
		checker:      checker,
		timeProvider: timeProvider,
	}
}

func (m *moonReader) CurrentPhase(ctx context.Context, userID string) (*MoonPhase, error) {
	result, err := m.checker.CheckAndConsume(ctx, userID, plan.FeatureMoonPhase)
	if err != nil {
		return nil, err
	}
	if !result.Allowed {
		return &MoonPhase{Quota: result}, domain.ErrQuotaExceeded
	}

	now := m.timeProvider().UTC()
	age := math.Mod(now.Sub(lunarEpoch).Hours()/24, synodicMonth)
	if age < 0 {
		age += synodicMonth
	}

	// Illumination follows the cosine of the phase angle: 0 at new, 1 at full.
	fraction := age / synodicMonth
	illumination := (1 - math.Cos(2*math.Pi*fraction)) / 2

	return &MoonPhase{
		Phase:        phaseName(fraction),
		Illumination: math.Round(illumination*1000) / 1000,
		AgeDays:      math.Round(age*10) / 10,
		Date:         dayKey(now),
		Quota:        result,
	}, nil
}

func phaseName(fraction float64) string {
	switch {
	case fraction < 0.0625 || fraction >= 0.9375:
		return "new moon"
	case fraction < 0.1875:
		return "waxing crescent"
	case fraction < 0.3125:
		return "first quarter"
	case fraction < 0.4375:
		return "waxing gibbous"
	case fraction < 0.5625:
		return "full moon"
	case fraction < 0.6875:
		return "waning gibbous"
	case fraction < 0.8125:
		return "last quarter"
	default:
		return "waning crescent"
	}
}
