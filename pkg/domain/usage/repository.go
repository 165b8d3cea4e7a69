package usage

import (
	"context"
	"errors"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/plan"
)

// ErrNoLedgerRow signals that the user has not consumed anything in the
// period yet. It is an expected condition, not a storage failure.
var ErrNoLedgerRow = errors.New("no usage row for period")

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=usage_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	// Get returns the ledger row for the period, or a not-found error when the
	// user has consumed nothing yet that month.
	Get(ctx context.Context, userID string, periodStart time.Time) (*Monthly, error)

	// EnsureRow lazily creates the month's row with zeroed counters. Creating
	// a row that already exists is not an error.
	EnsureRow(ctx context.Context, userID string, periodStart, periodEnd time.Time) error

	// ConsumeIfBelow atomically increments the feature counter by one if and
	// only if it is still below limit, returning the post-increment count and
	// whether the increment happened. The conditional update runs as a single
	// statement so two concurrent requests can never both take the last slot.
	ConsumeIfBelow(ctx context.Context, userID string, periodStart time.Time, feature plan.Feature, limit int) (int, bool, error)

	// Refund returns one previously consumed unit, flooring at zero. Used when
	// the upstream call a slot was reserved for fails.
	Refund(ctx context.Context, userID string, periodStart time.Time, feature plan.Feature) error

	// DeleteForPeriod removes the ledger row. Development-only; the caller is
	// responsible for the environment guard.
	DeleteForPeriod(ctx context.Context, userID string, periodStart time.Time) error
}
