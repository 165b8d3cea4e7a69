package content

import (
	"time"

	appUsage "github.com/TaskGlass/dreamvault/pkg/app/usage"
)

// Daily is a piece of generated daily content plus the quota state that
// paid for the request.
type Daily struct {
	Text  string           `json:"text"`
	Date  string           `json:"date"`
	Quota *appUsage.Result `json:"quota"`
}

// dayKey formats the UTC day used in cache keys; cached content rolls over
// at midnight UTC for every user.
func dayKey(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

func untilMidnightUTC(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}
