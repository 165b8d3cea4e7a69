package common

import "time"

// RateLimitSweepInterval is how often the in-process rate limiter prunes
// expired window records.
const RateLimitSweepInterval = 5 * time.Minute
