package config_test

import (
	"testing"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitWindowDuration(t *testing.T) {
	cfg := config.RateLimitConfig{Window: "1m"}

	d, err := cfg.WindowDuration()

	assert.NoError(t, err)
	assert.Equal(t, time.Minute, d)
}

func TestRateLimitWindowDuration_Malformed(t *testing.T) {
	// A typo in the window must surface as an error at startup, not quietly
	// turn the limiter off.
	for _, window := range []string{"", "1 minute", "sixty", "-1m", "0s"} {
		cfg := config.RateLimitConfig{Window: window}

		_, err := cfg.WindowDuration()

		assert.Error(t, err, "window %q", window)
	}
}
