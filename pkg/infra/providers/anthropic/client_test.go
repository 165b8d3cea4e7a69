package anthropic

import (
	"context"
	"testing"

	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
)

func TestAskRequiresApiKey(t *testing.T) {
	c := NewAnthropicClient()

	resp, err := c.Ask(context.Background(), &providers.Config{}, "hello")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestDefaultModelIsDefinedBySDK(t *testing.T) {
	// Guards the fallback against pointing at a constant the pinned SDK
	// version no longer (or does not yet) define.
	assert.Equal(t, anthropic.ModelClaude3_5HaikuLatest, defaultModel)
	assert.NotEmpty(t, string(defaultModel))
}
