package factory

import (
	"fmt"

	"github.com/TaskGlass/dreamvault/pkg/domain"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers/anthropic"
	"github.com/TaskGlass/dreamvault/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct{}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, provider)
	}
}
