package config

type ProvidersConfig struct {
	Provider  string          `mapstructure:"provider"`
	OpenAI    ProviderConfig  `mapstructure:"openai"`
	Anthropic ProviderConfig  `mapstructure:"anthropic"`
	Breaker   BreakerSettings `mapstructure:"breaker"`
}

type ProviderConfig struct {
	APIKey       string  `mapstructure:"api_key"`
	Model        string  `mapstructure:"model"`
	MaxTokens    int     `mapstructure:"max_tokens"`
	Temperature  float64 `mapstructure:"temperature"`
	SystemPrompt string  `mapstructure:"system_prompt"`
}

type BreakerSettings struct {
	MaxFailures uint32 `mapstructure:"max_failures"`
	Timeout     string `mapstructure:"timeout"`
	Interval    string `mapstructure:"interval"`
}
