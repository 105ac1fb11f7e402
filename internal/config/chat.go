package config

type Chat struct {
	APIKey       string  `env:"OPENAI_API_KEY" json:"-"`
	BaseURL      string  `env:"OPENAI_BASE_URL"`
	Model        string  `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	Temperature  float32 `env:"CHAT_TEMPERATURE" envDefault:"0.2"`
	MaxTokens    int     `env:"CHAT_MAX_TOKENS" envDefault:"256"`
	SystemPrompt string  `env:"CHAT_SYSTEM_PROMPT"`
}
