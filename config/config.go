package config

import (
	"fmt"

	"github.com/SANK-0311/Multimodal-Airlines-Support-Agent/internal/credentials"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `envconfig:"GEMINI_API_KEY"`

	OpenAIModel    string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	ClaudeModel    string `envconfig:"CLAUDE_MODEL" default:"claude-sonnet-4-20250514"`
	GeminiModel    string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL" default:"text-embedding-3-small"`

	PreferredProvider string `envconfig:"PREFERRED_PROVIDER" default:"openai"`

	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort int    `envconfig:"SERVER_PORT" default:"8080"`

	KnowledgeBasePath string `envconfig:"KNOWLEDGE_BASE_PATH" default:"knowledge_base.json"`

	TTSVoice string `envconfig:"TTS_VOICE" default:"nova"`
}

var validProviders = map[string]bool{
	"openai": true,
	"claude": true,
	"gemini": true,
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.OpenAIAPIKey = credentials.GetOrEnv(credentials.KeyOpenAI, cfg.OpenAIAPIKey)
	cfg.AnthropicAPIKey = credentials.GetOrEnv(credentials.KeyAnthropic, cfg.AnthropicAPIKey)
	cfg.GeminiAPIKey = credentials.GetOrEnv(credentials.KeyGemini, cfg.GeminiAPIKey)

	if !validProviders[cfg.PreferredProvider] {
		return nil, fmt.Errorf("unknown provider: %s (valid: openai, claude, gemini)", cfg.PreferredProvider)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" && c.AnthropicAPIKey == "" && c.GeminiAPIKey == "" {
		return fmt.Errorf("at least one provider key required: set OPENAI_API_KEY, ANTHROPIC_API_KEY, or GEMINI_API_KEY")
	}
	return nil
}

func (c *Config) RequireOpenAI() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for embeddings, voice, and image generation")
	}
	return nil
}
