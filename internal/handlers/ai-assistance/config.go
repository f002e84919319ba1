// internal/handlers/ai-assistance/config.go
package aiassistance

import (
	"time"

	"financial-assistance/internal/common/config"
)

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// LoadConfig maps the ai section of the application config.
func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Timeout:     config.GetDuration(cfg.AI.Timeout),
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
	}
}
