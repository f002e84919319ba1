// internal/handlers/submit-application/config.go
package submitapplication

import (
	"time"

	"financial-assistance/internal/common/config"
)

type Config struct {
	// ProcessingDelay simulates back-office processing before replying.
	ProcessingDelay time.Duration
	IDPrefix        string
	ProcessID       string
	HandoffTimeout  time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		ProcessingDelay: config.GetDuration(cfg.Submission.ProcessingDelay),
		IDPrefix:        cfg.Submission.IDPrefix,
		ProcessID:       cfg.Camunda.ProcessID,
		HandoffTimeout:  config.GetDuration(cfg.Camunda.RequestTimeout),
	}
}
