// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	AI            AIConfig           `mapstructure:"ai"`
	Submission    SubmissionConfig   `mapstructure:"submission"`
	Camunda       CamundaConfig      `mapstructure:"camunda"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Client        ClientConfig       `mapstructure:"client"`
	Logging       LoggingConfig      `mapstructure:"logging"`

	// EnvFile is the .env file that was loaded, if any.
	EnvFile string `mapstructure:"-"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeout     int `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // milliseconds
	IdleTimeout     int `mapstructure:"idle_timeout"`     // milliseconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
	RequestTimeout  int `mapstructure:"request_timeout"`  // milliseconds
}

// Addr returns the listen address for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// AIConfig configures the chat-completions provider behind /api/ai-assistance.
type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type SubmissionConfig struct {
	ProcessingDelay int    `mapstructure:"processing_delay"` // milliseconds
	IDPrefix        string `mapstructure:"id_prefix"`
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	ProcessID      string `mapstructure:"process_id"`
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

// NotificationConfig holds the confirmation email/SMS settings.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// Any reports whether at least one channel is on.
func (n NotificationConfig) Any() bool {
	return n.Email.Enabled || n.SMS.Enabled
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ClientConfig drives the terminal wizard and the assistance clients.
type ClientConfig struct {
	ServerURL         string        `mapstructure:"server_url"`
	SuggestionTimeout int           `mapstructure:"suggestion_timeout"` // milliseconds
	SubmissionTimeout int           `mapstructure:"submission_timeout"` // milliseconds
	Language          string        `mapstructure:"language"`
	Storage           StorageConfig `mapstructure:"storage"`
}

// StorageConfig selects the key-value backend for the persisted form.
type StorageConfig struct {
	Backend   string `mapstructure:"backend"` // file | redis | memory
	Dir       string `mapstructure:"dir"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
