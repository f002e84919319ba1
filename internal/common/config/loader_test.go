package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearOverrides(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GROK_API_KEY", "REDIS_PASSWORD", "AWS_REGION", "ZEEBE_ADDRESS", "ASSISTANCE_SERVER_URL"} {
		t.Setenv(key, "")
	}
}

// ==========================
// Defaults
// ==========================

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	clearOverrides(t)
	path := writeConfig(t, "app:\n  name: test-app\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-app", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.x.ai", cfg.AI.BaseURL)
	assert.Equal(t, "grok-3", cfg.AI.Model)
	assert.Equal(t, 30000, cfg.AI.Timeout)
	assert.Equal(t, 200, cfg.AI.MaxTokens)
	assert.InDelta(t, 0.7, cfg.AI.Temperature, 1e-9)
	assert.Equal(t, 45000, cfg.Client.SuggestionTimeout)
	assert.Equal(t, 30000, cfg.Client.SubmissionTimeout)
	assert.Equal(t, "en", cfg.Client.Language)
	assert.Equal(t, "file", cfg.Client.Storage.Backend)
	assert.Equal(t, "APP", cfg.Submission.IDPrefix)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_ReadsValues(t *testing.T) {
	clearOverrides(t)
	path := writeConfig(t, `
server:
  port: 9090
ai:
  model: grok-beta
  timeout: 5000
client:
  language: ar
  storage:
    backend: redis
database:
  redis:
    address: redis:6379
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "grok-beta", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, GetDuration(cfg.AI.Timeout))
	assert.Equal(t, "ar", cfg.Client.Language)
	assert.Equal(t, "redis", cfg.Client.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Database.Redis.Address)
}

// ==========================
// Environment
// ==========================

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	clearOverrides(t)
	t.Setenv("FA_TEST_AI_KEY", "xai-expanded")
	path := writeConfig(t, "ai:\n  api_key: ${FA_TEST_AI_KEY}\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xai-expanded", cfg.AI.APIKey)
}

func TestLoadFromFile_GrokKeyOverride(t *testing.T) {
	clearOverrides(t)
	t.Setenv("GROK_API_KEY", "xai-from-env")
	path := writeConfig(t, "app:\n  name: x\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xai-from-env", cfg.AI.APIKey)
}

// ==========================
// Validation
// ==========================

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "camunda without broker",
			body: "camunda:\n  enabled: true\n",
			want: "camunda.broker_address",
		},
		{
			name: "notifications without region",
			body: "notifications:\n  sms:\n    enabled: true\n",
			want: "notifications.aws.region",
		},
		{
			name: "email without sender",
			body: "notifications:\n  email:\n    enabled: true\n  aws:\n    region: me-central-1\n",
			want: "from_email",
		},
		{
			name: "unknown language",
			body: "client:\n  language: fr\n",
			want: "client.language",
		},
		{
			name: "unknown storage backend",
			body: "client:\n  storage:\n    backend: sqlite\n",
			want: "client.storage.backend",
		},
		{
			name: "temperature out of range",
			body: "ai:\n  temperature: 3.5\n",
			want: "ai.temperature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOverrides(t)
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
