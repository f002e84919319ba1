// internal/handlers/ai-assistance/models.go
package aiassistance

import (
	"encoding/json"

	"financial-assistance/internal/common/i18n"
)

// Input is a validated request body.
type Input struct {
	Prompt       string
	CurrentValue string
	Language     i18n.Language
}

type Output struct {
	Suggestion string `json:"suggestion"`
	Success    bool   `json:"success"`
	Model      string `json:"model"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// upstreamError is the error body of the provider. error is either an
// object with a message or a plain string.
type upstreamError struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}
