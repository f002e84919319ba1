// internal/handlers/ai-assistance/handler.go
package aiassistance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "financial-assistance/internal/common/errors"
	commonhttp "financial-assistance/internal/common/http"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/common/metrics"
)

const (
	Route = "/api/ai-assistance"

	maxRequestBytes = 64 << 10
	chatPath        = "/v1/chat/completions"
)

var systemPrompts = map[i18n.Language]string{
	i18n.English: "You are an AI assistant specialized in helping people write financial assistance applications. Write professional, empathetic, and honest text in English. Keep the response between 80-150 words.",
	i18n.Arabic:  "أنت مساعد ذكي متخصص في مساعدة الأشخاص في كتابة طلبات المساعدة المالية. اكتب نصوصاً مهنية ومتعاطفة وصادقة باللغة العربية. اجعل النص بين 80-150 كلمة.",
}

type Handler struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		// The per-call context carries the deadline.
		client: commonhttp.NewClient(0),
		logger: logger.Component(log, "ai-assistance"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		h.writeError(w, apperrors.NewInvalidRequestError("Failed to read request body", err.Error()))
		return
	}

	input, err := parseInput(body)
	if err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(output)
}

// parseInput checks the body the same way for every client: a JSON object
// with a non-empty string prompt and a language of en or ar.
func parseInput(body []byte) (*Input, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.NewInvalidRequestError("Empty request body", "")
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.NewInvalidRequestError("Invalid request body - must be valid JSON", err.Error())
	}

	prompt, ok := raw["prompt"].(string)
	if !ok || prompt == "" {
		return nil, apperrors.NewInvalidRequestError("Prompt is required and must be a string", "")
	}

	langStr, _ := raw["language"].(string)
	lang, ok := i18n.ParseLanguage(langStr)
	if !ok {
		return nil, apperrors.NewInvalidRequestError("Language is required and must be 'en' or 'ar'", "")
	}

	currentValue, _ := raw["currentValue"].(string)

	return &Input{Prompt: prompt, CurrentValue: currentValue, Language: lang}, nil
}

// BuildUserPrompt appends the existing text, when there is any, and asks for
// an improvement; otherwise it asks for a fresh response.
func BuildUserPrompt(prompt, currentValue string) string {
	if strings.TrimSpace(currentValue) != "" {
		return fmt.Sprintf("%s\n\nCurrent text: \"%s\"\n\nPlease improve this text while keeping it professional and concise.", prompt, currentValue)
	}
	return prompt + "\n\nPlease write a professional and empathetic response."
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if h.config.APIKey == "" {
		h.logger.Error("no API key configured", map[string]interface{}{
			"env": "GROK_API_KEY",
		})
		return nil, apperrors.NewAINotConfiguredError()
	}

	payload := chatRequest{
		Model: h.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompts[input.Language]},
			{Role: "user", Content: BuildUserPrompt(input.Prompt, input.CurrentValue)},
		},
		MaxTokens:   h.config.MaxTokens,
		Temperature: h.config.Temperature,
		Stream:      false,
	}

	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	lang := string(input.Language)
	start := time.Now()
	resp, err := h.client.PostJSON(ctx, strings.TrimRight(h.config.BaseURL, "/")+chatPath, payload, map[string]string{
		"Authorization": "Bearer " + h.config.APIKey,
	})
	metrics.AIUpstreamDuration.WithLabelValues(lang).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			h.recordOutcome(lang, "timeout")
			h.logger.Warn("upstream request timed out", map[string]interface{}{
				"timeout": h.config.Timeout.String(),
			})
			return nil, apperrors.NewAITimeoutError()
		}
		h.recordOutcome(lang, "unavailable")
		h.logger.Error("failed to reach upstream", map[string]interface{}{"error": err})
		return nil, apperrors.NewAIUnavailableError(err)
	}

	if !resp.OK() {
		h.recordOutcome(lang, fmt.Sprintf("status_%d", resp.StatusCode))
		detail := upstreamDetail(resp.Body)
		h.logger.Error("upstream returned an error", map[string]interface{}{
			"status":  resp.StatusCode,
			"details": detail,
		})
		return nil, mapUpstreamStatus(resp.StatusCode, detail)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		h.recordOutcome(lang, "bad_response")
		return nil, apperrors.NewAIBadResponseError("Invalid response format from AI service", errors.New("empty response from AI service"))
	}

	var chat chatResponse
	if err := json.Unmarshal(resp.Body, &chat); err != nil {
		h.recordOutcome(lang, "bad_response")
		h.logger.Error("invalid upstream json", map[string]interface{}{
			"error":   err,
			"preview": preview(resp.Body),
		})
		return nil, apperrors.NewAIBadResponseError("Invalid response format from AI service", err)
	}

	var suggestion string
	if len(chat.Choices) > 0 {
		suggestion = strings.TrimSpace(chat.Choices[0].Message.Content)
	}
	if suggestion == "" {
		h.recordOutcome(lang, "empty")
		return nil, apperrors.NewAIBadResponseError("AI service did not generate a suggestion", errors.New("no content found in AI response"))
	}

	h.recordOutcome(lang, "success")
	h.logger.Info("suggestion generated", map[string]interface{}{
		"language": lang,
		"length":   len([]rune(suggestion)),
		"duration": time.Since(start).String(),
	})

	return &Output{Suggestion: suggestion, Success: true, Model: h.config.Model}, nil
}

func mapUpstreamStatus(status int, detail string) error {
	var stdErr *apperrors.StandardError
	switch status {
	case http.StatusTooManyRequests:
		stdErr = apperrors.NewAIRateLimitedError()
	case http.StatusUnauthorized, http.StatusForbidden:
		stdErr = apperrors.NewAIAuthFailedError(status)
	case http.StatusNotFound:
		stdErr = apperrors.NewAIModelNotFoundError()
	default:
		return apperrors.NewAIUpstreamError(status, detail)
	}
	stdErr.Details = detail
	return stdErr
}

// upstreamDetail extracts error.message, error or message from the body,
// falling back to the raw text.
func upstreamDetail(body []byte) string {
	var ue upstreamError
	if err := json.Unmarshal(body, &ue); err == nil {
		if len(ue.Error) > 0 {
			var obj struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(ue.Error, &obj) == nil && obj.Message != "" {
				return obj.Message
			}
			var s string
			if json.Unmarshal(ue.Error, &s) == nil && s != "" {
				return s
			}
		}
		if ue.Message != "" {
			return ue.Message
		}
	}
	return preview(body)
}

func preview(body []byte) string {
	const limit = 200
	r := []rune(string(body))
	if len(r) > limit {
		return string(r[:limit])
	}
	return string(r)
}

func (h *Handler) recordOutcome(language, outcome string) {
	metrics.AIUpstreamRequests.WithLabelValues(language, outcome).Inc()
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := apperrors.AsStandardError(err).Code
	metrics.ErrorResponses.WithLabelValues("ai-assistance", apperrors.GetErrorCategory(code)).Inc()
	status := apperrors.WriteJSON(w, err, false)
	if status >= http.StatusInternalServerError {
		h.logger.Error("ai assistance request failed", map[string]interface{}{
			"status": status,
			"error":  err,
		})
	}
}
