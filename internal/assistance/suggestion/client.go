// internal/assistance/suggestion/client.go
package suggestion

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	commonhttp "financial-assistance/internal/common/http"
	"financial-assistance/internal/common/logger"
)

const (
	// Path of the assistance endpoint relative to the server URL.
	Path = "/api/ai-assistance"

	DefaultTimeout = 45 * time.Second

	previewLength = 200
)

// htmlMarkers identify an error page served in place of JSON.
var htmlMarkers = []string{"<!DOCTYPE", "<html", "Internal Server Error", "Application error"}

// Client calls the AI assistance endpoint.
type Client struct {
	url     string
	timeout time.Duration
	http    *commonhttp.Client
	logger  logger.Logger
}

// NewClient returns a client for the server at baseURL. A zero timeout uses
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:     strings.TrimRight(baseURL, "/") + Path,
		timeout: timeout,
		http:    commonhttp.NewClient(0),
		logger:  logger.Component(log, "suggestion-client"),
	}
}

// Suggest posts req and returns the suggestion with the model that wrote
// it. Every failure is a *RequestError.
func (c *Client) Suggest(ctx context.Context, req Request) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.http.PostJSON(ctx, c.url, req, nil)
	if err != nil {
		if isTimeout(ctx, err) {
			return Response{}, &RequestError{Category: CategoryTimeout, Err: err}
		}
		return Response{}, &RequestError{Category: CategoryNetwork, Err: err}
	}

	c.logger.Debug("assistance response received", map[string]interface{}{
		"status":   resp.StatusCode,
		"bytes":    len(resp.Body),
		"duration": time.Since(start).String(),
	})

	text := string(resp.Body)
	if strings.TrimSpace(text) == "" {
		return Response{}, c.malformed(resp.StatusCode, "empty response from server", text)
	}
	if looksLikeHTML(text) {
		return Response{}, c.malformed(resp.StatusCode, "html error page instead of json", text)
	}

	var body struct {
		Suggestion *string `json:"suggestion"`
		Model      string  `json:"model"`
		Error      string  `json:"error"`
		Message    string  `json:"message"`
		Details    string  `json:"details"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return Response{}, c.malformed(resp.StatusCode, "invalid json", text)
	}

	if !resp.OK() {
		detail := body.Error
		if detail == "" {
			detail = body.Message
		}
		c.logger.Warn("assistance request rejected", map[string]interface{}{
			"status":  resp.StatusCode,
			"error":   detail,
			"details": body.Details,
		})
		return Response{}, &RequestError{Category: statusCategory(resp.StatusCode), StatusCode: resp.StatusCode, Detail: detail}
	}

	if body.Suggestion == nil || strings.TrimSpace(*body.Suggestion) == "" {
		return Response{}, c.malformed(resp.StatusCode, "no suggestion in response", text)
	}
	return Response{Suggestion: *body.Suggestion, Success: true, Model: body.Model}, nil
}

func (c *Client) malformed(status int, detail, body string) error {
	c.logger.Error("malformed assistance response", map[string]interface{}{
		"status":  status,
		"reason":  detail,
		"preview": preview(body),
	})
	return &RequestError{Category: CategoryMalformed, StatusCode: status, Detail: detail}
}

func statusCategory(status int) Category {
	switch {
	case status == http.StatusTooManyRequests:
		return CategoryBusy
	case status == http.StatusRequestTimeout:
		return CategoryTimeout
	case status == http.StatusBadRequest:
		return CategoryInvalidRequest
	default:
		return CategoryUnavailable
	}
}

func looksLikeHTML(text string) bool {
	if strings.HasPrefix(text, "Internal s") {
		return true
	}
	for _, m := range htmlMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLength {
		return string(r[:previewLength])
	}
	return s
}
