// internal/handlers/submit-application/models.go
package submitapplication

import (
	"context"

	"financial-assistance/internal/common/validation"
)

type Output struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
}

// ProcessStarter starts the back-office process for an application.
type ProcessStarter interface {
	StartProcess(ctx context.Context, bpmnProcessID string, variables interface{}) (int64, error)
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) (string, error)
}

// Handoffs are optional; nil members are skipped.
type Handoffs struct {
	Process ProcessStarter
	Email   EmailSender
	SMS     SMSSender
}

var formSchema = validation.MustCompile(map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"personalInfo", "familyFinancialInfo", "situationDescriptions"},
	"properties": map[string]interface{}{
		"personalInfo": map[string]interface{}{
			"type":     "object",
			"required": []interface{}{"name", "email", "nationalId"},
			"properties": map[string]interface{}{
				"name":       map[string]interface{}{"type": "string", "minLength": 1},
				"email":      map[string]interface{}{"type": "string", "minLength": 1},
				"nationalId": map[string]interface{}{"type": "string", "minLength": 1},
			},
		},
		"familyFinancialInfo":   map[string]interface{}{"type": "object"},
		"situationDescriptions": map[string]interface{}{"type": "object"},
	},
})
