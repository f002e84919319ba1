// internal/handlers/submit-application/handler.go
package submitapplication

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	apperrors "financial-assistance/internal/common/errors"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/common/metrics"
	"financial-assistance/internal/models"

	"github.com/google/uuid"
)

const (
	Route = "/api/submit-application"

	SuccessMessage = "Application submitted successfully"

	maxRequestBytes = 1 << 20
	idSuffixLength  = 9
)

var sections = map[string]bool{
	"":                              true,
	"(root)":                        true,
	string(models.SectionPersonal):  true,
	string(models.SectionFamily):    true,
	string(models.SectionSituation): true,
}

type Handler struct {
	config     *Config
	handoffs   Handoffs
	translator i18n.Translator
	logger     logger.Logger
	now        func() time.Time
}

func NewHandler(config *Config, handoffs Handoffs, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		handoffs:   handoffs,
		translator: i18n.NewTable(),
		logger:     logger.Component(log, "submit-application"),
		now:        time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		h.reject(w, apperrors.NewInvalidRequestError("Invalid request data", err.Error()))
		return
	}

	form, err := h.parse(body)
	if err != nil {
		h.reject(w, err)
		return
	}

	h.logger.Info("application received", map[string]interface{}{
		"name":          form.PersonalInfo.Name,
		"email":         form.PersonalInfo.Email,
		"maritalStatus": form.FamilyFinancialInfo.MaritalStatus,
	})

	if h.config.ProcessingDelay > 0 {
		select {
		case <-time.After(h.config.ProcessingDelay):
		case <-r.Context().Done():
			h.fail(w, apperrors.NewInternalError("Internal server error during submission", r.Context().Err()))
			return
		}
	}

	submittedAt := h.now().UTC()
	appID, err := h.generateID(submittedAt)
	if err != nil {
		h.fail(w, apperrors.NewInternalError("Internal server error during submission", err))
		return
	}

	h.handoff(r.Context(), appID, form, submittedAt, i18n.Negotiate(r.Header.Get("Accept-Language")))

	metrics.ApplicationsSubmitted.WithLabelValues("accepted").Inc()
	h.logger.Info("application accepted", map[string]interface{}{
		"applicationId": appID,
		"email":         form.PersonalInfo.Email,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Output{
		Success:       true,
		ApplicationID: appID,
		Message:       SuccessMessage,
		Timestamp:     submittedAt.Format(time.RFC3339Nano),
	})
}

// parse checks structure with the form schema before decoding. Missing
// sections take precedence over missing identity fields.
func (h *Handler) parse(body []byte) (*models.FormData, error) {
	result, err := formSchema.ValidateBytes(body)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("Invalid request data", err.Error())
	}

	if !result.Valid {
		h.logger.Warn("submission failed structural check", map[string]interface{}{
			"errors": result.String(),
		})
		for _, field := range result.Fields() {
			if sections[field] {
				return nil, apperrors.NewMissingFormDataError()
			}
		}
		return nil, apperrors.NewMissingPersonalInfoError()
	}

	form := models.NewFormData()
	if err := json.Unmarshal(body, &form); err != nil {
		return nil, apperrors.NewInvalidRequestError("Invalid request data", err.Error())
	}
	return &form, nil
}

// generateID returns <prefix>-<unix millis>-<9 base36 characters>.
func (h *Handler) generateID(at time.Time) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	suffix := new(big.Int).SetBytes(id[:]).Text(36)
	if len(suffix) < idSuffixLength {
		suffix = strings.Repeat("0", idSuffixLength-len(suffix)) + suffix
	}
	prefix := h.config.IDPrefix
	if prefix == "" {
		prefix = "APP"
	}
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), suffix[:idSuffixLength]), nil
}

// handoff starts the back-office process and sends confirmations. Every
// step is best-effort; failures are logged and counted only.
func (h *Handler) handoff(ctx context.Context, appID string, form *models.FormData, at time.Time, lang i18n.Language) {
	if h.config.HandoffTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.HandoffTimeout)
		defer cancel()
	}

	if h.handoffs.Process != nil {
		key, err := h.handoffs.Process.StartProcess(ctx, h.config.ProcessID, map[string]interface{}{
			"applicationId":         appID,
			"submittedAt":           at.Format(time.RFC3339),
			"language":              string(lang),
			"personalInfo":          form.PersonalInfo,
			"familyFinancialInfo":   form.FamilyFinancialInfo,
			"situationDescriptions": form.SituationDescriptions,
		})
		if err != nil {
			h.handoffFailed("process", apperrors.NewProcessStartFailedError(err))
		} else {
			h.logger.Info("application process started", map[string]interface{}{
				"applicationId":      appID,
				"processInstanceKey": key,
			})
		}
	}

	idLine := fmt.Sprintf("%s: %s", h.translator.T(lang, "submission.applicationId"), appID)

	if h.handoffs.Email != nil && form.PersonalInfo.Email != "" {
		subject := h.translator.T(lang, "general.success")
		body := h.translator.T(lang, "submission.confirmationMessage") + "\n\n" + idLine
		if _, err := h.handoffs.Email.SendEmail(ctx, form.PersonalInfo.Email, subject, body); err != nil {
			h.handoffFailed("email", apperrors.NewNotificationSendFailedError("email", err))
		}
	}

	if h.handoffs.SMS != nil && form.PersonalInfo.Phone != "" {
		if _, err := h.handoffs.SMS.SendSMS(ctx, form.PersonalInfo.Phone, idLine); err != nil {
			h.handoffFailed("sms", apperrors.NewNotificationSendFailedError("sms", err))
		}
	}
}

func (h *Handler) handoffFailed(target string, err *apperrors.StandardError) {
	metrics.HandoffFailures.WithLabelValues(target).Inc()
	h.logger.Warn("post-submission hand-off failed", map[string]interface{}{
		"target":  target,
		"code":    string(err.Code),
		"details": err.Details,
	})
}

func (h *Handler) reject(w http.ResponseWriter, err error) {
	metrics.ApplicationsSubmitted.WithLabelValues("rejected").Inc()
	h.writeError(w, err)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	metrics.ApplicationsSubmitted.WithLabelValues("failed").Inc()
	h.logger.Error("application submission failed", map[string]interface{}{"error": err})
	h.writeError(w, err)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := apperrors.AsStandardError(err).Code
	metrics.ErrorResponses.WithLabelValues("submit-application", apperrors.GetErrorCategory(code)).Inc()
	apperrors.WriteJSON(w, err, true)
}
