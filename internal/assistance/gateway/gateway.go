// Package gateway submits a finished application to the backend.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	commonhttp "financial-assistance/internal/common/http"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/models"
)

const (
	Path           = "/api/submit-application"
	DefaultTimeout = 30 * time.Second
)

// Gateway posts FormData to the submit-application endpoint.
type Gateway struct {
	url     string
	timeout time.Duration
	http    *commonhttp.Client
	logger  logger.Logger
}

func New(baseURL string, timeout time.Duration, log logger.Logger) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		url:     strings.TrimRight(baseURL, "/") + Path,
		timeout: timeout,
		http:    commonhttp.NewClient(0),
		logger:  logger.Component(log, "gateway"),
	}
}

// Submit returns the application id the backend generated. Incomplete data
// is rejected with MISSING_DATA before any request is made.
func (g *Gateway) Submit(ctx context.Context, data models.FormData) (string, error) {
	if err := checkRequired(data); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.http.PostJSON(ctx, g.url, data, nil)
	if err != nil {
		reason := ReasonNetwork
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
			(errors.As(err, &ne) && ne.Timeout()) {
			reason = ReasonTimeout
		}
		g.logger.Warn("submission request failed", map[string]interface{}{
			"reason": string(reason),
			"error":  err,
		})
		return "", &Error{Reason: reason, Err: err}
	}

	var result Result
	decodeErr := json.Unmarshal(resp.Body, &result)

	if !resp.OK() {
		g.logger.Warn("submission rejected", map[string]interface{}{
			"status":  resp.StatusCode,
			"error":   result.Error,
			"details": result.Details,
		})
		return "", &Error{Reason: ReasonServerError, StatusCode: resp.StatusCode, Message: result.Error}
	}

	if decodeErr != nil {
		g.logger.Error("malformed submission response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(resp.Body),
			"error":  decodeErr,
		})
		return "", &Error{Reason: ReasonMalformedResponse, StatusCode: resp.StatusCode, Err: decodeErr}
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = result.Message
		}
		return "", &Error{Reason: ReasonServerError, StatusCode: resp.StatusCode, Message: msg}
	}

	if strings.TrimSpace(result.ApplicationID) == "" {
		g.logger.Error("submission response without application id", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return "", &Error{Reason: ReasonMalformedResponse, StatusCode: resp.StatusCode, Message: "missing applicationId"}
	}

	g.logger.Info("application accepted", map[string]interface{}{
		"applicationId": result.ApplicationID,
	})
	return result.ApplicationID, nil
}

// checkRequired mirrors the endpoint's structural check: every section must
// be present and the identity fields filled in.
func checkRequired(data models.FormData) error {
	var missing []string
	if data.PersonalInfo == (models.PersonalInfo{}) {
		missing = append(missing, string(models.SectionPersonal))
	}
	if familyIsEmpty(data.FamilyFinancialInfo) {
		missing = append(missing, string(models.SectionFamily))
	}
	if data.SituationDescriptions == (models.SituationDescriptions{}) {
		missing = append(missing, string(models.SectionSituation))
	}
	p := data.PersonalInfo
	for _, f := range []struct{ key, value string }{
		{models.FieldName, p.Name},
		{models.FieldEmail, p.Email},
		{models.FieldNationalID, p.NationalID},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, string(models.SectionPersonal)+"."+f.key)
		}
	}
	if len(missing) > 0 {
		return &Error{Reason: ReasonMissingData, Message: "missing " + strings.Join(missing, ", ")}
	}
	return nil
}

func familyIsEmpty(f models.FamilyFinancialInfo) bool {
	return f.MaritalStatus == "" && f.EmploymentStatus == "" && f.HousingStatus == "" &&
		f.Dependents == 0 && f.MonthlyIncome.IsZero()
}
