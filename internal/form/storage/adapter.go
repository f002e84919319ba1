package storage

import (
	"context"
	"encoding/json"
	"errors"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/models"
)

// Fixed slot names.
const (
	FormKey     = "financialAssistanceForm"
	LanguageKey = "language"
)

// Adapter mirrors FormData and the language choice into a KeyValueStore.
// Storage problems are logged and never reach the caller: a broken store
// must not block the user from filling in the form.
type Adapter struct {
	store KeyValueStore
	log   logger.Logger
}

// NewAdapter accepts a nil store, in which case every call is a no-op.
func NewAdapter(store KeyValueStore, log logger.Logger) *Adapter {
	return &Adapter{
		store: store,
		log:   logger.Component(log, "storage"),
	}
}

// Save serializes data into the form slot.
func (a *Adapter) Save(ctx context.Context, data models.FormData) {
	if a.store == nil {
		a.log.Warn("storage unavailable, form not saved", nil)
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		a.log.Warn("failed to encode form", map[string]interface{}{"error": err})
		return
	}
	if err := a.store.Set(ctx, FormKey, raw); err != nil {
		a.log.Warn("failed to save form", map[string]interface{}{"error": err})
	}
}

// Load returns the saved form. ok is false when nothing usable is stored.
func (a *Adapter) Load(ctx context.Context) (models.FormData, bool) {
	if a.store == nil {
		return models.FormData{}, false
	}
	raw, err := a.store.Get(ctx, FormKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.log.Warn("failed to read saved form", map[string]interface{}{"error": err})
		}
		return models.FormData{}, false
	}

	data := models.NewFormData()
	if err := json.Unmarshal(raw, &data); err != nil {
		a.log.Warn("ignoring malformed saved form", map[string]interface{}{
			"error": err,
			"bytes": len(raw),
		})
		return models.FormData{}, false
	}
	return data, true
}

// Clear removes the saved form.
func (a *Adapter) Clear(ctx context.Context) {
	if a.store == nil {
		return
	}
	if err := a.store.Delete(ctx, FormKey); err != nil {
		a.log.Warn("failed to clear saved form", map[string]interface{}{"error": err})
	}
}

func (a *Adapter) SaveLanguage(ctx context.Context, lang i18n.Language) {
	if a.store == nil {
		return
	}
	if err := a.store.Set(ctx, LanguageKey, []byte(lang)); err != nil {
		a.log.Warn("failed to save language", map[string]interface{}{"error": err})
	}
}

// LoadLanguage returns the saved language if it is en or ar.
func (a *Adapter) LoadLanguage(ctx context.Context) (i18n.Language, bool) {
	if a.store == nil {
		return "", false
	}
	raw, err := a.store.Get(ctx, LanguageKey)
	if err != nil {
		return "", false
	}
	return i18n.ParseLanguage(string(raw))
}
