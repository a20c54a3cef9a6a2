package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// SettingsHandler serves site settings. Each setting's value is an opaque
// JSON document owned by the frontend; the server stores and returns it
// verbatim under its key.
type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleList returns every setting as one object keyed by name.
func (h *SettingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.SettingsService.Map(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list settings", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, settings)
}

// HandleGet returns the bare value document for one key, not the row around
// it.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	setting, err := h.SettingsService.Get(ctx, r.PathValue("key"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Setting not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load setting", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, setting.Value)
}

// HandleSet stores the request body as the key's value. The body must be
// valid JSON; its internal shape is not inspected.
func (h *SettingsHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil || !json.Valid(body) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.SettingsService.Set(ctx, r.PathValue("key"), body); err != nil {
		slogx.FromContext(ctx).Error("failed to save setting", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
