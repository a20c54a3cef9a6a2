package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// ExperienceHandler serves the public experience reads and the admin writes.
type ExperienceHandler struct {
	ExperienceService *service.ExperienceService
}

type experienceRequest struct {
	ID           string   `json:"id"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	SortOrder    int      `json:"sort_order"`
}

func (req experienceRequest) toDomain(id string) domain.Experience {
	return domain.Experience{
		ID:           id,
		Role:         req.Role,
		Company:      req.Company,
		Period:       req.Period,
		Description:  req.Description,
		Technologies: req.Technologies,
		SortOrder:    req.SortOrder,
	}
}

func (h *ExperienceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.ExperienceService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, entries)
}

func (h *ExperienceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := h.ExperienceService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Experience not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, entry)
}

func (h *ExperienceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req experienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ExperienceService.Create(ctx, req.toDomain(req.ID)); err != nil {
		slogx.FromContext(ctx).Error("failed to create experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": req.ID})
}

func (h *ExperienceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req experienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ExperienceService.Update(ctx, req.toDomain(r.PathValue("id"))); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Experience not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to update experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

func (h *ExperienceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ExperienceService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Experience not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

// HandlePruneEmpty removes rows with an empty id left behind by older
// clients that created entries before assigning one.
func (h *ExperienceHandler) HandlePruneEmpty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deleted, err := h.ExperienceService.PruneEmpty(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to prune empty experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if deleted == 0 {
		httpx.WriteError(w, http.StatusNotFound, "No empty experience found")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "deleted": deleted})
}

func (h *ExperienceHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ExperienceService.Reorder(ctx, req.Order); err != nil {
		slogx.FromContext(ctx).Error("failed to reorder experience", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
