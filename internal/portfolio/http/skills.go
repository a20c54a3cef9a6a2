package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// SkillsHandler serves the public skills reads and the admin writes.
type SkillsHandler struct {
	SkillsService *service.SkillsService
}

type skillRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	SortOrder int    `json:"sort_order"`
}

func (h *SkillsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills, err := h.SkillsService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list skills", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, skills)
}

func (h *SkillsHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	skills, err := h.SkillsService.ListByCategory(ctx, r.PathValue("category"))
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list skills by category", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, skills)
}

func (h *SkillsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.SkillsService.Create(ctx, domain.Skill{
		Name:      req.Name,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create skill", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (h *SkillsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	var req skillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.SkillsService.Update(ctx, domain.Skill{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Skill not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to update skill", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

func (h *SkillsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid skill id")
		return
	}

	if err := h.SkillsService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Skill not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete skill", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

type skillReorderRequest struct {
	Order []domain.SkillSortOrderUpdate `json:"order"`
}

func (h *SkillsHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req skillReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.SkillsService.Reorder(ctx, req.Order); err != nil {
		slogx.FromContext(ctx).Error("failed to reorder skills", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
