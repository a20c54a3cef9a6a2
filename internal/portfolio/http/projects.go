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

// ProjectsHandler serves the public project reads and the admin writes.
type ProjectsHandler struct {
	ProjectsService *service.ProjectsService
}

type projectRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        *string  `json:"link"`
	Github      *string  `json:"github"`
	Image       *string  `json:"image"`
	Featured    bool     `json:"featured"`
	Draft       bool     `json:"draft"`
	SortOrder   int      `json:"sort_order"`
}

func (req projectRequest) toDomain(id string) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Link:        req.Link,
		Github:      req.Github,
		Image:       req.Image,
		Featured:    req.Featured,
		Draft:       req.Draft,
		SortOrder:   req.SortOrder,
	}
}

func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.ProjectsService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list projects", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projects)
}

func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	project, err := h.ProjectsService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load project", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, project)
}

func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ProjectsService.Create(ctx, req.toDomain(req.ID)); err != nil {
		slogx.FromContext(ctx).Error("failed to create project", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": req.ID})
}

func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ProjectsService.Update(ctx, req.toDomain(r.PathValue("id"))); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to update project", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ProjectsService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete project", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

type reorderRequest struct {
	Order []domain.SortOrderUpdate `json:"order"`
}

// HandleReorder applies a whole batch of sort_order assignments in one
// transaction so a half-applied ordering never becomes visible.
func (h *ProjectsHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.ProjectsService.Reorder(ctx, req.Order); err != nil {
		slogx.FromContext(ctx).Error("failed to reorder projects", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
