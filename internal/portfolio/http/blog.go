package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// BlogHandler serves the public published-post reads and the admin CRUD.
// Public routes never reveal a draft, not even its existence: a draft id
// behaves exactly like a missing one.
type BlogHandler struct {
	BlogService *service.BlogService
}

type postRequest struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	Draft       bool       `json:"draft"`
	SortOrder   int        `json:"sort_order"`
	PublishedAt *time.Time `json:"published_at"`
}

func (req postRequest) toDomain(id string) domain.Post {
	return domain.Post{
		ID:          id,
		Title:       req.Title,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Tags:        req.Tags,
		Featured:    req.Featured,
		Draft:       req.Draft,
		SortOrder:   req.SortOrder,
		PublishedAt: req.PublishedAt,
	}
}

// HandleListPublished returns published posts without content bodies, which
// keeps the listing payload small for the frontend index page.
func (h *BlogHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.BlogService.ListPublished(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list published posts", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) HandleGetPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.BlogService.GetPublished(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load post", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, post)
}

// HandleList returns every post, drafts included, for the admin dashboard.
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.BlogService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list posts", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.BlogService.Get(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to load post", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.BlogService.Create(ctx, req.toDomain(req.ID)); err != nil {
		slogx.FromContext(ctx).Error("failed to create post", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "id": req.ID})
}

func (h *BlogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.BlogService.Update(ctx, req.toDomain(r.PathValue("id"))); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to update post", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

func (h *BlogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.BlogService.Delete(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Post not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete post", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
