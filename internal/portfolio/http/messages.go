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

// MessagesHandler serves the public contact form and the admin inbox.
type MessagesHandler struct {
	MessagesService *service.MessagesService
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HandleContact accepts a contact-form submission. All three fields are
// required; nothing else about them is validated server side.
func (h *MessagesHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Name, email, and message are required")
		return
	}

	_, err := h.MessagesService.Submit(ctx, domain.Message{
		Name:  req.Name,
		Email: req.Email,
		Body:  req.Message,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to store contact message", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated)
}

func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.MessagesService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list messages", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, messages)
}

func (h *MessagesHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.MessagesService.MarkRead(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to mark message read", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}

func (h *MessagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	if err := h.MessagesService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Message not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete message", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteSuccess(w, http.StatusOK)
}
