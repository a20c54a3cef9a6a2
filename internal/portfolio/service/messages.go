package service

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// MessagesService handles contact-form submissions and the admin inbox.
type MessagesService struct {
	Store store.Store
}

// Submit records an incoming contact message and returns its id.
func (s *MessagesService) Submit(ctx context.Context, m domain.Message) (int64, error) {
	return s.Store.Messages().CreateMessage(ctx, m)
}

// List returns the inbox, newest first, read and unread alike.
func (s *MessagesService) List(ctx context.Context) ([]domain.Message, error) {
	return s.Store.Messages().ListMessages(ctx)
}

func (s *MessagesService) MarkRead(ctx context.Context, id int64) error {
	return s.Store.Messages().MarkMessageRead(ctx, id)
}

func (s *MessagesService) Delete(ctx context.Context, id int64) error {
	return s.Store.Messages().DeleteMessage(ctx, id)
}
