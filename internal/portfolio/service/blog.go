package service

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// BlogService manages blog posts. Public reads only ever see published
// posts; drafts exist solely behind the admin surface.
type BlogService struct {
	Store store.Store
}

// ListPublished returns published posts without their content bodies, newest
// first with featured posts leading.
func (s *BlogService) ListPublished(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPublishedPosts(ctx)
}

// GetPublished returns a single published post with content. Drafts come
// back as store.ErrNotFound.
func (s *BlogService) GetPublished(ctx context.Context, id string) (domain.Post, error) {
	return s.Store.Posts().GetPublishedPost(ctx, id)
}

// List returns every post, drafts included, with content.
func (s *BlogService) List(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx)
}

func (s *BlogService) Get(ctx context.Context, id string) (domain.Post, error) {
	return s.Store.Posts().GetPost(ctx, id)
}

func (s *BlogService) Create(ctx context.Context, p domain.Post) error {
	return s.Store.Posts().CreatePost(ctx, p)
}

func (s *BlogService) Update(ctx context.Context, p domain.Post) error {
	return s.Store.Posts().UpdatePost(ctx, p)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.Store.Posts().DeletePost(ctx, id)
}
