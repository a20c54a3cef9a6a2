package service

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// ProjectsService manages portfolio projects.
type ProjectsService struct {
	Store store.Store
}

func (s *ProjectsService) List(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ProjectsService) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.Store.Projects().GetProject(ctx, id)
}

func (s *ProjectsService) Create(ctx context.Context, p domain.Project) error {
	return s.Store.Projects().CreateProject(ctx, p)
}

func (s *ProjectsService) Update(ctx context.Context, p domain.Project) error {
	return s.Store.Projects().UpdateProject(ctx, p)
}

func (s *ProjectsService) Delete(ctx context.Context, id string) error {
	return s.Store.Projects().DeleteProject(ctx, id)
}

// Reorder applies a batch of sort_order assignments atomically. Either every
// assignment lands or none do.
func (s *ProjectsService) Reorder(ctx context.Context, updates []domain.SortOrderUpdate) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, u := range updates {
			if err := tx.Projects().SetProjectSortOrder(ctx, u.ID, u.SortOrder); err != nil {
				return err
			}
		}
		return nil
	})
}
