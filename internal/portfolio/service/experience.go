package service

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// ExperienceService manages work history entries.
type ExperienceService struct {
	Store store.Store
}

func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.Store.Experience().ListExperience(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id string) (domain.Experience, error) {
	return s.Store.Experience().GetExperience(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, e domain.Experience) error {
	return s.Store.Experience().CreateExperience(ctx, e)
}

func (s *ExperienceService) Update(ctx context.Context, e domain.Experience) error {
	return s.Store.Experience().UpdateExperience(ctx, e)
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	return s.Store.Experience().DeleteExperience(ctx, id)
}

// Reorder applies a batch of sort_order assignments atomically.
func (s *ExperienceService) Reorder(ctx context.Context, updates []domain.SortOrderUpdate) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, u := range updates {
			if err := tx.Experience().SetExperienceSortOrder(ctx, u.ID, u.SortOrder); err != nil {
				return err
			}
		}
		return nil
	})
}

// PruneEmpty removes rows created with an empty id by older clients. Returns
// how many were removed.
func (s *ExperienceService) PruneEmpty(ctx context.Context) (int64, error) {
	return s.Store.Experience().DeleteEmptyExperience(ctx)
}
