package service

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

// SkillsService manages the skills list.
type SkillsService struct {
	Store store.Store
}

func (s *SkillsService) List(ctx context.Context) ([]domain.Skill, error) {
	return s.Store.Skills().ListSkills(ctx)
}

func (s *SkillsService) ListByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	return s.Store.Skills().ListSkillsByCategory(ctx, category)
}

func (s *SkillsService) Create(ctx context.Context, sk domain.Skill) (int64, error) {
	return s.Store.Skills().CreateSkill(ctx, sk)
}

func (s *SkillsService) Update(ctx context.Context, sk domain.Skill) error {
	return s.Store.Skills().UpdateSkill(ctx, sk)
}

func (s *SkillsService) Delete(ctx context.Context, id int64) error {
	return s.Store.Skills().DeleteSkill(ctx, id)
}

// Reorder applies a batch of sort_order assignments atomically.
func (s *SkillsService) Reorder(ctx context.Context, updates []domain.SkillSortOrderUpdate) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, u := range updates {
			if err := tx.Skills().SetSkillSortOrder(ctx, u.ID, u.SortOrder); err != nil {
				return err
			}
		}
		return nil
	})
}
