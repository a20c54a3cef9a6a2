package sqlite

import (
	"context"
	"database/sql"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

type skillsRepo struct {
	q dbtx
}

func collectSkills(rows *sql.Rows) ([]domain.Skill, error) {
	defer rows.Close()

	out := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *skillsRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, category, sort_order FROM skills ORDER BY category, sort_order ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectSkills(rows)
}

func (r *skillsRepo) ListSkillsByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, category, sort_order FROM skills WHERE category = ? ORDER BY sort_order ASC`,
		category,
	)
	if err != nil {
		return nil, err
	}
	return collectSkills(rows)
}

func (r *skillsRepo) CreateSkill(ctx context.Context, s domain.Skill) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO skills (name, category, sort_order) VALUES (?, ?, ?)`,
		s.Name, s.Category, s.SortOrder,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *skillsRepo) UpdateSkill(ctx context.Context, s domain.Skill) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE skills SET name = ?, category = ?, sort_order = ? WHERE id = ?`,
		s.Name, s.Category, s.SortOrder, s.ID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *skillsRepo) DeleteSkill(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *skillsRepo) SetSkillSortOrder(ctx context.Context, id int64, sortOrder int) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE skills SET sort_order = ? WHERE id = ?`, sortOrder, id,
	)
	return err
}
