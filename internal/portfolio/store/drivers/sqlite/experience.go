package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

type experienceRepo struct {
	q dbtx
}

const experienceColumns = `id, role, company, period, description, technologies, sort_order, created_at, updated_at`

func scanExperience(row interface{ Scan(dest ...any) error }) (domain.Experience, error) {
	var (
		e                    domain.Experience
		technologies         sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description,
		&technologies, &e.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return domain.Experience{}, mapNotFound(err)
	}

	// technologies is nullable; null reads as an empty list.
	if technologies.Valid {
		if e.Technologies, err = decodeStrings(technologies.String); err != nil {
			return domain.Experience{}, err
		}
	} else {
		e.Technologies = []string{}
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Experience{}, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Experience{}, err
	}
	return e, nil
}

func (r *experienceRepo) ListExperience(ctx context.Context) ([]domain.Experience, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experience ORDER BY sort_order ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *experienceRepo) GetExperience(ctx context.Context, id string) (domain.Experience, error) {
	return scanExperience(r.q.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experience WHERE id = ?`, id,
	))
}

func (r *experienceRepo) CreateExperience(ctx context.Context, e domain.Experience) error {
	technologies, err := encodeTechnologies(e.Technologies)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO experience (id, role, company, period, description, technologies, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Role, e.Company, e.Period, e.Description, technologies, e.SortOrder,
	)
	return mapConflict(err)
}

func (r *experienceRepo) UpdateExperience(ctx context.Context, e domain.Experience) error {
	technologies, err := encodeTechnologies(e.Technologies)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx,
		`UPDATE experience
		 SET role = ?, company = ?, period = ?, description = ?, technologies = ?,
		     sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		e.Role, e.Company, e.Period, e.Description, technologies, e.SortOrder,
		fmtTime(time.Now()), e.ID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *experienceRepo) DeleteExperience(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM experience WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *experienceRepo) DeleteEmptyExperience(ctx context.Context) (int64, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM experience WHERE id = ''`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *experienceRepo) SetExperienceSortOrder(ctx context.Context, id string, sortOrder int) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE experience SET sort_order = ? WHERE id = ?`, sortOrder, id,
	)
	return err
}

// encodeTechnologies keeps the column NULL when there is nothing to store.
// Existing rows use NULL, not "[]", for an empty list.
func encodeTechnologies(ss []string) (sql.NullString, error) {
	if len(ss) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := encodeStrings(ss)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: raw, Valid: true}, nil
}
