package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
)

type projectsRepo struct {
	q dbtx
}

const projectColumns = `id, title, description, tags, link, github, image, featured, draft, sort_order, created_at, updated_at`

func scanProject(row interface{ Scan(dest ...any) error }) (domain.Project, error) {
	var (
		p                    domain.Project
		tags                 string
		link, github, image  sql.NullString
		featured, draft      int
		createdAt, updatedAt string
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &tags, &link, &github, &image,
		&featured, &draft, &p.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}

	if p.Tags, err = decodeStrings(tags); err != nil {
		return domain.Project{}, err
	}
	p.Link = mapNullString(link)
	p.Github = mapNullString(github)
	p.Image = mapNullString(image)
	p.Featured = featured != 0
	p.Draft = draft != 0
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Project{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY featured DESC, sort_order ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	return scanProject(r.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	))
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	tags, err := encodeStrings(p.Tags)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO projects (id, title, description, tags, link, github, image, featured, draft, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, tags,
		mapOptionalString(p.Link), mapOptionalString(p.Github), mapOptionalString(p.Image),
		boolToInt(p.Featured), boolToInt(p.Draft), p.SortOrder,
	)
	return mapConflict(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	tags, err := encodeStrings(p.Tags)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, tags = ?, link = ?, github = ?, image = ?,
		     featured = ?, draft = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Description, tags,
		mapOptionalString(p.Link), mapOptionalString(p.Github), mapOptionalString(p.Image),
		boolToInt(p.Featured), boolToInt(p.Draft), p.SortOrder, fmtTime(time.Now()),
		p.ID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *projectsRepo) SetProjectSortOrder(ctx context.Context, id string, sortOrder int) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE projects SET sort_order = ? WHERE id = ?`, sortOrder, id,
	)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
