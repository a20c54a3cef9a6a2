package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

type postsRepo struct {
	q dbtx
}

const postListColumns = `id, title, excerpt, tags, featured, draft, sort_order, published_at, created_at, updated_at`

// scanPost reads a row with or without the content column.
func scanPost(row interface{ Scan(dest ...any) error }, withContent bool) (domain.Post, error) {
	var (
		p                    domain.Post
		tags                 string
		featured, draft      int
		publishedAt          sql.NullString
		createdAt, updatedAt string
	)

	dest := []any{&p.ID, &p.Title, &p.Excerpt}
	if withContent {
		dest = append(dest, &p.Content)
	}
	dest = append(dest, &tags, &featured, &draft, &p.SortOrder, &publishedAt, &createdAt, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		return domain.Post{}, mapNotFound(err)
	}

	var err error
	if p.Tags, err = decodeStrings(tags); err != nil {
		return domain.Post{}, err
	}
	p.Featured = featured != 0
	p.Draft = draft != 0
	if p.PublishedAt, err = mapNullTime(publishedAt); err != nil {
		return domain.Post{}, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Post{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (r *postsRepo) collect(rows *sql.Rows, withContent bool) ([]domain.Post, error) {
	defer rows.Close()

	out := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows, withContent)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListPublishedPosts omits the content column so the public index stays
// small.
func (r *postsRepo) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+postListColumns+` FROM blog_posts
		 WHERE draft = 0
		 ORDER BY featured DESC, published_at DESC, created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(rows, false)
}

func (r *postsRepo) ListPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, title, excerpt, content, tags, featured, draft, sort_order, published_at, created_at, updated_at
		 FROM blog_posts
		 ORDER BY featured DESC, published_at DESC, created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return r.collect(rows, true)
}

func (r *postsRepo) GetPublishedPost(ctx context.Context, id string) (domain.Post, error) {
	return scanPost(r.q.QueryRowContext(ctx,
		`SELECT id, title, excerpt, content, tags, featured, draft, sort_order, published_at, created_at, updated_at
		 FROM blog_posts WHERE id = ? AND draft = 0`, id,
	), true)
}

func (r *postsRepo) GetPost(ctx context.Context, id string) (domain.Post, error) {
	return scanPost(r.q.QueryRowContext(ctx,
		`SELECT id, title, excerpt, content, tags, featured, draft, sort_order, published_at, created_at, updated_at
		 FROM blog_posts WHERE id = ?`, id,
	), true)
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	tags, err := encodeStrings(p.Tags)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx,
		`INSERT INTO blog_posts (id, title, excerpt, content, tags, featured, draft, sort_order, published_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Excerpt, p.Content, tags,
		boolToInt(p.Featured), boolToInt(p.Draft), p.SortOrder,
		mapOptionalTime(p.PublishedAt),
	)
	return mapConflict(err)
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) error {
	tags, err := encodeStrings(p.Tags)
	if err != nil {
		return err
	}
	res, err := r.q.ExecContext(ctx,
		`UPDATE blog_posts
		 SET title = ?, excerpt = ?, content = ?, tags = ?, featured = ?, draft = ?,
		     sort_order = ?, published_at = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Excerpt, p.Content, tags,
		boolToInt(p.Featured), boolToInt(p.Draft), p.SortOrder,
		mapOptionalTime(p.PublishedAt), fmtTime(time.Now()),
		p.ID,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
