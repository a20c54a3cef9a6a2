package sqlite

import (
	"context"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

type messagesRepo struct {
	q dbtx
}

func (r *messagesRepo) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, name, email, message, read, created_at
		 FROM contact_messages ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		var (
			m         domain.Message
			read      int
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &read, &createdAt); err != nil {
			return nil, err
		}
		m.Read = read != 0
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message) VALUES (?, ?, ?)`,
		m.Name, m.Email, m.Body,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *messagesRepo) MarkMessageRead(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE contact_messages SET read = 1 WHERE id = ?`, id,
	)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *messagesRepo) DeleteMessage(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
