package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

type settingsRepo struct {
	q dbtx
}

func (r *settingsRepo) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT key, value, updated_at FROM site_settings`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Setting{}
	for rows.Next() {
		var (
			s         domain.Setting
			value     string
			updatedAt string
		)
		if err := rows.Scan(&s.Key, &value, &updatedAt); err != nil {
			return nil, err
		}
		s.Value = json.RawMessage(value)
		if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *settingsRepo) GetSetting(ctx context.Context, key string) (domain.Setting, error) {
	var (
		s         domain.Setting
		value     string
		updatedAt string
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM site_settings WHERE key = ?`, key,
	).Scan(&s.Key, &value, &updatedAt)
	if err != nil {
		return domain.Setting{}, mapNotFound(err)
	}
	s.Value = json.RawMessage(value)
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Setting{}, err
	}
	return s, nil
}

func (r *settingsRepo) UpsertSetting(ctx context.Context, s domain.Setting) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO site_settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.Key, string(s.Value), fmtTime(time.Now()),
	)
	return err
}
