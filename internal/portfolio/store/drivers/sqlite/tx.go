package sqlite

import (
	"context"
	"database/sql"

	"github.com/quietgrove/folio/internal/portfolio/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open; caller commits or rolls back

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Users() store.Users           { return &usersRepo{q: t.tx} }
func (t *txStore) Sessions() store.Sessions     { return &sessionsRepo{q: t.tx} }
func (t *txStore) Projects() store.Projects     { return &projectsRepo{q: t.tx} }
func (t *txStore) Experience() store.Experience { return &experienceRepo{q: t.tx} }
func (t *txStore) Skills() store.Skills         { return &skillsRepo{q: t.tx} }
func (t *txStore) Settings() store.Settings     { return &settingsRepo{q: t.tx} }
func (t *txStore) Posts() store.Posts           { return &postsRepo{q: t.tx} }
func (t *txStore) Messages() store.Messages     { return &messagesRepo{q: t.tx} }
