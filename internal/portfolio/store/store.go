package store

import (
	"context"
	"errors"

	"github.com/quietgrove/folio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep the table concerns separated and let
// tests swap in doubles per table.
type Store interface {
	Users() Users
	Sessions() Sessions
	Projects() Projects
	Experience() Experience
	Skills() Skills
	Settings() Settings
	Posts() Posts
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back if fn errors and
	// committing otherwise. Use it for multi-row batches (reorders) that must
	// be all-or-nothing. Session and credential operations touch a single row
	// and never need it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns the user's public projection plus hash.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail looks a user up by exact email match; no normalization.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user and returns its assigned id.
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)

	// UpdatePasswordHash replaces the stored hash for an existing user.
	UpdatePasswordHash(ctx context.Context, id int64, newHash string) error
}

type Sessions interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSession returns the row by token, expired or not. Expiry policy
	// lives in the auth service, not here.
	GetSession(ctx context.Context, id string) (domain.Session, error)

	// DeleteSession removes a session. Deleting an absent token is not an
	// error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes every row whose expiry has passed and
	// reports how many went away. Housekeeping only; lazy expiry on read is
	// the correctness mechanism.
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// CountSessions reports the number of stored rows, expired included.
	CountSessions(ctx context.Context) (int64, error)
}

type Projects interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) error

	// UpdateProject returns ErrNotFound when no row matched.
	UpdateProject(ctx context.Context, p domain.Project) error

	// DeleteProject returns ErrNotFound when no row matched.
	DeleteProject(ctx context.Context, id string) error

	// SetProjectSortOrder updates one row's sort_order. Callers batch these
	// inside WithTx.
	SetProjectSortOrder(ctx context.Context, id string, sortOrder int) error
}

type Experience interface {
	ListExperience(ctx context.Context) ([]domain.Experience, error)
	GetExperience(ctx context.Context, id string) (domain.Experience, error)
	CreateExperience(ctx context.Context, e domain.Experience) error
	UpdateExperience(ctx context.Context, e domain.Experience) error
	DeleteExperience(ctx context.Context, id string) error

	// DeleteEmptyExperience removes rows whose id is the empty string (bad
	// rows a buggy editor once produced) and reports how many were removed.
	DeleteEmptyExperience(ctx context.Context) (int64, error)

	SetExperienceSortOrder(ctx context.Context, id string, sortOrder int) error
}

type Skills interface {
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	ListSkillsByCategory(ctx context.Context, category string) ([]domain.Skill, error)

	// CreateSkill returns the autoincrement id of the new row.
	CreateSkill(ctx context.Context, s domain.Skill) (int64, error)

	UpdateSkill(ctx context.Context, s domain.Skill) error
	DeleteSkill(ctx context.Context, id int64) error
	SetSkillSortOrder(ctx context.Context, id int64, sortOrder int) error
}

type Settings interface {
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	GetSetting(ctx context.Context, key string) (domain.Setting, error)

	// UpsertSetting inserts or replaces the value for a key.
	UpsertSetting(ctx context.Context, s domain.Setting) error
}

type Posts interface {
	// ListPublishedPosts returns non-draft posts without their content.
	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)

	// ListPosts returns everything, drafts and content included (admin view).
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// GetPublishedPost returns a non-draft post with content; draft rows are
	// ErrNotFound on this path.
	GetPublishedPost(ctx context.Context, id string) (domain.Post, error)

	GetPost(ctx context.Context, id string) (domain.Post, error)
	CreatePost(ctx context.Context, p domain.Post) error
	UpdatePost(ctx context.Context, p domain.Post) error
	DeletePost(ctx context.Context, id string) error
}

type Messages interface {
	// ListMessages returns contact messages newest first.
	ListMessages(ctx context.Context) ([]domain.Message, error)

	CreateMessage(ctx context.Context, m domain.Message) (int64, error)

	// MarkMessageRead returns ErrNotFound when no row matched.
	MarkMessageRead(ctx context.Context, id int64) error

	DeleteMessage(ctx context.Context, id int64) error
}
