package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestDuplicateInsertsMapToAlreadyExists(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	t.Run("duplicate user email", func(t *testing.T) {
		_, err := st.Users().CreateUser(ctx, "admin@example.com", "hash")
		require.NoError(t, err)

		_, err = st.Users().CreateUser(ctx, "admin@example.com", "other-hash")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate project id", func(t *testing.T) {
		p := domain.Project{ID: "folio", Title: "Folio", Description: "d"}
		require.NoError(t, st.Projects().CreateProject(ctx, p))
		require.ErrorIs(t, st.Projects().CreateProject(ctx, p), store.ErrAlreadyExists)
	})

	t.Run("duplicate session token", func(t *testing.T) {
		uid, err := st.Users().CreateUser(ctx, "dup-session@example.com", "hash")
		require.NoError(t, err)

		s := domain.Session{ID: "tok", UserID: uid, ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, st.Sessions().CreateSession(ctx, s))
		require.ErrorIs(t, st.Sessions().CreateSession(ctx, s), store.ErrAlreadyExists)
	})
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(context.Background()))
}

func TestProjectNullableColumns(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	link := "https://example.com"
	require.NoError(t, st.Projects().CreateProject(ctx, domain.Project{
		ID:          "folio",
		Title:       "Folio",
		Description: "d",
		Tags:        []string{"go"},
		Link:        &link,
	}))

	got, err := st.Projects().GetProject(ctx, "folio")
	require.NoError(t, err)
	require.NotNil(t, got.Link)
	require.Equal(t, link, *got.Link)
	require.Nil(t, got.Github)
	require.Nil(t, got.Image)
	require.Equal(t, []string{"go"}, got.Tags)
	require.False(t, got.CreatedAt.IsZero())

	// An empty string pointer is stored as NULL, not "".
	empty := ""
	require.NoError(t, st.Projects().UpdateProject(ctx, domain.Project{
		ID:          "folio",
		Title:       "Folio",
		Description: "d",
		Tags:        []string{},
		Link:        &empty,
	}))

	got, err = st.Projects().GetProject(ctx, "folio")
	require.NoError(t, err)
	require.Nil(t, got.Link)
	require.Empty(t, got.Tags)
}

func TestExperienceTechnologiesRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	require.NoError(t, st.Experience().CreateExperience(ctx, domain.Experience{
		ID: "acme", Role: "dev", Company: "Acme", Period: "2020", Description: "d",
		Technologies: []string{"go", "sqlite"},
	}))
	require.NoError(t, st.Experience().CreateExperience(ctx, domain.Experience{
		ID: "none", Role: "dev", Company: "Acme", Period: "2021", Description: "d",
	}))

	withTech, err := st.Experience().GetExperience(ctx, "acme")
	require.NoError(t, err)
	require.Equal(t, []string{"go", "sqlite"}, withTech.Technologies)

	// NULL technologies read back as an empty list, never nil-panics downstream.
	without, err := st.Experience().GetExperience(ctx, "none")
	require.NoError(t, err)
	require.NotNil(t, without.Technologies)
	require.Empty(t, without.Technologies)
}

func TestNotFoundMapping(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	_, err := st.Users().GetUserByID(ctx, 99)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Projects().GetProject(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Projects().UpdateProject(ctx, domain.Project{ID: "nope", Tags: []string{}}), store.ErrNotFound)
	require.ErrorIs(t, st.Projects().DeleteProject(ctx, "nope"), store.ErrNotFound)
	require.ErrorIs(t, st.Skills().DeleteSkill(ctx, 42), store.ErrNotFound)
	require.ErrorIs(t, st.Messages().MarkMessageRead(ctx, 42), store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	require.NoError(t, st.Projects().CreateProject(ctx, domain.Project{
		ID: "keep", Title: "t", Description: "d", Tags: []string{}, SortOrder: 7,
	}))

	failure := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Projects().SetProjectSortOrder(ctx, "keep", 0); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	got, err := st.Projects().GetProject(ctx, "keep")
	require.NoError(t, err)
	require.Equal(t, 7, got.SortOrder)
}

func TestSessionExpiryQueries(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	userID, err := st.Users().CreateUser(ctx, "admin@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID: "past", UserID: userID, ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID: "future", UserID: userID, ExpiresAt: time.Now().Add(time.Hour),
	}))

	// GetSession hands back expired rows untouched; expiry policy lives above
	// the store.
	sess, err := st.Sessions().GetSession(ctx, "past")
	require.NoError(t, err)
	require.True(t, sess.Expired(time.Now()))

	deleted, err := st.Sessions().DeleteExpiredSessions(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	count, err := st.Sessions().CountSessions(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPublishedPostOrdering(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Hour)

	require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
		ID: "old", Title: "t", Excerpt: "e", Content: "c", Tags: []string{}, PublishedAt: &old,
	}))
	require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
		ID: "recent", Title: "t", Excerpt: "e", Content: "c", Tags: []string{}, PublishedAt: &recent,
	}))
	require.NoError(t, st.Posts().CreatePost(ctx, domain.Post{
		ID: "pinned", Title: "t", Excerpt: "e", Content: "c", Tags: []string{}, Featured: true, PublishedAt: &old,
	}))

	posts, err := st.Posts().ListPublishedPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	require.Equal(t, "pinned", posts[0].ID)
	require.Equal(t, "recent", posts[1].ID)
	require.Equal(t, "old", posts[2].ID)

	// Listing never carries content.
	for _, p := range posts {
		require.Empty(t, p.Content)
	}
}
