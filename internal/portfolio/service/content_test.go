package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/stretchr/testify/require"
)

func TestProjectsReorder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectsService{Store: st}

	for _, id := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, svc.Create(ctx, domain.Project{
			ID:          id,
			Title:       id,
			Description: "desc",
			Tags:        []string{"go"},
		}))
	}

	require.NoError(t, svc.Reorder(ctx, []domain.SortOrderUpdate{
		{ID: "gamma", SortOrder: 0},
		{ID: "alpha", SortOrder: 1},
		{ID: "beta", SortOrder: 2},
	}))

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "gamma", projects[0].ID)
	require.Equal(t, "alpha", projects[1].ID)
	require.Equal(t, "beta", projects[2].ID)
}

func TestProjectsListOrdersFeaturedFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProjectsService{Store: st}

	require.NoError(t, svc.Create(ctx, domain.Project{ID: "plain", Title: "t", Description: "d", SortOrder: 0}))
	require.NoError(t, svc.Create(ctx, domain.Project{ID: "starred", Title: "t", Description: "d", Featured: true, SortOrder: 5}))

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "starred", projects[0].ID)
}

func TestExperiencePruneEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ExperienceService{Store: st}

	require.NoError(t, svc.Create(ctx, domain.Experience{ID: "", Role: "orphan", Company: "c", Period: "p", Description: "d"}))
	require.NoError(t, svc.Create(ctx, domain.Experience{ID: "kept", Role: "dev", Company: "c", Period: "p", Description: "d"}))

	deleted, err := svc.PruneEmpty(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	deleted, err = svc.PruneEmpty(ctx)
	require.NoError(t, err)
	require.Zero(t, deleted)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "kept", entries[0].ID)
}

func TestSkillsReorderAndCategories(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SkillsService{Store: st}

	goID, err := svc.Create(ctx, domain.Skill{Name: "Go", Category: "backend", SortOrder: 1})
	require.NoError(t, err)
	tsID, err := svc.Create(ctx, domain.Skill{Name: "TypeScript", Category: "frontend", SortOrder: 0})
	require.NoError(t, err)

	backend, err := svc.ListByCategory(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, backend, 1)
	require.Equal(t, "Go", backend[0].Name)

	require.NoError(t, svc.Reorder(ctx, []domain.SkillSortOrderUpdate{
		{ID: goID, SortOrder: 0},
		{ID: tsID, SortOrder: 1},
	}))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SettingsService{Store: st}

	t.Run("missing key is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "theme")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "theme", json.RawMessage(`{"mode":"dark"}`)))

		setting, err := svc.Get(ctx, "theme")
		require.NoError(t, err)
		require.JSONEq(t, `{"mode":"dark"}`, string(setting.Value))
	})

	t.Run("set replaces the previous value", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "theme", json.RawMessage(`{"mode":"light"}`)))

		setting, err := svc.Get(ctx, "theme")
		require.NoError(t, err)
		require.JSONEq(t, `{"mode":"light"}`, string(setting.Value))
	})

	t.Run("map carries every key", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, "social", json.RawMessage(`["github"]`)))

		m, err := svc.Map(ctx)
		require.NoError(t, err)
		require.Len(t, m, 2)
		require.Contains(t, m, "theme")
		require.Contains(t, m, "social")
	})
}

func TestBlogDraftVisibility(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BlogService{Store: st}

	published := time.Now().Add(-time.Hour)
	require.NoError(t, svc.Create(ctx, domain.Post{
		ID:          "hello-world",
		Title:       "Hello World",
		Excerpt:     "first post",
		Content:     "full body",
		Tags:        []string{"intro"},
		PublishedAt: &published,
	}))
	require.NoError(t, svc.Create(ctx, domain.Post{
		ID:      "wip",
		Title:   "Work in progress",
		Excerpt: "not ready",
		Content: "draft body",
		Draft:   true,
	}))

	t.Run("public listing omits drafts and content", func(t *testing.T) {
		posts, err := svc.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		require.Equal(t, "hello-world", posts[0].ID)
		require.Empty(t, posts[0].Content)
	})

	t.Run("public get includes content", func(t *testing.T) {
		post, err := svc.GetPublished(ctx, "hello-world")
		require.NoError(t, err)
		require.Equal(t, "full body", post.Content)
	})

	t.Run("a draft id behaves like a missing one", func(t *testing.T) {
		_, err := svc.GetPublished(ctx, "wip")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("admin listing sees drafts", func(t *testing.T) {
		posts, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
	})

	t.Run("publishing a draft exposes it", func(t *testing.T) {
		post, err := svc.Get(ctx, "wip")
		require.NoError(t, err)

		post.Draft = false
		now := time.Now()
		post.PublishedAt = &now
		require.NoError(t, svc.Update(ctx, post))

		_, err = svc.GetPublished(ctx, "wip")
		require.NoError(t, err)
	})
}

func TestMessagesInbox(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &MessagesService{Store: st}

	id, err := svc.Submit(ctx, domain.Message{Name: "Ada", Email: "ada@example.com", Body: "hi"})
	require.NoError(t, err)

	messages, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.False(t, messages[0].Read)

	require.NoError(t, svc.MarkRead(ctx, id))

	messages, err = svc.List(ctx)
	require.NoError(t, err)
	require.True(t, messages[0].Read)

	require.NoError(t, svc.Delete(ctx, id))
	require.ErrorIs(t, svc.Delete(ctx, id), store.ErrNotFound)

	messages, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, messages)
}
