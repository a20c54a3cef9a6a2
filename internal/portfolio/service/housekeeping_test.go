package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingSweepsExpiredSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	userID := seedUser(t, st, "admin@example.com", "pw")

	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        "stale",
		UserID:    userID,
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, st.Sessions().CreateSession(ctx, domain.Session{
		ID:        "live",
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.Start()
	svc.Stop()

	count, err := st.Sessions().CountSessions(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	_, err = st.Sessions().GetSession(ctx, "live")
	require.NoError(t, err)
}
