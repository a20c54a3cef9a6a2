package domain

import "time"

// SessionTTL is how long a session lives from the moment of login. Sessions
// are never extended; expiry is absolute.
const SessionTTL = 7 * 24 * time.Hour

// Session maps an opaque random token to the user it authenticates. A row
// whose ExpiresAt has passed is treated as nonexistent by every reader and is
// removed on the first read that sees it expired.
type Session struct {
	ID        string // opaque token, random UUID
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
