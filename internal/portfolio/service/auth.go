package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/cryptox"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrSessionExpired marks a token whose row existed but had passed its
	// expiry. The row is already gone by the time callers see this.
	ErrSessionExpired = errors.New("session_expired")
)

// AuthService verifies credentials and owns the session lifecycle: mint on
// login, resolve on each authenticated request, destroy on logout or on the
// first read after expiry.
type AuthService struct {
	Store store.Store

	// SessionTTL defaults to domain.SessionTTL when zero.
	SessionTTL time.Duration
}

func (s *AuthService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return domain.SessionTTL
}

// VerifyPassword checks an email/password pair against the credential store
// and returns the matching user id. The email is matched exactly as stored,
// with no normalization. Both a missing user and a hash mismatch return
// ErrInvalidCredentials; a bcrypt comparison runs in either case so the two
// outcomes take comparable time. No side effects.
func (s *AuthService) VerifyPassword(ctx context.Context, email, password string) (int64, error) {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.DummyVerify(password)
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}

// CreateSession mints a session for an already-verified user id and returns
// the opaque token. The token is a random UUID; it is not derivable from the
// user id or the time.
func (s *AuthService) CreateSession(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	if err := s.Store.Sessions().CreateSession(ctx, domain.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl()),
	}); err != nil {
		return "", err
	}

	return token, nil
}

// GetSession resolves a token to its owning user id. Expiry is lazy: a row
// whose expiry has passed is deleted here, on read, and reported as
// ErrSessionExpired. A token with no row at all is store.ErrNotFound. Callers
// must tolerate the conditional delete side effect.
func (s *AuthService) GetSession(ctx context.Context, token string) (int64, error) {
	sess, err := s.Store.Sessions().GetSession(ctx, token)
	if err != nil {
		return 0, err
	}

	if sess.Expired(time.Now()) {
		if err := s.Store.Sessions().DeleteSession(ctx, token); err != nil {
			return 0, err
		}
		return 0, ErrSessionExpired
	}

	return sess.UserID, nil
}

// DeleteSession revokes a session. Deleting an unknown token is a no-op, not
// an error.
func (s *AuthService) DeleteSession(ctx context.Context, token string) error {
	return s.Store.Sessions().DeleteSession(ctx, token)
}

// GetUserByID returns the public projection of a user. The password hash
// never leaves this method.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and, on success, mints a session. Failure leaves
// no trace in the session store.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	userID, err := s.VerifyPassword(ctx, email, password)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.CreateSession(ctx, userID)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// Logout deletes the session if one exists. Always succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.DeleteSession(ctx, token)
}
