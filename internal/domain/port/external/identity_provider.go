package external

import (
	"context"

	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
)

// IdentityProvider owns credentials and login sessions
type IdentityProvider interface {
	// SignUp creates an identity and an initial session.
	//
	// Possible errors:
	// - ErrEmailTaken: If an identity with the email already exists
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*entity.Identity, *entity.Session, error)

	// SignInWithPassword opens a new session.
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the email or password is wrong
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut revokes a session. Revoking an unknown session is not an error.
	SignOut(ctx context.Context, sessionID string) error

	// SessionActive reports whether the session is still valid
	SessionActive(ctx context.Context, sessionID string) (bool, error)

	// Authenticate resolves a bearer token into an active session
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is malformed, expired or revoked
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}
