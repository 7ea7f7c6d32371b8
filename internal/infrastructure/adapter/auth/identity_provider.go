package auth

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/entity"
	errs "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/error"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/repository"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/config"
)

const defaultSessionTTL = 24 * time.Hour

// CredentialStore persists login records
type CredentialStore interface {
	Create(ctx context.Context, credential *repository.Credential) error
	GetByEmail(ctx context.Context, email string) (*repository.Credential, error)
}

// IdentityProvider implements external.IdentityProvider with bcrypt
// credentials, HS256 session tokens and a session registry
type IdentityProvider struct {
	credentials  CredentialStore
	sessions     SessionStore
	signer       *tokenSigner
	hash         func(string) (string, error)
	sessionTTL   time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewIdentityProvider creates a new IdentityProvider instance
func NewIdentityProvider(
	cfg config.AuthConfig,
	credentials CredentialStore,
	sessions SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *IdentityProvider {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &IdentityProvider{
		credentials:  credentials,
		sessions:     sessions,
		signer:       &tokenSigner{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer},
		hash:         NewPasswordHasher(cfg.BcryptCost),
		sessionTTL:   ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SignUp creates an identity and opens its first session
func (p *IdentityProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*entity.Identity, *entity.Session, error) {
	hash, err := p.hash(password)
	if err != nil {
		return nil, nil, err
	}

	identity := &entity.Identity{
		ID:        uuid.NewString(),
		Email:     entity.NormalizeEmail(email),
		CreatedAt: p.timeProvider.Now(),
	}

	err = p.credentials.Create(ctx, &repository.Credential{
		ID:           identity.ID,
		Email:        identity.Email,
		PasswordHash: hash,
		CreatedAt:    identity.CreatedAt,
	})
	if err != nil {
		if !errors.Is(err, errs.ErrEmailTaken) {
			p.logger.Error("Failed to store credential", map[string]any{"error": err.Error()})
		}
		return nil, nil, err
	}

	session, err := p.openSession(ctx, identity.ID, identity.Email)
	if err != nil {
		return nil, nil, err
	}

	// Metadata holds personal details, so only the field names are logged
	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	p.logger.Info("Identity created", map[string]any{
		"user_id":       identity.ID,
		"metadata_keys": keys,
	})
	return identity, session, nil
}

// SignInWithPassword checks credentials and opens a new session
func (p *IdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	credential, err := p.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if !checkPassword(credential.PasswordHash, password) {
		p.logger.Debug("Password mismatch", map[string]any{"user_id": credential.ID})
		return nil, errs.ErrInvalidCredentials
	}

	return p.openSession(ctx, credential.ID, credential.Email)
}

// SignOut revokes a session
func (p *IdentityProvider) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := p.sessions.Delete(ctx, sessionID); err != nil {
		p.logger.Error("Failed to revoke session", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}

// SessionActive reports whether a session is still registered
func (p *IdentityProvider) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	return p.sessions.Exists(ctx, sessionID)
}

// Authenticate resolves a bearer token into an active session
func (p *IdentityProvider) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := p.signer.parse(token, p.timeProvider.Now)
	if err != nil {
		p.logger.Debug("Rejected session token", map[string]any{"error": err.Error()})
		return nil, errs.ErrUnauthorized
	}

	active, err := p.sessions.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errs.ErrUnauthorized
	}

	return &entity.Session{
		ID:          claims.ID,
		UserID:      claims.Subject,
		Email:       claims.Email,
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (p *IdentityProvider) openSession(ctx context.Context, userID, email string) (*entity.Session, error) {
	now := p.timeProvider.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: now.Add(p.sessionTTL),
	}

	token, err := p.signer.sign(session.ID, userID, email, now, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	session.AccessToken = token

	if err := p.sessions.Save(ctx, session.ID, userID, p.sessionTTL); err != nil {
		p.logger.Error("Failed to register session", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return session, nil
}
