package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

// DefaultTTL is the fixed session lifetime. Expiry is not extended on use.
const DefaultTTL = time.Hour

const tokenBytes = 32

type Verifier interface {
	Verify(ctx context.Context, email, password string) (model.Identity, error)
}

type UserLoader interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

type Manager struct {
	store    Store
	verifier Verifier
	users    UserLoader
	ttl      time.Duration
	log      *zap.Logger
}

func NewManager(store Store, verifier Verifier, users UserLoader, ttl time.Duration, log *zap.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:    store,
		verifier: verifier,
		users:    users,
		ttl:      ttl,
		log:      log.Named("session"),
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Login verifies credentials and opens a session.
func (m *Manager) Login(ctx context.Context, email, password string) (string, model.Identity, error) {
	identity, err := m.verifier.Verify(ctx, email, password)
	if err != nil {
		return "", model.Identity{}, err
	}
	token, err := m.Create(ctx, identity)
	if err != nil {
		return "", model.Identity{}, err
	}
	return token, identity, nil
}

func (m *Manager) Create(ctx context.Context, identity model.Identity) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Storage(errors.Wrap(err, "token entropy"))
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	if err := m.store.Set(ctx, token, identity.ID, m.ttl); err != nil {
		m.log.Error("store.Set", zap.Error(err))
		return "", errs.Storage(err)
	}
	return token, nil
}

// Resolve re-hydrates the identity behind token. Deleted users no longer resolve.
func (m *Manager) Resolve(ctx context.Context, token string) (model.Identity, error) {
	if token == "" {
		return model.Identity{}, errs.ErrUnauthenticated
	}
	userID, err := m.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return model.Identity{}, errs.ErrUnauthenticated
		}
		m.log.Error("store.Get", zap.Error(err))
		return model.Identity{}, errs.Storage(err)
	}

	user, err := m.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.NotFound("user")) {
			return model.Identity{}, errs.ErrUnauthenticated
		}
		return model.Identity{}, err
	}
	if user.Status.IsDeleted() {
		return model.Identity{}, errs.ErrUnauthenticated
	}
	return user.Identity(), nil
}

// Invalidate is idempotent: unknown tokens are not an error.
func (m *Manager) Invalidate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		m.log.Error("store.Delete", zap.Error(err))
		return errs.Storage(err)
	}
	return nil
}
