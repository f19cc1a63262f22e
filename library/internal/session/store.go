package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNoSession is returned by a Store when the token is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Store maps opaque tokens to user ids. Set is an upsert keyed by token.
// Get must not block on concurrent Gets or on writes for other tokens.
type Store interface {
	Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}
