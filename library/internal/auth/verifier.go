package auth

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

// Verifier checks email/password pairs. Every failure path performs exactly one
// hash verification so response time does not reveal whether the email exists.
type Verifier struct {
	users     UserFinder
	hasher    Hasher
	dummyHash string
	log       *zap.Logger
}

func NewVerifier(users UserFinder, hasher Hasher, log *zap.Logger) (*Verifier, error) {
	dummy, err := hasher.Hash("library-lending dummy password")
	if err != nil {
		return nil, errors.Wrap(err, "dummy hash")
	}
	return &Verifier{
		users:     users,
		hasher:    hasher,
		dummyHash: dummy,
		log:       log.Named("verifier"),
	}, nil
}

func (v *Verifier) Hash(password string) (string, error) {
	hash, err := v.hasher.Hash(password)
	if err != nil {
		return "", errs.Storage(err)
	}
	return hash, nil
}

func (v *Verifier) Verify(ctx context.Context, email, password string) (model.Identity, error) {
	user, err := v.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.NotFound("user")) {
			v.burn(password)
		}
		return model.Identity{}, err
	}
	if user.Status.IsDeleted() {
		v.burn(password)
		return model.Identity{}, errs.NotFound("user")
	}

	ok, err := v.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		v.log.Error("compare password hash", zap.String("user", user.ID.String()), zap.Error(err))
		return model.Identity{}, errs.Storage(err)
	}
	if !ok {
		return model.Identity{}, errs.ErrInvalidCredential
	}
	return user.Identity(), nil
}

func (v *Verifier) burn(password string) {
	_, _ = v.hasher.Compare(v.dummyHash, password)
}
