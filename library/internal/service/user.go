package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.Identity, error) {
	return s.createUser(ctx, req, false)
}

// EnsureAdmin creates an administrator account unless the email is already registered.
func (s *Service) EnsureAdmin(ctx context.Context, req model.RegisterRequest) error {
	_, err := s.createUser(ctx, req, true)
	if errors.Is(err, errs.Conflict("email")) {
		s.log.Info("admin already registered", zap.String("email", req.Email))
		return nil
	}
	return err
}

func (s *Service) createUser(ctx context.Context, req model.RegisterRequest, isAdmin bool) (model.Identity, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	switch {
	case email == "":
		return model.Identity{}, errs.Validation("email")
	case name == "":
		return model.Identity{}, errs.Validation("name")
	case req.Password == "":
		return model.Identity{}, errs.Validation("password")
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return model.Identity{}, err
	}
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Status:       model.StatusActive,
		IsAdmin:      isAdmin,
	}
	if err = s.repo.CreateUser(ctx, user); err != nil {
		return model.Identity{}, err
	}
	return user.Identity(), nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (resp model.LoginResponse, err error) {
	ctx, end := s.startSpan(ctx, "Login")
	defer end(&err)

	token, identity, err := s.sessions.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return model.LoginResponse{}, err
	}
	return model.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.sessions.TTL().Seconds()),
		User:      identity,
	}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Invalidate(ctx, token)
}

func (s *Service) Resolve(ctx context.Context, token string) (identity model.Identity, err error) {
	ctx, end := s.startSpan(ctx, "Resolve")
	defer end(&err)
	identity, err = s.sessions.Resolve(ctx, token)
	if err == nil {
		s.log.Debug("session resolved", zap.Stringer("user", identity.ID), zap.Bool("admin", identity.IsAdmin))
	}
	return identity, err
}

func (s *Service) Me(_ context.Context, who *model.Identity) (model.Identity, error) {
	if err := requireIdentity(who); err != nil {
		return model.Identity{}, err
	}
	return *who, nil
}
