package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
)

const tracerName = "github.com/Astemirdum/library-lending/library/service"

type SessionManager interface {
	Login(ctx context.Context, email, password string) (string, model.Identity, error)
	Resolve(ctx context.Context, token string) (model.Identity, error)
	Invalidate(ctx context.Context, token string) error
	TTL() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	sessions  SessionManager
	passwords PasswordHasher
	now       func() time.Time
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithClock overrides the wall clock used for rental dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, sessions SessionManager, passwords PasswordHasher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		sessions:  sessions,
		passwords: passwords,
		now:       time.Now,
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is truncated to the precision PostgreSQL stores.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	ctx, span := s.tracer.Start(ctx, "Service."+name, trace.WithAttributes(attrs...))
	return ctx, func(errp *error) {
		if errp != nil && *errp != nil {
			span.SetAttributes(attribute.String("error.kind", errs.KindOf(*errp).String()))
			span.SetStatus(codes.Error, errs.Key(*errp))
		}
		span.End()
	}
}

func requireIdentity(who *model.Identity) error {
	if who == nil {
		return errs.ErrUnauthenticated
	}
	return nil
}

func requireAdmin(who *model.Identity) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if !who.IsAdmin {
		return errs.ErrUnauthorized
	}
	return nil
}
