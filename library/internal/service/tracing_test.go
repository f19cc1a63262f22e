package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/auth"
	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/service"
	"github.com/Astemirdum/library-lending/library/internal/session"
)

func TestService_CheckoutSpans(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(ctx) })

	e := newEnv(t)
	verifier, err := auth.NewVerifier(e.repo, auth.NewArgon2Hasher(fastParams), zap.NewNop())
	require.NoError(t, err)
	sessions := session.NewManager(session.NewMemoryStore(), verifier, e.repo, 0, zap.NewNop())
	svc := service.NewService(e.repo, sessions, verifier, zap.NewNop(), service.WithTracerProvider(tp))

	e.seedBooks(t, e.admin(t), 1)
	alice := e.member(t, "alice@x.io")

	_, err = svc.Checkout(ctx, alice, firstISBN)
	require.NoError(t, err)
	_, err = svc.Checkout(ctx, alice, firstISBN)
	require.ErrorIs(t, err, errs.ErrAlreadyRented)
	_, err = svc.Checkout(ctx, (*model.Identity)(nil), firstISBN)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)
	for _, span := range spans {
		require.Equal(t, "Service.Checkout", span.Name)
		require.Contains(t, span.Attributes, attribute.Int64("isbn", firstISBN))
	}
	require.Equal(t, codes.Unset, spans[0].Status.Code)
	require.Equal(t, codes.Error, spans[1].Status.Code)
	require.Equal(t, "rental.already_rented", spans[1].Status.Description)
	require.Contains(t, spans[1].Attributes, attribute.String("error.kind", "conflict"))
	require.Contains(t, spans[2].Attributes, attribute.String("error.kind", "unauthenticated"))
}
