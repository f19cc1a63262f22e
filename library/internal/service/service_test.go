package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/auth"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/service"
	"github.com/Astemirdum/library-lending/library/internal/session"
)

var fastParams = auth.Params{Time: 1, Memory: 64, Threads: 1, SaltLen: 16, KeyLen: 32}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type env struct {
	svc   *service.Service
	repo  *memRepo
	clock *clock
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := zap.NewNop()
	repo := newMemRepo()
	verifier, err := auth.NewVerifier(repo, auth.NewArgon2Hasher(fastParams), log)
	require.NoError(t, err)
	sessions := session.NewManager(session.NewMemoryStore(), verifier, repo, session.DefaultTTL, log)
	c := &clock{now: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)}
	return &env{
		svc:   service.NewService(repo, sessions, verifier, log, service.WithClock(c.Now)),
		repo:  repo,
		clock: c,
	}
}

func (e *env) login(t *testing.T, email, password string) *model.Identity {
	t.Helper()
	ctx := context.Background()
	resp, err := e.svc.Login(ctx, model.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	identity, err := e.svc.Resolve(ctx, resp.Token)
	require.NoError(t, err)
	return &identity
}

func (e *env) member(t *testing.T, email string) *model.Identity {
	t.Helper()
	_, err := e.svc.Register(context.Background(), model.RegisterRequest{Email: email, Name: email, Password: "secret"})
	require.NoError(t, err)
	return e.login(t, email, "secret")
}

func (e *env) admin(t *testing.T) *model.Identity {
	t.Helper()
	require.NoError(t, e.svc.EnsureAdmin(context.Background(),
		model.RegisterRequest{Email: "admin@library.io", Name: "Admin", Password: "admin"}))
	return e.login(t, "admin@library.io", "admin")
}

// seedBooks creates n books with isbn 9780000000001.. by a single author and publisher.
func (e *env) seedBooks(t *testing.T, admin *model.Identity, n int) (model.Author, model.Publisher) {
	t.Helper()
	ctx := context.Background()
	author, err := e.svc.CreateAuthor(ctx, admin, "Ursula Le Guin")
	require.NoError(t, err)
	publisher, err := e.svc.CreatePublisher(ctx, admin, "Ace Books")
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		_, err = e.svc.CreateBook(ctx, admin, model.Book{
			ISBN:             9780000000000 + int64(i),
			Title:            fmt.Sprintf("Book %d", i),
			AuthorID:         author.ID,
			PublisherID:      publisher.ID,
			PublicationYear:  2000 + i,
			PublicationMonth: i%12 + 1,
		})
		require.NoError(t, err)
	}
	return author, publisher
}
