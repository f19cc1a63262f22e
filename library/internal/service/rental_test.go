package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

const firstISBN = 9780000000001

func TestService_CheckoutReturnScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	e.seedBooks(t, e.admin(t), 1)
	alice := e.member(t, "alice@x.io")
	bob := e.member(t, "bob@x.io")

	rec, err := e.svc.Checkout(ctx, alice, firstISBN)
	require.NoError(t, err)
	require.True(t, rec.Active())
	require.Equal(t, alice.ID, rec.UserID)
	require.Equal(t, "Book 1", rec.BookTitle)
	require.Equal(t, rec.CheckoutDate.Add(7*24*time.Hour), rec.DueDate)

	_, err = e.svc.Checkout(ctx, bob, firstISBN)
	require.ErrorIs(t, err, errs.ErrAlreadyRented)

	_, err = e.svc.Checkout(ctx, alice, firstISBN)
	require.ErrorIs(t, err, errs.ErrAlreadyRented)

	_, err = e.svc.Return(ctx, bob, rec.ID)
	require.ErrorIs(t, err, errs.NotFound("rental"))

	e.clock.Advance(time.Hour)
	returned, err := e.svc.Return(ctx, alice, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedDate)
	require.Equal(t, rec.CheckoutDate.Add(time.Hour), *returned.ReturnedDate)

	_, err = e.svc.Return(ctx, alice, rec.ID)
	require.ErrorIs(t, err, errs.NotFound("rental"))

	again, err := e.svc.Checkout(ctx, bob, firstISBN)
	require.NoError(t, err)
	require.NotEqual(t, rec.ID, again.ID)
}

func TestService_CheckoutErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.admin(t)
	e.seedBooks(t, admin, 2)
	alice := e.member(t, "alice@x.io")
	require.NoError(t, e.svc.DeleteBook(ctx, admin, firstISBN+1))

	tests := []struct {
		name    string
		who     *model.Identity
		isbn    int64
		wantErr error
	}{
		{name: "anonymous", who: nil, isbn: firstISBN, wantErr: errs.ErrUnauthenticated},
		{name: "unknown book", who: alice, isbn: 42, wantErr: errs.NotFound("book")},
		{name: "deleted book", who: alice, isbn: firstISBN + 1, wantErr: errs.NotFound("book")},
	}
	for _, tt := range tests {
		_, err := e.svc.Checkout(ctx, tt.who, tt.isbn)
		require.ErrorIs(t, err, tt.wantErr, tt.name)
	}
}

func TestService_ConcurrentCheckout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	e.seedBooks(t, e.admin(t), 1)

	const n = 16
	members := make([]*model.Identity, n)
	for i := range members {
		members[i] = e.member(t, fmt.Sprintf("m%d@x.io", i))
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok      int
		rented  int
		winners []model.RentalRecord
	)
	start := make(chan struct{})
	for _, m := range members {
		wg.Add(1)
		go func(who *model.Identity) {
			defer wg.Done()
			<-start
			rec, err := e.svc.Checkout(ctx, who, firstISBN)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
				winners = append(winners, rec)
			case errors.Is(err, errs.ErrAlreadyRented):
				rented++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(m)
	}
	close(start)
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, n-1, rented)

	// the book becomes available again once the winner returns it
	var winner *model.Identity
	for _, m := range members {
		if m.ID == winners[0].UserID {
			winner = m
		}
	}
	_, err := e.svc.Return(ctx, winner, winners[0].ID)
	require.NoError(t, err)
	_, err = e.svc.Checkout(ctx, members[0], firstISBN)
	require.NoError(t, err)
}

func TestService_AdminReturnAndHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.admin(t)
	author, _ := e.seedBooks(t, admin, 2)
	alice := e.member(t, "alice@x.io")
	bob := e.member(t, "bob@x.io")

	first, err := e.svc.Checkout(ctx, alice, firstISBN)
	require.NoError(t, err)
	e.clock.Advance(time.Minute)
	second, err := e.svc.Checkout(ctx, alice, firstISBN+1)
	require.NoError(t, err)

	_, err = e.svc.Return(ctx, admin, first.ID)
	require.NoError(t, err)

	// history keeps rentals of deleted authors and books
	require.NoError(t, e.svc.DeleteAuthor(ctx, admin, author.ID))
	require.NoError(t, e.svc.DeleteBook(ctx, admin, firstISBN))

	history, err := e.svc.History(ctx, alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, second.ID, history[0].ID)
	require.Equal(t, first.ID, history[1].ID)
	require.False(t, history[1].Active())
	require.Equal(t, author.Name, history[1].AuthorName)

	empty, err := e.svc.History(ctx, bob)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = e.svc.UserHistory(ctx, bob, alice.ID)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	byAdmin, err := e.svc.UserHistory(ctx, admin, alice.ID)
	require.NoError(t, err)
	require.Equal(t, history, byAdmin)

	none, err := e.svc.UserHistory(ctx, admin, uuid.New())
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestService_ReturnWithLaggingClock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	e.seedBooks(t, e.admin(t), 1)
	alice := e.member(t, "alice@x.io")

	rec, err := e.svc.Checkout(ctx, alice, firstISBN)
	require.NoError(t, err)

	// the replica handling the return runs a few seconds behind
	e.clock.Advance(-3 * time.Second)
	returned, err := e.svc.Return(ctx, alice, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedDate)
	require.Equal(t, rec.CheckoutDate, *returned.ReturnedDate)
}
