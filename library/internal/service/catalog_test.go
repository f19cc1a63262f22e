package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func TestService_CatalogRequiresAdmin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	alice := e.member(t, "alice@x.io")

	tests := []struct {
		name    string
		who     *model.Identity
		wantErr error
	}{
		{name: "anonymous", who: nil, wantErr: errs.ErrUnauthenticated},
		{name: "member", who: alice, wantErr: errs.ErrUnauthorized},
	}
	for _, tt := range tests {
		_, err := e.svc.CreateAuthor(ctx, tt.who, "A")
		require.ErrorIs(t, err, tt.wantErr, tt.name)
		_, err = e.svc.CreatePublisher(ctx, tt.who, "P")
		require.ErrorIs(t, err, tt.wantErr, tt.name)
		_, err = e.svc.CreateBook(ctx, tt.who, model.Book{ISBN: 1, Title: "t", AuthorID: 1, PublisherID: 1, PublicationMonth: 1})
		require.ErrorIs(t, err, tt.wantErr, tt.name)
		require.ErrorIs(t, e.svc.DeleteAuthor(ctx, tt.who, 1), tt.wantErr, tt.name)
		require.ErrorIs(t, e.svc.DeleteBook(ctx, tt.who, 1), tt.wantErr, tt.name)
	}
}

func TestService_NamedEntities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.admin(t)

	author, err := e.svc.CreateAuthor(ctx, admin, "  Iain Banks ")
	require.NoError(t, err)
	require.Equal(t, "Iain Banks", author.Name)

	_, err = e.svc.CreateAuthor(ctx, admin, " ")
	require.ErrorIs(t, err, errs.Validation("name"))

	updated, err := e.svc.UpdateAuthor(ctx, admin, author.ID, "Iain M. Banks")
	require.NoError(t, err)
	require.Equal(t, "Iain M. Banks", updated.Name)

	require.NoError(t, e.svc.DeleteAuthor(ctx, admin, author.ID))
	require.NoError(t, e.svc.DeleteAuthor(ctx, admin, author.ID))
	require.ErrorIs(t, e.svc.DeleteAuthor(ctx, admin, 9999), errs.NotFound("author"))

	_, err = e.svc.UpdateAuthor(ctx, admin, author.ID, "again")
	require.ErrorIs(t, err, errs.NotFound("author"))

	publisher, err := e.svc.CreatePublisher(ctx, admin, "Orbit")
	require.NoError(t, err)
	_, err = e.svc.UpdatePublisher(ctx, admin, publisher.ID, "Orbit Books")
	require.NoError(t, err)
	require.NoError(t, e.svc.DeletePublisher(ctx, admin, publisher.ID))
	require.NoError(t, e.svc.DeletePublisher(ctx, admin, publisher.ID))
}

func TestService_Books(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv(t)
	admin := e.admin(t)
	author, publisher := e.seedBooks(t, admin, 1)
	alice := e.member(t, "alice@x.io")

	detail, err := e.svc.GetBook(ctx, alice, firstISBN)
	require.NoError(t, err)
	require.Equal(t, model.BookDetail{
		ISBN:                 firstISBN,
		Title:                "Book 1",
		AuthorName:           author.Name,
		PublisherName:        publisher.Name,
		PublicationYear:      2001,
		PublicationMonth:     2,
		PublicationYearMonth: "2001-02",
	}, detail)

	_, err = e.svc.GetBook(ctx, nil, firstISBN)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	valid := model.Book{ISBN: firstISBN + 1, Title: "New", AuthorID: author.ID, PublisherID: publisher.ID, PublicationYear: 2020, PublicationMonth: 12}
	tests := []struct {
		name    string
		mutate  func(b *model.Book)
		wantErr error
	}{
		{name: "month zero", mutate: func(b *model.Book) { b.PublicationMonth = 0 }, wantErr: errs.Validation("publication_month")},
		{name: "month 13", mutate: func(b *model.Book) { b.PublicationMonth = 13 }, wantErr: errs.Validation("publication_month")},
		{name: "empty title", mutate: func(b *model.Book) { b.Title = "" }, wantErr: errs.Validation("title")},
		{name: "unknown author", mutate: func(b *model.Book) { b.AuthorID = 9999 }, wantErr: errs.Validation("author_id")},
		{name: "unknown publisher", mutate: func(b *model.Book) { b.PublisherID = 9999 }, wantErr: errs.Validation("publisher_id")},
		{name: "duplicate isbn", mutate: func(b *model.Book) { b.ISBN = firstISBN }, wantErr: errs.Conflict("isbn")},
	}
	for _, tt := range tests {
		b := valid
		tt.mutate(&b)
		_, err = e.svc.CreateBook(ctx, admin, b)
		require.ErrorIs(t, err, tt.wantErr, tt.name)
	}

	created, err := e.svc.CreateBook(ctx, admin, valid)
	require.NoError(t, err)
	created.Title = "Renamed"
	updated, err := e.svc.UpdateBook(ctx, admin, created)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)

	require.NoError(t, e.svc.DeleteBook(ctx, admin, created.ISBN))
	require.NoError(t, e.svc.DeleteBook(ctx, admin, created.ISBN))
	_, err = e.svc.GetBook(ctx, alice, created.ISBN)
	require.ErrorIs(t, err, errs.NotFound("book"))
	_, err = e.svc.UpdateBook(ctx, admin, created)
	require.ErrorIs(t, err, errs.NotFound("book"))
}
