package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ LibraryService = (*service.Service)(nil)

type LibraryService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.Identity, error)
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (model.Identity, error)
	Me(ctx context.Context, who *model.Identity) (model.Identity, error)

	Checkout(ctx context.Context, who *model.Identity, isbn int64) (model.RentalRecord, error)
	Return(ctx context.Context, who *model.Identity, rentalID int64) (model.RentalRecord, error)
	History(ctx context.Context, who *model.Identity) ([]model.RentalRecord, error)
	UserHistory(ctx context.Context, who *model.Identity, userID uuid.UUID) ([]model.RentalRecord, error)

	CreateAuthor(ctx context.Context, who *model.Identity, name string) (model.Author, error)
	UpdateAuthor(ctx context.Context, who *model.Identity, id int64, name string) (model.Author, error)
	DeleteAuthor(ctx context.Context, who *model.Identity, id int64) error
	CreatePublisher(ctx context.Context, who *model.Identity, name string) (model.Publisher, error)
	UpdatePublisher(ctx context.Context, who *model.Identity, id int64, name string) (model.Publisher, error)
	DeletePublisher(ctx context.Context, who *model.Identity, id int64) error
	CreateBook(ctx context.Context, who *model.Identity, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, who *model.Identity, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, who *model.Identity, isbn int64) error
	GetBook(ctx context.Context, who *model.Identity, isbn int64) (model.BookDetail, error)

	ListBooks(ctx context.Context, who *model.Identity, page int) (model.ListBooks, error)
	Search(ctx context.Context, kind model.EntityKind, keyword string) ([]model.NamedEntity, error)
}
