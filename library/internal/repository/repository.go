package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

type CatalogRepository interface {
	CreateAuthor(ctx context.Context, name string) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, name string) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	CreatePublisher(ctx context.Context, name string) (model.Publisher, error)
	UpdatePublisher(ctx context.Context, id int64, name string) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, isbn int64) error
	GetBook(ctx context.Context, isbn int64) (model.BookDetail, error)
	ListBooks(ctx context.Context, limit, offset int) ([]model.BookItem, error)
	CountBooks(ctx context.Context) (int, error)
	Search(ctx context.Context, kind model.EntityKind, keyword string) ([]model.NamedEntity, error)
}

type RentalRepository interface {
	CreateRental(ctx context.Context, req model.CreateRental) (model.RentalRecord, error)
	ReturnRental(ctx context.Context, req model.ReturnRental) (model.RentalRecord, error)
	ListRentals(ctx context.Context, userID uuid.UUID) ([]model.RentalRecord, error)
}

type Repository interface {
	UserRepository
	CatalogRepository
	RentalRepository
}

var _ Repository = (*repository)(nil)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName      = `users`
	authorsTableName    = `authors`
	publishersTableName = `publishers`
	booksTableName      = `books`
	rentalsTableName    = `rental_logs`

	activeRentalIndex = `rental_logs_active_book_uidx`
	usersEmailKey     = `users_email_key`
	booksPKey         = `books_pkey`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// storageErr logs the cause and hides it behind errs.Storage.
func (r *repository) storageErr(op string, err error, fields ...zap.Field) error {
	r.log.Error(op, append(fields, zap.Error(err))...)
	return errs.Storage(errors.Wrap(err, op))
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func isUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}
