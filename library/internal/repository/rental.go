package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

// CreateRental is a single conditional insert: the book must be active, and the
// partial unique index on active rentals rejects a second concurrent checkout.
func (r *repository) CreateRental(ctx context.Context, req model.CreateRental) (model.RentalRecord, error) {
	const q = `
with book as (
    select b.isbn, b.title, a.name as author_name
    from books b
        join authors a on a.id = b.author_id
    where b.isbn = @isbn and b.status = 'ACTIVE'
), ins as (
    insert into rental_logs (book_isbn, user_id, checkout_date, due_date)
    select isbn, @user_id, @checkout_date, @due_date from book
    returning id, book_isbn, user_id, checkout_date, due_date, returned_date
)
select ins.id, ins.book_isbn, book.title, book.author_name, ins.user_id,
       ins.checkout_date, ins.due_date, ins.returned_date
from ins
    join book on book.isbn = ins.book_isbn`

	args := pgx.NamedArgs{
		"isbn":          req.BookISBN,
		"user_id":       req.UserID,
		"checkout_date": req.CheckoutDate,
		"due_date":      req.DueDate,
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.RentalRecord{}, r.rentalErr(err, req)
	}
	defer rows.Close()

	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RentalRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RentalRecord{}, errs.NotFound("book")
		}
		return model.RentalRecord{}, r.rentalErr(err, req)
	}
	return rec, nil
}

func (r *repository) rentalErr(err error, req model.CreateRental) error {
	switch {
	case isUniqueViolation(err, activeRentalIndex):
		r.log.Debug("CreateRental: already rented", zap.Int64("isbn", req.BookISBN))
		return errs.ErrAlreadyRented
	case isForeignKeyViolation(err):
		return errs.NotFound("user")
	}
	return r.storageErr("CreateRental", err, zap.Int64("isbn", req.BookISBN))
}

// ReturnRental closes an active rental. Rentals of other users are invisible unless AnyUser is set.
// A return date earlier than the checkout (clock skew between replicas) is clamped to the checkout date.
func (r *repository) ReturnRental(ctx context.Context, req model.ReturnRental) (model.RentalRecord, error) {
	const q = `
with upd as (
    update rental_logs
        set returned_date = greatest(@returned_date::timestamptz, checkout_date)
    where id = @id
      and returned_date is null
      and (user_id = @user_id or @any_user::boolean)
    returning id, book_isbn, user_id, checkout_date, due_date, returned_date
)
select upd.id, upd.book_isbn, b.title, a.name as author_name, upd.user_id,
       upd.checkout_date, upd.due_date, upd.returned_date
from upd
    join books b on b.isbn = upd.book_isbn
    join authors a on a.id = b.author_id`

	args := pgx.NamedArgs{
		"id":            req.RentalID,
		"user_id":       req.UserID,
		"any_user":      req.AnyUser,
		"returned_date": req.ReturnedDate,
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.RentalRecord{}, r.storageErr("ReturnRental", err, zap.Int64("id", req.RentalID))
	}
	defer rows.Close()

	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RentalRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RentalRecord{}, errs.NotFound("rental")
		}
		return model.RentalRecord{}, r.storageErr("ReturnRental", err, zap.Int64("id", req.RentalID))
	}
	return rec, nil
}

// ListRentals returns every rental of the user, newest checkout first. Book and author
// status is ignored so history survives soft deletes.
func (r *repository) ListRentals(ctx context.Context, userID uuid.UUID) ([]model.RentalRecord, error) {
	query, args, err := qb.Select("r.id", "r.book_isbn", "b.title", "a.name as author_name", "r.user_id",
		"r.checkout_date", "r.due_date", "r.returned_date").
		From(rentalsTableName + " r").
		Join(fmt.Sprintf("%s b on b.isbn = r.book_isbn", booksTableName)).
		Join(fmt.Sprintf("%s a on a.id = b.author_id", authorsTableName)).
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.checkout_date desc", "r.id desc").
		ToSql()
	if err != nil {
		return nil, r.storageErr("ListRentals.ToSql", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr("ListRentals", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RentalRecord])
	if err != nil {
		return nil, r.storageErr("ListRentals.CollectRows", err)
	}
	return items, nil
}
