package repository

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

var bookColumns = []string{"isbn", "title", "author_id", "publisher_id", "publication_year", "publication_month", "status"}

func (r *repository) CreateAuthor(ctx context.Context, name string) (model.Author, error) {
	e, err := r.createNamed(ctx, authorsTableName, name)
	return model.Author(e), err
}

func (r *repository) UpdateAuthor(ctx context.Context, id int64, name string) (model.Author, error) {
	e, err := r.updateNamed(ctx, authorsTableName, "author", id, name)
	return model.Author(e), err
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return r.softDelete(ctx, authorsTableName, "author", sq.Eq{"id": id})
}

func (r *repository) CreatePublisher(ctx context.Context, name string) (model.Publisher, error) {
	e, err := r.createNamed(ctx, publishersTableName, name)
	return model.Publisher(e), err
}

func (r *repository) UpdatePublisher(ctx context.Context, id int64, name string) (model.Publisher, error) {
	e, err := r.updateNamed(ctx, publishersTableName, "publisher", id, name)
	return model.Publisher(e), err
}

func (r *repository) DeletePublisher(ctx context.Context, id int64) error {
	return r.softDelete(ctx, publishersTableName, "publisher", sq.Eq{"id": id})
}

// namedRow is the shared row shape of authors and publishers.
type namedRow struct {
	ID     int64        `db:"id"`
	Name   string       `db:"name"`
	Status model.Status `db:"status"`
}

func (r *repository) createNamed(ctx context.Context, table, name string) (namedRow, error) {
	query, args, err := qb.Insert(table).
		Columns("name", "status").
		Values(name, model.StatusActive).
		Suffix("returning id, name, status").
		ToSql()
	if err != nil {
		return namedRow{}, r.storageErr("createNamed.ToSql", err)
	}
	return r.collectNamed(ctx, "create "+table, "", query, args)
}

func (r *repository) updateNamed(ctx context.Context, table, entity string, id int64, name string) (namedRow, error) {
	query, args, err := qb.Update(table).
		Set("name", name).
		Where(sq.Eq{"id": id, "status": model.StatusActive}).
		Suffix("returning id, name, status").
		ToSql()
	if err != nil {
		return namedRow{}, r.storageErr("updateNamed.ToSql", err)
	}
	return r.collectNamed(ctx, "update "+table, entity, query, args)
}

func (r *repository) collectNamed(ctx context.Context, op, entity, query string, args []interface{}) (namedRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return namedRow{}, r.storageErr(op, err)
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[namedRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) && entity != "" {
			return namedRow{}, errs.NotFound(entity)
		}
		return namedRow{}, r.storageErr(op, err, zap.String("q", query))
	}
	return row, nil
}

// softDelete marks the row deleted. Deleting an already deleted row succeeds;
// a row that never existed is NotFound.
func (r *repository) softDelete(ctx context.Context, table, entity string, where sq.Eq) error {
	query, args, err := qb.Update(table).
		Set("status", model.StatusDeleted).
		Where(where).
		ToSql()
	if err != nil {
		return r.storageErr("softDelete.ToSql", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return r.storageErr("delete "+table, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(entity)
	}
	return nil
}

// CreateBook validates both references under FOR SHARE locks and inserts in one transaction.
func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	var created model.Book
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		if err := r.lockReferences(ctx, tx, book); err != nil {
			return err
		}

		query, args, err := qb.Insert(booksTableName).
			Columns(bookColumns...).
			Values(book.ISBN, book.Title, book.AuthorID, book.PublisherID, book.PublicationYear, book.PublicationMonth, model.StatusActive).
			Suffix("returning " + strings.Join(bookColumns, ", ")).
			ToSql()
		if err != nil {
			return r.storageErr("CreateBook.ToSql", err)
		}
		created, err = r.collectBook(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return model.Book{}, r.classifyBookErr("CreateBook", err)
	}
	return created, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	var updated model.Book
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		query, args, err := qb.Select("isbn").
			From(booksTableName).
			Where(sq.Eq{"isbn": book.ISBN, "status": model.StatusActive}).
			Suffix("for update").
			ToSql()
		if err != nil {
			return r.storageErr("UpdateBook.ToSql", err)
		}
		var isbn int64
		if err = tx.QueryRow(ctx, query, args...).Scan(&isbn); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.NotFound("book")
			}
			return r.storageErr("UpdateBook.lock", err)
		}

		if err = r.lockReferences(ctx, tx, book); err != nil {
			return err
		}

		query, args, err = qb.Update(booksTableName).
			SetMap(map[string]interface{}{
				"title":             book.Title,
				"author_id":         book.AuthorID,
				"publisher_id":      book.PublisherID,
				"publication_year":  book.PublicationYear,
				"publication_month": book.PublicationMonth,
			}).
			Where(sq.Eq{"isbn": book.ISBN}).
			Suffix("returning " + strings.Join(bookColumns, ", ")).
			ToSql()
		if err != nil {
			return r.storageErr("UpdateBook.ToSql", err)
		}
		updated, err = r.collectBook(ctx, tx, query, args)
		return err
	})
	if err != nil {
		return model.Book{}, r.classifyBookErr("UpdateBook", err)
	}
	return updated, nil
}

func (r *repository) DeleteBook(ctx context.Context, isbn int64) error {
	return r.softDelete(ctx, booksTableName, "book", sq.Eq{"isbn": isbn})
}

// lockReferences holds FOR SHARE locks on the referenced author and publisher so a
// concurrent soft delete cannot commit between the check and the book write.
func (r *repository) lockReferences(ctx context.Context, tx pgx.Tx, book model.Book) error {
	refs := []struct {
		table string
		field string
		id    int64
	}{
		{authorsTableName, "author_id", book.AuthorID},
		{publishersTableName, "publisher_id", book.PublisherID},
	}
	for _, ref := range refs {
		query, args, err := qb.Select("id").
			From(ref.table).
			Where(sq.Eq{"id": ref.id, "status": model.StatusActive}).
			Suffix("for share").
			ToSql()
		if err != nil {
			return r.storageErr("lockReferences.ToSql", err)
		}
		var id int64
		if err = tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.Validation(ref.field)
			}
			return r.storageErr("lockReferences", err, zap.String("table", ref.table))
		}
	}
	return nil
}

func (r *repository) collectBook(ctx context.Context, tx pgx.Tx, query string, args []interface{}) (model.Book, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
}

// classifyBookErr maps raw driver errors escaping a book transaction; typed errors pass through.
func (r *repository) classifyBookErr(op string, err error) error {
	var e *errs.Error
	switch {
	case errors.As(err, &e):
		return err
	case isUniqueViolation(err, booksPKey):
		return errs.Conflict("isbn")
	case isForeignKeyViolation(err):
		return errs.Validation("author_id")
	}
	return r.storageErr(op, err)
}

func (r *repository) GetBook(ctx context.Context, isbn int64) (model.BookDetail, error) {
	query, args, err := qb.Select("b.isbn", "b.title", "a.name as author_name", "p.name as publisher_name",
		"b.publication_year", "b.publication_month").
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s a on a.id = b.author_id", authorsTableName)).
		Join(fmt.Sprintf("%s p on p.id = b.publisher_id", publishersTableName)).
		Where(sq.Eq{"b.isbn": isbn, "b.status": model.StatusActive}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookDetail{}, r.storageErr("GetBook.ToSql", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.BookDetail{}, r.storageErr("GetBook", err)
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BookDetail])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.BookDetail{}, errs.NotFound("book")
		}
		return model.BookDetail{}, r.storageErr("GetBook", err, zap.String("q", query))
	}
	book.PublicationYearMonth = model.YearMonth(book.PublicationYear, book.PublicationMonth)
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, limit, offset int) ([]model.BookItem, error) {
	query, args, err := qb.Select("b.isbn", "b.title", "a.name as author_name", "b.publication_year", "b.publication_month").
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s a on a.id = b.author_id", authorsTableName)).
		Where(sq.Eq{"b.status": model.StatusActive}).
		OrderBy("b.publication_year desc", "b.publication_month desc", "b.isbn").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, r.storageErr("ListBooks.ToSql", err)
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr("ListBooks", err)
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.BookItem])
	if err != nil {
		return nil, r.storageErr("ListBooks.CollectRows", err)
	}
	for i := range books {
		books[i].PublicationYearMonth = model.YearMonth(books[i].PublicationYear, books[i].PublicationMonth)
	}
	return books, nil
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	query, args, err := qb.Select("count(*)").
		From(booksTableName).
		Where(sq.Eq{"status": model.StatusActive}).
		ToSql()
	if err != nil {
		return 0, r.storageErr("CountBooks.ToSql", err)
	}
	var total int
	if err = r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, r.storageErr("CountBooks", err)
	}
	return total, nil
}

func (r *repository) Search(ctx context.Context, kind model.EntityKind, keyword string) ([]model.NamedEntity, error) {
	var table string
	switch kind {
	case model.KindAuthor:
		table = authorsTableName
	case model.KindPublisher:
		table = publishersTableName
	default:
		return nil, errs.Validation("kind")
	}

	query, args, err := qb.Select("id", "name").
		From(table).
		Where(sq.Eq{"status": model.StatusActive}).
		Where("strpos(lower(name), lower(?)) > 0", keyword).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, r.storageErr("Search.ToSql", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, r.storageErr("Search", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.NamedEntity])
	if err != nil {
		return nil, r.storageErr("Search.CollectRows", err)
	}
	return items, nil
}

