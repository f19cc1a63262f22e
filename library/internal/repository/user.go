package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

var userColumns = []string{"id", "email", "name", "password_hash", "status", "is_admin"}

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	query, args, err := qb.Insert(usersTableName).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.PasswordHash, user.Status, user.IsAdmin).
		ToSql()
	if err != nil {
		return r.storageErr("CreateUser.ToSql", err)
	}
	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err, usersEmailKey) {
			return errs.Conflict("email")
		}
		return r.storageErr("CreateUser", err)
	}
	return nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUser(ctx, "GetUserByEmail", "email", email)
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.getUser(ctx, "GetUser", "id", id)
}

func (r *repository) getUser(ctx context.Context, op, column string, value interface{}) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(column+" = ?", value).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, r.storageErr(op+".ToSql", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, r.storageErr(op, err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.NotFound("user")
		}
		return model.User{}, r.storageErr(op, err, zap.String("q", query))
	}
	return user, nil
}
