package errs

import (
	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthenticated
	KindUnauthorized
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Error is the typed error every core operation returns.
// Key is a stable, user-facing message key.
type Error struct {
	Kind   Kind
	Key    string
	Field  string
	Entity string
	cause  error
}

func (e *Error) Error() string {
	if e.Kind == KindStorage {
		return "internal error"
	}
	return e.Key
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on kind and key so constructed errors compare equal to sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Key == t.Key
}

var (
	ErrUnauthenticated   = &Error{Kind: KindUnauthenticated, Key: "auth.unauthenticated"}
	ErrInvalidCredential = &Error{Kind: KindUnauthenticated, Key: "auth.invalid_credential"}
	ErrUnauthorized      = &Error{Kind: KindUnauthorized, Key: "auth.unauthorized"}
	ErrAlreadyRented     = &Error{Kind: KindConflict, Key: "rental.already_rented"}
	ErrStorage           = &Error{Kind: KindStorage, Key: "internal"}
)

func Validation(field string) error {
	return &Error{Kind: KindValidation, Key: "validation." + field, Field: field}
}

func NotFound(entity string) error {
	return &Error{Kind: KindNotFound, Key: "not_found." + entity, Entity: entity}
}

func Conflict(reason string) error {
	return &Error{Kind: KindConflict, Key: "conflict." + reason}
}

// Storage hides cause from the caller; it stays reachable through Unwrap for logging.
func Storage(cause error) error {
	return &Error{Kind: KindStorage, Key: ErrStorage.Key, cause: cause}
}

// KindOf reports the kind of err, treating unknown errors as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// Key returns the user-facing message key of err.
func Key(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Key
	}
	return ErrStorage.Key
}
