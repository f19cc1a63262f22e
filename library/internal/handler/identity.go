package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
)

const identityKey = "identity"

// identify resolves the session token, if any, and stores the identity in the
// echo context. Requests without a valid session continue anonymously; each
// operation decides whether that is allowed.
func (h *Handler) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := md.SessionToken(c.Request())
		if token == "" {
			return next(c)
		}
		identity, err := h.librarySvc.Resolve(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, errs.ErrUnauthenticated) {
				return next(c)
			}
			return h.errorResponse(err)
		}
		c.Set(identityKey, &identity)
		return next(c)
	}
}

func identity(c echo.Context) *model.Identity {
	who, _ := c.Get(identityKey).(*model.Identity)
	return who
}
