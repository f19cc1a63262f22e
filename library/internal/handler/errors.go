package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/pkg/validate"
)

func (h *Handler) errorResponse(err error) error {
	kind := errs.KindOf(err)
	var code int
	switch kind {
	case errs.KindValidation:
		code = http.StatusBadRequest
	case errs.KindNotFound:
		code = http.StatusNotFound
	case errs.KindConflict:
		code = http.StatusConflict
	case errs.KindUnauthenticated:
		code = http.StatusUnauthorized
	case errs.KindUnauthorized:
		code = http.StatusForbidden
	default:
		h.log.Error("internal error", zap.Error(err), zap.NamedError("cause", errors.Unwrap(err)))
		code = http.StatusInternalServerError
	}
	return echo.NewHTTPError(code, errs.Key(err))
}

func bindError(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "validation."+validate.Field(err))
}

func bindValid(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(req); err != nil {
		return bindError(err)
	}
	return nil
}
