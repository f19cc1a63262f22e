package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	md "github.com/Astemirdum/library-lending/pkg/middleware"
)

// Register godoc
// @Summary  register a member account
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    request body model.RegisterRequest true "account"
// @Success  201 {object} model.Identity
// @Failure  400,409 {object} model.MessageResponse
// @Router   /users/register [post]
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	identity, err := h.librarySvc.Register(c.Request().Context(), req)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, identity)
}

// Login godoc
// @Summary  open a session
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    request body model.LoginRequest true "credentials"
// @Success  200 {object} model.LoginResponse
// @Failure  400,401 {object} model.MessageResponse
// @Router   /users/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	resp, err := h.librarySvc.Login(c.Request().Context(), req)
	if err != nil {
		// unknown and deleted accounts look the same as a wrong password
		if errs.KindOf(err) == errs.KindNotFound || errors.Is(err, errs.ErrInvalidCredential) {
			return echo.NewHTTPError(http.StatusUnauthorized, errs.ErrInvalidCredential.Key)
		}
		return h.errorResponse(err)
	}
	c.SetCookie(&http.Cookie{
		Name:     md.SessionCookie,
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   resp.ExpiresIn,
		Expires:  time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary  close the current session
// @Tags     users
// @Success  204
// @Router   /users/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.librarySvc.Logout(c.Request().Context(), md.SessionToken(c.Request())); err != nil {
		return h.errorResponse(err)
	}
	c.SetCookie(&http.Cookie{
		Name:     md.SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// Me godoc
// @Summary  current identity
// @Tags     users
// @Produce  json
// @Security Session
// @Success  200 {object} model.Identity
// @Failure  401 {object} model.MessageResponse
// @Router   /users/me [get]
func (h *Handler) Me(c echo.Context) error {
	me, err := h.librarySvc.Me(c.Request().Context(), identity(c))
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, me)
}
