package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

// Checkout godoc
// @Summary  borrow a book for seven days
// @Tags     rentals
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.RentalRequest true "book"
// @Success  201 {object} model.RentalRecord
// @Failure  400,401,404,409 {object} model.MessageResponse
// @Router   /books/rental [post]
func (h *Handler) Checkout(c echo.Context) error {
	var req model.RentalRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	rec, err := h.librarySvc.Checkout(c.Request().Context(), identity(c), req.BookID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// Return godoc
// @Summary  return a borrowed book
// @Tags     rentals
// @Produce  json
// @Security Session
// @Param    rentalId path int true "rental id"
// @Success  200 {object} model.RentalRecord
// @Failure  400,401,404 {object} model.MessageResponse
// @Router   /rentals/{rentalId}/return [post]
func (h *Handler) Return(c echo.Context) error {
	rentalID, err := strconv.ParseInt(c.Param("rentalId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation.rental_id")
	}
	rec, err := h.librarySvc.Return(c.Request().Context(), identity(c), rentalID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// History godoc
// @Summary  rentals of the current user, newest first
// @Tags     rentals
// @Produce  json
// @Security Session
// @Success  200 {array} model.RentalRecord
// @Failure  401 {object} model.MessageResponse
// @Router   /rentals [get]
func (h *Handler) History(c echo.Context) error {
	items, err := h.librarySvc.History(c.Request().Context(), identity(c))
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}

// UserHistory godoc
// @Summary  rentals of any user
// @Tags     rentals
// @Produce  json
// @Security Session
// @Param    userId path string true "user id"
// @Success  200 {array} model.RentalRecord
// @Failure  400,401,403 {object} model.MessageResponse
// @Router   /rentals/users/{userId} [get]
func (h *Handler) UserHistory(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation.user_id")
	}
	items, err := h.librarySvc.UserHistory(c.Request().Context(), identity(c), userID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}
