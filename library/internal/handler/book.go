package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

// ListBooks godoc
// @Summary  list active books, five per page
// @Tags     books
// @Produce  json
// @Security Session
// @Param    page path int false "page number, 1 by default"
// @Success  200 {object} model.ListBooks
// @Failure  400,401 {object} model.MessageResponse
// @Router   /books/list/{page} [get]
func (h *Handler) ListBooks(c echo.Context) error {
	page := 1
	if pageParam := c.Param("page"); pageParam != "" {
		var err error
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "validation.page")
		}
	}
	list, err := h.librarySvc.ListBooks(c.Request().Context(), identity(c), page)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetBook godoc
// @Summary  book detail
// @Tags     books
// @Produce  json
// @Security Session
// @Param    isbn path int true "isbn"
// @Success  200 {object} model.BookDetail
// @Failure  400,401,404 {object} model.MessageResponse
// @Router   /books/{isbn} [get]
func (h *Handler) GetBook(c echo.Context) error {
	isbn, err := strconv.ParseInt(c.Param("isbn"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation.isbn")
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), identity(c), isbn)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, book)
}

// SearchAuthor godoc
// @Summary  search active authors by name
// @Tags     search
// @Produce  json
// @Param    keyword query string false "case-insensitive substring"
// @Success  200 {array} model.NamedEntity
// @Router   /search/author [get]
func (h *Handler) SearchAuthor(c echo.Context) error {
	return h.search(c, model.KindAuthor)
}

// SearchPublisher godoc
// @Summary  search active publishers by name
// @Tags     search
// @Produce  json
// @Param    keyword query string false "case-insensitive substring"
// @Success  200 {array} model.NamedEntity
// @Router   /search/publisher [get]
func (h *Handler) SearchPublisher(c echo.Context) error {
	return h.search(c, model.KindPublisher)
}

func (h *Handler) search(c echo.Context, kind model.EntityKind) error {
	items, err := h.librarySvc.Search(c.Request().Context(), kind, c.QueryParam("keyword"))
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}
