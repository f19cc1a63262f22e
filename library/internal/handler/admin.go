package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

// CreateAuthor godoc
// @Summary  add an author
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.CreateNamedRequest true "author"
// @Success  201 {object} model.Author
// @Failure  400,401,403 {object} model.MessageResponse
// @Router   /admin/author [post]
func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateNamedRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.CreateAuthor(c.Request().Context(), identity(c), req.Name)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, author)
}

// UpdateAuthor godoc
// @Summary  rename an author
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.UpdateNamedRequest true "author"
// @Success  200 {object} model.Author
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/author [put]
func (h *Handler) UpdateAuthor(c echo.Context) error {
	var req model.UpdateNamedRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	author, err := h.librarySvc.UpdateAuthor(c.Request().Context(), identity(c), req.ID, req.Name)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, author)
}

// DeleteAuthor godoc
// @Summary  soft-delete an author
// @Tags     admin
// @Accept   json
// @Security Session
// @Param    request body model.DeleteByIDRequest true "author"
// @Success  204
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/author [delete]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	var req model.DeleteByIDRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.DeleteAuthor(c.Request().Context(), identity(c), req.ID); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreatePublisher godoc
// @Summary  add a publisher
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.CreateNamedRequest true "publisher"
// @Success  201 {object} model.Publisher
// @Failure  400,401,403 {object} model.MessageResponse
// @Router   /admin/publisher [post]
func (h *Handler) CreatePublisher(c echo.Context) error {
	var req model.CreateNamedRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	publisher, err := h.librarySvc.CreatePublisher(c.Request().Context(), identity(c), req.Name)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, publisher)
}

// UpdatePublisher godoc
// @Summary  rename a publisher
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.UpdateNamedRequest true "publisher"
// @Success  200 {object} model.Publisher
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/publisher [put]
func (h *Handler) UpdatePublisher(c echo.Context) error {
	var req model.UpdateNamedRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	publisher, err := h.librarySvc.UpdatePublisher(c.Request().Context(), identity(c), req.ID, req.Name)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, publisher)
}

// DeletePublisher godoc
// @Summary  soft-delete a publisher
// @Tags     admin
// @Accept   json
// @Security Session
// @Param    request body model.DeleteByIDRequest true "publisher"
// @Success  204
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/publisher [delete]
func (h *Handler) DeletePublisher(c echo.Context) error {
	var req model.DeleteByIDRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.DeletePublisher(c.Request().Context(), identity(c), req.ID); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateBook godoc
// @Summary  add a book
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.BookRequest true "book"
// @Success  201 {object} model.Book
// @Failure  400,401,403,409 {object} model.MessageResponse
// @Router   /admin/book [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), identity(c), req.Book())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook godoc
// @Summary  update a book
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security Session
// @Param    request body model.BookRequest true "book"
// @Success  200 {object} model.Book
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/book [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.BookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), identity(c), req.Book())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook godoc
// @Summary  soft-delete a book
// @Tags     admin
// @Accept   json
// @Security Session
// @Param    request body model.DeleteBookRequest true "book"
// @Success  204
// @Failure  400,401,403,404 {object} model.MessageResponse
// @Router   /admin/book [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	var req model.DeleteBookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), identity(c), req.ISBN); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusNoContent)
}
