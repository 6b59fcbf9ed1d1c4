package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookward/library-management/internal/model"
)

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	return id, nil
}

func (h *Handler) ListBooks(c echo.Context) error {
	var f model.BookFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	books, err := h.catalogSvc.ListBooks(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBook
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.CreateBook
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CreateBookItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookItem
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.BookID = id
	if err := c.Validate(&req); err != nil {
		return err
	}
	item, err := h.catalogSvc.CreateBookItem(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) ListBookItems(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status := model.ItemStatus(c.QueryParam("status"))
	items, err := h.catalogSvc.ListBookItems(c.Request().Context(), id, status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	var req model.CreateAuthor
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	author, err := h.catalogSvc.CreateAuthor(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, author)
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	authors, err := h.catalogSvc.ListAuthors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authors)
}

func (h *Handler) CreatePublisher(c echo.Context) error {
	var req model.CreatePublisher
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	publisher, err := h.catalogSvc.CreatePublisher(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, publisher)
}

func (h *Handler) DeletePublisher(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeletePublisher(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPublishers(c echo.Context) error {
	var f model.PublisherFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	publishers, err := h.catalogSvc.ListPublishers(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, publishers)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req model.CreateCategory
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	category, err := h.catalogSvc.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) MoveCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	type Req struct {
		ParentID *int64 `json:"parentId"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.MoveCategory(c.Request().Context(), id, req.ParentID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogSvc.DeleteCategory(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListCategories(c echo.Context) error {
	var f model.CategoryFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	categories, err := h.catalogSvc.ListCategories(c.Request().Context(), f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) CategoryTree(c echo.Context) error {
	tree, err := h.catalogSvc.CategoryTree(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, tree)
}
