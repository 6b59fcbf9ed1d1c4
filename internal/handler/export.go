package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/service"
)

func (h *Handler) ExportBooks(c echo.Context) error {
	var f model.BookFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	export, err := h.exportSvc.Books(c.Request().Context(), c.QueryParam("format"), f)
	if err != nil {
		return httpError(err)
	}
	return writeExport(c, export)
}

func (h *Handler) ExportCategories(c echo.Context) error {
	var f model.CategoryFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	export, err := h.exportSvc.Categories(c.Request().Context(), c.QueryParam("format"), f)
	if err != nil {
		return httpError(err)
	}
	return writeExport(c, export)
}

func (h *Handler) ExportPublishers(c echo.Context) error {
	var f model.PublisherFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	export, err := h.exportSvc.Publishers(c.Request().Context(), c.QueryParam("format"), f)
	if err != nil {
		return httpError(err)
	}
	return writeExport(c, export)
}

func writeExport(c echo.Context, export service.Export) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}
