package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) Dashboard(c echo.Context) error {
	var (
		err         error
		year, month int
	)
	period := c.QueryParam("period")
	if period == "" {
		period = "month"
	}
	if period != "month" && period != "year" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("period must be month or year"))
	}
	if yearParam := c.QueryParam("year"); yearParam != "" {
		if year, err = strconv.Atoi(yearParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("year is invalid"))
		}
	}
	if monthParam := c.QueryParam("month"); monthParam != "" {
		if month, err = strconv.Atoi(monthParam); err != nil || month < 1 || month > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("month is invalid"))
		}
	}

	stats, err := h.statsSvc.Dashboard(c.Request().Context(), period, year, month)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) CategoryStats(c echo.Context) error {
	stats, err := h.statsSvc.Categories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) PublisherStats(c echo.Context) error {
	stats, err := h.statsSvc.Publishers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) AuthorStats(c echo.Context) error {
	stats, err := h.statsSvc.Authors(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) RecentActivity(c echo.Context) error {
	var limit int
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("limit is invalid"))
		}
	}
	activity, err := h.statsSvc.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, activity)
}
