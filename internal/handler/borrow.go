package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/pkg/auth"
)

func (h *Handler) CreateBorrowRequest(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.Username = auth.UserName(c.Request().Context())

	request, err := h.borrowSvc.CreateBorrowRequest(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, request)
}

func (h *Handler) GetBorrowRequests(c echo.Context) error {
	username := auth.UserName(c.Request().Context())
	requests, err := h.borrowSvc.GetBorrowRequests(c.Request().Context(), username)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) CancelBorrowRequest(c echo.Context) error {
	requestUID := c.Param("requestUid")
	if requestUID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty requestUid"))
	}
	username := auth.UserName(c.Request().Context())
	request, err := h.borrowSvc.CancelBorrowRequest(c.Request().Context(), username, requestUID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) ListBorrowRequests(c echo.Context) error {
	status := model.RequestStatus(c.QueryParam("status"))
	if status == "" {
		status = model.RequestPending
	}
	requests, err := h.borrowSvc.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) ApproveBorrowRequest(c echo.Context) error {
	requestUID := c.Param("requestUid")
	var req model.ApproveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	request, err := h.borrowSvc.ApproveBorrowRequest(c.Request().Context(), requestUID, req.BookItemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) RejectBorrowRequest(c echo.Context) error {
	request, err := h.borrowSvc.RejectBorrowRequest(c.Request().Context(), c.Param("requestUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) ReturnBorrowRequest(c echo.Context) error {
	request, err := h.borrowSvc.ReturnBorrowRequest(c.Request().Context(), c.Param("requestUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) MarkBorrowRequestLost(c echo.Context) error {
	request, err := h.borrowSvc.MarkBorrowRequestLost(c.Request().Context(), c.Param("requestUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) SweepOverdue(c echo.Context) error {
	swept, err := h.borrowSvc.SweepOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"swept": swept})
}
