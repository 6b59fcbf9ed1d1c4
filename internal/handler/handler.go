package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/pkg/auth"
	md "github.com/bookward/library-management/pkg/middleware"
	"github.com/bookward/library-management/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	borrowSvc  BorrowService
	statsSvc   StatsService
	exportSvc  ExportService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, borrowSvc BorrowService, statsSvc StatsService, exportSvc ExportService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		borrowSvc:  borrowSvc,
		statsSvc:   statsSvc,
		exportSvc:  exportSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	base.POST("/api/v1/auth/token", h.Token)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.JwtAuthentication,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/items", h.ListBookItems)
	api.GET("/authors", h.ListAuthors)
	api.GET("/publishers", h.ListPublishers)
	api.GET("/categories", h.ListCategories)
	api.GET("/categories/tree", h.CategoryTree)

	api.POST("/borrow-requests", h.CreateBorrowRequest)
	api.GET("/borrow-requests", h.GetBorrowRequests)
	api.POST("/borrow-requests/:requestUid/cancel", h.CancelBorrowRequest)

	admin := api.Group("/admin", md.AdminOnly)

	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:id", h.UpdateBook)
	admin.DELETE("/books/:id", h.DeleteBook)
	admin.POST("/books/:id/items", h.CreateBookItem)
	admin.POST("/authors", h.CreateAuthor)
	admin.DELETE("/authors/:id", h.DeleteAuthor)
	admin.POST("/publishers", h.CreatePublisher)
	admin.DELETE("/publishers/:id", h.DeletePublisher)
	admin.POST("/categories", h.CreateCategory)
	admin.PATCH("/categories/:id/parent", h.MoveCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)

	admin.GET("/borrow-requests", h.ListBorrowRequests)
	admin.POST("/borrow-requests/:requestUid/approve", h.ApproveBorrowRequest)
	admin.POST("/borrow-requests/:requestUid/reject", h.RejectBorrowRequest)
	admin.POST("/borrow-requests/:requestUid/return", h.ReturnBorrowRequest)
	admin.POST("/borrow-requests/:requestUid/lost", h.MarkBorrowRequestLost)
	admin.POST("/overdue/sweep", h.SweepOverdue)

	admin.GET("/stats/dashboard", h.Dashboard)
	admin.GET("/stats/categories", h.CategoryStats)
	admin.GET("/stats/publishers", h.PublisherStats)
	admin.GET("/stats/authors", h.AuthorStats)
	admin.GET("/stats/activity", h.RecentActivity)

	admin.GET("/exports/books", h.ExportBooks)
	admin.GET("/exports/categories", h.ExportCategories)
	admin.GET("/exports/publishers", h.ExportPublishers)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Token issues a signed token for local runs and tests; production fronts
// the API with a real identity provider.
func (h *Handler) Token(c echo.Context) error {
	type Req struct {
		Username string `json:"username" validate:"required"`
		Role     string `json:"role"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Role != auth.RoleAdmin {
		req.Role = auth.RoleUser
	}
	token, expiresAt, err := auth.NewToken(req.Username, req.Role, 24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "expiresAt": expiresAt})
}

// httpError maps service sentinels to status codes so the transport layer
// stays out of the services.
func httpError(err error) error {
	switch {
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrBadDateRange),
		errors.Is(err, errs.ErrCategoryCycle):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrNoInventory),
		errors.Is(err, errs.ErrRequestImmutable),
		errors.Is(err, errs.ErrIllegalTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
