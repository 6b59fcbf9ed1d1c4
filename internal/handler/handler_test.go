package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/handler"
	service_mocks "github.com/bookward/library-management/internal/handler/mocks"
	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/service"
	"github.com/bookward/library-management/pkg/auth"
	"github.com/bookward/library-management/pkg/validate"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func authed(r *http.Request, username, role string) *http.Request {
	return r.WithContext(auth.SetAuthContext(r.Context(), username, role))
}

func TestHandler_CreateBorrowRequest(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookId":7,"quantity":1,"requestedFrom":"2024-01-01","durationDays":7}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateBorrowRequest(gomock.Any(), model.CreateBorrowRequest{
						BookID:        7,
						Quantity:      1,
						RequestedFrom: model.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
						DurationDays:  7,
						Username:      "reader",
					}).
					Return(model.BorrowRequest{
						RequestUID:    "3f9d6a1e-0000-0000-0000-000000000001",
						Username:      "reader",
						RequestedFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
						DurationDays:  7,
						RequestedTo:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
						Status:        model.RequestPending,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `"status":"PENDING"`,
			},
		},
		{
			name:         "err. quantity required",
			body:         `{"bookId":7,"requestedFrom":"2024-01-01","durationDays":7}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `Quantity`,
			},
		},
		{
			name: "err. no inventory",
			body: `{"bookId":7,"quantity":5,"requestedFrom":"2024-01-01","durationDays":7}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					CreateBorrowRequest(gomock.Any(), gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrNoInventory)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `not enough available copies`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrowSvc := service_mocks.NewMockBorrowService(c)
			tt.mockBehavior(borrowSvc)

			h := handler.New(nil, borrowSvc, nil, nil, zap.NewExample().Named("test"))
			e := newTestEcho()
			e.POST("/api/v1/borrow-requests", h.CreateBorrowRequest)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/borrow-requests", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, authed(r, "reader", auth.RoleUser))

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), tt.response.expectedBody)
		})
	}
}

func TestHandler_ApproveBorrowRequest(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockBorrowService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
	}{
		{
			name: "ok",
			body: `{"bookItemId":42}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrowRequest(gomock.Any(), "uid-1", int64(42)).
					Return(model.BorrowRequest{Status: model.RequestApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "err. item not available",
			body: `{"bookItemId":42}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrowRequest(gomock.Any(), "uid-1", int64(42)).
					Return(model.BorrowRequest{}, errs.ErrItemUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "err. already returned",
			body: `{"bookItemId":42}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrowRequest(gomock.Any(), "uid-1", int64(42)).
					Return(model.BorrowRequest{}, errs.ErrRequestImmutable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "err. missing item",
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. not found",
			body: `{"bookItemId":42}`,
			mockBehavior: func(r *service_mocks.MockBorrowService) {
				r.EXPECT().
					ApproveBorrowRequest(gomock.Any(), "uid-1", int64(42)).
					Return(model.BorrowRequest{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			borrowSvc := service_mocks.NewMockBorrowService(c)
			tt.mockBehavior(borrowSvc)

			h := handler.New(nil, borrowSvc, nil, nil, zap.NewExample().Named("test"))
			e := newTestEcho()
			e.POST("/api/v1/admin/borrow-requests/:requestUid/approve", h.ApproveBorrowRequest)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/borrow-requests/uid-1/approve", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, authed(r, "admin", auth.RoleAdmin))

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_GetBook(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	catalogSvc := service_mocks.NewMockCatalogService(c)
	catalogSvc.EXPECT().
		GetBook(gomock.Any(), int64(5)).
		Return(model.BookInfo{}, errs.ErrNotFound)

	h := handler.New(catalogSvc, nil, nil, nil, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.GET("/api/v1/books/:id", h.GetBook)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/books/5", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, authed(r, "reader", auth.RoleUser))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MoveCategory_cycle(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	catalogSvc := service_mocks.NewMockCatalogService(c)
	parent := int64(3)
	catalogSvc.EXPECT().
		MoveCategory(gomock.Any(), int64(1), &parent).
		Return(errs.ErrCategoryCycle)

	h := handler.New(catalogSvc, nil, nil, nil, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.PATCH("/api/v1/admin/categories/:id/parent", h.MoveCategory)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/categories/1/parent", strings.NewReader(`{"parentId":3}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, authed(r, "admin", auth.RoleAdmin))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExportBooks(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	exportSvc := service_mocks.NewMockExportService(c)
	exportSvc.EXPECT().
		Books(gomock.Any(), "csv", gomock.Any()).
		Return(service.Export{
			Filename:    "books.csv",
			ContentType: "text/csv",
			Data:        []byte("ID,Title\n1,Dune\n"),
		}, nil)

	h := handler.New(nil, nil, nil, exportSvc, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.GET("/api/v1/admin/exports/books", h.ExportBooks)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exports/books?format=csv", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, authed(r, "admin", auth.RoleAdmin))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `attachment; filename="books.csv"`, w.Header().Get(echo.HeaderContentDisposition))
	require.Contains(t, w.Body.String(), "Dune")
}

func TestHandler_SweepOverdue(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	borrowSvc := service_mocks.NewMockBorrowService(c)
	borrowSvc.EXPECT().
		SweepOverdue(gomock.Any()).
		Return(int64(2), nil)

	h := handler.New(nil, borrowSvc, nil, nil, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.POST("/api/v1/admin/overdue/sweep", h.SweepOverdue)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/overdue/sweep", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, authed(r, "admin", auth.RoleAdmin))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"swept":2}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Token(t *testing.T) {
	t.Parallel()
	h := handler.New(nil, nil, nil, nil, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.POST("/api/v1/auth/token", h.Token)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{"username":"reader"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "token")

	badReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(`{}`))
	badReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	badW := httptest.NewRecorder()
	e.ServeHTTP(badW, badReq)
	require.Equal(t, http.StatusBadRequest, badW.Code)
}

func TestHandler_ErrBesidesTransition(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	borrowSvc := service_mocks.NewMockBorrowService(c)
	borrowSvc.EXPECT().
		ReturnBorrowRequest(gomock.Any(), "uid-1").
		Return(model.BorrowRequest{}, errors.New("db internal"))

	h := handler.New(nil, borrowSvc, nil, nil, zap.NewExample().Named("test"))
	e := newTestEcho()
	e.POST("/api/v1/admin/borrow-requests/:requestUid/return", h.ReturnBorrowRequest)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/admin/borrow-requests/uid-1/return", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, authed(r, "admin", auth.RoleAdmin))

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
