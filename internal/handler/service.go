package handler

import (
	"context"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/service"
	"github.com/bookward/library-management/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService = (*service.CatalogService)(nil)
	_ BorrowService  = (*service.BorrowService)(nil)
	_ StatsService   = (*service.StatsService)(nil)
	_ ExportService  = (*service.ExportService)(nil)
	_ MailService    = (*service.MailService)(nil)
)

type CatalogService interface {
	CreateBook(ctx context.Context, req model.CreateBook) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.CreateBook) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	GetBook(ctx context.Context, id int64) (model.BookInfo, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)

	CreateAuthor(ctx context.Context, req model.CreateAuthor) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
	ListAuthors(ctx context.Context) ([]model.AuthorInfo, error)

	CreatePublisher(ctx context.Context, req model.CreatePublisher) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error
	ListPublishers(ctx context.Context, f model.PublisherFilter) ([]model.PublisherInfo, error)

	CreateCategory(ctx context.Context, req model.CreateCategory) (model.Category, error)
	MoveCategory(ctx context.Context, id int64, parentID *int64) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, f model.CategoryFilter) ([]model.CategoryInfo, error)
	CategoryTree(ctx context.Context) ([]*model.CategoryNode, error)

	CreateBookItem(ctx context.Context, req model.CreateBookItem) (model.BookItem, error)
	ListBookItems(ctx context.Context, bookID int64, status model.ItemStatus) ([]model.BookItem, error)
}

type BorrowService interface {
	CreateBorrowRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error)
	GetBorrowRequests(ctx context.Context, username string) ([]model.BorrowRequestInfo, error)
	ListByStatus(ctx context.Context, status model.RequestStatus) ([]model.BorrowRequestInfo, error)
	CancelBorrowRequest(ctx context.Context, username, requestUID string) (model.BorrowRequest, error)
	ApproveBorrowRequest(ctx context.Context, requestUID string, bookItemID int64) (model.BorrowRequest, error)
	RejectBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error)
	ReturnBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error)
	MarkBorrowRequestLost(ctx context.Context, requestUID string) (model.BorrowRequest, error)
	SweepOverdue(ctx context.Context) (int64, error)
}

type StatsService interface {
	Dashboard(ctx context.Context, period string, year, month int) (model.DashboardStats, error)
	Categories(ctx context.Context) (model.CategoryStats, error)
	Publishers(ctx context.Context) (model.PublisherStats, error)
	Authors(ctx context.Context) (model.AuthorStats, error)
	RecentActivity(ctx context.Context, limit int) ([]model.Activity, error)
}

type ExportService interface {
	Books(ctx context.Context, format string, f model.BookFilter) (service.Export, error)
	Categories(ctx context.Context, format string, f model.CategoryFilter) (service.Export, error)
	Publishers(ctx context.Context, format string, f model.PublisherFilter) (service.Export, error)
}

type MailService interface {
	Deliver(ctx context.Context, event kafka.EventNotification) error
}
