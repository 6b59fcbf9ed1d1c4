package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
)

type fakeExportRepo struct {
	books      model.ListBooks
	categories []model.CategoryInfo
	publishers []model.PublisherInfo
}

func (f *fakeExportRepo) ListBooks(context.Context, model.BookFilter) (model.ListBooks, error) {
	return f.books, nil
}

func (f *fakeExportRepo) ListCategories(context.Context, model.CategoryFilter) ([]model.CategoryInfo, error) {
	return f.categories, nil
}

func (f *fakeExportRepo) ListPublishers(context.Context, model.PublisherFilter) ([]model.PublisherInfo, error) {
	return f.publishers, nil
}

func exportFixture() *fakeExportRepo {
	isbn := "9780000000001"
	publisher := "Hodder"
	return &fakeExportRepo{
		books: model.ListBooks{
			Items: []model.BookInfo{{
				Book: model.Book{
					ID:        1,
					Title:     "The Left Hand of Darkness",
					ISBN13:    &isbn,
					CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				},
				PublisherName: &publisher,
			}},
		},
	}
}

func TestExportService_BooksCSV(t *testing.T) {
	t.Parallel()
	svc := NewExportService(exportFixture(), zap.NewNop())

	export, err := svc.Books(context.Background(), FormatCSV, model.BookFilter{})
	require.NoError(t, err)
	require.Equal(t, "books.csv", export.Filename)
	require.Equal(t, "text/csv", export.ContentType)

	lines := bytes.Split(bytes.TrimSpace(export.Data), []byte("\n"))
	require.Len(t, lines, 2)
	require.Contains(t, string(lines[0]), "Title")
	require.Contains(t, string(lines[1]), "The Left Hand of Darkness")
	require.Contains(t, string(lines[1]), "9780000000001")
}

func TestExportService_BooksXLSX(t *testing.T) {
	t.Parallel()
	svc := NewExportService(exportFixture(), zap.NewNop())

	export, err := svc.Books(context.Background(), FormatXLSX, model.BookFilter{})
	require.NoError(t, err)
	require.Equal(t, "books.xlsx", export.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("books")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Title", rows[0][1])
	require.Equal(t, "The Left Hand of Darkness", rows[1][1])
}

func TestExportService_BooksJSON(t *testing.T) {
	t.Parallel()
	svc := NewExportService(exportFixture(), zap.NewNop())

	export, err := svc.Books(context.Background(), FormatJSON, model.BookFilter{})
	require.NoError(t, err)
	require.Equal(t, "application/json", export.ContentType)

	var items []model.BookInfo
	require.NoError(t, json.Unmarshal(export.Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, "The Left Hand of Darkness", items[0].Title)
}

func TestExportService_badFormat(t *testing.T) {
	t.Parallel()
	svc := NewExportService(exportFixture(), zap.NewNop())

	_, err := svc.Books(context.Background(), "pdf", model.BookFilter{})
	require.True(t, errs.IsValidation(err))
}
