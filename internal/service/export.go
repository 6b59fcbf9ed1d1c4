package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
	FormatJSON = "json"

	exportPageSize = 10000
)

// ExportRepo is the slice of the repository the export endpoints read from.
type ExportRepo interface {
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	ListCategories(ctx context.Context, f model.CategoryFilter) ([]model.CategoryInfo, error)
	ListPublishers(ctx context.Context, f model.PublisherFilter) ([]model.PublisherInfo, error)
}

type ExportService struct {
	log  *zap.Logger
	repo ExportRepo
}

func NewExportService(repo ExportRepo, log *zap.Logger) *ExportService {
	return &ExportService{log: log, repo: repo}
}

// Export renders the dataset in the requested format and returns the
// payload with its content type and suggested filename.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (s *ExportService) Books(ctx context.Context, format string, f model.BookFilter) (Export, error) {
	f.Page, f.Size = 1, exportPageSize
	list, err := s.repo.ListBooks(ctx, f)
	if err != nil {
		return Export{}, err
	}

	header := []string{"ID", "Title", "ISBN", "Publish Year", "Pages", "Language", "Publisher", "Authors", "Categories", "Created At"}
	rows := make([][]string, 0, len(list.Items))
	for _, b := range list.Items {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Title,
			strDeref(b.ISBN13),
			intDeref(b.PublishYear),
			intDeref(b.Pages),
			strDeref(b.LanguageCode),
			strDeref(b.PublisherName),
			strDeref(b.Authors),
			strDeref(b.Categories),
			b.CreatedAt.Format(time.DateOnly),
		})
	}
	return s.render("books", format, header, rows, list.Items)
}

func (s *ExportService) Categories(ctx context.Context, format string, f model.CategoryFilter) (Export, error) {
	categories, err := s.repo.ListCategories(ctx, f)
	if err != nil {
		return Export{}, err
	}

	header := []string{"ID", "Name", "Slug", "Parent", "Books", "Children"}
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Slug,
			strDeref(c.ParentName),
			strconv.Itoa(c.BooksCount),
			strconv.Itoa(c.ChildrenCount),
		})
	}
	return s.render("categories", format, header, rows, categories)
}

func (s *ExportService) Publishers(ctx context.Context, format string, f model.PublisherFilter) (Export, error) {
	publishers, err := s.repo.ListPublishers(ctx, f)
	if err != nil {
		return Export{}, err
	}

	header := []string{"ID", "Name", "Founded Year", "Website", "Books", "Created At"}
	rows := make([][]string, 0, len(publishers))
	for _, p := range publishers {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			intDeref(p.FoundedYear),
			strDeref(p.Website),
			strconv.Itoa(p.BooksCount),
			p.CreatedAt.Format(time.DateOnly),
		})
	}
	return s.render("publishers", format, header, rows, publishers)
}

func (s *ExportService) render(name, format string, header []string, rows [][]string, raw any) (Export, error) {
	switch format {
	case FormatXLSX, "":
		data, err := renderXLSX(name, header, rows)
		if err != nil {
			return Export{}, err
		}
		return Export{
			Filename:    name + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case FormatCSV:
		data, err := renderCSV(header, rows)
		if err != nil {
			return Export{}, err
		}
		return Export{Filename: name + ".csv", ContentType: "text/csv", Data: data}, nil
	case FormatJSON:
		data, err := json.MarshalIndent(raw, "", "  ")
		if err != nil {
			return Export{}, err
		}
		return Export{Filename: name + ".json", ContentType: "application/json", Data: data}, nil
	}
	return Export{}, errs.Validation("format", "must be one of xlsx, csv, json")
}

func renderXLSX(sheet string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intDeref(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}
