package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/repository"
)

type CatalogService struct {
	log  *zap.Logger
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{log: log, repo: repo}
}

func (s *CatalogService) CreateBook(ctx context.Context, req model.CreateBook) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *CatalogService) UpdateBook(ctx context.Context, id int64, req model.CreateBook) (model.Book, error) {
	return s.repo.UpdateBook(ctx, id, req)
}

func (s *CatalogService) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *CatalogService) GetBook(ctx context.Context, id int64) (model.BookInfo, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *CatalogService) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	if f.Size <= 0 {
		f.Size = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return s.repo.ListBooks(ctx, f)
}

func (s *CatalogService) CreateAuthor(ctx context.Context, req model.CreateAuthor) (model.Author, error) {
	if req.BirthDate != nil && req.DeathDate != nil && req.DeathDate.Time.Before(req.BirthDate.Time) {
		return model.Author{}, fmt.Errorf("%w: deathDate before birthDate", errs.ErrBadDateRange)
	}
	return s.repo.CreateAuthor(ctx, req)
}

func (s *CatalogService) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *CatalogService) ListAuthors(ctx context.Context) ([]model.AuthorInfo, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *CatalogService) CreatePublisher(ctx context.Context, req model.CreatePublisher) (model.Publisher, error) {
	return s.repo.CreatePublisher(ctx, req)
}

func (s *CatalogService) DeletePublisher(ctx context.Context, id int64) error {
	return s.repo.DeletePublisher(ctx, id)
}

func (s *CatalogService) ListPublishers(ctx context.Context, f model.PublisherFilter) ([]model.PublisherInfo, error) {
	return s.repo.ListPublishers(ctx, f)
}

func (s *CatalogService) CreateCategory(ctx context.Context, req model.CreateCategory) (model.Category, error) {
	return s.repo.CreateCategory(ctx, req)
}

// MoveCategory re-parents a category. The new parent must not be the
// category itself or any of its descendants, otherwise the tree would
// close into a cycle.
func (s *CatalogService) MoveCategory(ctx context.Context, id int64, parentID *int64) error {
	if parentID != nil {
		if *parentID == id {
			return errs.ErrCategoryCycle
		}
		ancestors, err := s.repo.CategoryAncestors(ctx, *parentID)
		if err != nil {
			return err
		}
		for _, ancestor := range ancestors {
			if ancestor == id {
				return errs.ErrCategoryCycle
			}
		}
	}
	return s.repo.UpdateCategoryParent(ctx, id, parentID)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context, f model.CategoryFilter) ([]model.CategoryInfo, error) {
	return s.repo.ListCategories(ctx, f)
}

// CategoryTree assembles the flat category list into a forest. Nodes whose
// parent is missing (or would loop) are attached at the root rather than
// dropped.
func (s *CatalogService) CategoryTree(ctx context.Context) ([]*model.CategoryNode, error) {
	categories, err := s.repo.ListCategories(ctx, model.CategoryFilter{})
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(categories), nil
}

func BuildCategoryTree(categories []model.CategoryInfo) []*model.CategoryNode {
	nodes := make(map[int64]*model.CategoryNode, len(categories))
	for _, c := range categories {
		nodes[c.ID] = &model.CategoryNode{CategoryInfo: c, Children: []*model.CategoryNode{}}
	}
	var roots []*model.CategoryNode
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

func (s *CatalogService) CreateBookItem(ctx context.Context, req model.CreateBookItem) (model.BookItem, error) {
	if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
		return model.BookItem{}, err
	}
	return s.repo.CreateBookItem(ctx, req)
}

func (s *CatalogService) ListBookItems(ctx context.Context, bookID int64, status model.ItemStatus) ([]model.BookItem, error) {
	return s.repo.ListBookItems(ctx, bookID, status)
}
