package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/repository"
)

type fakeCatalogRepo struct {
	repository.CatalogRepository
	ancestors map[int64][]int64
	movedID   int64
	movedTo   *int64
}

func (f *fakeCatalogRepo) CategoryAncestors(_ context.Context, parentID int64) ([]int64, error) {
	return f.ancestors[parentID], nil
}

func (f *fakeCatalogRepo) UpdateCategoryParent(_ context.Context, id int64, parentID *int64) error {
	f.movedID, f.movedTo = id, parentID
	return nil
}

func TestCatalogService_MoveCategory(t *testing.T) {
	t.Parallel()
	// 1 <- 2 <- 3
	repo := &fakeCatalogRepo{ancestors: map[int64][]int64{
		2: {1},
		3: {2, 1},
	}}
	svc := NewCatalogService(repo, zap.NewNop())

	parent := int64(1)
	require.NoError(t, svc.MoveCategory(context.Background(), 3, &parent))
	require.Equal(t, int64(3), repo.movedID)
	require.Equal(t, &parent, repo.movedTo)
}

func TestCatalogService_MoveCategory_cycle(t *testing.T) {
	t.Parallel()
	repo := &fakeCatalogRepo{ancestors: map[int64][]int64{
		2: {1},
		3: {2, 1},
	}}
	svc := NewCatalogService(repo, zap.NewNop())

	t.Run("self parent", func(t *testing.T) {
		t.Parallel()
		self := int64(1)
		require.ErrorIs(t, svc.MoveCategory(context.Background(), 1, &self), errs.ErrCategoryCycle)
	})
	t.Run("descendant parent", func(t *testing.T) {
		t.Parallel()
		// 1's prospective parent 3 descends from 1
		parent := int64(3)
		require.ErrorIs(t, svc.MoveCategory(context.Background(), 1, &parent), errs.ErrCategoryCycle)
	})
	t.Run("detach to root", func(t *testing.T) {
		require.NoError(t, svc.MoveCategory(context.Background(), 3, nil))
		require.Nil(t, repo.movedTo)
	})
}

func TestBuildCategoryTree(t *testing.T) {
	t.Parallel()
	parent := int64(1)
	missing := int64(99)
	categories := []model.CategoryInfo{
		{Category: model.Category{ID: 1, Name: "Fiction"}},
		{Category: model.Category{ID: 2, Name: "Fantasy", ParentID: &parent}},
		{Category: model.Category{ID: 3, Name: "Sci-Fi", ParentID: &parent}},
		{Category: model.Category{ID: 4, Name: "Orphan", ParentID: &missing}},
	}

	roots := BuildCategoryTree(categories)
	require.Len(t, roots, 2)
	require.Equal(t, "Fiction", roots[0].Name)
	require.Len(t, roots[0].Children, 2)
	// node with a missing parent surfaces at the root
	require.Equal(t, "Orphan", roots[1].Name)
}
