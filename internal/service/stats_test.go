package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookward/library-management/internal/model"
)

func TestMonthSeries(t *testing.T) {
	t.Parallel()
	buckets := []model.BucketCount{
		{Bucket: 1, Count: 2},
		{Bucket: 15, Count: 5},
	}
	series := monthSeries(buckets, 2024, 2)

	// 2024 is a leap year
	require.Len(t, series.Labels, 29)
	require.Len(t, series.Values, 29)
	require.Equal(t, "01/02", series.Labels[0])
	require.Equal(t, "29/02", series.Labels[28])
	require.Equal(t, 2, series.Values[0])
	require.Equal(t, 5, series.Values[14])
	require.Equal(t, 0, series.Values[1])
}

func TestYearSeries(t *testing.T) {
	t.Parallel()
	series := yearSeries([]model.BucketCount{
		{Bucket: 1, Count: 4},
		{Bucket: 12, Count: 7},
	})

	require.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}, series.Labels)
	require.Equal(t, 4, series.Values[0])
	require.Equal(t, 0, series.Values[5])
	require.Equal(t, 7, series.Values[11])
}

func TestCategoryDepth(t *testing.T) {
	t.Parallel()
	p1, p2 := int64(1), int64(2)
	parentOf := map[int64]*int64{
		1: nil,
		2: &p1,
		3: &p2,
	}
	require.Equal(t, 0, categoryDepth(1, parentOf))
	require.Equal(t, 1, categoryDepth(2, parentOf))
	require.Equal(t, 2, categoryDepth(3, parentOf))
}

func TestCategoryDepth_cycleDoesNotHang(t *testing.T) {
	t.Parallel()
	a, b := int64(1), int64(2)
	parentOf := map[int64]*int64{
		1: &b,
		2: &a,
	}
	require.Equal(t, 1, categoryDepth(1, parentOf))
}
