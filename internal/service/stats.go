package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/repository"
)

// StatsRepo is the slice of the repository the aggregation endpoints need.
type StatsRepo interface {
	repository.StatsRepository
	ListPublishers(ctx context.Context, f model.PublisherFilter) ([]model.PublisherInfo, error)
	ListAuthors(ctx context.Context) ([]model.AuthorInfo, error)
}

type StatsService struct {
	log  *zap.Logger
	repo StatsRepo
	now  func() time.Time
}

func NewStatsService(repo StatsRepo, log *zap.Logger) *StatsService {
	return &StatsService{log: log, repo: repo, now: time.Now}
}

const popularLimit = 10

// Dashboard assembles the admin landing page numbers. The independent
// queries run concurrently.
func (s *StatsService) Dashboard(ctx context.Context, period string, year, month int) (model.DashboardStats, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	var stats model.DashboardStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Basic.TotalBooks, err = s.repo.CountBooks(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Basic.TotalUsers, err = s.repo.CountActiveUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Requests.Pending, err = s.repo.CountRequestsByStatus(ctx, model.RequestPending)
		return err
	})
	g.Go(func() (err error) {
		stats.Loans.Overdue, err = s.repo.CountLoansByStatus(ctx, model.LoanOverdue)
		return err
	})
	g.Go(func() (err error) {
		stats.CategoryBookCounts, err = s.repo.CategoryBookCounts(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TimeSeries, err = s.timeSeries(ctx, period, year, month)
		return err
	})
	g.Go(func() (err error) {
		stats.StatusDistribution, err = s.repo.StatusDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.LanguageDist, err = s.repo.LanguageDistribution(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (s *StatsService) timeSeries(ctx context.Context, period string, year, month int) (model.TimeSeries, error) {
	if period == "year" {
		buckets, err := s.repo.RequestsByMonth(ctx, year)
		if err != nil {
			return model.TimeSeries{}, err
		}
		return yearSeries(buckets), nil
	}
	buckets, err := s.repo.RequestsByDay(ctx, year, month)
	if err != nil {
		return model.TimeSeries{}, err
	}
	return monthSeries(buckets, year, month), nil
}

// monthSeries zero-fills one point per calendar day, labelled dd/mm.
func monthSeries(buckets []model.BucketCount, year, month int) model.TimeSeries {
	byDay := make(map[int]int, len(buckets))
	for _, b := range buckets {
		byDay[b.Bucket] = b.Count
	}
	days := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	series := model.TimeSeries{
		Labels: make([]string, 0, days),
		Values: make([]int, 0, days),
	}
	for day := 1; day <= days; day++ {
		series.Labels = append(series.Labels, fmt.Sprintf("%02d/%02d", day, month))
		series.Values = append(series.Values, byDay[day])
	}
	return series
}

// yearSeries zero-fills one point per month, labelled with the short
// month name.
func yearSeries(buckets []model.BucketCount) model.TimeSeries {
	byMonth := make(map[int]int, len(buckets))
	for _, b := range buckets {
		byMonth[b.Bucket] = b.Count
	}
	series := model.TimeSeries{
		Labels: make([]string, 0, 12),
		Values: make([]int, 0, 12),
	}
	for m := time.January; m <= time.December; m++ {
		series.Labels = append(series.Labels, m.String()[:3])
		series.Values = append(series.Values, byMonth[int(m)])
	}
	return series
}

// Categories reports the tree shape alongside popular and empty
// categories. Depth is computed by walking parents with a visited set, so
// a damaged tree cannot hang the walk.
func (s *StatsService) Categories(ctx context.Context) (model.CategoryStats, error) {
	categories, err := s.repo.AllCategories(ctx)
	if err != nil {
		return model.CategoryStats{}, err
	}

	var stats model.CategoryStats
	parentOf := make(map[int64]*int64, len(categories))
	for _, c := range categories {
		parentOf[c.ID] = c.ParentID
	}

	depths := make(map[int]int)
	maxDepth := 0
	for _, c := range categories {
		depth := categoryDepth(c.ID, parentOf)
		depths[depth]++
		if depth > maxDepth {
			maxDepth = depth
		}
		if c.ParentID == nil {
			stats.Hierarchy.TopLevel = append(stats.Hierarchy.TopLevel, c)
		}
		if c.ChildrenCount > 0 {
			stats.Parents = append(stats.Parents, c)
		}
		if c.BooksCount == 0 {
			stats.Empty = append(stats.Empty, c)
		}
		if c.BooksCount > 0 {
			stats.Popular = append(stats.Popular, c)
		}
	}
	sort.Slice(stats.Popular, func(i, j int) bool {
		return stats.Popular[i].BooksCount > stats.Popular[j].BooksCount
	})
	if len(stats.Popular) > popularLimit {
		stats.Popular = stats.Popular[:popularLimit]
	}

	stats.Hierarchy.DepthDistribution = depths
	stats.Summary.Total = len(categories)
	stats.Summary.TopLevel = len(stats.Hierarchy.TopLevel)
	stats.Summary.MaxDepth = maxDepth
	return stats, nil
}

func categoryDepth(id int64, parentOf map[int64]*int64) int {
	depth := 0
	visited := map[int64]bool{id: true}
	for {
		parent, ok := parentOf[id]
		if !ok || parent == nil || visited[*parent] {
			return depth
		}
		visited[*parent] = true
		id = *parent
		depth++
	}
}

func (s *StatsService) Publishers(ctx context.Context) (model.PublisherStats, error) {
	publishers, err := s.repo.ListPublishers(ctx, model.PublisherFilter{})
	if err != nil {
		return model.PublisherStats{}, err
	}
	byYear, err := s.repo.PublishersByFoundedYear(ctx)
	if err != nil {
		return model.PublisherStats{}, err
	}

	stats := model.PublisherStats{ByYear: byYear}
	for _, p := range publishers {
		if p.BooksCount > 0 {
			stats.Summary.WithBooks++
			stats.Popular = append(stats.Popular, p)
		} else {
			stats.Summary.WithoutBooks++
			stats.Empty = append(stats.Empty, p)
		}
		if p.Website != nil && *p.Website != "" {
			stats.Summary.WithWebsite++
		} else {
			stats.Summary.WithoutWebsite++
		}
	}
	sort.Slice(stats.Popular, func(i, j int) bool {
		return stats.Popular[i].BooksCount > stats.Popular[j].BooksCount
	})
	if len(stats.Popular) > popularLimit {
		stats.Popular = stats.Popular[:popularLimit]
	}
	stats.Summary.Total = len(publishers)
	if len(byYear) > 0 {
		oldest, newest := byYear[0].Year, byYear[len(byYear)-1].Year
		stats.Summary.OldestYear = &oldest
		stats.Summary.NewestYear = &newest
	}
	return stats, nil
}

func (s *StatsService) Authors(ctx context.Context) (model.AuthorStats, error) {
	authors, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return model.AuthorStats{}, err
	}
	byBirthYear, err := s.repo.AuthorsByBirthYear(ctx)
	if err != nil {
		return model.AuthorStats{}, err
	}
	living, deceased, err := s.repo.AuthorMortality(ctx)
	if err != nil {
		return model.AuthorStats{}, err
	}

	stats := model.AuthorStats{ByBirthYear: byBirthYear}
	for _, a := range authors {
		if a.BooksCount > 0 {
			stats.Summary.WithBooks++
			stats.Popular = append(stats.Popular, a)
		} else {
			stats.Summary.WithoutBooks++
			stats.Empty = append(stats.Empty, a)
		}
	}
	sort.Slice(stats.Popular, func(i, j int) bool {
		return stats.Popular[i].BooksCount > stats.Popular[j].BooksCount
	})
	if len(stats.Popular) > popularLimit {
		stats.Popular = stats.Popular[:popularLimit]
	}
	stats.Summary.Total = len(authors)
	stats.Summary.Living = living
	stats.Summary.Deceased = deceased
	return stats, nil
}

func (s *StatsService) RecentActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.RecentActivity(ctx, limit)
}
