package repository

import (
	"context"
	"fmt"

	"github.com/bookward/library-management/internal/model"
)

type StatsRepository interface {
	CountBooks(ctx context.Context) (int, error)
	CountActiveUsers(ctx context.Context) (int, error)
	CountRequestsByStatus(ctx context.Context, status model.RequestStatus) (int, error)
	CountLoansByStatus(ctx context.Context, status model.LoanStatus) (int, error)
	CategoryBookCounts(ctx context.Context) ([]model.CategoryBookCount, error)
	RequestsByDay(ctx context.Context, year, month int) ([]model.BucketCount, error)
	RequestsByMonth(ctx context.Context, year int) ([]model.BucketCount, error)
	StatusDistribution(ctx context.Context) ([]model.StatusCount, error)
	LanguageDistribution(ctx context.Context) ([]model.LanguageCount, error)
	AllCategories(ctx context.Context) ([]model.CategoryInfo, error)
	PublishersByFoundedYear(ctx context.Context) ([]model.YearCount, error)
	AuthorsByBirthYear(ctx context.Context) ([]model.YearCount, error)
	AuthorMortality(ctx context.Context) (living, deceased int, err error)
	RecentActivity(ctx context.Context, limit int) ([]model.Activity, error)
}

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, fmt.Sprintf("select count(*) from %s", booksTableName))
}

func (r *repository) CountActiveUsers(ctx context.Context) (int, error) {
	return r.count(ctx, fmt.Sprintf("select count(*) from %s where status = 'ACTIVE'", profilesTableName))
}

func (r *repository) CountRequestsByStatus(ctx context.Context, status model.RequestStatus) (int, error) {
	return r.count(ctx, fmt.Sprintf("select count(*) from %s where status = '%s'", requestsTableName, status))
}

func (r *repository) CountLoansByStatus(ctx context.Context, status model.LoanStatus) (int, error) {
	return r.count(ctx, fmt.Sprintf("select count(*) from %s where status = '%s'", loansTableName, status))
}

func (r *repository) count(ctx context.Context, q string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) CategoryBookCounts(ctx context.Context) ([]model.CategoryBookCount, error) {
	q := fmt.Sprintf(`
	select c.name, count(distinct bc.book_id) as total_books
	from %s c join %s bc on bc.category_id = c.id
	group by c.id
	having count(distinct bc.book_id) > 0
	order by total_books desc`, categoriesTableName, bookCategoriesTableName)

	var counts []model.CategoryBookCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) RequestsByDay(ctx context.Context, year, month int) ([]model.BucketCount, error) {
	q := fmt.Sprintf(`
	select extract(day from created_at)::int as bucket, count(*) as count
	from %s
	where extract(year from created_at) = $1 and extract(month from created_at) = $2
	group by bucket
	order by bucket`, requestsTableName)

	var buckets []model.BucketCount
	if err := r.db.SelectContext(ctx, &buckets, q, year, month); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *repository) RequestsByMonth(ctx context.Context, year int) ([]model.BucketCount, error) {
	q := fmt.Sprintf(`
	select extract(month from created_at)::int as bucket, count(*) as count
	from %s
	where extract(year from created_at) = $1
	group by bucket
	order by bucket`, requestsTableName)

	var buckets []model.BucketCount
	if err := r.db.SelectContext(ctx, &buckets, q, year); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *repository) StatusDistribution(ctx context.Context) ([]model.StatusCount, error) {
	q := fmt.Sprintf(`
	select status, count(*) as total
	from %s
	group by status
	order by total desc`, requestsTableName)

	var counts []model.StatusCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) LanguageDistribution(ctx context.Context) ([]model.LanguageCount, error) {
	q := fmt.Sprintf(`
	select language_code, count(*) as total
	from %s
	where language_code is not null
	group by language_code
	order by total desc`, booksTableName)

	var counts []model.LanguageCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) AllCategories(ctx context.Context) ([]model.CategoryInfo, error) {
	return r.ListCategories(ctx, model.CategoryFilter{})
}

func (r *repository) PublishersByFoundedYear(ctx context.Context) ([]model.YearCount, error) {
	q := fmt.Sprintf(`
	select founded_year as year, count(*) as count
	from %s
	where founded_year is not null
	group by founded_year
	order by founded_year`, publishersTableName)

	var counts []model.YearCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) AuthorsByBirthYear(ctx context.Context) ([]model.YearCount, error) {
	q := fmt.Sprintf(`
	select extract(year from birth_date)::int as year, count(*) as count
	from %s
	where birth_date is not null
	group by year
	order by year`, authorsTableName)

	var counts []model.YearCount
	if err := r.db.SelectContext(ctx, &counts, q); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) AuthorMortality(ctx context.Context) (int, int, error) {
	q := fmt.Sprintf(`
	select count(*) filter (where death_date is null) as living,
	       count(*) filter (where death_date is not null) as deceased
	from %s`, authorsTableName)

	var living, deceased int
	if err := r.db.QueryRowContext(ctx, q).Scan(&living, &deceased); err != nil {
		return 0, 0, err
	}
	return living, deceased, nil
}

func (r *repository) RecentActivity(ctx context.Context, limit int) ([]model.Activity, error) {
	q := fmt.Sprintf(`
	(select created_at, 'book' as type, 'New book: ' || title as message,
	        coalesce('Year: ' || publish_year::text, '') as details
	 from %s order by created_at desc limit $1)
	union all
	(select created_at, 'author' as type, 'Author: ' || name as message, '' as details
	 from %s order by created_at desc limit $1)
	union all
	(select created_at, 'publisher' as type, 'Publisher: ' || name as message,
	        coalesce('Founded: ' || founded_year::text, '') as details
	 from %s order by created_at desc limit $1)
	order by created_at desc
	limit $1`, booksTableName, authorsTableName, publishersTableName)

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []model.Activity
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.Timestamp, &a.Type, &a.Message, &a.Details); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
