package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
)

type CatalogRepository interface {
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
	UpdateCategoryParent(ctx context.Context, id int64, parentID *int64) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, f model.CategoryFilter) ([]model.CategoryInfo, error)
	CategoryAncestors(ctx context.Context, parentID int64) ([]int64, error)

	CreateBookItem(ctx context.Context, req model.CreateBookItem) (model.BookItem, error)
	ListBookItems(ctx context.Context, bookID int64, status model.ItemStatus) ([]model.BookItem, error)
	SetBookItemStatus(ctx context.Context, id int64, status model.ItemStatus) error
}

const bookInfoColumns = `b.id, b.title, b.description, b.isbn13, b.publish_year, b.pages,
	b.cover_url, b.language_code, b.publisher_id, b.created_at, b.updated_at,
	p.name as publisher_name,
	(select string_agg(a.name, ', ' order by ba.author_order)
	   from book_authors ba join authors a on a.id = ba.author_id
	  where ba.book_id = b.id) as authors,
	(select string_agg(c.name, ', ' order by c.name)
	   from book_categories bc join categories c on c.id = bc.category_id
	  where bc.book_id = b.id) as categories`

func (r *repository) CreateBook(ctx context.Context, req model.CreateBook) (model.Book, error) {
	var book model.Book
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(booksTableName).
			Columns("title", "description", "isbn13", "publish_year", "pages", "cover_url", "language_code", "publisher_id").
			Values(req.Title, req.Description, req.ISBN13, req.PublishYear, req.Pages, req.CoverURL, req.LanguageCode, req.PublisherID).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &book, q, args...); err != nil {
			return wrapErr(err)
		}
		return r.linkBook(ctx, tx, book.ID, req)
	})
	return book, err
}

func (r *repository) linkBook(ctx context.Context, tx *sqlx.Tx, bookID int64, req model.CreateBook) error {
	for i, authorID := range req.AuthorIDs {
		q, args, err := qb.Insert(bookAuthorsTableName).
			Columns("book_id", "author_id", "author_order").
			Values(bookID, authorID, i+1).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return wrapErr(err)
		}
	}
	for _, categoryID := range req.CategoryIDs {
		q, args, err := qb.Insert(bookCategoriesTableName).
			Columns("book_id", "category_id").
			Values(bookID, categoryID).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return wrapErr(err)
		}
	}
	return nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.CreateBook) (model.Book, error) {
	var book model.Book
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Update(booksTableName).
			Set("title", req.Title).
			Set("description", req.Description).
			Set("isbn13", req.ISBN13).
			Set("publish_year", req.PublishYear).
			Set("pages", req.Pages).
			Set("cover_url", req.CoverURL).
			Set("language_code", req.LanguageCode).
			Set("publisher_id", req.PublisherID).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": id}).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &book, q, args...); err != nil {
			return wrapErr(err)
		}
		for _, table := range []string{bookAuthorsTableName, bookCategoriesTableName} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("delete from %s where book_id = $1", table), id); err != nil {
				return err
			}
		}
		return r.linkBook(ctx, tx, id, req)
	})
	return book, err
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("delete from %s where id = $1", booksTableName), id)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.BookInfo, error) {
	q := fmt.Sprintf(`select %s from %s b left join %s p on p.id = b.publisher_id where b.id = $1`,
		bookInfoColumns, booksTableName, publishersTableName)
	var book model.BookInfo
	if err := r.db.GetContext(ctx, &book, q, id); err != nil {
		return model.BookInfo{}, wrapErr(err)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	q := qb.Select(bookInfoColumns).
		From(booksTableName + " b").
		LeftJoin(publishersTableName + " p on p.id = b.publisher_id")

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(sq.Or{
			sq.ILike{"b.title": like},
			sq.ILike{"b.description": like},
			sq.ILike{"b.isbn13": like},
		})
	}
	if f.CategoryID != 0 {
		q = q.Where(fmt.Sprintf("exists (select 1 from %s bc where bc.book_id = b.id and bc.category_id = ?)", bookCategoriesTableName), f.CategoryID)
	}
	if f.AuthorID != 0 {
		q = q.Where(fmt.Sprintf("exists (select 1 from %s ba where ba.book_id = b.id and ba.author_id = ?)", bookAuthorsTableName), f.AuthorID)
	}
	if f.PublisherID != 0 {
		q = q.Where(sq.Eq{"b.publisher_id": f.PublisherID})
	}
	if f.Language != "" {
		q = q.Where(sq.ILike{"b.language_code": "%" + f.Language + "%"})
	}
	if from, ok := parseDate(f.CreatedFrom); ok {
		q = q.Where(sq.GtOrEq{"b.created_at": from})
	}
	if to, ok := parseDate(f.CreatedTo); ok {
		q = q.Where(sq.Lt{"b.created_at": to.AddDate(0, 0, 1)})
	}
	q = q.OrderBy(bookSortKey(f.Sort))
	if f.Page != 0 && f.Size != 0 {
		q = q.Limit(uint64(f.Size)).Offset(uint64((f.Page - 1) * f.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}

	var books []model.BookInfo
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.Size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

func bookSortKey(sort string) string {
	switch sort {
	case "title":
		return "b.title"
	case "-title":
		return "b.title desc"
	case "created_at":
		return "b.created_at"
	case "-created_at":
		return "b.created_at desc"
	case "-id":
		return "b.id desc"
	default:
		return "b.id"
	}
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (r *repository) CreateAuthor(ctx context.Context, req model.CreateAuthor) (model.Author, error) {
	q, args, err := qb.Insert(authorsTableName).
		Columns("name", "biography", "birth_date", "death_date").
		Values(req.Name, req.Biography, dateOrNil(req.BirthDate), dateOrNil(req.DeathDate)).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Author{}, err
	}
	var author model.Author
	if err := r.db.GetContext(ctx, &author, q, args...); err != nil {
		return model.Author{}, wrapErr(err)
	}
	return author, nil
}

func dateOrNil(d *model.Date) interface{} {
	if d == nil || d.IsZero() {
		return nil
	}
	return d.Time
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("delete from %s where id = $1", authorsTableName), id)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListAuthors(ctx context.Context) ([]model.AuthorInfo, error) {
	q := fmt.Sprintf(`
	select a.*, count(ba.book_id) as books_count
	from %s a left join %s ba on ba.author_id = a.id
	group by a.id
	order by a.name`, authorsTableName, bookAuthorsTableName)
	var authors []model.AuthorInfo
	if err := r.db.SelectContext(ctx, &authors, q); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *repository) CreatePublisher(ctx context.Context, req model.CreatePublisher) (model.Publisher, error) {
	q, args, err := qb.Insert(publishersTableName).
		Columns("name", "description", "founded_year", "website").
		Values(req.Name, req.Description, req.FoundedYear, req.Website).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Publisher{}, err
	}
	var pub model.Publisher
	if err := r.db.GetContext(ctx, &pub, q, args...); err != nil {
		return model.Publisher{}, wrapErr(err)
	}
	return pub, nil
}

func (r *repository) DeletePublisher(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("delete from %s where id = $1", publishersTableName), id)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListPublishers(ctx context.Context, f model.PublisherFilter) ([]model.PublisherInfo, error) {
	q := qb.Select("p.*", "count(b.id) as books_count").
		From(publishersTableName + " p").
		LeftJoin(booksTableName + " b on b.publisher_id = p.id").
		GroupBy("p.id")

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(sq.Or{
			sq.ILike{"p.name": like},
			sq.ILike{"p.description": like},
			sq.ILike{"p.website": like},
		})
	}
	if f.FoundedYearFrom != 0 {
		q = q.Where(sq.GtOrEq{"p.founded_year": f.FoundedYearFrom})
	}
	if f.FoundedYearTo != 0 {
		q = q.Where(sq.LtOrEq{"p.founded_year": f.FoundedYearTo})
	}
	if from, ok := parseDate(f.CreatedFrom); ok {
		q = q.Where(sq.GtOrEq{"p.created_at": from})
	}
	if to, ok := parseDate(f.CreatedTo); ok {
		q = q.Where(sq.Lt{"p.created_at": to.AddDate(0, 0, 1)})
	}
	if f.HasWebsite != nil {
		if *f.HasWebsite {
			q = q.Where("p.website is not null and p.website <> ''")
		} else {
			q = q.Where("(p.website is null or p.website = '')")
		}
	}
	if f.MinBooks > 0 {
		q = q.Having(sq.GtOrEq{"count(b.id)": f.MinBooks})
	}
	if f.EmptyOnly {
		q = q.Having("count(b.id) = 0")
	}
	q = q.OrderBy(publisherSortKey(f.Sort))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var pubs []model.PublisherInfo
	if err := r.db.SelectContext(ctx, &pubs, query, args...); err != nil {
		return nil, err
	}
	return pubs, nil
}

func publisherSortKey(sort string) string {
	switch sort {
	case "-name":
		return "p.name desc"
	case "founded_year":
		return "p.founded_year"
	case "-founded_year":
		return "p.founded_year desc"
	case "books_count":
		return "books_count"
	case "-books_count":
		return "books_count desc"
	case "created_at":
		return "p.created_at"
	case "-created_at":
		return "p.created_at desc"
	default:
		return "p.name"
	}
}

func (r *repository) CreateCategory(ctx context.Context, req model.CreateCategory) (model.Category, error) {
	q, args, err := qb.Insert(categoriesTableName).
		Columns("name", "slug", "description", "parent_id").
		Values(req.Name, req.Slug, req.Description, req.ParentID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Category{}, err
	}
	var cat model.Category
	if err := r.db.GetContext(ctx, &cat, q, args...); err != nil {
		return model.Category{}, wrapErr(err)
	}
	return cat, nil
}

func (r *repository) UpdateCategoryParent(ctx context.Context, id int64, parentID *int64) error {
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("update %s set parent_id = $2 where id = $1", categoriesTableName), id, parentID)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteCategory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf("delete from %s where id = $1", categoriesTableName), id)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context, f model.CategoryFilter) ([]model.CategoryInfo, error) {
	q := qb.Select(
		"c.*", "pc.name as parent_name",
		"count(distinct bc.book_id) as books_count",
		"count(distinct ch.id) as children_count").
		From(categoriesTableName + " c").
		LeftJoin(categoriesTableName + " pc on pc.id = c.parent_id").
		LeftJoin(bookCategoriesTableName + " bc on bc.category_id = c.id").
		LeftJoin(categoriesTableName + " ch on ch.parent_id = c.id").
		GroupBy("c.id", "pc.name")

	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(sq.Or{
			sq.ILike{"c.name": like},
			sq.ILike{"c.description": like},
			sq.ILike{"c.slug": like},
		})
	}
	if f.ParentID != nil {
		if *f.ParentID == 0 {
			q = q.Where("c.parent_id is null")
		} else {
			q = q.Where(sq.Eq{"c.parent_id": *f.ParentID})
		}
	}
	if f.MinBooks > 0 {
		q = q.Having(sq.GtOrEq{"count(distinct bc.book_id)": f.MinBooks})
	}
	if f.EmptyOnly {
		q = q.Having("count(distinct bc.book_id) = 0")
	}
	if f.HasChildren != nil {
		if *f.HasChildren {
			q = q.Having("count(distinct ch.id) > 0")
		} else {
			q = q.Having("count(distinct ch.id) = 0")
		}
	}
	q = q.OrderBy(categorySortKey(f.Sort))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var cats []model.CategoryInfo
	if err := r.db.SelectContext(ctx, &cats, query, args...); err != nil {
		return nil, err
	}
	return cats, nil
}

func categorySortKey(sort string) string {
	switch sort {
	case "-name":
		return "c.name desc"
	case "books_count":
		return "books_count"
	case "-books_count":
		return "books_count desc"
	case "children_count":
		return "children_count"
	case "-children_count":
		return "children_count desc"
	case "id":
		return "c.id"
	case "-id":
		return "c.id desc"
	default:
		return "c.name"
	}
}

// CategoryAncestors walks parent links from parentID upward in one recursive
// query. The depth cap bounds the walk even if bad data sneaks in a cycle.
func (r *repository) CategoryAncestors(ctx context.Context, parentID int64) ([]int64, error) {
	const q = `
	with recursive ancestors as (
		select id, parent_id, 1 as depth from categories where id = $1
		union all
		select c.id, c.parent_id, a.depth + 1
		from categories c join ancestors a on c.id = a.parent_id
		where a.depth < 64
	)
	select id from ancestors`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, q, parentID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) CreateBookItem(ctx context.Context, req model.CreateBookItem) (model.BookItem, error) {
	q, args, err := qb.Insert(bookItemsTableName).
		Columns("book_id", "barcode", "location_code").
		Values(req.BookID, req.Barcode, req.LocationCode).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.BookItem{}, err
	}
	var item model.BookItem
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		return model.BookItem{}, wrapErr(err)
	}
	return item, nil
}

func (r *repository) ListBookItems(ctx context.Context, bookID int64, status model.ItemStatus) ([]model.BookItem, error) {
	q := qb.Select("*").From(bookItemsTableName).OrderBy("id")
	if bookID != 0 {
		q = q.Where(sq.Eq{"book_id": bookID})
	}
	if status != "" {
		q = q.Where(sq.Eq{"status": status})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BookItem
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SetBookItemStatus(ctx context.Context, id int64, status model.ItemStatus) error {
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("update %s set status = $2 where id = $1", bookItemsTableName), id, status)
	if err != nil {
		return wrapErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
