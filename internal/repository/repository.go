package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
)

const (
	authorsTableName        = `authors`
	publishersTableName     = `publishers`
	categoriesTableName     = `categories`
	booksTableName          = `books`
	bookAuthorsTableName    = `book_authors`
	bookCategoriesTableName = `book_categories`
	bookItemsTableName      = `book_items`
	profilesTableName       = `member_profiles`
	requestsTableName       = `borrow_requests`
	requestItemsTableName   = `borrow_request_items`
	loansTableName          = `loans`
	mailQueueTableName      = `mail_queue`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// wrapErr maps driver errors to the sentinel errors handlers understand:
// missing rows become ErrNotFound, unique violations become ErrConflict so
// duplicate isbn13/barcode surface as friendly messages instead of 500s.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrConflict
	}
	return err
}

func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
