package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
)

type BorrowRepository interface {
	CreateBorrowRequest(ctx context.Context, req model.BorrowRequest, items []model.BorrowRequestItem) (model.BorrowRequest, error)
	GetBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error)
	ListBorrowRequests(ctx context.Context, username string) ([]model.BorrowRequestInfo, error)
	ListBorrowRequestsByStatus(ctx context.Context, status model.RequestStatus) ([]model.BorrowRequestInfo, error)
	CancelBorrowRequest(ctx context.Context, username, requestUID string) (model.BorrowRequest, error)
	AvailableItems(ctx context.Context, bookID int64) (int, error)

	ApproveBorrowRequest(ctx context.Context, requestUID string, bookItemID int64, now time.Time) (model.BorrowRequest, error)
	RejectBorrowRequest(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error)
	ReturnBorrowRequest(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error)
	MarkBorrowRequestLost(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error)
	SweepOverdue(ctx context.Context, today time.Time) (int64, error)

	EnsureProfile(ctx context.Context, username, fullName string) (model.MemberProfile, error)
}

func (r *repository) CreateBorrowRequest(ctx context.Context, req model.BorrowRequest, items []model.BorrowRequestItem) (model.BorrowRequest, error) {
	var created model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(requestsTableName).
			Columns("request_uid", "username", "requested_from", "duration_days", "requested_to", "status").
			Values(uuid.New(), req.Username, req.RequestedFrom.Format(time.DateOnly), req.DurationDays,
				req.RequestedTo.Format(time.DateOnly), req.Status).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			r.log.Error("CreateBorrowRequest", zap.String("q", q), zap.Any("args", args))
			return wrapErr(err)
		}
		for _, item := range items {
			q, args, err := qb.Insert(requestItemsTableName).
				Columns("request_id", "book_id", "quantity").
				Values(created.ID, item.BookID, item.Quantity).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return wrapErr(err)
			}
		}
		return nil
	})
	return created, err
}

func (r *repository) GetBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error) {
	q, args, err := qb.Select("*").
		From(requestsTableName).
		Where(sq.Eq{"request_uid": requestUID}).
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	var req model.BorrowRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		return model.BorrowRequest{}, wrapErr(err)
	}
	return req, nil
}

const requestInfoColumns = `r.id, r.request_uid, r.username, r.book_item_id, r.requested_from,
	r.duration_days, r.requested_to, r.status, r.decision_at, r.created_at,
	ri.book_id, b.title as book_title, ri.quantity`

func (r *repository) ListBorrowRequests(ctx context.Context, username string) ([]model.BorrowRequestInfo, error) {
	q := fmt.Sprintf(`
	select %s
	from %s r
	join %s ri on ri.request_id = r.id
	join %s b on b.id = ri.book_id
	where r.username = $1
	order by r.created_at desc, r.id desc`,
		requestInfoColumns, requestsTableName, requestItemsTableName, booksTableName)

	var items []model.BorrowRequestInfo
	if err := r.db.SelectContext(ctx, &items, q, username); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListBorrowRequestsByStatus(ctx context.Context, status model.RequestStatus) ([]model.BorrowRequestInfo, error) {
	b := qb.Select(requestInfoColumns).
		From(requestsTableName + " r").
		Join(requestItemsTableName + " ri on ri.request_id = r.id").
		Join(booksTableName + " b on b.id = ri.book_id").
		OrderBy("r.created_at desc", "r.id desc")
	if status != "" {
		b = b.Where(sq.Eq{"r.status": status})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BorrowRequestInfo
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// CancelBorrowRequest flips a PENDING request of the owner to CANCELLED.
// The status predicate is in the update itself so a racing approval wins or
// loses atomically.
func (r *repository) CancelBorrowRequest(ctx context.Context, username, requestUID string) (model.BorrowRequest, error) {
	q := fmt.Sprintf(`update %s
	set status = 'CANCELLED'
	where request_uid = $1 and username = $2 and status = 'PENDING'
	returning *`, requestsTableName)

	var req model.BorrowRequest
	if err := r.db.GetContext(ctx, &req, q, requestUID, username); err != nil {
		return model.BorrowRequest{}, wrapErr(err)
	}
	return req, nil
}

func (r *repository) AvailableItems(ctx context.Context, bookID int64) (int, error) {
	q := fmt.Sprintf(`select count(*) from %s where book_id = $1 and status = 'AVAILABLE'`, bookItemsTableName)
	var count int
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// lockRequest fetches the request row FOR UPDATE so the old status the
// transition compares against cannot change under us.
func (r *repository) lockRequest(ctx context.Context, tx *sqlx.Tx, requestUID string) (model.BorrowRequest, error) {
	q := fmt.Sprintf(`select * from %s where request_uid = $1 for update`, requestsTableName)
	var req model.BorrowRequest
	if err := tx.GetContext(ctx, &req, q, requestUID); err != nil {
		return model.BorrowRequest{}, wrapErr(err)
	}
	return req, nil
}

func (r *repository) lockItem(ctx context.Context, tx *sqlx.Tx, itemID int64) (model.BookItem, error) {
	q := fmt.Sprintf(`select * from %s where id = $1 for update`, bookItemsTableName)
	var item model.BookItem
	if err := tx.GetContext(ctx, &item, q, itemID); err != nil {
		return model.BookItem{}, wrapErr(err)
	}
	return item, nil
}

func checkTransition(from, to model.RequestStatus) error {
	if from == model.RequestReturned {
		return errs.ErrRequestImmutable
	}
	if !model.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrIllegalTransition, from, to)
	}
	return nil
}

func (r *repository) ApproveBorrowRequest(ctx context.Context, requestUID string, bookItemID int64, now time.Time) (model.BorrowRequest, error) {
	var approved model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.lockRequest(ctx, tx, requestUID)
		if err != nil {
			return err
		}
		if err := checkTransition(req.Status, model.RequestApproved); err != nil {
			return err
		}
		item, err := r.lockItem(ctx, tx, bookItemID)
		if err != nil {
			return err
		}
		// availability is checked only on the transition into APPROVED
		if item.Status != model.ItemAvailable {
			return errs.ErrItemUnavailable
		}

		q := fmt.Sprintf(`update %s
		set status = 'APPROVED', book_item_id = $2, decision_at = $3
		where id = $1
		returning *`, requestsTableName)
		if err := tx.GetContext(ctx, &approved, q, req.ID, item.ID, now); err != nil {
			return wrapErr(err)
		}

		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("update %s set status = 'LOANED' where id = $1", bookItemsTableName), item.ID); err != nil {
			return err
		}

		var requestItemID int64
		if err := tx.QueryRowContext(ctx,
			fmt.Sprintf("select id from %s where request_id = $1 order by id limit 1", requestItemsTableName),
			req.ID).Scan(&requestItemID); err != nil {
			return wrapErr(err)
		}
		_, err = tx.ExecContext(ctx, fmt.Sprintf(`insert into %s
		(request_item_id, book_item_id, approved_from, due_date, status)
		values ($1, $2, $3, $4, 'BORROWED')`, loansTableName),
			requestItemID, item.ID, now.Format(time.DateOnly), approved.RequestedTo.Format(time.DateOnly))
		return err
	})
	return approved, err
}

func (r *repository) RejectBorrowRequest(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error) {
	var rejected model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.lockRequest(ctx, tx, requestUID)
		if err != nil {
			return err
		}
		if err := checkTransition(req.Status, model.RequestRejected); err != nil {
			return err
		}
		q := fmt.Sprintf(`update %s
		set status = 'REJECTED', decision_at = $2
		where id = $1
		returning *`, requestsTableName)
		return wrapErr(tx.GetContext(ctx, &rejected, q, req.ID, now))
	})
	return rejected, err
}

func (r *repository) ReturnBorrowRequest(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error) {
	var returned model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.lockRequest(ctx, tx, requestUID)
		if err != nil {
			return err
		}
		if err := checkTransition(req.Status, model.RequestReturned); err != nil {
			return err
		}
		q := fmt.Sprintf(`update %s set status = 'RETURNED' where id = $1 returning *`, requestsTableName)
		if err := tx.GetContext(ctx, &returned, q, req.ID); err != nil {
			return wrapErr(err)
		}
		if req.BookItemID != nil {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf("update %s set status = 'AVAILABLE' where id = $1", bookItemsTableName), *req.BookItemID); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, fmt.Sprintf(`update %s
			set status = 'RETURNED', returned_at = $2
			where book_item_id = $1 and status in ('BORROWED', 'OVERDUE')`, loansTableName),
				*req.BookItemID, now); err != nil {
				return err
			}
		}
		return nil
	})
	return returned, err
}

func (r *repository) MarkBorrowRequestLost(ctx context.Context, requestUID string, now time.Time) (model.BorrowRequest, error) {
	var lost model.BorrowRequest
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		req, err := r.lockRequest(ctx, tx, requestUID)
		if err != nil {
			return err
		}
		if err := checkTransition(req.Status, model.RequestLost); err != nil {
			return err
		}
		q := fmt.Sprintf(`update %s set status = 'LOST' where id = $1 returning *`, requestsTableName)
		if err := tx.GetContext(ctx, &lost, q, req.ID); err != nil {
			return wrapErr(err)
		}
		if req.BookItemID != nil {
			if _, err := tx.ExecContext(ctx,
				fmt.Sprintf("update %s set status = 'LOST' where id = $1", bookItemsTableName), *req.BookItemID); err != nil {
				return err
			}
		}
		return nil
	})
	return lost, err
}

// SweepOverdue is the idempotent batch transition APPROVED -> OVERDUE for
// requests past their return date, with the matching loan rows flipped too.
// Deliberately no item-status side effect here.
func (r *repository) SweepOverdue(ctx context.Context, today time.Time) (int64, error) {
	var swept int64
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf(`update %s
		set status = 'OVERDUE'
		where status = 'APPROVED' and requested_to < $1`, requestsTableName),
			today.Format(time.DateOnly))
		if err != nil {
			return err
		}
		swept, _ = res.RowsAffected()

		_, err = tx.ExecContext(ctx, fmt.Sprintf(`update %s
		set status = 'OVERDUE'
		where status = 'BORROWED' and due_date < $1`, loansTableName),
			today.Format(time.DateOnly))
		return err
	})
	return swept, err
}

func (r *repository) EnsureProfile(ctx context.Context, username, fullName string) (model.MemberProfile, error) {
	q := fmt.Sprintf(`insert into %s (username, full_name, status, role)
	values ($1, $2, 'ACTIVE', 'USER')
	on conflict (username) do update set username = excluded.username
	returning *`, profilesTableName)

	var profile model.MemberProfile
	if err := r.db.GetContext(ctx, &profile, q, username, fullName); err != nil {
		return model.MemberProfile{}, wrapErr(err)
	}
	return profile, nil
}
