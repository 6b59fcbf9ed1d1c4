package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bookward/library-management/internal/model"
)

type MailQueueRepository interface {
	EnqueueMail(ctx context.Context, mail model.MailQueue) (model.MailQueue, error)
	MarkMailSent(ctx context.Context, id int64, at time.Time) error
	MarkMailFailed(ctx context.Context, id int64) error
}

func (r *repository) EnqueueMail(ctx context.Context, mail model.MailQueue) (model.MailQueue, error) {
	q, args, err := qb.Insert(mailQueueTableName).
		Columns("type", "recipient", "subject", "body", "status").
		Values(mail.Type, mail.Recipient, mail.Subject, mail.Body, model.MailQueued).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.MailQueue{}, err
	}
	var queued model.MailQueue
	if err := r.db.GetContext(ctx, &queued, q, args...); err != nil {
		return model.MailQueue{}, wrapErr(err)
	}
	return queued, nil
}

// MarkMailSent only moves QUEUED rows; a duplicate delivery of the same
// event is a no-op.
func (r *repository) MarkMailSent(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`update %s
	set status = 'SENT', sent_at = $2
	where id = $1 and status = 'QUEUED'`, mailQueueTableName), id, at)
	return err
}

func (r *repository) MarkMailFailed(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`update %s
	set status = 'FAILED'
	where id = $1 and status = 'QUEUED'`, mailQueueTableName), id)
	return err
}
