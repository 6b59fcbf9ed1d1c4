package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/pkg/kafka"
)

type fakeMailRepo struct {
	queued  []model.MailQueue
	sentIDs []int64
	failed  []int64
}

func (f *fakeMailRepo) EnqueueMail(_ context.Context, mail model.MailQueue) (model.MailQueue, error) {
	mail.ID = int64(len(f.queued) + 1)
	mail.Status = model.MailQueued
	f.queued = append(f.queued, mail)
	return mail, nil
}

func (f *fakeMailRepo) MarkMailSent(_ context.Context, id int64, _ time.Time) error {
	f.sentIDs = append(f.sentIDs, id)
	return nil
}

func (f *fakeMailRepo) MarkMailFailed(_ context.Context, id int64) error {
	f.failed = append(f.failed, id)
	return nil
}

type failingSender struct{}

func (failingSender) Send(context.Context, string, string, string) error {
	return errors.New("smtp down")
}

func TestMailService_EnqueueDecision(t *testing.T) {
	t.Parallel()
	repo := &fakeMailRepo{}
	producer := saramamocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var event kafka.EventNotification
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.MailID != 1 || event.Type != "request_approved" {
			return errors.Errorf("unexpected event %+v", event)
		}
		return nil
	})

	svc := NewMailService(repo, producer, NewLogSender(zap.NewNop()), zap.NewNop())
	req := model.BorrowRequest{
		RequestUID:    "uid-1",
		Username:      "reader",
		RequestedFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RequestedTo:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.EnqueueDecision(context.Background(), req, "request_approved"))

	require.Len(t, repo.queued, 1)
	require.Equal(t, "reader", repo.queued[0].Recipient)
	require.Equal(t, model.MailQueued, repo.queued[0].Status)
	require.NoError(t, producer.Close())
}

func TestMailService_Deliver(t *testing.T) {
	t.Parallel()
	event := kafka.EventNotification{MailID: 7, Recipient: "reader", Subject: "s", Body: "b"}

	t.Run("sent", func(t *testing.T) {
		t.Parallel()
		repo := &fakeMailRepo{}
		svc := NewMailService(repo, nil, NewLogSender(zap.NewNop()), zap.NewNop())
		require.NoError(t, svc.Deliver(context.Background(), event))
		require.Equal(t, []int64{7}, repo.sentIDs)
		require.Empty(t, repo.failed)
	})
	t.Run("failed", func(t *testing.T) {
		t.Parallel()
		repo := &fakeMailRepo{}
		svc := NewMailService(repo, nil, failingSender{}, zap.NewNop())
		require.NoError(t, svc.Deliver(context.Background(), event))
		require.Equal(t, []int64{7}, repo.failed)
		require.Empty(t, repo.sentIDs)
	})
}
