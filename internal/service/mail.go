package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/repository"
	"github.com/bookward/library-management/pkg/kafka"
)

// Sender delivers a single email. The default implementation only logs;
// a real SMTP sender plugs in behind the same interface.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type logSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) Sender {
	return &logSender{log: log.Named("mail-sender")}
}

func (s *logSender) Send(_ context.Context, recipient, subject, _ string) error {
	s.log.Info("mail delivered", zap.String("recipient", recipient), zap.String("subject", subject))
	return nil
}

type MailService struct {
	log      *zap.Logger
	repo     repository.MailQueueRepository
	producer sarama.SyncProducer
	sender   Sender
	now      func() time.Time
}

func NewMailService(repo repository.MailQueueRepository, producer sarama.SyncProducer, sender Sender, log *zap.Logger) *MailService {
	return &MailService{
		log:      log,
		repo:     repo,
		producer: producer,
		sender:   sender,
		now:      time.Now,
	}
}

// EnqueueDecision writes the outbox row first, then publishes the event
// that triggers delivery. A failed publish leaves the row QUEUED for a
// later redrive.
func (s *MailService) EnqueueDecision(ctx context.Context, req model.BorrowRequest, event string) error {
	subject, body := decisionMessage(req, event)
	queued, err := s.repo.EnqueueMail(ctx, model.MailQueue{
		Type:      event,
		Recipient: req.Username,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return err
	}

	if s.producer == nil {
		return nil
	}
	payload, err := json.Marshal(kafka.EventNotification{
		MailID:    queued.ID,
		Type:      event,
		Recipient: queued.Recipient,
		Subject:   queued.Subject,
		Body:      queued.Body,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		return err
	}
	_, _, err = s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: kafka.NotificationsTopic,
		Key:   sarama.StringEncoder(req.RequestUID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		s.log.Error("publish notification", zap.Int64("mailID", queued.ID), zap.Error(err))
	}
	return err
}

// Deliver hands the mail to the sender and settles the outbox row.
func (s *MailService) Deliver(ctx context.Context, event kafka.EventNotification) error {
	if err := s.sender.Send(ctx, event.Recipient, event.Subject, event.Body); err != nil {
		s.log.Error("deliver mail", zap.Int64("mailID", event.MailID), zap.Error(err))
		return s.repo.MarkMailFailed(ctx, event.MailID)
	}
	return s.repo.MarkMailSent(ctx, event.MailID, s.now().UTC())
}

func decisionMessage(req model.BorrowRequest, event string) (subject, body string) {
	from := req.RequestedFrom.Format(time.DateOnly)
	to := req.RequestedTo.Format(time.DateOnly)
	switch event {
	case "request_approved":
		subject = "Your borrow request has been approved"
		body = fmt.Sprintf("Request %s is approved for %s through %s. Please pick up your items at the front desk.",
			req.RequestUID, from, to)
	case "request_rejected":
		subject = "Your borrow request has been rejected"
		body = fmt.Sprintf("Request %s for %s through %s was rejected. Contact the library for details.",
			req.RequestUID, from, to)
	default:
		subject = "Library notification"
		body = fmt.Sprintf("Update on request %s.", req.RequestUID)
	}
	return subject, body
}
