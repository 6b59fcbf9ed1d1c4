package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/bookward/library-management/pkg/kafka"
)

type deliverMail func(ctx context.Context, event kafka.EventNotification) error

// Consumer drains the notifications topic and hands each event to the mail
// delivery path.
type Consumer struct {
	deliverHandler deliverMail
	log            *zap.Logger
	ready          chan bool
}

func NewConsumer(deliver deliverMail, log *zap.Logger) *Consumer {
	return &Consumer{
		deliverHandler: deliver,
		log:            log.Named("consumer"),
		ready:          make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.EventNotification
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal notification", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.deliverHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.deliverHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.Int64("mailID", event.MailID), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
