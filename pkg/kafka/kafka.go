package kafka

import (
	"context"
	"log"
	"time"

	"github.com/IBM/sarama"
)

const (
	NotificationsTopic         = "library.notifications"
	NotificationsConsumerGroup = "library-notifications"
)

// EventNotification is published when a borrow request decision is made and
// references the MailQueue row the consumer must deliver.
type EventNotification struct {
	MailID    int64     `json:"mail_id"`
	Type      string    `json:"type"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group loop until ctx is cancelled.
func Consume(ctx context.Context, cg sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) {
	for {
		if err := cg.Consume(ctx, topics, handler); err != nil {
			log.Printf("kafka consume: %v", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}
