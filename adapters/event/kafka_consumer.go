package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// messageReader is the part of *kafka.Reader the consumer needs.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventHandler processes one decoded portfolio event.
type EventHandler func(ctx context.Context, evt service.PortfolioEvent) error

type KafkaConsumer struct {
	reader messageReader
	logger logger.Logger
}

func NewKafkaConsumer(cfg config.Config, groupID string, log logger.Logger) (*KafkaConsumer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicPortfolioEvents,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &KafkaConsumer{reader: reader, logger: log}, nil
}

// Run feeds every message to handle until ctx is cancelled. Undecodable
// messages are committed and skipped. A message whose handler fails is left
// uncommitted.
func (c *KafkaConsumer) Run(ctx context.Context, handle EventHandler) error {
	c.logger.Info("Worker listening", zap.String("topic", TopicPortfolioEvents))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		var evt service.PortfolioEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			c.logger.Warn("Skipping undecodable event", zap.String("key", string(msg.Key)), zap.Error(err))
			c.commit(ctx, msg)
			continue
		}

		if err := handle(ctx, evt); err != nil {
			c.logger.Error("Failed to process event", err,
				zap.String("event_type", evt.EventType),
				zap.String("collection", evt.Collection),
			)
			continue
		}
		c.commit(ctx, msg)
	}
}

func (c *KafkaConsumer) commit(ctx context.Context, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", err, zap.Int64("offset", msg.Offset))
	}
}

func (c *KafkaConsumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Error("Failed to close Kafka consumer", err)
		return
	}
	c.logger.Info("Closed Kafka Consumer")
}
