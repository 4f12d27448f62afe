package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

// messageWriter is the part of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	PortfolioEventsWriter messageWriter
	logger                logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicPortfolioEvents,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producer successfully.")

	return &KafkaProducerClient{PortfolioEventsWriter: writer, logger: log}, nil
}

// Publish writes evt keyed by collection, so events of one collection stay
// ordered within a partition.
func (c *KafkaProducerClient) Publish(ctx context.Context, evt service.PortfolioEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(evt.Collection),
		Value: payload,
		Time:  evt.OccurredAt,
	}
	if err := c.PortfolioEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write portfolio event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		if err := c.PortfolioEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka Producer")
}
