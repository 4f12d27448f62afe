package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestPublish_KeysByCollection(t *testing.T) {
	w := &recordingWriter{}
	client := &KafkaProducerClient{PortfolioEventsWriter: w, logger: logger.NewNopLogger()}

	evt := service.NewPortfolioEvent(service.EventItemAdded, "projects", "abc")
	require.NoError(t, client.Publish(context.Background(), evt))

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "projects", string(w.msgs[0].Key))

	var got service.PortfolioEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, service.EventItemAdded, got.EventType)
	assert.Equal(t, "abc", got.ItemID)
}

func TestPublish_WrapsWriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	client := &KafkaProducerClient{PortfolioEventsWriter: w, logger: logger.NewNopLogger()}

	err := client.Publish(context.Background(), service.NewPortfolioEvent(service.EventDocumentReplaced, "skills", ""))
	assert.ErrorContains(t, err, "broker down")
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}
