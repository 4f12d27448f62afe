package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	EventDocumentReplaced = "document.replaced"
	EventItemAdded        = "item.added"
	EventItemUpdated      = "item.updated"
	EventItemDeleted      = "item.deleted"
)

// PortfolioEvent announces a successful write to one collection.
type PortfolioEvent struct {
	EventType  string    `json:"event_type"`
	Collection string    `json:"collection"`
	ItemID     string    `json:"item_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPortfolioEvent(eventType, collection, itemID string) PortfolioEvent {
	return PortfolioEvent{
		EventType:  eventType,
		Collection: collection,
		ItemID:     itemID,
		OccurredAt: time.Now().UTC(),
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, evt PortfolioEvent) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, PortfolioEvent) error { return nil }

// Notify publishes evt and only logs a failure; a lost event never fails the
// write that produced it.
func Notify(ctx context.Context, pub EventPublisher, log logger.Logger, evt PortfolioEvent) {
	if err := pub.Publish(ctx, evt); err != nil {
		log.Warn("Failed to publish portfolio event",
			zap.String("event_type", evt.EventType),
			zap.String("collection", evt.Collection),
			zap.String("item_id", evt.ItemID),
			zap.Error(err),
		)
	}
}
