package metrics

import (
	"context"

	"github.com/voidlabz/lootvault/internal/domain"
	"github.com/voidlabz/lootvault/internal/event"
	"github.com/voidlabz/lootvault/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CollectibleCreated,
		event.CollectibleListed,
		event.CollectiblePurchased,
		event.CollectionCleared,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.CollectibleCreated:
		payload, err := event.DecodePayload[domain.CollectibleCreatedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		tier := TierPaid
		if payload.FreeGeneration {
			tier = TierFree
		}
		Generations.WithLabelValues(tier, payload.Theme).Inc()
		if !payload.Confirmed {
			UnconfirmedMints.Inc()
		}

	case event.CollectibleListed:
		payload, err := event.DecodePayload[domain.CollectibleListedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CollectiblesListed.Inc()
		ListingVolume.Add(float64(payload.Price))

	case event.CollectiblePurchased:
		CollectiblesPurchased.Inc()

	case event.CollectionCleared:
		CollectionsCleared.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
