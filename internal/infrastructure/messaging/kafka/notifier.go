package kafka

import (
	"context"
	"fmt"

	domain "farm_hub/internal/domain/order"
	"farm_hub/internal/infrastructure/encoding/avro"
)

type Publisher interface {
	PublishEvent(ctx context.Context, key string, payload []byte) error
}

// EventNotifier publishes an Avro OrderPlaced event per order, keyed by order id.
type EventNotifier struct {
	publisher Publisher
	encoder   *avro.Encoder
	shop      string
}

func NewEventNotifier(publisher Publisher, encoder *avro.Encoder, shop string) *EventNotifier {
	return &EventNotifier{publisher: publisher, encoder: encoder, shop: shop}
}

func (n *EventNotifier) Name() string { return "kafka" }

func (n *EventNotifier) NotifyOrderPlaced(ctx context.Context, o domain.Notification) error {
	payload, err := n.encoder.EncodeNative(avro.ToOrderPlacedNative(n.shop, o))
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}
	return n.publisher.PublishEvent(ctx, o.OrderID, payload)
}
