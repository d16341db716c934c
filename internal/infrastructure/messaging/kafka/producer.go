package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"

	"farm_hub/internal/config"
	"farm_hub/pkg/logger"
)

type OrderEventProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewOrderEventProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderEventProducer, error) {
	log.Info("creating kafka producer",
		logger.Any("brokers", cfg.Brokers),
		logger.String("topic", cfg.OrderTopic),
	)

	opts := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		// a single attempt per event, like every other notification channel
		kgo.RecordRetries(0),
		kgo.DisableIdempotentWrite(),
	}
	if cfg.HasSASL() {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: cfg.Username,
			Pass: cfg.Password,
		}.AsMechanism()))
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderEventProducer{
		client: client,
		topic:  cfg.OrderTopic,
		logger: log,
	}, nil
}

// PublishEvent produces one record synchronously.
func (p *OrderEventProducer) PublishEvent(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte("order_placed")},
			{Key: "content_type", Value: []byte("avro/binary")},
		},
	}

	results := p.client.ProduceSync(ctx, rec)
	if err := results.FirstErr(); err != nil {
		p.logger.Debug("kafka produce failed",
			logger.String("topic", p.topic),
			logger.Int("payload_bytes", len(payload)),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}
	return nil
}

func (p *OrderEventProducer) Close(ctx context.Context) error {
	p.logger.Info("closing kafka producer", logger.String("topic", p.topic))
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
