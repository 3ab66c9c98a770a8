package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pharmacy_service",
	Subsystem: "kafka_producer",
	Name:      "order_events_total",
	Help:      "Total number of order events written to Kafka.",
}, []string{"type", "result"})

// Event is the wire format of an order event.
type Event struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	Total      int       `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func EventFromEntity(e entities.OrderEvent) Event {
	return Event{
		Type:       e.Type,
		OrderID:    e.OrderID,
		TrackingID: e.TrackingID,
		Status:     string(e.Status),
		Total:      e.Total,
		OccurredAt: e.OccurredAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer messageWriter
}

// NewKafkaPublisher writes order events to the events topic keyed by order id, so
// all events of one order land in one partition.
func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
	})
}

func newKafkaPublisher(logger *slog.Logger, writer messageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: writer,
	}
}

func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	data, err := json.Marshal(EventFromEntity(event))
	if err != nil {
		eventsPublished.WithLabelValues(event.Type, "error").Inc()
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		eventsPublished.WithLabelValues(event.Type, "error").Inc()
		return fmt.Errorf("failed to write event: %w", err)
	}

	eventsPublished.WithLabelValues(event.Type, "ok").Inc()
	p.logger.Debug("order event published", slog.String("type", event.Type), slog.String("order_id", event.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops events. Used when Kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishOrderEvent(context.Context, entities.OrderEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
