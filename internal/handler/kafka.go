package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/config"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	updater  OrderStatusUpdater
}

// NewKafkaHandler consumes order status updates from the courier side. Messages
// that cannot be applied go to "<topic>-dlq".
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, updater OrderStatusUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.StatusTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: utils.NewValidator(),
		updater:  updater,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		statusUpdatesInProgress.Inc()
		start := time.Now()

		// the service retries storage errors itself
		if err := h.handleStatusUpdate(ctx, m); err != nil {
			statusUpdatesFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err))

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				statusUpdatesInProgress.Dec()
				continue
			}
			statusUpdatesDLQ.Inc()
		} else {
			statusUpdatesProcessed.Inc()
		}

		statusUpdateDuration.Observe(time.Since(start).Seconds())
		statusUpdatesInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleStatusUpdate(ctx context.Context, m kafka.Message) error {
	var update StatusUpdate
	if err := json.Unmarshal(m.Value, &update); err != nil {
		return fmt.Errorf("failed to unmarshal status update: %w", err)
	}

	if err := h.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid status update: %w", err)
	}

	order, err := h.updater.UpdateOrderStatus(ctx, update.OrderID, entities.OrderStatus(update.Status))
	if err != nil {
		return err
	}
	if order.ID == "" {
		h.logger.Warn("status update for unknown order", slog.String("order_id", update.OrderID))
	}
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
