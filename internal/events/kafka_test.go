package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err    error
	msgs   []kafka.Message
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishOrderEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	at := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	order := entities.Order{ID: "ORD-1", TrackingID: "TRK1", Status: entities.OrderConfirmed, Total: 55}
	event := entities.NewOrderEvent(entities.EventOrderStatusChanged, order, at)

	t.Run("OK", func(t *testing.T) {
		w := &fakeWriter{}
		p := newKafkaPublisher(logger, w)

		require.NoError(t, p.PublishOrderEvent(context.Background(), event))
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, "ORD-1", string(msg.Key))
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, entities.EventOrderStatusChanged, string(msg.Headers[0].Value))

		var got Event
		require.NoError(t, json.Unmarshal(msg.Value, &got))
		assert.Equal(t, Event{
			Type:       entities.EventOrderStatusChanged,
			OrderID:    "ORD-1",
			TrackingID: "TRK1",
			Status:     "confirmed",
			Total:      55,
			OccurredAt: at,
		}, got)

		require.NoError(t, p.Close())
		assert.True(t, w.closed)
	})

	t.Run("write error", func(t *testing.T) {
		brokerErr := errors.New("broker down")
		p := newKafkaPublisher(logger, &fakeWriter{err: brokerErr})

		assert.ErrorIs(t, p.PublishOrderEvent(context.Background(), event), brokerErr)
	})
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.PublishOrderEvent(context.Background(), entities.OrderEvent{}))
	assert.NoError(t, p.Close())
}
