package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

const ordersURL = "http://localhost:8080/orders"

type StatusUpdate struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

var statuses = []string{"confirmed", "preparing", "out_for_delivery", "delivered", "cancelled"}

type order struct {
	ID string `json:"id"`
}

func listOrderIDs(ctx context.Context) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ordersURL, nil)
	if err != nil {
		return nil
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("failed to list orders:", err)
		return nil
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		log.Println("failed to decode orders:", err)
		return nil
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	return ids
}

// randomUpdate moves a known order forward. Every tenth message targets an
// unknown order or carries a bad status so the DLQ path gets traffic too.
func randomUpdate(ids []string) StatusUpdate {
	upd := StatusUpdate{Status: statuses[rand.Intn(len(statuses))]}
	switch {
	case len(ids) == 0 || rand.Intn(10) == 0:
		upd.OrderID = "ORD-unknown"
	case rand.Intn(10) == 0:
		upd.OrderID = ids[rand.Intn(len(ids))]
		upd.Status = "lost"
	default:
		upd.OrderID = ids[rand.Intn(len(ids))]
	}
	return upd
}

func main() {
	writer := &kafka.Writer{
		Addr:     kafka.TCP("localhost:9092"),
		Topic:    "order-status",
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			upd := randomUpdate(listOrderIDs(ctx))
			data, _ := json.Marshal(upd)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(upd.OrderID), Value: data}); err != nil {
				log.Println("failed to write status update:", err)
				continue
			}
			log.Println("status update sent", upd.OrderID, upd.Status)
		case <-ctx.Done():
			return
		}
	}
}
