package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL  = "http://localhost:8080"
	trackURL = baseURL + "/orders/track/"
)

type order struct {
	TrackingID string `json:"tracking_id"`
}

func main() {
	ids := trackingIDs()
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(ids) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func trackingIDs() []string {
	resp, err := http.Get(baseURL + "/orders")
	if err != nil {
		fmt.Println("failed to list orders:", err)
		return nil
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		fmt.Println("failed to decode orders:", err)
		return nil
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.TrackingID
	}
	return ids
}

func randomID(length int) string {
	chars := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

// doRequest mostly hits known tracking ids so the cache hit path dominates.
func doRequest(ids []string) {
	id := "TRK" + randomID(10)
	if len(ids) > 0 && rand.Intn(5) != 0 {
		id = ids[rand.Intn(len(ids))]
	}

	url := trackURL + id + "?lang=en"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
