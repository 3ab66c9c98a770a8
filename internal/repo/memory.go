package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
)

// MemoryAddressRepo keeps addresses in insertion order.
type MemoryAddressRepo struct {
	mu        sync.RWMutex
	addresses []entities.Address
}

func NewMemoryAddressRepo(seed []entities.Address) *MemoryAddressRepo {
	return &MemoryAddressRepo{addresses: slices.Clone(seed)}
}

func (r *MemoryAddressRepo) ListAddresses(_ context.Context) ([]entities.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.addresses), nil
}

func (r *MemoryAddressRepo) GetAddress(_ context.Context, id string) (entities.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		return r.addresses[i], nil
	}
	return entities.Address{}, entities.ErrAddressNotFound
}

// SaveAddress replaces an address in place or appends a new one.
func (r *MemoryAddressRepo) SaveAddress(_ context.Context, a entities.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(a.ID); i >= 0 {
		r.addresses[i] = a
		return nil
	}
	r.addresses = append(r.addresses, a)
	return nil
}

func (r *MemoryAddressRepo) DeleteAddress(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return entities.ErrAddressNotFound
	}
	r.addresses = slices.Delete(r.addresses, i, i+1)
	return nil
}

func (r *MemoryAddressRepo) index(id string) int {
	return slices.IndexFunc(r.addresses, func(a entities.Address) bool { return a.ID == id })
}

// MemoryOrderRepo is an append-only order log.
type MemoryOrderRepo struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{}
}

func (r *MemoryOrderRepo) SaveOrder(_ context.Context, o entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index(func(e entities.Order) bool { return e.ID == o.ID }) >= 0 {
		return nil
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *MemoryOrderRepo) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	return r.find(func(o entities.Order) bool { return o.ID == id })
}

func (r *MemoryOrderRepo) GetOrderByTrackingID(_ context.Context, trackingID string) (entities.Order, error) {
	return r.find(func(o entities.Order) bool { return o.TrackingID == trackingID })
}

func (r *MemoryOrderRepo) UpdateOrderStatus(_ context.Context, id string, status entities.OrderStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(func(o entities.Order) bool { return o.ID == id })
	if i < 0 {
		return entities.ErrOrderNotFound
	}
	if r.orders[i].Status == entities.OrderCancelled {
		return fmt.Errorf("%w: order %s is cancelled", entities.ErrInvalidStatus, id)
	}
	r.orders[i].Status = status
	r.orders[i].UpdatedAt = updatedAt
	return nil
}

func (r *MemoryOrderRepo) ListOrders(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.orders), nil
}

// LatestOrders returns up to count orders, newest first.
func (r *MemoryOrderRepo) LatestOrders(_ context.Context, count int) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, 0, min(count, len(r.orders)))
	for i := len(r.orders) - 1; i >= 0 && len(out) < count; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

func (r *MemoryOrderRepo) find(match func(entities.Order) bool) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(match); i >= 0 {
		return r.orders[i], nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (r *MemoryOrderRepo) index(match func(entities.Order) bool) int {
	return slices.IndexFunc(r.orders, match)
}

// MemorySlotRepo counts bookings per time slot id.
type MemorySlotRepo struct {
	mu     sync.Mutex
	booked map[string]int
}

func NewMemorySlotRepo() *MemorySlotRepo {
	return &MemorySlotRepo{booked: make(map[string]int)}
}

func (r *MemorySlotRepo) BookedCounts(_ context.Context, slotIDs []string) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(slotIDs))
	for _, id := range slotIDs {
		out[id] = r.booked[id]
	}
	return out, nil
}

func (r *MemorySlotRepo) BookSlot(_ context.Context, slotID string, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.booked[slotID] >= capacity {
		return entities.ErrTimeSlotUnavailable
	}
	r.booked[slotID]++
	return nil
}

func (r *MemorySlotRepo) ReleaseSlot(_ context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.booked[slotID] > 0 {
		r.booked[slotID]--
	}
	return nil
}
