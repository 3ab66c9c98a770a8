package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/catalog"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
)

const (
	DateLayout     = "2006-01-02"
	slotIDLayout   = DateLayout + "_15:04"
	firstSlotHour  = 9
	slotsPerDay    = 6
	slotLengthHour = 2
)

type SlotRepo interface {
	BookedCounts(ctx context.Context, slotIDs []string) (map[string]int, error)
	BookSlot(ctx context.Context, slotID string, capacity int) error
	ReleaseSlot(ctx context.Context, slotID string) error
}

type deliveryService struct {
	logger   *slog.Logger
	slots    SlotRepo
	capacity int
	now      func() time.Time
}

// NewDeliveryService serves the delivery option catalog and the time slot ledger.
// Each slot accepts capacity bookings.
func NewDeliveryService(logger *slog.Logger, slots SlotRepo, capacity int) *deliveryService {
	return &deliveryService{
		logger:   logger.With(slog.String("service", "delivery")),
		slots:    slots,
		capacity: capacity,
		now:      time.Now,
	}
}

func (s *deliveryService) DeliveryOptions() []entities.DeliveryOption {
	return catalog.DeliveryOptions()
}

func (s *deliveryService) DeliveryOption(id string) (entities.DeliveryOption, error) {
	return catalog.DeliveryOption(id)
}

// EstimateDeliveryFee is a flat rate per option. The address does not affect the fee
// yet; it is accepted so zone pricing can be added without changing callers.
func (s *deliveryService) EstimateDeliveryFee(_ *entities.Address, option entities.DeliveryOption) int {
	return option.Price
}

// GetTimeSlots lists the six two-hour slots between 09:00 and 21:00 on date. A slot is
// available while it has remaining capacity and has not started yet.
func (s *deliveryService) GetTimeSlots(ctx context.Context, date time.Time) ([]entities.TimeSlot, error) {
	slots := daySlots(date)

	ids := make([]string, len(slots))
	for i, sl := range slots {
		ids[i] = sl.ID
	}
	booked, err := s.slots.BookedCounts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get slot bookings: %w", err)
	}

	now := s.now()
	for i := range slots {
		remaining := max(s.capacity-booked[slots[i].ID], 0)
		slots[i].Remaining = remaining
		slots[i].Available = remaining > 0 && s.startOf(slots[i]).After(now)
	}
	return slots, nil
}

func (s *deliveryService) TimeSlot(ctx context.Context, slotID string) (entities.TimeSlot, error) {
	date, _, err := parseSlotID(slotID)
	if err != nil {
		return entities.TimeSlot{}, err
	}
	slots, err := s.GetTimeSlots(ctx, date)
	if err != nil {
		return entities.TimeSlot{}, err
	}
	for _, sl := range slots {
		if sl.ID == slotID {
			return sl, nil
		}
	}
	return entities.TimeSlot{}, entities.ErrTimeSlotUnavailable
}

func (s *deliveryService) BookTimeSlot(ctx context.Context, slotID string) error {
	sl, err := s.TimeSlot(ctx, slotID)
	if err != nil {
		return err
	}
	if !s.startOf(sl).After(s.now()) {
		return entities.ErrTimeSlotUnavailable
	}
	if err := s.slots.BookSlot(ctx, slotID, s.capacity); err != nil {
		return err
	}
	s.logger.Debug("time slot booked", slog.String("slot", slotID))
	return nil
}

func (s *deliveryService) ReleaseTimeSlot(ctx context.Context, slotID string) error {
	if err := s.slots.ReleaseSlot(ctx, slotID); err != nil {
		return err
	}
	s.logger.Debug("time slot released", slog.String("slot", slotID))
	return nil
}

func (s *deliveryService) startOf(sl entities.TimeSlot) time.Time {
	_, start, err := parseSlotID(sl.ID)
	if err != nil {
		return time.Time{}
	}
	return start
}

func daySlots(date time.Time) []entities.TimeSlot {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	slots := make([]entities.TimeSlot, 0, slotsPerDay)
	for i := range slotsPerDay {
		start := day.Add(time.Duration(firstSlotHour+i*slotLengthHour) * time.Hour)
		end := start.Add(slotLengthHour * time.Hour)
		slots = append(slots, entities.TimeSlot{
			ID:    start.Format(slotIDLayout),
			Date:  day,
			Start: start.Format("15:04"),
			End:   end.Format("15:04"),
			Label: start.Format("15:04") + " - " + end.Format("15:04"),
		})
	}
	return slots
}

func parseSlotID(id string) (time.Time, time.Time, error) {
	if !strings.Contains(id, "_") {
		return time.Time{}, time.Time{}, entities.ErrTimeSlotUnavailable
	}
	start, err := time.ParseInLocation(slotIDLayout, id, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %v", entities.ErrTimeSlotUnavailable, err)
	}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	return day, start, nil
}
