package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/pharmacy-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/pharmacy-delivery-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewPostgresRepo stores orders and time slot bookings. Both satisfy the service
// repository interfaces and join transactions started by trm.
func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	row, err := OrderFromEntity(o)
	if err != nil {
		return err
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			row.ID, row.TrackingID, row.Address, row.DeliveryOption, row.TimeSlot,
			row.PaymentMethod, row.Subtotal, row.DeliveryFee, row.Total,
			row.Contactless, row.Notes, row.Status, row.CreatedAt, row.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(itemColumns...).
		Suffix("ON CONFLICT (order_id, product_id) DO NOTHING")
	for _, it := range o.Items {
		q = q.Values(o.ID, it.ProductID, it.Name.Ar, it.Name.En, it.Price, nullString(it.Image), it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByTrackingID(ctx context.Context, trackingID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"tracking_id": trackingID})
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, updatedAt time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"status": string(entities.OrderCancelled)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n > 0 {
		return nil
	}

	// nothing matched: either the order is gone or another instance cancelled it
	if _, err := r.GetOrderByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: order %s is cancelled", entities.ErrInvalidStatus, id)
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at ASC").
		MustSql()
	return r.selectOrders(ctx, query, args...)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()
	return r.selectOrders(ctx, query, args...)
}

func (r *postgresRepo) BookedCounts(ctx context.Context, slotIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(slotIDs))
	for _, id := range slotIDs {
		out[id] = 0
	}
	if len(slotIDs) == 0 {
		return out, nil
	}

	query, args := r.qb.Select("slot_id", "booked").
		From("slot_bookings").
		Where(sq.Eq{"slot_id": slotIDs}).
		MustSql()

	var rows []struct {
		SlotID string `db:"slot_id"`
		Booked int    `db:"booked"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select slot bookings: %w", err)
	}
	for _, row := range rows {
		out[row.SlotID] = row.Booked
	}
	return out, nil
}

// BookSlot increments the booking counter unless it already reached capacity.
func (r *postgresRepo) BookSlot(ctx context.Context, slotID string, capacity int) error {
	if capacity <= 0 {
		return entities.ErrTimeSlotUnavailable
	}

	query, args := r.qb.Insert("slot_bookings").
		Columns("slot_id", "booked").
		Values(slotID, 1).
		Suffix("ON CONFLICT (slot_id) DO UPDATE SET booked = slot_bookings.booked + 1 WHERE slot_bookings.booked < ?", capacity).
		Suffix("RETURNING booked").
		MustSql()

	var booked int
	err := r.getContext(ctx, &booked, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrTimeSlotUnavailable
	}
	if err != nil {
		return fmt.Errorf("failed to book slot: %w", err)
	}
	return nil
}

func (r *postgresRepo) ReleaseSlot(ctx context.Context, slotID string) error {
	query, args := r.qb.Update("slot_bookings").
		Set("booked", sq.Expr("booked - 1")).
		Where(sq.Eq{"slot_id": slotID}).
		Where(sq.Gt{"booked": 0}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	return nil
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.selectItems(ctx, order.ID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items[order.ID])
}

func (r *postgresRepo) selectOrders(ctx context.Context, query string, args ...any) ([]entities.Order, error) {
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.selectItems(ctx, ids...)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		order, err := OrderToEntity(o, items[o.ID])
		if err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *postgresRepo) selectItems(ctx context.Context, orderIDs ...string) (map[string][]Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("position ASC").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}

	byOrder := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	return byOrder, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
