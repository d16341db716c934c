package sheets

import (
	"context"
	"fmt"

	domain "farm_hub/internal/domain/order"
)

type OrderRepository struct {
	store ValueStore
	rng   string
}

func NewOrderRepository(store ValueStore, rng string) *OrderRepository {
	return &OrderRepository{store: store, rng: rng}
}

// Append writes the order as one new row. Nothing deduplicates rows.
func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}
	return r.store.AppendRow(ctx, r.rng, order.Row())
}
