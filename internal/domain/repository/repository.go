package repository

import (
	"context"

	"farm_hub/internal/domain/order"
	"farm_hub/internal/domain/product"
)

// ProductRepository returns every data row of the catalog, valid or not,
// in store order.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]product.Product, error)
}

// OrderRepository appends orders. Orders are never updated or deleted here.
type OrderRepository interface {
	Append(ctx context.Context, order *order.Order) error
}
