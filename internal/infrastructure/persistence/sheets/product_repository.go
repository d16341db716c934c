package sheets

import (
	"context"
	"fmt"

	"farm_hub/internal/domain/product"
)

type ProductRepository struct {
	store ValueStore
	rng   string
}

// NewProductRepository reads products from rng, which must exclude the header row.
func NewProductRepository(store ValueStore, rng string) *ProductRepository {
	return &ProductRepository{store: store, rng: rng}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]product.Product, error) {
	rows, err := r.store.ReadRange(ctx, r.rng)
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(rows))
	for i, row := range rows {
		products = append(products, product.FromRow(i, cellsToStrings(row)))
	}
	return products, nil
}

func cellsToStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		switch v := cell.(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = v
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
