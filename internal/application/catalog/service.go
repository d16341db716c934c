package catalog

import (
	"context"
	"fmt"

	"farm_hub/internal/domain/product"
	"farm_hub/internal/domain/repository"
)

type Service struct {
	repo repository.ProductRepository
}

func NewService(repo repository.ProductRepository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns the sellable products in sheet order. Ids keep the
// position of the row among all fetched rows, so they may have gaps.
func (s *Service) ListProducts(ctx context.Context) ([]product.Product, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}

	valid := make([]product.Product, 0, len(all))
	for _, p := range all {
		if p.IsValid() {
			valid = append(valid, p)
		}
	}
	return valid, nil
}
