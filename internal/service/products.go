package service

import (
	"context"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
)

// ProductService реализует domain.ProductService
type ProductService struct {
	productRepo domain.ProductRepository
}

// NewProductService создает новый ProductService
func NewProductService(productRepo domain.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// ListProducts получает товары по фильтру
func (s *ProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domain.ErrInvalidInput
	}

	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("product service: failed to list products: %w", err)
	}
	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}

// GetProduct получает товар по ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, wrap(err, "product service: failed to get product %d", id)
	}

	return product, nil
}
