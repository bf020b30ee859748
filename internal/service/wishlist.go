package service

import (
	"context"

	"github.com/avc/linecoffee/internal/domain"
)

// WishlistService реализует domain.WishlistService
type WishlistService struct {
	wishlistRepo domain.WishlistRepository
}

// NewWishlistService создает новый WishlistService
func NewWishlistService(wishlistRepo domain.WishlistRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
	}
}

// GetWishlist получает товары из списка желаний
func (s *WishlistService) GetWishlist(ctx context.Context, userID int64) ([]*domain.Product, error) {
	products, err := s.wishlistRepo.GetWishlist(ctx, userID)
	if err != nil {
		return nil, wrap(err, "wishlist service: failed to get wishlist for user %d", userID)
	}
	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}

// Toggle добавляет товар в список желаний или удаляет его оттуда
func (s *WishlistService) Toggle(ctx context.Context, userID, productID int64) (bool, []*domain.Product, error) {
	if productID <= 0 {
		return false, nil, domain.ErrInvalidInput
	}

	added, err := s.wishlistRepo.Toggle(ctx, userID, productID)
	if err != nil {
		return false, nil, wrap(err, "wishlist service: failed to toggle product %d", productID)
	}

	products, err := s.GetWishlist(ctx, userID)
	if err != nil {
		return false, nil, err
	}

	return added, products, nil
}
