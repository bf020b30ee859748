package service

import (
	"context"
	"strings"

	"github.com/avc/linecoffee/internal/domain"
)

// ReviewService реализует domain.ReviewService
type ReviewService struct {
	reviewRepo  domain.ReviewRepository
	productRepo domain.ProductRepository
	orderRepo   domain.OrderRepository
}

// NewReviewService создает новый ReviewService
func NewReviewService(reviewRepo domain.ReviewRepository, productRepo domain.ProductRepository, orderRepo domain.OrderRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// AddReview добавляет отзыв о купленном товаре и пересчитывает рейтинг товара
func (s *ReviewService) AddReview(ctx context.Context, actor domain.Identity, productID int64, rating int, comment string) ([]*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		return nil, wrap(err, "review service: failed to get product %d", productID)
	}

	purchased, err := s.orderRepo.HasPurchased(ctx, actor.UserID, productID)
	if err != nil {
		return nil, wrap(err, "review service: failed to check purchase of product %d", productID)
	}
	if !purchased {
		return nil, domain.ErrNotPurchased
	}

	review := &domain.Review{
		UserID:    actor.UserID,
		ProductID: productID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return nil, wrap(err, "review service: failed to create review for product %d", productID)
	}

	if err := s.productRepo.RecalculateRating(ctx, productID); err != nil {
		return nil, wrap(err, "review service: failed to recalculate rating of product %d", productID)
	}

	return s.GetProductReviews(ctx, productID)
}

// GetProductReviews получает отзывы о товаре
func (s *ReviewService) GetProductReviews(ctx context.Context, productID int64) ([]*domain.Review, error) {
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return nil, wrap(err, "review service: failed to get reviews for product %d", productID)
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	return reviews, nil
}

// DeleteReview удаляет отзыв. Доступно только администратору.
func (s *ReviewService) DeleteReview(ctx context.Context, actor domain.Identity, reviewID int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	review, err := s.reviewRepo.GetReviewByID(ctx, reviewID)
	if err != nil {
		return wrap(err, "review service: failed to get review %d", reviewID)
	}

	if err := s.reviewRepo.DeleteReview(ctx, reviewID); err != nil {
		return wrap(err, "review service: failed to delete review %d", reviewID)
	}

	if err := s.productRepo.RecalculateRating(ctx, review.ProductID); err != nil {
		return wrap(err, "review service: failed to recalculate rating of product %d", review.ProductID)
	}

	return nil
}
