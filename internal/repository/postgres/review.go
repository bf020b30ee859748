package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ReviewRepository реализует domain.ReviewRepository
type ReviewRepository struct {
	db DBTX
}

// NewReviewRepository создает новый ReviewRepository
func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview сохраняет отзыв; повторный отзыв того же пользователя отклоняется
func (r *ReviewRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (user_id, product_id, rating, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		review.UserID, review.ProductID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyReviewed
		}
		if isForeignKeyViolation(err) {
			return &domain.ProductNotFoundError{ProductID: review.ProductID}
		}
		return fmt.Errorf("repository: failed to create review for product %d: %w", review.ProductID, err)
	}

	return nil
}

// GetReviewByID получает отзыв по ID
func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int64) (*domain.Review, error) {
	review := &domain.Review{}

	err := r.db.QueryRow(ctx,
		`SELECT r.id, r.user_id, u.name, r.product_id, r.rating, r.comment, r.created_at
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.id = $1`,
		id,
	).Scan(&review.ID, &review.UserID, &review.UserName, &review.ProductID, &review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("repository: failed to get review %d: %w", id, err)
	}

	return review, nil
}

// GetReviewsByProductID получает отзывы товара с именами авторов
func (r *ReviewRepository) GetReviewsByProductID(ctx context.Context, productID int64) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.user_id, u.name, r.product_id, r.rating, r.comment, r.created_at
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.product_id = $1
		 ORDER BY r.created_at DESC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get reviews for product %d: %w", productID, err)
	}
	defer rows.Close()

	reviews := []*domain.Review{}
	for rows.Next() {
		review := &domain.Review{}
		err := rows.Scan(&review.ID, &review.UserID, &review.UserName, &review.ProductID, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating reviews: %w", err)
	}

	return reviews, nil
}

// DeleteReview удаляет отзыв
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}

	return nil
}
