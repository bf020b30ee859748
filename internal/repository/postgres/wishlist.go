package postgres

import (
	"context"
	"fmt"

	"github.com/avc/linecoffee/internal/domain"
)

// WishlistRepository реализует domain.WishlistRepository
type WishlistRepository struct {
	db DBTX
}

// NewWishlistRepository создает новый WishlistRepository
func NewWishlistRepository(db DBTX) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Toggle удаляет товар из списка желаний, если он там есть, иначе добавляет.
// Возвращает true, если товар был добавлен.
func (r *WishlistRepository) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return false, fmt.Errorf("repository: failed to remove product %d from wishlist: %w", productID, err)
	}

	if result.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO wishlist_items (user_id, product_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		userID, productID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, &domain.ProductNotFoundError{ProductID: productID}
		}
		return false, fmt.Errorf("repository: failed to add product %d to wishlist: %w", productID, err)
	}

	return true, nil
}

// GetWishlist получает товары из списка желаний пользователя
func (r *WishlistRepository) GetWishlist(ctx context.Context, userID int64) ([]*domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.category_id, p.name, p.description, p.price, p.available, p.in_stock,
		        p.average_rating, p.num_of_reviews, p.created_at
		 FROM wishlist_items w
		 JOIN products p ON p.id = w.product_id
		 WHERE w.user_id = $1
		 ORDER BY w.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get wishlist for user %d: %w", userID, err)
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}

	return products, nil
}
