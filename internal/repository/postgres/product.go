package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, category_id, name, description, price, available, in_stock, average_rating, num_of_reviews, created_at`

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.Available, &p.InStock, &p.AverageRating, &p.NumOfReviews, &p.CreatedAt)
	return p, err
}

// GetProductByID получает товар по ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.ProductNotFoundError{ProductID: id}
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}

	return p, nil
}

// ListProducts получает товары по фильтру
func (r *ProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CategoryID != nil {
		add("category_id = $%d", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= $%d", *filter.MaxPrice)
	}
	if filter.Available != nil {
		add("available = $%d", *filter.Available)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, nil
}

// RecalculateRating пересчитывает средний рейтинг и количество отзывов товара
func (r *ProductRepository) RecalculateRating(ctx context.Context, productID int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products 
		 SET average_rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE product_id = $1), 0),
		     num_of_reviews = (SELECT COUNT(*) FROM reviews WHERE product_id = $1)
		 WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to recalculate rating for product %d: %w", productID, err)
	}

	if result.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{ProductID: productID}
	}

	return nil
}
