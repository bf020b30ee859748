package handlers

import (
	"net/http"
	"strconv"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogHandler обслуживает каталог и отзывы
type CatalogHandler struct {
	productService domain.ProductService
	reviewService  domain.ReviewService
	logger         *zap.Logger
}

// NewCatalogHandler создает новый CatalogHandler
func NewCatalogHandler(productService domain.ProductService, reviewService domain.ReviewService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		productService: productService,
		reviewService:  reviewService,
		logger:         logger,
	}
}

type addReviewRequest struct {
	ProductID int64  `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// parseProductFilter читает фильтр каталога из query
func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	var filter domain.ProductFilter
	q := r.URL.Query()

	if v := q.Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.CategoryID = &id
	}

	for key, dst := range map[string]**decimal.Decimal{
		"minPrice": &filter.MinPrice,
		"maxPrice": &filter.MaxPrice,
	} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		*dst = &price
	}

	if v := q.Get("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return filter, domain.ErrInvalidInput
		}
		filter.Available = &available
	}

	return filter, nil
}

// ListProducts возвращает товары по фильтру
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, products)
}

// GetProduct возвращает товар
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}

// AddReview добавляет отзыв о купленном товаре
func (h *CatalogHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	var req addReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if req.ProductID <= 0 {
		writeError(w, r, h.logger, domain.ErrInvalidInput)
		return
	}

	reviews, err := h.reviewService.AddReview(r.Context(), identity, req.ProductID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, reviews)
}

// GetReviews возвращает отзывы о товаре
func (h *CatalogHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	reviews, err := h.reviewService.GetProductReviews(r.Context(), productID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, reviews)
}

// DeleteReview удаляет отзыв
func (h *CatalogHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		writeError(w, r, h.logger, domain.ErrUnauthorized)
		return
	}

	reviewID, err := idParam(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), identity, reviewID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}
