package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/linecoffee/internal/domain"
	domainmocks "github.com/avc/linecoffee/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	customer = domain.Identity{UserID: 1, Role: domain.RoleUser}
	admin    = domain.Identity{UserID: 99, Role: domain.RoleAdmin}
)

// newRequest собирает запрос с пользователем и параметрами маршрута chi
func newRequest(method, target, body string, identity *domain.Identity, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))

	ctx := req.Context()
	if identity != nil {
		ctx = context.WithValue(ctx, IdentityKey, *identity)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp messageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp.Message
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		order := &domain.Order{ID: 7, UserID: 1, Status: domain.OrderStatusPending}
		mockService.EXPECT().CreateOrder(mock.Anything, customer, mock.MatchedBy(func(in domain.CreateOrderInput) bool {
			return len(in.Items) == 1 && in.Items[0].ProductID == 3 && in.Items[0].Quantity == 2 &&
				in.CouponCode == "SAVE10" && in.WalletAmount.Equal(decimal.NewFromInt(5))
		})).Return(order, nil).Once()

		body := `{"items":[{"product":3,"quantity":2}],"couponCode":" SAVE10 ","walletAmount":5}`
		w := httptest.NewRecorder()

		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", body, &customer, nil))
		assert.Equal(t, http.StatusCreated, w.Code)

		var result domain.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		assert.Equal(t, int64(7), result.ID)
	})

	t.Run("Empty order", func(t *testing.T) {
		mockService.EXPECT().CreateOrder(mock.Anything, customer, mock.Anything).Return(nil, domain.ErrEmptyOrder).Once()

		w := httptest.NewRecorder()
		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", `{"items":[]}`, &customer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, domain.ErrEmptyOrder.Error(), decodeMessage(t, w))
	})

	t.Run("Missing product names the id", func(t *testing.T) {
		mockService.EXPECT().CreateOrder(mock.Anything, customer, mock.Anything).
			Return(nil, &domain.ProductNotFoundError{ProductID: 42}).Once()

		w := httptest.NewRecorder()
		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", `{"items":[{"product":42,"quantity":1}]}`, &customer, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decodeMessage(t, w), "42")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", `{"items":`, &customer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unauthorized - no identity in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", `{}`, nil, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unexpected error is hidden", func(t *testing.T) {
		mockService.EXPECT().CreateOrder(mock.Anything, customer, mock.Anything).
			Return(nil, errors.New("order service: connection reset")).Once()

		w := httptest.NewRecorder()
		handler.CreateOrder(w, newRequest(http.MethodPost, "/api/orders/createOrder", `{"items":[{"product":1,"quantity":1}]}`, &customer, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal Server Error", decodeMessage(t, w))
	})
}

func TestOrdersHandler_CompleteOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	params := map[string]string{"orderId": "7"}

	t.Run("Success", func(t *testing.T) {
		order := &domain.Order{ID: 7, UserID: 1, PaymentMethod: domain.PaymentMethodCash}
		mockService.EXPECT().CompleteOrder(mock.Anything, customer, int64(7), mock.MatchedBy(func(in domain.CompleteOrderInput) bool {
			return in.PaymentMethod == domain.PaymentMethodCash && in.WalletAmount.IsZero()
		})).Return(order, nil).Once()

		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/7",
			`{"paymentMethod":"cash","walletAmount":0}`, &customer, params))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Message   string        `json:"message"`
			OrderInfo *domain.Order `json:"orderInfo"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Message)
		require.NotNil(t, resp.OrderInfo)
		assert.Equal(t, int64(7), resp.OrderInfo.ID)
	})

	t.Run("Wallet amount is required", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/7",
			`{"paymentMethod":"cash"}`, &customer, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid payment method", func(t *testing.T) {
		mockService.EXPECT().CompleteOrder(mock.Anything, customer, int64(7), mock.Anything).
			Return(nil, domain.ErrInvalidPaymentMethod).Once()

		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/7",
			`{"paymentMethod":"bitcoin","walletAmount":0}`, &customer, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mockService.EXPECT().CompleteOrder(mock.Anything, customer, int64(7), mock.Anything).
			Return(nil, domain.ErrInsufficientFunds).Once()

		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/7",
			`{"paymentMethod":"cash","walletAmount":1000}`, &customer, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Foreign order", func(t *testing.T) {
		mockService.EXPECT().CompleteOrder(mock.Anything, customer, int64(7), mock.Anything).
			Return(nil, domain.ErrForbidden).Once()

		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/7",
			`{"paymentMethod":"cash","walletAmount":0}`, &customer, params))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Invalid order id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.CompleteOrder(w, newRequest(http.MethodPut, "/api/orders/completeOrder/abc",
			`{"paymentMethod":"cash","walletAmount":0}`, &customer, map[string]string{"orderId": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrdersHandler_Reads(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("My orders", func(t *testing.T) {
		mockService.EXPECT().GetUserOrders(mock.Anything, int64(1)).
			Return([]*domain.Order{{ID: 2}, {ID: 1}}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetMyOrders(w, newRequest(http.MethodGet, "/api/orders/myOrders", "", &customer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var orders []*domain.Order
		require.NoError(t, json.NewDecoder(w.Body).Decode(&orders))
		assert.Len(t, orders, 2)
	})

	t.Run("All orders for admin", func(t *testing.T) {
		mockService.EXPECT().GetAllOrders(mock.Anything, admin).Return([]*domain.Order{}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetAllOrders(w, newRequest(http.MethodGet, "/api/orders/getAllOrders", "", &admin, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Order not found", func(t *testing.T) {
		mockService.EXPECT().GetOrder(mock.Anything, customer, int64(5)).Return(nil, domain.ErrOrderNotFound).Once()

		w := httptest.NewRecorder()
		handler.GetOrder(w, newRequest(http.MethodGet, "/api/orders/getOrderById/5", "", &customer, map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrdersHandler_UpdateOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	t.Run("Passes optional fields", func(t *testing.T) {
		mockService.EXPECT().UpdateOrder(mock.Anything, customer, int64(7), mock.MatchedBy(func(in domain.UpdateOrderInput) bool {
			return len(in.Items) == 1 && len(in.RemovedItems) == 1 && in.RemovedItems[0] == 2 &&
				in.WalletAmount == nil && in.Notes != nil && *in.Notes == "oat milk"
		})).Return(&domain.Order{ID: 7}, nil).Once()

		body := `{"items":[{"product":1,"quantity":3}],"removedItems":[2],"notes":"oat milk"}`
		w := httptest.NewRecorder()
		handler.UpdateOrder(w, newRequest(http.MethodPut, "/api/orders/updateOrder/7", body, &customer, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Remove coupon", func(t *testing.T) {
		mockService.EXPECT().UpdateOrder(mock.Anything, customer, int64(7), mock.MatchedBy(func(in domain.UpdateOrderInput) bool {
			return in.RemoveCoupon && in.CouponCode == ""
		})).Return(&domain.Order{ID: 7}, nil).Once()

		w := httptest.NewRecorder()
		handler.UpdateOrder(w, newRequest(http.MethodPut, "/api/orders/updateOrder/7", `{"removeCoupon":true}`, &customer, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Completed order", func(t *testing.T) {
		mockService.EXPECT().UpdateOrder(mock.Anything, customer, int64(7), mock.Anything).Return(nil, domain.ErrInvalidState).Once()

		w := httptest.NewRecorder()
		handler.UpdateOrder(w, newRequest(http.MethodPut, "/api/orders/updateOrder/7", `{}`, &customer, map[string]string{"id": "7"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrdersHandler_AdminEndpoints(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	params := map[string]string{"id": "7"}

	t.Run("Deliver", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.OrderStatusDelivered).
			Return(&domain.Order{ID: 7, Status: domain.OrderStatusDelivered, CoinsEarned: 10}, nil).Once()

		w := httptest.NewRecorder()
		handler.UpdateStatus(w, newRequest(http.MethodPut, "/api/orders/adminUpdateOrderStatus/7", `{"status":"delivered"}`, &admin, params))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Repeated delivery", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.OrderStatusDelivered).
			Return(nil, domain.ErrInvalidState).Once()

		w := httptest.NewRecorder()
		handler.UpdateStatus(w, newRequest(http.MethodPut, "/api/orders/adminUpdateOrderStatus/7", `{"status":"delivered"}`, &admin, params))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Admin edit", func(t *testing.T) {
		mockService.EXPECT().AdminUpdateOrder(mock.Anything, int64(7), mock.MatchedBy(func(in domain.AdminUpdateOrderInput) bool {
			return in.RemoveCoupon && in.Items == nil && in.WalletAmount != nil &&
				in.WalletAmount.Equal(decimal.NewFromInt(10)) && in.Status == domain.OrderStatusCanceled
		})).Return(&domain.Order{ID: 7}, nil).Once()

		body := `{"removeCoupon":true,"walletAmount":"10","status":"canceled"}`
		w := httptest.NewRecorder()
		handler.AdminUpdateOrder(w, newRequest(http.MethodPut, "/api/orders/adminUpdateOrder/7", body, &admin, params))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOrdersHandler_CancelOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewOrdersHandler(mockService, logger)

	params := map[string]string{"id": "7"}

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().CancelOrder(mock.Anything, customer, int64(7)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.CancelOrder(w, newRequest(http.MethodDelete, "/api/orders/cancelOrder/7", "", &customer, params))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Order canceled successfully", decodeMessage(t, w))
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().CancelOrder(mock.Anything, customer, int64(7)).Return(domain.ErrOrderNotFound).Once()

		w := httptest.NewRecorder()
		handler.CancelOrder(w, newRequest(http.MethodDelete, "/api/orders/cancelOrder/7", "", &customer, params))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCouponsHandler(t *testing.T) {
	mockService := domainmocks.NewCouponServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCouponsHandler(mockService, logger)

	t.Run("Validate", func(t *testing.T) {
		quote := &domain.CouponQuote{
			Coupon:   &domain.Coupon{ID: 3, Code: "SAVE10"},
			Discount: decimal.NewFromInt(13),
		}
		mockService.EXPECT().Validate(mock.Anything, "SAVE10", mock.MatchedBy(func(total decimal.Decimal) bool {
			return total.Equal(decimal.NewFromInt(130))
		})).Return(quote, nil).Once()

		w := httptest.NewRecorder()
		handler.Validate(w, newRequest(http.MethodPost, "/api/coupons/validate",
			`{"couponCode":"SAVE10","totalAmount":130}`, &customer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Validate used coupon", func(t *testing.T) {
		mockService.EXPECT().Validate(mock.Anything, "USED", mock.Anything).Return(nil, domain.ErrInvalidCoupon).Once()

		w := httptest.NewRecorder()
		handler.Validate(w, newRequest(http.MethodPost, "/api/coupons/validate",
			`{"couponCode":"USED","totalAmount":130}`, &customer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		mockService.EXPECT().CreateCoupon(mock.Anything, "SAVE10", domain.DiscountPercentage, mock.Anything).
			Return(nil, domain.ErrCouponExists).Once()

		w := httptest.NewRecorder()
		handler.CreateCoupon(w, newRequest(http.MethodPost, "/api/coupons",
			`{"couponCode":"SAVE10","discountKind":"percentage","discountValue":10}`, &admin, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWalletHandler(t *testing.T) {
	walletService := domainmocks.NewWalletServiceMock(t)
	coinService := domainmocks.NewCoinServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewWalletHandler(walletService, coinService, logger)

	t.Run("Wallet not found", func(t *testing.T) {
		walletService.EXPECT().GetWallet(mock.Anything, int64(1)).Return(nil, domain.ErrWalletNotFound).Once()

		w := httptest.NewRecorder()
		handler.GetWallet(w, newRequest(http.MethodGet, "/api/wallet", "", &customer, nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Top up", func(t *testing.T) {
		walletService.EXPECT().TopUp(mock.Anything, int64(5), mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("25.50"))
		})).Return(&domain.Wallet{UserID: 5, Balance: decimal.RequireFromString("25.50")}, nil).Once()

		w := httptest.NewRecorder()
		handler.TopUp(w, newRequest(http.MethodPost, "/api/wallet/5/topUp", `{"amount":25.50}`, &admin, map[string]string{"userId": "5"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Coins ledger", func(t *testing.T) {
		coinService.EXPECT().GetLedger(mock.Anything, int64(1)).
			Return(&domain.CoinLedger{UserID: 1, Coins: 12, Log: []*domain.CoinEntry{}}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetCoins(w, newRequest(http.MethodGet, "/api/coins", "", &customer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var ledger domain.CoinLedger
		require.NoError(t, json.NewDecoder(w.Body).Decode(&ledger))
		assert.Equal(t, int64(12), ledger.Coins)
	})

	t.Run("Redeem more than balance", func(t *testing.T) {
		coinService.EXPECT().Redeem(mock.Anything, int64(1), int64(50), "Free latte").
			Return(nil, domain.ErrInsufficientCoins).Once()

		w := httptest.NewRecorder()
		handler.RedeemCoins(w, newRequest(http.MethodPost, "/api/coins/redeem",
			`{"amount":50,"description":"Free latte"}`, &customer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler(t *testing.T) {
	productService := domainmocks.NewProductServiceMock(t)
	reviewService := domainmocks.NewReviewServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCatalogHandler(productService, reviewService, logger)

	t.Run("List with filter", func(t *testing.T) {
		productService.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
			return f.CategoryID != nil && *f.CategoryID == 2 &&
				f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(10)) &&
				f.MaxPrice == nil && f.Available != nil && *f.Available
		})).Return([]*domain.Product{{ID: 1, Name: "Latte"}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListProducts(w, newRequest(http.MethodGet, "/api/products?category=2&minPrice=10&available=true", "", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListProducts(w, newRequest(http.MethodGet, "/api/products?maxPrice=cheap", "", nil, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Review without purchase", func(t *testing.T) {
		reviewService.EXPECT().AddReview(mock.Anything, customer, int64(1), 5, "Great").
			Return(nil, domain.ErrNotPurchased).Once()

		w := httptest.NewRecorder()
		handler.AddReview(w, newRequest(http.MethodPost, "/api/reviews",
			`{"productId":1,"rating":5,"comment":"Great"}`, &customer, nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Duplicate review", func(t *testing.T) {
		reviewService.EXPECT().AddReview(mock.Anything, customer, int64(1), 4, "").
			Return(nil, domain.ErrAlreadyReviewed).Once()

		w := httptest.NewRecorder()
		handler.AddReview(w, newRequest(http.MethodPost, "/api/reviews", `{"productId":1,"rating":4}`, &customer, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Public reviews", func(t *testing.T) {
		reviewService.EXPECT().GetProductReviews(mock.Anything, int64(1)).
			Return([]*domain.Review{{ID: 1, Rating: 5}}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetReviews(w, newRequest(http.MethodGet, "/api/reviews/1", "", nil, map[string]string{"id": "1"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete review as user", func(t *testing.T) {
		reviewService.EXPECT().DeleteReview(mock.Anything, customer, int64(4)).Return(domain.ErrForbidden).Once()

		w := httptest.NewRecorder()
		handler.DeleteReview(w, newRequest(http.MethodDelete, "/api/reviews/4", "", &customer, map[string]string{"id": "4"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAccountHandler(t *testing.T) {
	wishlistService := domainmocks.NewWishlistServiceMock(t)
	notificationService := domainmocks.NewNotificationServiceMock(t)
	paymentService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAccountHandler(wishlistService, notificationService, paymentService, logger)

	t.Run("Toggle wishlist", func(t *testing.T) {
		wishlistService.EXPECT().Toggle(mock.Anything, int64(1), int64(3)).
			Return(true, []*domain.Product{{ID: 3}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ToggleWishlist(w, newRequest(http.MethodPost, "/api/wishlist/toggle", `{"productId":3}`, &customer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Added    bool              `json:"added"`
			Wishlist []*domain.Product `json:"wishlist"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Added)
		assert.Len(t, resp.Wishlist, 1)
	})

	t.Run("Mark foreign notification", func(t *testing.T) {
		notificationService.EXPECT().MarkRead(mock.Anything, int64(1), int64(9)).Return(domain.ErrNotificationNotFound).Once()

		w := httptest.NewRecorder()
		handler.MarkNotificationRead(w, newRequest(http.MethodPut, "/api/notifications/9/read", "", &customer, map[string]string{"id": "9"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Payments", func(t *testing.T) {
		paymentService.EXPECT().ListPayments(mock.Anything).Return([]*domain.Payment{{ID: 1, OrderID: 7}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListPayments(w, newRequest(http.MethodGet, "/api/payments", "", &admin, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
