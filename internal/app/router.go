package app

import (
	"github.com/avc/linecoffee/internal/handlers"
	"github.com/avc/linecoffee/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	setupMiddleware(r, logger)
	setupRoutes(r, h, jwtManager, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.MetricsMiddleware())
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) {
	// Служебные эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Публичные эндпоинты
		r.Get("/products", h.catalog.ListProducts)
		r.Get("/products/{id}", h.catalog.GetProduct)
		r.Get("/reviews/{id}", h.catalog.GetReviews)

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(jwtManager, logger))

			r.Route("/orders", func(r chi.Router) {
				r.Post("/createOrder", h.orders.CreateOrder)
				r.Put("/completeOrder/{orderId}", h.orders.CompleteOrder)
				r.Get("/myOrders", h.orders.GetMyOrders)
				r.Get("/getAllOrders", h.orders.GetAllOrders)
				r.Get("/getOrderById/{id}", h.orders.GetOrder)
				r.Put("/updateOrder/{id}", h.orders.UpdateOrder)
				r.Delete("/cancelOrder/{id}", h.orders.CancelOrder)

				r.Group(func(r chi.Router) {
					r.Use(handlers.RequireAdmin(logger))
					r.Put("/adminUpdateOrderStatus/{id}", h.orders.UpdateStatus)
					r.Put("/adminUpdateOrder/{id}", h.orders.AdminUpdateOrder)
				})
			})

			r.Post("/coupons/validate", h.coupons.Validate)

			r.Get("/wallet", h.wallet.GetWallet)
			r.Get("/coins", h.wallet.GetCoins)
			r.Post("/coins/redeem", h.wallet.RedeemCoins)

			r.Post("/reviews", h.catalog.AddReview)
			r.Delete("/reviews/{id}", h.catalog.DeleteReview)

			r.Get("/wishlist", h.account.GetWishlist)
			r.Post("/wishlist/toggle", h.account.ToggleWishlist)

			r.Get("/notifications", h.account.GetNotifications)
			r.Put("/notifications/{id}/read", h.account.MarkNotificationRead)

			// Административные эндпоинты
			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireAdmin(logger))
				r.Post("/coupons", h.coupons.CreateCoupon)
				r.Get("/coupons", h.coupons.ListCoupons)
				r.Post("/wallet/{userId}/topUp", h.wallet.TopUp)
				r.Get("/payments", h.account.ListPayments)
			})
		})
	})
}
