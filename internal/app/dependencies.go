package app

import (
	"fmt"
	"io"

	"github.com/avc/linecoffee/internal/config"
	"github.com/avc/linecoffee/internal/domain"
	"github.com/avc/linecoffee/internal/handlers"
	"github.com/avc/linecoffee/internal/repository/postgres"
	"github.com/avc/linecoffee/internal/service"
	"github.com/avc/linecoffee/internal/utils/jwt"
	"github.com/avc/linecoffee/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user         domain.UserRepository
	product      domain.ProductRepository
	order        domain.OrderRepository
	coupon       domain.CouponRepository
	wallet       domain.WalletRepository
	coin         domain.CoinRepository
	payment      domain.PaymentRepository
	notification domain.NotificationRepository
	review       domain.ReviewRepository
	wishlist     domain.WishlistRepository
}

// services содержит все сервисы приложения
type services struct {
	order        domain.OrderService
	coupon       domain.CouponService
	wallet       domain.WalletService
	coin         domain.CoinService
	product      domain.ProductService
	review       domain.ReviewService
	wishlist     domain.WishlistService
	notification domain.NotificationService
	payment      domain.PaymentService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	orders  *handlers.OrdersHandler
	coupons *handlers.CouponsHandler
	wallet  *handlers.WalletHandler
	catalog *handlers.CatalogHandler
	account *handlers.AccountHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	// alertCloser освобождает ресурсы канала сообщений после остановки пула
	alertCloser io.Closer
}

// newAlertSender выбирает канал доставки сообщений оператору
func newAlertSender(cfg *config.Config, logger *zap.Logger) (domain.AlertSender, io.Closer, error) {
	switch cfg.AlertChannel {
	case config.AlertChannelWhatsApp:
		sender := service.NewWhatsAppSender(service.WhatsAppConfig{
			BaseURL:    cfg.WhatsApp.APIURL,
			AccountSID: cfg.WhatsApp.AccountSID,
			AuthToken:  cfg.WhatsApp.AuthToken,
			From:       cfg.WhatsApp.From,
			To:         cfg.WhatsApp.To,
		})
		return sender, nil, nil
	case config.AlertChannelKafka:
		sender := service.NewKafkaAlertSender(service.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAlertTopic))
		return sender, sender, nil
	case config.AlertChannelLog, "":
		return service.NewLogAlertSender(logger), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown alert channel %q", cfg.AlertChannel)
	}
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	repos := &repositories{
		user:         postgres.NewUserRepository(dbPool),
		product:      postgres.NewProductRepository(dbPool),
		order:        postgres.NewOrderRepository(dbPool),
		coupon:       postgres.NewCouponRepository(dbPool),
		wallet:       postgres.NewWalletRepository(dbPool),
		coin:         postgres.NewCoinRepository(dbPool),
		payment:      postgres.NewPaymentRepository(dbPool),
		notification: postgres.NewNotificationRepository(dbPool),
		review:       postgres.NewReviewRepository(dbPool),
		wishlist:     postgres.NewWishlistRepository(dbPool),
	}

	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	sender, alertCloser, err := newAlertSender(cfg, logger)
	if err != nil {
		return nil, err
	}
	workerPool := worker.NewPool(sender, cfg.AlertWorkers, cfg.AlertQueueSize, logger)

	notificationService := service.NewNotificationService(repos.notification)

	svcs := &services{
		order: service.NewOrderService(service.OrderDeps{
			Orders:         repos.order,
			Users:          repos.user,
			Products:       repos.product,
			Coupons:        repos.coupon,
			Wallets:        repos.wallet,
			Coins:          repos.coin,
			Payments:       repos.payment,
			Notifier:       notificationService,
			Alerts:         workerPool,
			Logger:         logger,
			CoinsPerAmount: cfg.CoinsPerAmount,
		}),
		coupon:       service.NewCouponService(repos.coupon),
		wallet:       service.NewWalletService(repos.wallet),
		coin:         service.NewCoinService(repos.coin),
		product:      service.NewProductService(repos.product),
		review:       service.NewReviewService(repos.review, repos.product, repos.order),
		wishlist:     service.NewWishlistService(repos.wishlist),
		notification: notificationService,
		payment:      service.NewPaymentService(repos.payment),
	}

	hdlrs := &handlerSet{
		orders:  handlers.NewOrdersHandler(svcs.order, logger),
		coupons: handlers.NewCouponsHandler(svcs.coupon, logger),
		wallet:  handlers.NewWalletHandler(svcs.wallet, svcs.coin, logger),
		catalog: handlers.NewCatalogHandler(svcs.product, svcs.review, logger),
		account: handlers.NewAccountHandler(svcs.wishlist, svcs.notification, svcs.payment, logger),
		health:  handlers.NewHealthHandler(dbPool, workerPool, logger),
	}

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwtManager,
		workerPool:  workerPool,
		alertCloser: alertCloser,
	}, nil
}
