package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/discool/storefront/docs"
	"github.com/discool/storefront/internal/api/handlers"
	"github.com/discool/storefront/internal/api/middleware"
	"github.com/discool/storefront/internal/cache"
	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/health"
	"github.com/discool/storefront/internal/metrics"
	repository "github.com/discool/storefront/internal/repositories"
	service "github.com/discool/storefront/internal/services"
	"github.com/discool/storefront/internal/telemetry"
	"github.com/discool/storefront/pkg/sendGrid"
	"github.com/discool/storefront/pkg/stripe"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
)

//	@title						Discool Storefront API
//	@version					1.0
//	@description				Cart and checkout for the Discool vinyl store. Orchestrates the store's REST backend.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	SessionAuth
//	@in							header
//	@name						X-Session-ID

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Prices travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Load config
	cfg := config.MustLoad()

	shutdownTracing, err := telemetry.InitTracing(context.Background(), cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Coupon table
	coupons, closeCoupons, err := couponRepository(cfg)
	if err != nil {
		slog.Error("❌ Error loading coupons", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeCoupons()

	// Storefront backend
	client := repository.NewClient(cfg.Backend)
	products := repository.NewProductRepo(client)
	categories := repository.NewCategoryRepo(client)
	addresses := repository.NewAddressRepo(client)
	carts := repository.NewBackendCartRepo(client)
	orders := repository.NewOrderRepository(client)
	payments := repository.NewPaymentRepository(client)
	auth := repository.NewAuthRepo(client)
	sessions := repository.NewSessionRepo(redisCache, cfg.Session.TTL)
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	var stripeClient stripe.Client
	if cfg.Stripe.Enabled {
		stripeClient = stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	}

	var emailService sendGrid.EmailService
	if cfg.SendGrid.Enabled {
		emailService = sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	jwtKey := []byte(cfg.Security.JWTKey)

	stockVerifier := service.NewStockVerifier(products, cfg.Backend.StockConcurrency)
	couponValidator := service.NewCouponValidator(coupons)
	notificationService := service.NewNotificationService(emailService)
	orderAssembler := service.NewOrderAssembler(stockVerifier, carts, orders, notificationService)

	catalogHandler := handlers.NewCatalogHandler(service.NewCatalogService(products, categories, redisCache, cfg.Cache.CategoryTTL))
	cartHandler := handlers.NewCartHandler(service.NewCartService(products))
	checkoutHandler := handlers.NewCheckoutHandler(service.NewCheckoutService(
		stockVerifier, service.NewShippingQuoter(cfg.Shipping), couponValidator, addresses, orderAssembler,
	))
	paymentHandler := handlers.NewPaymentHandler(service.NewPaymentService(payments, stripeClient, redisCache, service.PaymentConfig{
		Currency:     cfg.Stripe.Currency,
		ServiceToken: cfg.Backend.ServiceToken,
	}))
	authHandler := handlers.NewAuthHandler(service.NewAuthService(auth, rateLimiter, jwtKey))
	addressHandler := handlers.NewAddressHandler(service.NewAddressService(addresses))
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(orders))

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{
		Backend: func(ctx context.Context) error {
			_, err := categories.ListPublicCategories(ctx)
			return err
		},
	})
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionMiddleware := middleware.NewSessionMiddleware(sessions, cfg.Session)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	// shopper routes carry a session; account routes also need a login
	open := func(h http.HandlerFunc) http.Handler { return sessionMiddleware.Handle(h) }
	private := func(h http.HandlerFunc) http.Handler { return sessionMiddleware.Handle(authMiddleware.Authenticate(h)) }
	admin := func(h http.HandlerFunc) http.Handler { return sessionMiddleware.Handle(authMiddleware.RequireAdmin(h)) }

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.Handle("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.Handle("GET /api/v1/products/filter", catalogHandler.FilterProducts())
	routerMux.Handle("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.Handle("GET /api/v1/categories", catalogHandler.ListCategories())

	routerMux.Handle("GET /api/v1/cart", open(cartHandler.GetCart()))
	routerMux.Handle("POST /api/v1/cart/items", open(cartHandler.AddItem()))
	routerMux.Handle("PUT /api/v1/cart/items/{productId}", open(cartHandler.UpdateQuantity()))
	routerMux.Handle("DELETE /api/v1/cart/items/{productId}", open(cartHandler.RemoveItem()))
	routerMux.Handle("DELETE /api/v1/cart", open(cartHandler.ClearCart()))

	routerMux.Handle("GET /api/v1/checkout", open(checkoutHandler.View()))
	routerMux.Handle("POST /api/v1/checkout/proceed", open(checkoutHandler.Proceed()))
	routerMux.Handle("POST /api/v1/checkout/back", open(checkoutHandler.Back()))
	routerMux.Handle("GET /api/v1/checkout/stock", open(checkoutHandler.VerifyStock()))
	routerMux.Handle("POST /api/v1/checkout/shipping/quote", open(checkoutHandler.QuoteShipping()))
	routerMux.Handle("PUT /api/v1/checkout/contact", private(checkoutHandler.UpdateContact()))
	routerMux.Handle("PUT /api/v1/checkout/address", private(checkoutHandler.SelectAddress()))
	routerMux.Handle("PUT /api/v1/checkout/shipping", private(checkoutHandler.SelectShipping()))
	routerMux.Handle("POST /api/v1/checkout/coupon", open(checkoutHandler.ApplyCoupon()))
	routerMux.Handle("DELETE /api/v1/checkout/coupon", open(checkoutHandler.RemoveCoupon()))
	routerMux.Handle("POST /api/v1/checkout/order", open(checkoutHandler.PlaceOrder()))
	routerMux.Handle("POST /api/v1/checkout/payment", private(paymentHandler.StartPayment()))
	routerMux.Handle("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	routerMux.Handle("POST /api/v1/auth/login", open(authHandler.Login()))
	routerMux.Handle("POST /api/v1/auth/register", authHandler.Register())
	routerMux.Handle("POST /api/v1/auth/logout", open(authHandler.Logout()))
	routerMux.Handle("POST /api/v1/auth/password/request", authHandler.RequestPasswordReset())
	routerMux.Handle("POST /api/v1/auth/password/validate", authHandler.ValidateResetCode())
	routerMux.Handle("POST /api/v1/auth/password/confirm", authHandler.ConfirmPasswordReset())

	routerMux.Handle("GET /api/v1/addresses", private(addressHandler.ListAddresses()))
	routerMux.Handle("POST /api/v1/addresses", private(addressHandler.CreateAddress()))
	routerMux.Handle("GET /api/v1/addresses/{id}", private(addressHandler.GetAddress()))
	routerMux.Handle("PATCH /api/v1/addresses/{id}", private(addressHandler.UpdateAddress()))
	routerMux.Handle("DELETE /api/v1/addresses/{id}", private(addressHandler.DeleteAddress()))
	routerMux.Handle("PATCH /api/v1/addresses/{id}/default", private(addressHandler.SetDefaultAddress()))

	routerMux.Handle("GET /api/v1/orders", private(orderHandler.ListOrders()))
	routerMux.Handle("GET /api/v1/orders/{id}", private(orderHandler.GetOrder()))
	routerMux.Handle("POST /api/v1/orders/{id}/cancel", private(orderHandler.CancelOrder()))

	routerMux.Handle("POST /api/v1/admin/products", admin(catalogHandler.CreateProduct()))
	routerMux.Handle("PATCH /api/v1/admin/products/{id}", admin(catalogHandler.UpdateProduct()))
	routerMux.Handle("DELETE /api/v1/admin/products/{id}", admin(catalogHandler.DeleteProduct()))
	routerMux.Handle("POST /api/v1/admin/categories", admin(catalogHandler.CreateCategory()))
	routerMux.Handle("PATCH /api/v1/admin/categories/{id}", admin(catalogHandler.UpdateCategory()))
	routerMux.Handle("DELETE /api/v1/admin/categories/{id}", admin(catalogHandler.DeleteCategory()))

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(routerMux)(handler)
	handler = telemetry.Middleware(cfg.Otel.ServiceName, routerMux)(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Failed to flush traces", slog.String("error", err.Error()))
	}
}

// couponRepository picks the coupon source. The returned func releases the Postgres pool when one was opened.
func couponRepository(cfg *config.Config) (repository.CouponRepository, func(), error) {

	if cfg.Coupons.Source != "postgres" {
		repo, err := repository.NewStaticCouponRepo(cfg.Coupons.Static)
		return repo, func() {}, err
	}

	if !cfg.Database.Enabled {
		slog.Warn("Coupon source is postgres but the database is disabled, using the static table")
		repo, err := repository.NewStaticCouponRepo(config.DefaultCoupons())
		return repo, func() {}, err
	}

	repos, err := repository.NewPostgres(cfg)
	if err != nil {
		return nil, nil, err
	}

	return repository.NewCouponRepo(repos.DB), func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}, nil
}
