package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antshop/config"
	"antshop/cron"
	"antshop/database"
	sessionRepo "antshop/database/repository/session"
	"antshop/handlers"
	"antshop/middleware"
	"antshop/routes"
	"antshop/services/catalog"
	"antshop/services/checkout"
	"antshop/services/dialogue"
	"antshop/services/session"
	"antshop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	bg, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	store := initSessionStore(bg, logger)
	sessions := session.NewManager(store, logger.Named("session"))

	// Checkout bridge; nil leaves the engine in demo mode.
	var bridge checkout.Bridge
	if config.StripeConfigured() {
		bridge = checkout.NewStripeBridge(checkout.StripeOptions{
			APIKey:     config.AppConfig.StripeKey,
			Currency:   config.AppConfig.CheckoutCurrency,
			SuccessURL: config.AppConfig.CheckoutSuccessURL,
			CancelURL:  config.AppConfig.CheckoutCancelURL,
		}, logger.Named("checkout"))
		logger.Info("main: stripe checkout enabled")
	} else {
		logger.Info("main: no stripe key, checkout links point at the mock payment page")
	}

	opts := dialogue.Options{
		Locale:           config.AppConfig.DialogueLocale,
		MockCheckoutPath: config.AppConfig.MockCheckoutPath,
	}
	if config.AppConfig.OrderEventsEnabled {
		publisher := cron.NewOrderPublisher(logger.Named("orders"))
		defer publisher.Close()
		opts.Notifier = publisher

		worker, err := cron.InitOrderWorker(logger.Named("orders"))
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer worker.Shutdown()
	}

	engine, err := dialogue.NewEngine(catalog.Default(), bridge, opts, logger.Named("dialogue"))
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build dialogue engine: %v", err)
	}
	chatService := dialogue.NewService(sessions, engine)

	utils.StartHealthMonitor(bg, sessions, time.Minute)
	utils.LogHealth(utils.GetHealthStatus())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewChatHandler(chatService),
		handlers.NewHealthHandler(sessions),
	)
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.StaticDir)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// initSessionStore picks the backend named by SESSION_BACKEND.
func initSessionStore(ctx context.Context, logger *zap.Logger) session.Store {
	ttl := config.AppConfig.SessionTTL
	interval := config.AppConfig.SessionSweepInterval

	switch config.AppConfig.SessionBackend {
	case "redis":
		logger.Info("main: sessions stored in redis", zap.String("addr", config.AppConfig.RedisAddr))
		return session.NewRedisStore(utils.GetSessionCacheClient(), ttl)
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo, err := sessionRepo.NewMongoSessionRepo(database.Database())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize session repository: %v", err)
		}
		repo.StartSweeper(ctx, ttl, interval, logger.Named("session"))
		logger.Info("main: sessions stored in mongo", zap.String("database", config.AppConfig.DatabaseName))
		return repo
	case "", "memory":
		mem := session.NewMemoryStore()
		mem.StartSweeper(ctx, ttl, interval, logger.Named("session"))
		return mem
	default:
		logger.Sugar().Fatalf("main: unknown SESSION_BACKEND %q", config.AppConfig.SessionBackend)
		return nil
	}
}
