package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barbershop/config"
	"barbershop/database"
	"barbershop/database/repository"
	sessionRepo "barbershop/database/repository/session"
	"barbershop/database/store"
	"barbershop/handlers"
	"barbershop/middleware"
	"barbershop/routes"
	"barbershop/services/booking"
	"barbershop/services/catalog"
	"barbershop/services/notification"
	"barbershop/services/schedule"
	"barbershop/services/shop"
	"barbershop/services/user"
	"barbershop/services/workingday"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Cancelled on shutdown so open event streams and subscriptions end.
	rootCtx, stopAll := context.WithCancel(context.Background())
	defer stopAll()

	db, err := database.OpenStore(rootCtx)
	if err != nil {
		logger.Fatal("main: failed to open store", zap.Error(err))
	}
	logger.Info("main: store ready", zap.String("mode", string(db.Mode())))

	var sessions repository.SessionStore
	if client, err := utils.InitSessionCache(); err != nil {
		logger.Warn("main: Redis unavailable, keeping sessions in process", zap.Error(err))
		sessions = sessionRepo.NewMemorySessionStore(config.AppConfig.WizardTTL)
	} else {
		sessions = sessionRepo.NewRedisSessionStore(client, config.AppConfig.WizardTTL)
	}

	// repositories.
	repos := repository.New(db)
	cat := catalog.Default()

	// services.
	userService := user.NewUserService(repos.Users, notification.NewMailer(), db.Mode())
	bookingService := booking.NewBookingService(cat, repos.Reservations, sessions)
	shopService := shop.NewShopService(repos.Shop, sessions)
	workingDayService := workingday.NewWorkingDayService(repos.WorkingDays)

	board := schedule.NewBoard(cat, repos.Reservations)
	if err := board.Start(rootCtx); err != nil {
		logger.Fatal("main: failed to subscribe the schedule board", zap.Error(err))
	}

	health := utils.NewHealthMonitor(healthChecks(db))
	if err := health.Start("@every 1m"); err != nil {
		logger.Fatal("main: failed to schedule health checks", zap.Error(err))
	}

	handlerBundle := handlers.NewHandlerBundle(handlers.Services{
		Users:       userService,
		Catalog:     cat,
		Booking:     bookingService,
		Board:       board,
		Shop:        shopService,
		WorkingDays: workingDayService,
		Health:      health,
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(utils.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:        "0.0.0.0:" + port,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return rootCtx },
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

	stopAll()
	board.Stop()
	health.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		logger.Warn("main: failed to close store", zap.Error(err))
	}
	if client := utils.GetSessionCacheClient(); client != nil {
		_ = client.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// healthChecks pings the store and, when in use, the session cache.
func healthChecks(db store.Store) map[string]utils.HealthCheck {
	checks := map[string]utils.HealthCheck{
		"store": func(ctx context.Context) error {
			_, err := db.List(ctx, store.WorkingDays)
			return err
		},
	}
	if client := utils.GetSessionCacheClient(); client != nil {
		checks["sessions"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}
	return checks
}
