// Package server boots the application: configuration, database, cache,
// storage, the dependency graph, and the HTTP listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/launchbase/launchbase/app/controllers"
	"github.com/launchbase/launchbase/app/repositories"
	"github.com/launchbase/launchbase/app/routes"
	"github.com/launchbase/launchbase/app/services"
	"github.com/launchbase/launchbase/config"
	"github.com/launchbase/launchbase/pkg/cache"
	"github.com/launchbase/launchbase/pkg/database"
	"github.com/launchbase/launchbase/pkg/logger"
	"github.com/launchbase/launchbase/pkg/router"
	"github.com/launchbase/launchbase/pkg/storage"
)

// BuildRouter assembles repositories, services, and controllers on top of
// the given store and disk, and mounts every route.
func BuildRouter(store database.Store, disk storage.Disk) *router.Router {
	userRepo := repositories.NewUserRepository(store)
	productRepo := repositories.NewProductRepository(store)
	orderRepo := repositories.NewOrderRepository(store)
	fileRepo := repositories.NewFileRepository(store)
	analyticsRepo := repositories.NewAnalyticsRepository(store)

	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo, userRepo, productRepo)
	fileSvc := services.NewFileService(fileRepo, disk)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo)

	r := router.New()
	routes.RegisterAPI(r, routes.Controllers{
		Users:     controllers.NewUserController(userSvc),
		Products:  controllers.NewProductController(productSvc),
		Orders:    controllers.NewOrderController(orderSvc),
		Files:     controllers.NewFileController(fileSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
	})
	return r
}

// Start runs the server until SIGINT/SIGTERM, then drains in-flight
// requests before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := logger.EnableMongoSink(uri, config.LogMongoDB(), "logs")
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			defer mh.Close()
		}
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := cache.Connect(ctx); err != nil {
		logger.Warn("running without cache", "error", err)
	}
	defer cache.Close()

	storage.Connect()
	registerListeners()

	r := BuildRouter(db.Store(), storage.Use(config.Get("STORAGE_DISK", "local")))

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
