package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"whitepepper-be/internal/cart"
	"whitepepper-be/internal/catalog"
	"whitepepper-be/internal/config"
	"whitepepper-be/internal/db"
	"whitepepper-be/internal/logger"
	"whitepepper-be/internal/order"
	"whitepepper-be/internal/payment"
	"whitepepper-be/internal/testimonial"
	"whitepepper-be/internal/transport"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var (
		catalogRepo     catalog.Repository
		cartRepo        cart.Repository
		orderRepo       order.Repository
		testimonialRepo testimonial.Repository
		conn            *sql.DB
	)

	switch cfg.StorageBackend {
	case "postgres":
		conn = db.InitDB(cfg)
		defer conn.Close()
		catalogRepo = catalog.NewPostgresRepository(conn)
		cartRepo = cart.NewPostgresRepository(conn)
		orderRepo = order.NewPostgresRepository(conn)
		testimonialRepo = testimonial.NewPostgresRepository(conn)
	default:
		catalogRepo = catalog.NewMemoryRepository()
		cartRepo = cart.NewMemoryRepository()
		orderRepo = order.NewMemoryRepository()
		testimonialRepo = testimonial.NewMemoryRepository()

		ctx := context.Background()
		if err := catalog.Seed(ctx, catalogRepo); err != nil {
			logger.L().Fatal("failed to seed catalog", zap.Error(err))
		}
		if err := testimonial.Seed(ctx, testimonialRepo); err != nil {
			logger.L().Fatal("failed to seed testimonials", zap.Error(err))
		}
	}

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	catalogSvc := catalog.NewService(catalogRepo)
	cartSvc := cart.NewService(cartRepo, catalogRepo)
	orderSvc := order.NewService(orderRepo, cartSvc, gateway, cfg.Currency)

	srv := transport.NewServer(catalogSvc, cartSvc, orderSvc, testimonialRepo)

	addr := ":" + cfg.AppPort
	go func() {
		logger.L().Info("starting http server", zap.String("addr", addr), zap.String("backend", cfg.StorageBackend))
		if err := srv.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("http server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	logger.L().Info("signal received, shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.L().Fatal("shutdown error", zap.Error(err))
	}
}
