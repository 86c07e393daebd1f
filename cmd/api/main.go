package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"bookingservice/internal/config"
	"bookingservice/internal/database"
	"bookingservice/internal/middleware"
	"bookingservice/internal/modules/blocking"
	"bookingservice/internal/modules/booking"
	"bookingservice/internal/modules/property"
	"bookingservice/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	blockingRepo := repository.NewBlockingRepository(db)
	txManager := database.NewTxManager(db)

	propertyService := property.NewService(propertyRepo)

	bookingService := booking.NewService(bookingRepo, blockingRepo, propertyService, txManager)
	bookingHandler := booking.NewHandler(bookingService)

	blockingService := blocking.NewService(blockingRepo, bookingRepo, propertyService, txManager)
	blockingHandler := blocking.NewHandler(blockingService)

	r := gin.New()
	r.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.ErrorLogger(),
	)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	api := r.Group("/")
	bookingHandler.RegisterRoutes(api)
	blockingHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("listening on", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown error:", err)
	}
}
