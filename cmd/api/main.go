package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/athletex/gym-api/internal/config"
	"github.com/athletex/gym-api/internal/email"
	adminHandler "github.com/athletex/gym-api/internal/handler/admin"
	authHandler "github.com/athletex/gym-api/internal/handler/auth"
	bookingHandler "github.com/athletex/gym-api/internal/handler/booking"
	contactHandler "github.com/athletex/gym-api/internal/handler/contact"
	healthHandler "github.com/athletex/gym-api/internal/handler/health"
	promHandler "github.com/athletex/gym-api/internal/handler/prometheus"
	trainerHandler "github.com/athletex/gym-api/internal/handler/trainer"
	membershipHandler "github.com/athletex/gym-api/internal/handler/membership"
	"github.com/athletex/gym-api/internal/middleware"
	"github.com/athletex/gym-api/internal/repository"
	"github.com/athletex/gym-api/internal/repository/postgres"
	"github.com/athletex/gym-api/internal/repository/redisstore"
	"github.com/athletex/gym-api/internal/router"
	"github.com/athletex/gym-api/internal/worker"
	adminService "github.com/athletex/gym-api/internal/service/admin"
	authService "github.com/athletex/gym-api/internal/service/auth"
	bookingService "github.com/athletex/gym-api/internal/service/booking"
	contactService "github.com/athletex/gym-api/internal/service/contact"
	membershipService "github.com/athletex/gym-api/internal/service/membership"
	trainerService "github.com/athletex/gym-api/internal/service/trainer"
	"github.com/athletex/gym-api/pkg/auth"
	"github.com/athletex/gym-api/pkg/logger"
	"github.com/athletex/gym-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = *appLogger.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Token revocation degrades gracefully when Redis is absent:
	// logout becomes a client-side operation only.
	var tokenStore repository.TokenStore
	if cfg.Redis.URL != "" {
		store, err := redisstore.NewTokenStore(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer store.Close()
		tokenStore = store
	} else {
		log.Warn().Msg("Redis not configured, token revocation disabled")
	}

	jwtSvc, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT service")
	}

	promH := promHandler.New()
	m := metrics.NewMetrics("gym_api", promH.Registry())
	emailSvc := email.NewService(cfg.SMTP)

	userRepo := postgres.NewUserRepository(db)
	membershipRepo := postgres.NewMembershipRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	trainerRepo := postgres.NewTrainerRepository(db)

	membershipSvc := membershipService.NewService(membershipRepo, m)
	authSvc := authService.NewService(userRepo, jwtSvc, tokenStore, emailSvc, membershipSvc, m, cfg.JWT.Expiry())
	bookingSvc := bookingService.NewService(bookingRepo, m)
	contactSvc := contactService.NewService(contactRepo, emailSvc, m)
	trainerSvc := trainerService.NewService(trainerRepo)
	adminSvc := adminService.NewService(userRepo, membershipRepo, bookingRepo, contactRepo)

	r := router.NewRouter(
		authSvc,
		healthHandler.NewHandler(db),
		promH,
		authHandler.NewHandler(authSvc),
		membershipHandler.NewHandler(membershipSvc),
		bookingHandler.NewHandler(bookingSvc),
		contactHandler.NewHandler(contactSvc),
		trainerHandler.NewHandler(trainerSvc),
		adminHandler.NewHandler(adminSvc),
		router.Config{
			RateLimit: rate.Limit(cfg.Server.RateLimitRPS),
			RateBurst: cfg.Server.RateLimitBurst,
			CORS:      middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	expiryWorker := worker.NewMembershipExpiryWorker(membershipRepo, time.Hour)
	go expiryWorker.Start(workerCtx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
