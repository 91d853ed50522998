package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/softwarepar/softwarepar/internal/app"
	"github.com/softwarepar/softwarepar/internal/auth"
	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/database"
	"github.com/softwarepar/softwarepar/internal/email"
	"github.com/softwarepar/softwarepar/internal/handler"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/middleware"
	"github.com/softwarepar/softwarepar/internal/payments"
	"github.com/softwarepar/softwarepar/internal/repository"
	"github.com/softwarepar/softwarepar/internal/router"
	"github.com/softwarepar/softwarepar/internal/service"
	"github.com/softwarepar/softwarepar/internal/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("environment", cfg.Server.Environment).Msg("starting SoftwarePar server")

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("connected to PostgreSQL")

	// Connect to Redis
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("connected to Redis")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	paymentRepo := repository.NewPaymentSettingsRepository(db)

	// Initialize token service
	tokenSvc, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token service")
	}

	// Initialize email sender
	sender, err := email.NewSender(context.Background(), cfg.Email, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize email sender")
	}
	log.Info().Str("provider", cfg.Email.Provider).Msg("email sender initialized")

	// Initialize services
	notificationSvc := service.NewNotificationService(sender, cfg.Email.OperatorAddress, log)
	authSvc := service.NewAuthService(userRepo, tokenSvc, notificationSvc, log)
	contactSvc := service.NewContactService(contactRepo, notificationSvc, log)
	partnerSvc := service.NewPartnerService(partnerRepo, userRepo, notificationSvc, log)

	// Payment configuration loader (warmed up by app.Run)
	paymentLoader := payments.NewLoader(paymentRepo, log)

	// Initialize handlers and middleware
	h := handler.New(db, rdb, log, cfg, authSvc, contactSvc, partnerSvc, paymentLoader)
	mw := middleware.New(rdb, log, cfg)

	// Frontend: dev-server proxy or built assets
	frontend, err := web.New(cfg.Static, cfg.Server.Environment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize frontend handler")
	}

	// Set up router
	r := router.New(h, mw, frontend, tokenSvc, cfg)

	// Run startup sequence and serve
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, log, db, paymentLoader.Load, r)
	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
