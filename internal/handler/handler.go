package handler

import (
	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/database"
	"github.com/softwarepar/softwarepar/internal/logger"
	"github.com/softwarepar/softwarepar/internal/payments"
	"github.com/softwarepar/softwarepar/internal/service"
)

// Handler holds all HTTP handlers
type Handler struct {
	db         *database.Postgres
	rdb        *database.Redis
	log        *logger.Logger
	cfg        *config.Config
	authSvc    *service.AuthService
	contactSvc *service.ContactService
	partnerSvc *service.PartnerService
	payments   *payments.Loader
}

// New creates a new Handler instance
func New(db *database.Postgres, rdb *database.Redis, log *logger.Logger, cfg *config.Config, authSvc *service.AuthService, contactSvc *service.ContactService, partnerSvc *service.PartnerService, paymentsLoader *payments.Loader) *Handler {
	return &Handler{
		db:         db,
		rdb:        rdb,
		log:        log,
		cfg:        cfg,
		authSvc:    authSvc,
		contactSvc: contactSvc,
		partnerSvc: partnerSvc,
		payments:   paymentsLoader,
	}
}
