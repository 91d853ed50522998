package router

import (
	"net/http"
	"time"

	"github.com/softwarepar/softwarepar/internal/auth"
	"github.com/softwarepar/softwarepar/internal/config"
	"github.com/softwarepar/softwarepar/internal/handler"
	"github.com/softwarepar/softwarepar/internal/middleware"
	"github.com/softwarepar/softwarepar/internal/model"
)

// New creates and configures the HTTP router. frontend serves everything that
// is not an API or health route (built assets or the dev-server proxy).
func New(h *handler.Handler, mw *middleware.Middleware, frontend http.Handler, tokenSvc *auth.TokenService, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints (no auth required)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	// Public routes (rate limited)
	registerRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Limit:  5,
		Window: 1 * time.Hour,
		KeyFn:  middleware.IPKey,
	})
	loginRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Limit:  10,
		Window: 15 * time.Minute,
		KeyFn:  middleware.IPKey,
	})
	contactRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Limit:  5,
		Window: 15 * time.Minute,
		KeyFn:  middleware.IPKey,
	})

	mux.Handle("POST /api/auth/register", registerRateLimit(http.HandlerFunc(h.Register)))
	mux.Handle("POST /api/auth/login", loginRateLimit(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/contact", contactRateLimit(http.HandlerFunc(h.SubmitContact)))
	mux.HandleFunc("GET /api/payments/config", h.GetPaymentConfig)

	// Protected routes
	authMw := mw.Auth(tokenSvc)
	adminOnly := mw.RequireRole(model.RoleAdmin)

	mux.Handle("GET /api/users/me", authMw(http.HandlerFunc(h.GetCurrentUser)))
	mux.Handle("GET /api/partners/me/commissions", authMw(http.HandlerFunc(h.ListMyCommissions)))
	mux.Handle("POST /api/admin/commissions", authMw(adminOnly(http.HandlerFunc(h.RecordCommission))))
	mux.Handle("GET /api/admin/contact-inquiries", authMw(adminOnly(http.HandlerFunc(h.ListContactInquiries))))

	// Frontend assets: explicit /public mount plus root fallback
	mux.Handle("/public/", http.StripPrefix("/public", frontend))
	mux.Handle("/", frontend)

	// Apply middleware stack
	var root http.Handler = mux

	root = mw.CORS(corsOrigins(cfg))(root)
	root = mw.SecurityHeaders(root)
	root = mw.Logger(root)
	root = mw.Timing(root)
	root = mw.RequestID(root)

	// Panic recovery (outermost)
	root = mw.Recover(root)

	return root
}

func corsOrigins(cfg *config.Config) []string {
	if cfg.Server.Environment == "development" {
		return []string{"http://localhost:5000", cfg.Static.DevServerURL}
	}
	return []string{"https://softwarepar.lat", "https://www.softwarepar.lat"}
}
