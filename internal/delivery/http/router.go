package http

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events        *controllers.EventController
	Registrations *controllers.RegistrationController
	Admin         *controllers.AdminController
	Exports       *controllers.ExportController
	Health        *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Admin routes are gated by the session cookie; the whole mux is wrapped with
// request id, real ip, access logging and panic recovery.
func NewRouter(c Controllers, sessions domain.SessionVerifier, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	requireAdmin := middleware.RequireAdmin(sessions, logger)

	// Public pages
	mux.HandleFunc("GET /{$}", c.Events.Index)
	mux.HandleFunc("GET /event_info/{id}", c.Events.EventInfo)
	mux.HandleFunc("GET /register", c.Registrations.RegisterForm)
	mux.HandleFunc("POST /register", c.Registrations.Register)
	mux.HandleFunc("GET /success", c.Registrations.Success)

	// Admin
	mux.HandleFunc("GET /admin/login", c.Admin.LoginForm)
	mux.HandleFunc("POST /admin/login", c.Admin.Login)
	mux.HandleFunc("GET /admin/logout", c.Admin.Logout)
	mux.HandleFunc("GET /admin/dashboard", requireAdmin(c.Admin.Dashboard))
	mux.HandleFunc("POST /delete_registration/{id}", requireAdmin(c.Admin.DeleteRegistration))

	// Exports
	mux.HandleFunc("GET /download_csv", requireAdmin(c.Exports.DownloadCSV))
	mux.HandleFunc("GET /api/registrations", requireAdmin(c.Exports.ListRegistrations))

	mux.HandleFunc("GET /healthz", c.Health.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = chimiddleware.Recoverer(h)
	h = middleware.LoggingMiddleware(logger, h)
	h = chimiddleware.RealIP(h)
	h = chimiddleware.RequestID(h)
	return h
}
