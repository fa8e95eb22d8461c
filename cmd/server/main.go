// Command server runs the event registration site.
//
// @title Event Registration API
// @version 1.0
// @description Admin exports and health endpoints of the event registration site.
// @BasePath /
// @securityDefinitions.apikey AdminSession
// @in cookie
// @name admin_session
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventregistration/config"
	_ "eventregistration/docs"
	"eventregistration/internal/adapters/auth"
	"eventregistration/internal/adapters/email"
	"eventregistration/internal/adapters/web"
	httpdelivery "eventregistration/internal/delivery/http"
	"eventregistration/internal/delivery/http/controllers"
	"eventregistration/internal/domain"
	"eventregistration/internal/repository/postgres"
	"eventregistration/internal/repository/sqlite"
	"eventregistration/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

type store struct {
	db            *sql.DB
	events        domain.EventRepository
	registrations domain.RegistrationRepository
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &store{db: db, events: postgres.NewEventRepository(db), registrations: postgres.NewRegistrationRepository(db)}, nil
	default:
		db, err := sqlite.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &store{db: db, events: sqlite.NewEventRepository(db), registrations: sqlite.NewRegistrationRepository(db)}, nil
	}
}

// adminPasswordHash returns the configured hash, hashing ADMIN_PASSWORD when only the plain value is set.
func adminPasswordHash(cfg *config.Config, hasher domain.PasswordHasher) (string, error) {
	if cfg.AdminPasswordHash != "" {
		return cfg.AdminPasswordHash, nil
	}
	if cfg.AdminPassword == "" {
		return "", nil
	}
	return hasher.Hash(cfg.AdminPassword)
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer st.db.Close()
	logger.Info("database ready", "driver", cfg.DBDriver)

	if cfg.SessionSecretGenerated {
		logger.Warn("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	hash, err := adminPasswordHash(cfg, hasher)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if hash == "" {
		logger.Warn("neither ADMIN_PASSWORD_HASH nor ADMIN_PASSWORD is set, admin login is disabled")
	}
	credentials := auth.NewStaticCredentialStore(cfg.AdminUsername, hash, hasher)
	sessions := auth.NewJWTSessions(cfg.SessionSecret, cfg.SessionTTL)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	eventSvc := services.NewEventService(st.events, logger)
	regSvc := services.NewRegistrationService(st.events, st.registrations, emailSvc, logger)
	adminSvc := services.NewAdminService(credentials, sessions)

	pages, err := web.NewPageRenderer()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	handler := httpdelivery.NewRouter(httpdelivery.Controllers{
		Events:        controllers.NewEventController(logger, eventSvc, pages),
		Registrations: controllers.NewRegistrationController(logger, regSvc, eventSvc, pages),
		Admin:         controllers.NewAdminController(logger, adminSvc, regSvc, pages, cfg.IsProduction()),
		Exports:       controllers.NewExportController(logger, regSvc),
		Health:        controllers.NewHealthController(logger, st.db),
	}, sessions, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
