package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"officeweb/config"
	_ "officeweb/docs"
	"officeweb/internal/adapters/auth"
	"officeweb/internal/adapters/backend"
	"officeweb/internal/adapters/email"
	deliveryhttp "officeweb/internal/delivery/http"
	"officeweb/internal/delivery/http/controllers"
	"officeweb/internal/delivery/http/views"
	"officeweb/internal/domain"
	"officeweb/internal/locale"
	"officeweb/internal/repository/memory"
	"officeweb/internal/repository/postgres"
	"officeweb/internal/services"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the HTTP server.

serve waits for the backend's /health endpoint (BACKEND_WAIT_ATTEMPTS tries),
then serves the site and periodically removes expired admin sessions. It stops
gracefully on Ctrl+C or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, config.NewLogger())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client, err := backend.NewClient(cfg.BackendURL, &http.Client{Timeout: cfg.BackendTimeout})
	if err != nil {
		return err
	}
	if err := waitForBackend(ctx, client, cfg.BackendWaitAttempts, logger); err != nil {
		return err
	}

	sessions, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:             cfg.AWSRegion,
			AccessKeyID:        cfg.AWSAccessKeyID,
			SecretAccessKey:    cfg.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	mailTemplates, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	emailSvc := services.NewEmailService(mailer, mailTemplates, services.RetryPolicy{
		Attempts: cfg.MailRetryAttempts,
		Delay:    cfg.MailRetryDelay,
	}, logger)

	authSvc := services.NewAuthService(client, sessions, auth.NewJWTInspector(cfg.BackendJWTSecret), cfg.SessionTTL, logger)
	inquirySvc := services.NewInquiryService(client, client, emailSvc, services.InquiryConfig{
		NotifyEmail:   cfg.OfficeNotifyEmail,
		SiteURL:       cfg.SiteURL,
		NotifyTimeout: cfg.MailNotifyTimeout,
	}, logger)

	catalog, err := locale.DefaultCatalog()
	if err != nil {
		return err
	}
	for _, l := range locale.Supported {
		if missing := catalog.Missing(l); len(missing) > 0 {
			logger.Debug("catalog falls back to Korean", "lang", l, "keys", len(missing))
		}
	}
	renderer, err := views.New(catalog, logger)
	if err != nil {
		return err
	}

	handler := deliveryhttp.NewRouter(
		controllers.NewPublicController(logger, client, inquirySvc, renderer),
		controllers.NewAdminController(logger, authSvc, client, inquirySvc, renderer, cfg.CookieSecure),
		controllers.NewAPIController(logger, client),
		deliveryhttp.RouterOptions{
			Logger:             logger,
			Auth:               authSvc,
			SecureCookies:      cfg.CookieSecure,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "env", cfg.Environment, "session_store", cfg.SessionStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return services.RunSessionSweeper(ctx, sessions, cfg.SessionSweepInterval, logger)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// waitForBackend polls the backend health check until it answers. Zero
// attempts skips the wait.
func waitForBackend(ctx context.Context, client *backend.Client, attempts uint, logger *slog.Logger) error {
	if attempts == 0 {
		return nil
	}
	err := retry.Do(
		func() error { return client.Health(ctx) },
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("backend not ready", "attempt", n+1, "err", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("backend did not become ready: %w", err)
	}
	return nil
}

func openSessionStore(ctx context.Context, cfg *config.Config) (domain.SessionRepository, func(), error) {
	if cfg.SessionStore != config.SessionStorePostgres {
		return memory.NewSessionRepository(), func() {}, nil
	}
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return postgres.NewSessionRepository(db), func() { db.Close() }, nil
}
