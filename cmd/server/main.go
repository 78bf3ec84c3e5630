package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/config"
	"github.com/abdhesh369/portfolio-backend/internal/handler"
	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/metrics"
	"github.com/abdhesh369/portfolio-backend/internal/notify"
	"github.com/abdhesh369/portfolio-backend/internal/ratelimit"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/service"
	"github.com/abdhesh369/portfolio-backend/internal/storage"
	"github.com/abdhesh369/portfolio-backend/pkg/auth"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const contactLimitMessage = "Too many messages sent from this IP, please try again after 15 minutes"

func newMailer(cfg config.Config) mailer.Sender {
	if cfg.MailProvider == "smtp" {
		return mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return mailer.NewResendClient(cfg.ResendAPIKey)
}

// newLimiterStore returns the contact limiter store and a func releasing it.
func newLimiterStore(cfg config.Config) (ratelimit.Store, func()) {
	if cfg.RateLimitStore == "redis" {
		rdb, err := ratelimit.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logging.Fatal("invalid REDIS_URL", "error", err)
		}
		slog.Info("contact rate limit uses redis")
		return ratelimit.NewRedisStore(rdb, cfg.RateLimitWindow, "rl:contact:"), func() { _ = rdb.Close() }
	}
	store := ratelimit.NewMemoryStore(cfg.RateLimitWindow)
	return store, store.Close
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	messageRepo := repository.NewPgMessageRepository(pool)
	templateRepo := repository.NewPgEmailTemplateRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	articleRepo := repository.NewPgArticleRepository(pool)
	seoRepo := repository.NewPgSEORepository(pool)

	sender := newMailer(cfg)
	if !sender.Configured() {
		slog.Warn("email provider not configured; notifications are skipped and replies fail", "provider", cfg.MailProvider)
	}

	messageService := service.NewMessageService(messageRepo)
	replyService := service.NewReplyService(messageRepo, templateRepo, sender, cfg.EmailFrom)
	templateService := service.NewEmailTemplateService(templateRepo)
	projectService := service.NewProjectService(projectRepo)
	articleService := service.NewArticleService(articleRepo)
	seoService := service.NewSEOService(seoRepo)

	if n, err := templateService.SeedDefaults(ctx); err != nil {
		slog.Error("seeding email templates failed", "error", err)
	} else if n > 0 {
		slog.Info("seeded default email templates", "count", n)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher := notify.NewDispatcher(sender, notify.Config{
		From: cfg.EmailFrom,
		To:   cfg.ContactEmail,
	}, slog.Default())
	dispatcher.Start(workerCtx)

	store, closeStore := newLimiterStore(cfg)
	defer closeStore()
	limiter := ratelimit.New(store, ratelimit.Options{
		Max:               cfg.RateLimitMax,
		Message:           contactLimitMessage,
		TrustedProxyCount: cfg.TrustedProxyCount,
		OnLimited: func(r *http.Request, key string) {
			metrics.IncContactSubmission(metrics.ResultRateLimited)
		},
	})

	adminEmails := auth.ParseEmails(cfg.AdminEmail)
	var requireAdmin handler.Middleware
	if cfg.AuthRequired {
		if len(adminEmails) == 0 {
			slog.Warn("ADMIN_EMAIL is empty; every admin route will answer 401/403")
		}
		secret := auth.SessionSecretBytes(cfg.JWTSecret)
		requireAuth := auth.RequireAuth(secret)
		onlyAdmins := auth.RequireAdmin(adminEmails)
		requireAdmin = func(next http.Handler) http.Handler {
			return requireAuth(onlyAdmins(next))
		}
	} else {
		slog.Warn("AUTH_REQUIRED=false: admin routes are open (development only)")
		requireAdmin = auth.DevAuth
	}

	uploads := storage.NewLocalStorage(cfg.UploadDir, "/uploads")

	routes := handler.Routes{
		Health: handler.New(pool),
		Auth: handler.NewAuthHandler(handler.AuthConfig{
			AdminEmails:        adminEmails,
			AdminPasswordHash:  cfg.AdminPasswordHash,
			SessionSecret:      cfg.JWTSecret,
			FrontendURL:        cfg.FrontendURL,
			BackendURL:         cfg.BackendURL,
			Secure:             cfg.IsProduction(),
			GitHubClientID:     cfg.GitHubClientID,
			GitHubClientSecret: cfg.GitHubClientSecret,
		}),
		Messages:     handler.NewMessageHandler(messageService, replyService, dispatcher, limiter.ClientIP),
		Templates:    handler.NewEmailTemplateHandler(templateService),
		Projects:     handler.NewProjectHandler(projectService),
		Images:       handler.NewImageHandler(uploads, projectService),
		Articles:     handler.NewArticleHandler(articleService),
		SEO:          handler.NewSEOHandler(seoService),
		RequireAdmin: requireAdmin,
		ContactLimit: limiter.Middleware,
	}

	mux := http.NewServeMux()
	routes.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	var h http.Handler = mux
	h = handler.MaxBodyBytes(handler.DefaultMaxBodyBytes)(h)
	h = handler.RequestLogger(h)
	h = handler.CORS(cfg.AllowedOrigins)(h)
	h = handler.SecurityHeaders(cfg.IsProduction())(h)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
	// Accepted messages still get their notification attempt before exit.
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		slog.Warn("notification queue not drained", "error", err)
	}
}
