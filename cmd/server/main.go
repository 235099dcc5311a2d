package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	dirModels "hotline/internal/directory/models"
	dirStore "hotline/internal/directory/store"
	notifyHandler "hotline/internal/notify/handler"
	notifyMetrics "hotline/internal/notify/metrics"
	notifyService "hotline/internal/notify/service"
	"hotline/internal/notify/twilio"
	"hotline/internal/phone"
	"hotline/internal/platform/config"
	"hotline/internal/platform/httpserver"
	"hotline/internal/platform/logger"
	"hotline/internal/platform/metrics"
	"hotline/internal/platform/redis"
	sessionHandler "hotline/internal/session/handler"
	sessionService "hotline/internal/session/service"
	sessionStore "hotline/internal/session/store"
	httptransport "hotline/internal/transport/http"
	triageHandler "hotline/internal/triage/handler"
	triageMetrics "hotline/internal/triage/metrics"
	triageService "hotline/internal/triage/service"
	"hotline/pkg/platform/circuit"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hotline:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tMetrics := triageMetrics.New()
	holder := dirStore.NewHolder(cfg.DirectoryPath,
		dirStore.WithLogger(log),
		dirStore.WithSwapHook(func(d *dirModels.Directory) { tMetrics.SetDirectoryContacts(d.Len()) }),
	)
	if _, err := holder.Reload(ctx); err != nil {
		return fmt.Errorf("load directory: %w", err)
	}

	sessions, closeSessions, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSessions()

	formatter := phone.NewFormatter(phone.WithLogger(log), phone.WithMetrics(phone.NewMetrics()))
	sessionSvc := sessionService.New(sessions, sessionService.WithLogger(log))
	triageSvc := triageService.New(holder,
		triageService.WithLogger(log),
		triageService.WithMetrics(tMetrics),
		triageService.WithSessions(sessionSvc),
		triageService.WithFormatter(formatter),
	)
	triage := triageHandler.New(triageSvc, log)

	public := []httptransport.Registrar{
		triage,
		sessionHandler.New(sessionSvc, log),
	}
	if cfg.SMS.Enabled() {
		sender := twilio.New(cfg.SMS.AccountSID, cfg.SMS.AuthToken, twilio.WithBaseURL(cfg.SMS.BaseURL))
		notifySvc := notifyService.New(sender, sessions, holder,
			notifyService.WithLogger(log),
			notifyService.WithMetrics(notifyMetrics.New()),
			notifyService.WithLimiter(notifyService.NewRecipientLimiter(cfg.SMS.PerMinute)),
			notifyService.WithBreaker(circuit.New("twilio",
				circuit.WithFailureThreshold(cfg.SMS.BreakerFailures),
				circuit.WithCooldown(cfg.SMS.BreakerCooldown),
			)),
			notifyService.WithFromNumber(cfg.SMS.FromNumber),
		)
		public = append(public, notifyHandler.New(notifySvc, log))
	} else {
		log.WarnContext(ctx, "twilio credentials not set; follow-up SMS disabled")
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Logger:         log,
		Metrics:        metrics.New(),
		RequestTimeout: cfg.RequestTimeout,
		AdminToken:     cfg.AdminToken,
		MetricsHandler: promhttp.Handler(),
		Public:         public,
		Admin:          []httptransport.AdminRegistrar{triage},
	})
	srv := httpserver.New(cfg.Addr, router, cfg.RequestTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.InfoContext(gctx, "starting hotline", "addr", cfg.Addr, "contacts", holder.Current().Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.InfoContext(shutdownCtx, "shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.WatchDirectory {
		watcher := dirStore.NewWatcher(holder, dirStore.WithWatcherLogger(log))
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	return g.Wait()
}

// newSessionStore picks Redis when configured and process memory otherwise.
func newSessionStore(ctx context.Context, cfg config.Server, log *slog.Logger) (notifyService.SessionStore, func(), error) {
	client, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: %w", err)
	}
	if client == nil {
		log.InfoContext(ctx, "REDIS_URL not set; keeping call sessions in memory", "ttl", cfg.SessionTTL)
		return sessionStore.NewInMemory(cfg.SessionTTL), func() {}, nil
	}
	log.InfoContext(ctx, "call sessions stored in redis", "ttl", cfg.SessionTTL)
	return sessionStore.NewRedis(client.Client, cfg.SessionTTL), func() { _ = client.Close() }, nil
}
