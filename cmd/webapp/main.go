package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/account"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/config"
	httprouter "github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/handlers"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/middleware"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/notify"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/persistence/postgres"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	dsn := cfg.Database.DSN()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("create database pool")
	}
	defer pool.Close()
	// The service stays up when the database is down so /healthz can
	// report 503 instead of the process dying.
	if err := pool.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("database unreachable at startup")
	}

	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewVerificationTokenRepository(pool)
	checker := postgres.NewLivenessChecker(dsn)
	hasher := security.NewHasher(security.DefaultParams())

	var publisher ports.VerificationPublisher
	if cfg.Notify.TopicARN != "" {
		snsPublisher, err := notify.NewSNSPublisher(ctx, cfg.Notify.Region, cfg.Notify.TopicARN)
		if err != nil {
			log.Fatal().Err(err).Msg("create sns publisher")
		}
		publisher = snsPublisher
	} else {
		log.Warn().Msg("SNS_TOPIC_ARN not set; verification messages will not be published")
		publisher = notify.NewNoopPublisher()
	}

	createUC := account.NewCreateUser(userRepo, hasher, cfg.TestMode())
	updateUC := account.NewUpdateUser(userRepo, hasher)
	getUC := account.NewGetUser(userRepo)
	verifyUC := account.NewIssueVerification(tokenRepo, publisher, time.Duration(cfg.App.VerifyTokenTTL)*time.Second)

	userHandler := handlers.NewUserHandler(createUC, updateUC, getUC, verifyUC, log)
	healthHandler := handlers.NewHealthHandler(checker, log)
	basicAuth := middleware.NewBasicAuthenticator(userRepo, hasher, log)
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.App.Env == "dev"))
	ipLimit, err := middleware.NewIPRateLimiter(cfg.App.RateLimitPerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}

	router := httprouter.NewRouter(httprouter.RouterConfig{
		UserHandler:   userHandler,
		HealthHandler: healthHandler,
		BasicAuth:     basicAuth.Handler,
		Secure:        secureMiddleware,
		IPRateLimit:   ipLimit,
		Log:           log,
		Metrics:       true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
