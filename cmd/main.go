package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-video-accounts/internal/config"
	"github.com/sbilibin2017/gw-video-accounts/internal/handlers"
	"github.com/sbilibin2017/gw-video-accounts/internal/jwt"
	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/media"
	"github.com/sbilibin2017/gw-video-accounts/internal/metrics"
	"github.com/sbilibin2017/gw-video-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-video-accounts/internal/migrations"
	"github.com/sbilibin2017/gw-video-accounts/internal/password"
	"github.com/sbilibin2017/gw-video-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-video-accounts/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-video-accounts/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-video-accounts API
// @version 1.0.0
// @description User accounts, sessions, channels and watch history for a video sharing platform
// @host localhost:8000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// app groups what the router needs.
type app struct {
	db       *sqlx.DB
	auth     *services.AuthService
	channels *services.ChannelService
	tokens   middlewares.Tokener
	metrics  *metrics.Metrics
	cookies  handlers.CookieConfig
	uploads  handlers.UploadConfig
}

// newRouter mounts every route. Mutating account routes run inside a
// transaction; everything under /api/v1/users except the public session
// routes requires an access token.
func newRouter(a app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(a.metrics))

	tx := middlewares.TxMiddleware(a.db)
	auth := middlewares.AuthMiddleware(a.tokens)

	r.Route("/api/v1/users", func(r chi.Router) {
		// Public routes
		r.With(tx).Post("/register", handlers.NewRegisterHandler(a.auth, a.uploads))
		r.With(tx).Post("/login", handlers.NewLoginHandler(a.auth, a.cookies))
		r.With(tx).Post("/refresh-token", handlers.NewRefreshTokenHandler(a.auth, a.cookies))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.With(tx).Post("/logout", handlers.NewLogoutHandler(a.auth, a.cookies))
			r.With(tx).Post("/change-password", handlers.NewChangePasswordHandler(a.auth))
			r.Get("/current-user", handlers.NewCurrentUserHandler(a.auth))
			r.With(tx).Patch("/update-account", handlers.NewUpdateAccountHandler(a.auth))
			r.With(tx).Patch("/avatar", handlers.NewUpdateAvatarHandler(a.auth, a.uploads))
			r.With(tx).Patch("/cover-image", handlers.NewUpdateCoverImageHandler(a.auth, a.uploads))

			r.Get("/c/{username}", handlers.NewChannelProfileHandler(a.channels))
			r.Post("/c/{username}/subscription", handlers.NewSubscribeHandler(a.channels))
			r.Delete("/c/{username}/subscription", handlers.NewUnsubscribeHandler(a.channels))

			r.Get("/history", handlers.NewWatchHistoryHandler(a.channels))
			r.Post("/history", handlers.NewAddWatchHistoryHandler(a.channels))
		})
	})

	r.Get("/healthz", handlers.NewHealthHandler(a.db))
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
}

// run initializes the logger, database, Redis, Kafka, media relay and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer func() { _ = logger.Log.Sync() }()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn, err := cfg.DatabaseURL()
	if err != nil {
		return err
	}
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() { _ = w.Close() }()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, account events will not be published")
	}

	// Media relay
	mediaCfg := media.Config{
		Endpoint:     cfg.MediaEndpoint,
		PublicURL:    cfg.MediaPublicURL,
		Region:       cfg.MediaRegion,
		Bucket:       cfg.MediaBucket,
		AccessKey:    cfg.MediaAccessKey,
		SecretKey:    cfg.MediaSecretKey,
		MaxImageSide: cfg.MediaMaxImageSide,
	}
	s3Client, err := media.NewS3Client(ctx, mediaCfg)
	if err != nil {
		return fmt.Errorf("media client: %w", err)
	}
	relay := media.New(s3Client, mediaCfg)

	tokens := jwt.New(jwt.WithConfig(jwt.Config{
		AccessSecret:  cfg.AccessTokenSecret,
		AccessExp:     cfg.AccessTokenExpiry,
		RefreshSecret: cfg.RefreshTokenSecret,
		RefreshExp:    cfg.RefreshTokenExpiry,
	}))
	hasher := password.New(cfg.BcryptCost)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, cfg.RedisUserTTL)
	subscriptionRepo := repositories.NewSubscriptionRepository(db, middlewares.GetTxFromContext)
	historyRepo := repositories.NewWatchHistoryRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, userCacheRepo, tokens, hasher, relay, kafkaWriter)
	channelService := services.NewChannelService(userReadRepo, subscriptionRepo, historyRepo, kafkaWriter)

	router := newRouter(app{
		db:       db,
		auth:     authService,
		channels: channelService,
		tokens:   tokens,
		metrics:  metrics.New(),
		cookies:  handlers.CookieConfig{Secure: cfg.CookieSecure},
		uploads:  handlers.UploadConfig{Dir: cfg.TempDir, MaxBytes: cfg.MaxUploadMB << 20},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
