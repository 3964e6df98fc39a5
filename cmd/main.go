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
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sbilibin2017/gw-property-booking/docs"
	"github.com/sbilibin2017/gw-property-booking/internal/handlers"
	"github.com/sbilibin2017/gw-property-booking/internal/jwt"
	"github.com/sbilibin2017/gw-property-booking/internal/logger"
	"github.com/sbilibin2017/gw-property-booking/internal/middlewares"
	"github.com/sbilibin2017/gw-property-booking/internal/ratelimit"
	"github.com/sbilibin2017/gw-property-booking/internal/repositories"
	"github.com/sbilibin2017/gw-property-booking/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	PropertyCacheTTL  time.Duration

	KafkaBrokers      []string
	KafkaBookingTopic string

	JWTSecretKey string
	JWTExp       time.Duration

	RateLimitAuthRequests int
	RateLimitAuthWindow   time.Duration
}

// @title gw-property-booking API
// @version 1.0.0
// @description Property listing and booking service: catalog, availability, reservations, images and favorites
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and rate limit configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		n, err := getInt(key, defaultValue)
		return time.Duration(n) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.PropertyCacheTTL, err = getSeconds("PROPERTY_CACHE_TTL_SECOND", "60"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaBookingTopic = getEnv("KAFKA_BOOKING_TOPIC", "booking-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Rate limit config
	if cfg.RateLimitAuthRequests, err = getInt("RATE_LIMIT_AUTH_REQUESTS", "10"); err != nil {
		return
	}
	if cfg.RateLimitAuthWindow, err = getSeconds("RATE_LIMIT_AUTH_WINDOW_SECOND", "60"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis and Kafka clients and the HTTP
// server. It blocks until ctx is cancelled and then shuts the server down.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}

	// Kafka writer, publishing is disabled without brokers
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaBookingTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("booking events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaBookingTopic)
	}

	authLimiter, err := ratelimit.NewFixedWindowLimiter(rdb, "ratelimit:auth", cfg.RateLimitAuthRequests, cfg.RateLimitAuthWindow)
	if err != nil {
		return err
	}

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	propertyReadRepo := repositories.NewPropertyReadRepository(db, txGetter)
	propertyWriteRepo := repositories.NewPropertyWriteRepository(db, txGetter)
	propertyCache := repositories.NewPropertyCacheRepository(rdb, cfg.PropertyCacheTTL)
	bookingReadRepo := repositories.NewBookingReadRepository(db, txGetter)
	bookingWriteRepo := repositories.NewBookingWriteRepository(db, txGetter)
	imageReadRepo := repositories.NewImageReadRepository(db, txGetter)
	imageWriteRepo := repositories.NewImageWriteRepository(db, txGetter)
	favoriteRepo := repositories.NewFavoriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	propertyService := services.NewPropertyService(propertyReadRepo, propertyWriteRepo, propertyCache)
	bookingService := services.NewBookingService(
		userReadRepo, propertyReadRepo, propertyWriteRepo,
		bookingReadRepo, bookingWriteRepo, kafkaWriter,
	)
	imageService := services.NewImageService(propertyReadRepo, imageReadRepo, imageWriteRepo)
	favoriteService := services.NewFavoriteService(propertyReadRepo, favoriteRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware)

	auth := middlewares.AuthMiddleware(tokens)
	tx := middlewares.TxMiddleware(db)
	limited := middlewares.RateLimitMiddleware(authLimiter, "auth")

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(limited, tx).Post("/register", handlers.NewRegisterHandler(authService))
		r.With(limited).Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/properties", handlers.NewListPropertiesHandler(propertyService))
		r.Post("/properties/available", handlers.NewListAvailablePropertiesHandler(propertyService))
		r.Get("/properties/{id}", handlers.NewGetPropertyHandler(propertyService))
		r.Get("/properties/{id}/availability", handlers.NewAvailabilityHandler(bookingService))
		r.Get("/properties/{id}/images", handlers.NewListImagesHandler(imageService))
		r.Get("/owners", handlers.NewListOwnersHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/verify", handlers.NewVerifyHandler())
			r.Post("/logout", handlers.NewLogoutHandler())
			r.Get("/profile", handlers.NewGetProfileHandler(authService))
			r.Get("/owners/{id}/properties", handlers.NewListOwnerPropertiesHandler(propertyService))
			r.Get("/properties/{id}/bookings", handlers.NewListPropertyBookingsHandler(bookingService))
			r.Get("/bookings/{id}", handlers.NewGetBookingHandler(bookingService))
			r.Get("/user/bookings", handlers.NewListGuestBookingsHandler(bookingService))
			r.Get("/owner/bookings", handlers.NewListOwnerBookingsHandler(bookingService))
			r.Get("/user/favorites", handlers.NewListFavoritesHandler(favoriteService))

			// Mutating routes run in one transaction each
			r.Group(func(r chi.Router) {
				r.Use(tx)

				r.Put("/profile", handlers.NewUpdateProfileHandler(authService))
				r.Post("/properties", handlers.NewCreatePropertyHandler(propertyService))
				r.Patch("/properties/{id}", handlers.NewUpdatePropertyHandler(propertyService))
				r.Delete("/properties/{id}", handlers.NewDeletePropertyHandler(propertyService))
				r.Post("/properties/{id}/images", handlers.NewAddImageHandler(imageService))
				r.Delete("/properties/images/{imageID}", handlers.NewDeleteImageHandler(imageService))
				r.Post("/bookings", handlers.NewCreateBookingHandler(bookingService))
				r.Put("/bookings/{id}/cancel", handlers.NewCancelBookingHandler(bookingService))
				r.Post("/user/favorites", handlers.NewAddFavoriteHandler(favoriteService))
				r.Delete("/user/favorites/{propertyID}", handlers.NewRemoveFavoriteHandler(favoriteService))
			})
		})
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutdown signal received, stopping HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
