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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/wildwatch/wildwatch/internal/facades"
	"github.com/wildwatch/wildwatch/internal/handlers"
	"github.com/wildwatch/wildwatch/internal/jwt"
	"github.com/wildwatch/wildwatch/internal/logger"
	"github.com/wildwatch/wildwatch/internal/mailer"
	"github.com/wildwatch/wildwatch/internal/middlewares"
	"github.com/wildwatch/wildwatch/internal/repositories"
	"github.com/wildwatch/wildwatch/internal/services"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every value the service reads from the environment.
// Components receive the values they need at construction time and
// never consult the environment themselves.
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
	MigrationsPath string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBroker string
	KafkaTopic  string

	CatalogBaseURL       string
	CatalogToken         string
	CatalogTimeoutSecond int
	CatalogCacheTTLSec   int

	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	JWTSecretKey string
	JWTExpSecond int

	MatchNum int
}

// @title wildwatch API
// @version 1.0.0
// @description Community service matching city neighbors over threatened species they care about
// @host localhost:8080
// @BasePath /
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

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// assembled configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}

	cfg := &config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBroker: getEnv("KAFKA_BROKER", ""),
		KafkaTopic:  getEnv("KAFKA_TOPIC", "species-matches"),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "https://apiv3.iucnredlist.org/api/v3"),
		CatalogToken:   getEnv("CATALOG_TOKEN", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@wildwatch.local"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.CatalogTimeoutSecond, err = getEnvInt("CATALOG_TIMEOUT_SECOND", 10); err != nil {
		return nil, err
	}
	if cfg.CatalogCacheTTLSec, err = getEnvInt("CATALOG_CACHE_TTL_SECOND", 3600); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 25); err != nil {
		return nil, err
	}
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", 3600); err != nil {
		return nil, err
	}
	if cfg.MatchNum, err = getEnvInt("MATCH_NUM", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, mail transport, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	m, err := migrate.New("file://"+cfg.MigrationsPath, dsn)
	if err != nil {
		logger.Log.Fatal("failed to prepare migrations:", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Log.Fatal("failed to apply migrations:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Match-event stream, optional
	var matchEvents services.KafkaWriter
	if cfg.KafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBroker),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		matchEvents = w
	}

	// Outbound mail transport, optional
	var sender services.MailSender
	if cfg.SMTPHost != "" {
		sender = mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	countryReadRepo := repositories.NewCountryReadRepository(db)
	countryWriteRepo := repositories.NewCountryWriteRepository(db, txGetter)
	cityRepo := repositories.NewCityRepository(db, txGetter)
	speciesReadRepo := repositories.NewSpeciesReadRepository(db, txGetter)
	speciesWriteRepo := repositories.NewSpeciesWriteRepository(db, txGetter)
	listReadRepo := repositories.NewListReadRepository(db, txGetter)
	listWriteRepo := repositories.NewListWriteRepository(db, txGetter)
	catalogCache := repositories.NewCatalogCacheRepository(rdb, time.Duration(cfg.CatalogCacheTTLSec)*time.Second)

	// Initialize external catalog client
	catalogAPI := facades.NewCatalogFacade(cfg.CatalogBaseURL, cfg.CatalogToken, time.Duration(cfg.CatalogTimeoutSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, countryReadRepo, cityRepo, jwtSvc)
	catalogService := services.NewCatalogService(speciesReadRepo, speciesWriteRepo, countryWriteRepo, userReadRepo, catalogAPI, catalogCache)
	listService := services.NewListService(listReadRepo, listWriteRepo)
	matchService := services.NewMatchService(listReadRepo, userReadRepo, speciesReadRepo, sender, matchEvents, cfg.MatchNum)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, countryReadRepo, cityRepo, listReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	searchHandler := handlers.NewSearchHandler(catalogService, jwtSvc)
	addHandler := handlers.NewAddHandler(listService, matchService, jwtSvc)
	removeHandler := handlers.NewRemoveHandler(listService, jwtSvc)
	profileHandler := handlers.NewProfileHandler(profileService, jwtSvc)
	editProfileHandler := handlers.NewEditProfileHandler(profileService, jwtSvc)
	deleteProfileHandler := handlers.NewDeleteProfileHandler(profileService, jwtSvc)
	importHandler := handlers.NewImportCountriesHandler(catalogService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))
			r.Get("/species", searchHandler)
			r.Post("/species/{speciesID}", addHandler)
			r.Delete("/species/{speciesID}", removeHandler)
			r.Get("/profile", profileHandler)
			r.Put("/profile", editProfileHandler)
			r.Delete("/profile", deleteProfileHandler)
			r.Post("/countries/import", importHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
