package main

import (
	"context"
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

	"github.com/sbilibin2017/gw-treasury-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/logger"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-treasury-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-treasury-ledger/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "1.0.0" // Version of the service
	buildDate    = "N/A"   // Build date
	buildCommit  = "N/A"   // Git commit hash
)

// @title gw-treasury-ledger API
// @version 1.0.0
// @description Treasury record-keeping service: accounts, transfers, balance and history queries
// @host localhost:8080
// @BasePath /api
// @schemes http
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

// config holds all application, database, Redis and Kafka settings.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	cacheTTL      time.Duration

	kafkaBrokers string
	kafkaTopic   string

	seed           bool
	strictCurrency bool
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.seed = getEnv("APP_SEED", "false") == "true"
	cfg.strictCurrency = getEnv("APP_STRICT_CURRENCY", "false") == "true"

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "treasury")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("REDIS_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}
	cfg.cacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config; empty broker list disables event publishing
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "treasury.transactions")

	return cfg, nil
}

// run initializes the logger, database, Redis and Kafka, sets up routes,
// and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := repositories.CreateSchema(ctx, db); err != nil {
		return err
	}
	if cfg.seed {
		if err := repositories.SeedSampleData(ctx, db); err != nil {
			return err
		}
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for posted-transaction events
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, repositories.TxFromContext)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, repositories.TxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	balanceCache := repositories.NewBalanceCacheRepository(rdb, cfg.cacheTTL)
	txRunner := repositories.NewTxRunner(db)

	// Initialize services
	transferService := services.NewTransferService(txRunner, accountWriteRepo, txnWriteRepo, balanceCache, kafkaWriter, cfg.strictCurrency)
	queryService := services.NewQueryService(accountReadRepo, txnReadRepo, balanceCache)
	chatService := services.NewChatService(queryService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.Route("/trms", func(r chi.Router) {
			r.Get("/accounts", handlers.NewListAccountsHandler(queryService))
			r.Get("/accounts/{id}/balance", handlers.NewGetBalanceHandler(queryService))
			r.Post("/transactions", handlers.NewCreateTransactionHandler(transferService))
			r.Get("/transactions", handlers.NewListTransactionsHandler(queryService))
			r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(queryService))
			r.Get("/health", handlers.NewHealthHandler("TRMS Ledger", buildVersion))
		})
		r.Post("/chat", handlers.NewChatHandler(chatService))
		r.Get("/chat/health", handlers.NewHealthHandler("TRMS Chat Service", buildVersion))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
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
