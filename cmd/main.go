package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
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
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/gw-dash-swap/docs"
	"github.com/sbilibin2017/gw-dash-swap/internal/facades"
	"github.com/sbilibin2017/gw-dash-swap/internal/handlers"
	"github.com/sbilibin2017/gw-dash-swap/internal/jwt"
	"github.com/sbilibin2017/gw-dash-swap/internal/logger"
	"github.com/sbilibin2017/gw-dash-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-dash-swap/internal/repositories"
	"github.com/sbilibin2017/gw-dash-swap/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-dash-swap API
// @version 1.0.0
// @description Buys, converts and transfers DASH between a custodial exchange account and the user's DASH wallet
// @host localhost:8080
// @BasePath /api/v1
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds the application configuration.
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
	RedisExp          time.Duration // Exchange rate cache TTL

	GWHost string
	GWPort string

	JWTSecretKey string
	JWTIssuer    string

	CoinbaseURL     string
	CoinbaseVersion string
	CoinbaseTimeout time.Duration

	DashdURL         string
	DashdUser        string
	DashdPassword    string
	DashdConfTarget  int
	DashdFallbackFee decimal.Decimal // DASH per kB
	DashdTimeout     time.Duration

	KafkaBrokers []string // Empty disables publishing
	KafkaTopic   string

	QuoteTTL           time.Duration
	FlowTTL            time.Duration
	MinOrderUSD        decimal.Decimal
	JanitorInterval    time.Duration
	RateStreamInterval time.Duration
}

// parseConfig loads environment variables from a file and returns the
// application, storage, upstream and flow configuration.
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
	getDecimal := func(key, defaultValue string) (decimal.Decimal, error) {
		d, err := decimal.NewFromString(getEnv(key, defaultValue))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s: %w", key, err)
		}
		return d, nil
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
	if cfg.RedisExp, err = getSeconds("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "")

	// Coinbase config
	cfg.CoinbaseURL = getEnv("COINBASE_URL", "https://api.coinbase.com")
	cfg.CoinbaseVersion = getEnv("COINBASE_API_VERSION", "2021-09-07")
	if cfg.CoinbaseTimeout, err = getSeconds("COINBASE_TIMEOUT_SECOND", "15"); err != nil {
		return
	}

	// dashd config
	cfg.DashdURL = getEnv("DASHD_URL", "http://localhost:9998")
	cfg.DashdUser = getEnv("DASHD_USER", "dashrpc")
	cfg.DashdPassword = getEnv("DASHD_PASSWORD", "")
	if cfg.DashdConfTarget, err = getInt("DASHD_CONF_TARGET", "6"); err != nil {
		return
	}
	if cfg.DashdFallbackFee, err = getDecimal("DASHD_FALLBACK_FEE", "0.00001"); err != nil {
		return
	}
	if cfg.DashdTimeout, err = getSeconds("DASHD_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "dash-flows")

	// Flow config
	if cfg.QuoteTTL, err = getSeconds("FLOW_QUOTE_TTL_SECOND", "10"); err != nil {
		return
	}
	if cfg.FlowTTL, err = getSeconds("FLOW_TTL_SECOND", "1800"); err != nil {
		return
	}
	if cfg.MinOrderUSD, err = getDecimal("FLOW_MIN_ORDER_USD", "2"); err != nil {
		return
	}
	if cfg.JanitorInterval, err = getSeconds("FLOW_JANITOR_INTERVAL_SECOND", "60"); err != nil {
		return
	}
	if cfg.RateStreamInterval, err = getSeconds("RATE_STREAM_INTERVAL_SECOND", "5"); err != nil {
		return
	}
	if cfg.JanitorInterval <= 0 || cfg.RateStreamInterval <= 0 {
		err = errors.New("janitor and rate stream intervals must be positive")
	}

	return
}

// flowService is the part of SwapService the HTTP API uses.
type flowService interface {
	handlers.FlowStarter
	handlers.FlowGetter
	handlers.AmountEnterer
	handlers.FlowContinuer
	handlers.FlowConfirmer
	handlers.FlowCommitter
	handlers.FlowRetrier
	handlers.TwoFactorSubmitter
	handlers.FlowCanceller
	handlers.FlowSubscriber
	handlers.PaymentMethodsGetter
	handlers.FiatDepositor
}

// rateService is the part of ExchangeRateService the HTTP API uses.
type rateService interface {
	handlers.ExchangeRateGetter
	handlers.ExchangeRateObserver
}

// api groups the collaborators of the HTTP routes.
type api struct {
	flows              flowService
	rates              rateService
	currencies         handlers.FiatCurrencyLister
	history            handlers.FlowHistoryReader
	tokener            middlewares.Tokener
	rateStreamInterval time.Duration
	swaggerURL         string
}

// newRouter builds the HTTP routes.
func newRouter(a api) http.Handler {
	userID := middlewares.UserIDFromContext

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(a.tokener))

		r.Post("/flows", handlers.NewStartFlowHandler(a.flows, userID))
		r.Route("/flows/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetFlowHandler(a.flows, userID))
			r.Get("/events", handlers.NewFlowEventsHandler(a.flows, userID))
			r.Post("/amount", handlers.NewEnterAmountHandler(a.flows, userID))
			r.Post("/continue", handlers.NewContinueHandler(a.flows, userID))
			r.Post("/confirm", handlers.NewConfirmHandler(a.flows, userID))
			r.Post("/commit", handlers.NewCommitHandler(a.flows, userID))
			r.Post("/retry", handlers.NewRetryHandler(a.flows, userID))
			r.Post("/two-factor", handlers.NewTwoFactorHandler(a.flows, userID))
			r.Post("/cancel", handlers.NewCancelHandler(a.flows, userID))
		})

		r.Get("/history", handlers.NewGetHistoryHandler(a.history, userID))
		r.Get("/payment-methods", handlers.NewGetPaymentMethodsHandler(a.flows, userID))
		r.Post("/deposits", handlers.NewDepositHandler(a.flows, userID))

		r.Get("/currencies", handlers.NewGetCurrenciesHandler(a.currencies, userID))
		r.Get("/rates/{currency}", handlers.NewGetExchangeRateHandler(a.rates, userID))
		r.Get("/rates/{currency}/stream", handlers.NewExchangeRateStreamHandler(a.rates, userID, a.rateStreamInterval))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(a.swaggerURL)))

	return r
}

// run initializes the logger, database, Redis, gRPC client, upstream
// clients and HTTP server. It sets up routes, starts the flow janitor and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	historyRepo := repositories.NewFlowHistoryRepository(db)
	if err := historyRepo.Migrate(ctx); err != nil {
		return fmt.Errorf("flow history migration failed: %w", err)
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
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Connect to gRPC exchanger
	grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
	}
	defer conn.Close()

	// Kafka publishing of finished flows is optional
	var publisher services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		publisher = writer
		defer writer.Close()
	}

	// Upstream clients
	coinbase := facades.NewCoinbaseFacade(cfg.CoinbaseURL, cfg.CoinbaseVersion, cfg.CoinbaseTimeout)
	fiatRates := facades.NewFiatRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
	wallet := facades.NewDashdFacade(facades.DashdConfig{
		URL:         cfg.DashdURL,
		User:        cfg.DashdUser,
		Password:    cfg.DashdPassword,
		ConfTarget:  cfg.DashdConfTarget,
		FallbackFee: cfg.DashdFallbackFee,
		Timeout:     cfg.DashdTimeout,
	})

	// Services
	rates := services.NewExchangeRateService(
		coinbase,
		fiatRates,
		repositories.NewExchangeRateCacheRepository(rdb, cfg.RedisExp),
	)
	swaps := services.NewSwapService(
		services.ProviderFactoryFunc(func(accessToken string) services.Provider {
			return coinbase.WithToken(accessToken)
		}),
		wallet,
		rates,
		services.NewFlowHistory(historyRepo, publisher),
		services.NewConverter(),
		services.NewPaymentMethodResolver(),
		services.SwapConfig{
			QuoteTTL:    cfg.QuoteTTL,
			FlowTTL:     cfg.FlowTTL,
			MinOrderUSD: cfg.MinOrderUSD,
		},
	)

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go swaps.RunJanitor(ctxShutdown, cfg.JanitorInterval)

	router := newRouter(api{
		flows:              swaps,
		rates:              rates,
		currencies:         fiatRates,
		history:            historyRepo,
		tokener:            jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithIssuer(cfg.JWTIssuer)),
		rateStreamInterval: cfg.RateStreamInterval,
		swaggerURL:         fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctxShutdown },
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
