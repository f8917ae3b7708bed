package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/uptrace/bun/migrate"
	"github.com/vaulthive/vaulthive.go/chain"
	"github.com/vaulthive/vaulthive.go/db"
	"github.com/vaulthive/vaulthive.go/db/migrations"
	"github.com/vaulthive/vaulthive.go/lib"
	"github.com/vaulthive/vaulthive.go/lib/service"
	"github.com/vaulthive/vaulthive.go/lib/tokens"
	"github.com/vaulthive/vaulthive.go/rabbitmq"
	"github.com/ziflex/lecho/v3"
	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func main() {

	c := &service.Config{}

	// Load configuration from environment variables
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	// Setup logging to STDOUT or a configured log file
	logger := lecho.From(lib.Logger(c.LogFilePath))

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}

	// Migrate the DB
	startupCtx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(startupCtx)
	if err != nil {
		logger.Fatalf("Error initializing db migrator: %v", err)
	}
	_, err = migrator.Migrate(startupCtx)
	if err != nil {
		logger.Fatalf("Error migrating database: %v", err)
	}

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			IgnoreErrors:     []string{"401"},
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
	}

	// Connect to the Monad testnet RPC endpoint. An unreachable chain is
	// not fatal, tokenization then runs database-only.
	chainCfg := &chain.Config{}
	err = envconfig.Process("", chainCfg)
	if err != nil {
		logger.Fatalf("Error loading chain environment variables: %v", err)
	}
	zlog := lib.Logger(c.LogFilePath)
	chainClient, err := chain.Init(startupCtx, chainCfg, &zlog)
	if err != nil {
		logger.Errorf("Chain connection unavailable, running database-only: %v", err)
		chainClient = nil
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No rabbitmq features will be available in this case.
	var rabbitmqClient rabbitmq.Client
	if c.RabbitMQUri != "" {
		amqpClient, err := rabbitmq.DialAMQP(c.RabbitMQUri)
		if err != nil {
			logger.Fatal(err)
		}

		rabbitmqClient, err = rabbitmq.NewClient(amqpClient,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithTokenExchange(c.RabbitMQTokenExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
	}

	svc := &service.VaulthiveService{
		Config:      c,
		DB:          dbConn,
		Logger:      logger,
		ChainClient: chainClient,
		RabbitMQ:    rabbitmqClient,
	}

	//init echo server
	e := initEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("vaulthive.go")))
	}

	logMw := createLoggingMiddleware(logger)
	// strict rate limit for requests that create accounts or mint tokens
	strictRateLimitMiddleware := createRateLimitMiddleware(c.StrictRateLimit, c.BurstRateLimit)

	secured := e.Group("", tokens.Middleware(c.JWTSecret), logMw)
	securedWithStrictRateLimit := e.Group("", tokens.Middleware(c.JWTSecret), strictRateLimitMiddleware, logMw)

	RegisterEndpoints(svc, e, secured, securedWithStrictRateLimit, strictRateLimitMiddleware, logMw)

	//Start Prometheus server if necessary
	if svc.Config.EnablePrometheus {
		go startPrometheusEcho(logger, svc, e)
	}

	// Start server
	go func() {
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	backGroundCtx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	<-backGroundCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
	svc.Logger.Info("VaultHive exiting gracefully. Goodbye.")
}
