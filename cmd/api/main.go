package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lungtracker-srv/config"
	configKafka "lungtracker-srv/config/kafka"
	configMinio "lungtracker-srv/config/minio"
	configPostgre "lungtracker-srv/config/postgre"
	configRedis "lungtracker-srv/config/redis"
	"lungtracker-srv/internal/httpserver"
	"lungtracker-srv/pkg/discord"
	pkgJWT "lungtracker-srv/pkg/jwt"
	"lungtracker-srv/pkg/log"
	"lungtracker-srv/pkg/render"
	"lungtracker-srv/pkg/resend"
)

// @title       LungTracker Report Service API
// @description Lung health report export and secure link delivery API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize MinIO (report artifact store)
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis (optional, resolve rate limiting)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available, rate limiting disabled: %v", err)
		redisClient = nil
	} else {
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 8. Initialize Kafka producer (optional, report lifecycle events)
	kafkaProducer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka not available, lifecycle events disabled: %v", err)
		kafkaProducer = nil
	} else {
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 10. Initialize Resend mailer
	mailer, err := resend.New(resend.Config{
		APIKey:    cfg.Resend.APIKey,
		FromEmail: cfg.Resend.FromEmail,
		BaseURL:   cfg.Resend.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize mailer: ", err)
		return
	}

	// 11. Initialize PDF engine
	pdfEngine := render.NewExecEngine(cfg.Report.PDFCommand)

	// 12. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Storage Configuration
		MinIO: minioClient,

		// Optional infrastructure
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		Discord:       discordClient,

		// Authentication & Delivery Configuration
		Config:     cfg,
		JWTManager: jwtManager,
		Mailer:     mailer,
		PDFEngine:  pdfEngine,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
