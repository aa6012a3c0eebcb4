package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"lungtracker-srv/config"
	"lungtracker-srv/pkg/discord"
	pkgJWT "lungtracker-srv/pkg/jwt"
	"lungtracker-srv/pkg/kafka"
	"lungtracker-srv/pkg/log"
	"lungtracker-srv/pkg/minio"
	pkgRedis "lungtracker-srv/pkg/redis"
	"lungtracker-srv/pkg/render"
	"lungtracker-srv/pkg/resend"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Storage Configuration
	minioClient minio.MinIO

	// Optional infrastructure (nil when not configured)
	redisClient   pkgRedis.IRedis
	kafkaProducer kafka.IProducer
	discord       discord.IDiscord

	// Authentication & Delivery Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager
	mailer     resend.IMailer
	pdfEngine  render.PDFEngine
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Storage Configuration
	MinIO minio.MinIO

	// Optional infrastructure
	RedisClient   pkgRedis.IRedis
	KafkaProducer kafka.IProducer
	Discord       discord.IDiscord

	// Authentication & Delivery Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager
	Mailer     resend.IMailer
	PDFEngine  render.PDFEngine
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Storage Configuration
		minioClient: cfg.MinIO,

		// Optional infrastructure
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		discord:       cfg.Discord,

		// Authentication & Delivery Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,
		mailer:     cfg.Mailer,
		pdfEngine:  cfg.PDFEngine,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Storage Configuration
	if srv.minioClient == nil {
		return errors.New("minio client is required")
	}

	// Authentication & Delivery Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}
	if srv.pdfEngine == nil {
		return errors.New("pdfEngine is required")
	}

	// redis, kafka and discord are optional

	return nil
}
