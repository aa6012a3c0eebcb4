package usecase

import (
	"time"

	healthrepo "lungtracker-srv/internal/healthdata/repository"
	"lungtracker-srv/internal/report"
	"lungtracker-srv/internal/report/repository"
	"lungtracker-srv/pkg/log"
	"lungtracker-srv/pkg/minio"
	"lungtracker-srv/pkg/render"
	"lungtracker-srv/pkg/resend"
)

const (
	defaultBucket       = "reports"
	defaultLinkTTL      = time.Hour
	defaultSignedURLTTL = 5 * time.Minute
)

// Config holds configuration for the report link lifecycle.
type Config struct {
	Bucket        string
	BaseURL       string
	LinkTTL       time.Duration
	SignedURLTTL  time.Duration
	DevReturnLink bool
}

type implUseCase struct {
	repo       repository.PostgresRepository
	healthRepo healthrepo.PostgresRepository
	minio      minio.MinIO
	mailer     resend.IMailer
	pdf        render.PDFEngine
	events     report.EventPublisher
	l          log.Logger
	config     Config
}

// New creates a new report UseCase implementation. events may be nil when no
// event stream is configured.
func New(
	repo repository.PostgresRepository,
	healthRepo healthrepo.PostgresRepository,
	minioClient minio.MinIO,
	mailer resend.IMailer,
	pdf render.PDFEngine,
	events report.EventPublisher,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.Bucket == "" {
		cfg.Bucket = defaultBucket
	}
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = defaultLinkTTL
	}
	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = defaultSignedURLTTL
	}

	return &implUseCase{
		repo:       repo,
		healthRepo: healthRepo,
		minio:      minioClient,
		mailer:     mailer,
		pdf:        pdf,
		events:     events,
		l:          l,
		config:     cfg,
	}
}
