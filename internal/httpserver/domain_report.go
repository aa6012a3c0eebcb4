package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	healthPostgre "lungtracker-srv/internal/healthdata/repository/postgre"
	"lungtracker-srv/internal/middleware"
	"lungtracker-srv/internal/report"
	reportHTTP "lungtracker-srv/internal/report/delivery/http"
	reportKafka "lungtracker-srv/internal/report/delivery/kafka"
	reportPostgre "lungtracker-srv/internal/report/repository/postgre"
	reportUsecase "lungtracker-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	reportRepo := reportPostgre.New(srv.postgresDB, srv.l)
	healthRepo := healthPostgre.New(srv.postgresDB, srv.l)

	var events report.EventPublisher
	if srv.kafkaProducer != nil {
		events = reportKafka.NewPublisher(srv.kafkaProducer, srv.l)
	}

	uc := reportUsecase.New(reportRepo, healthRepo, srv.minioClient, srv.mailer, srv.pdfEngine, events, srv.l,
		reportUsecase.Config{
			Bucket:        srv.config.MinIO.Bucket,
			BaseURL:       srv.config.Report.BaseURL,
			LinkTTL:       time.Duration(srv.config.Report.LinkTTLSeconds) * time.Second,
			SignedURLTTL:  time.Duration(srv.config.Report.SignedURLTTLSeconds) * time.Second,
			DevReturnLink: srv.config.Report.DevReturnLink,
		})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
