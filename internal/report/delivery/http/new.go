package http

import (
	"github.com/gin-gonic/gin"

	"lungtracker-srv/internal/middleware"
	"lungtracker-srv/internal/report"
	"lungtracker-srv/pkg/discord"
	"lungtracker-srv/pkg/log"
)

// Handler defines the HTTP handler interface
type Handler interface {
	EmailReportLink(c *gin.Context)
	ResolveReportLink(c *gin.Context)
	RevokeReportLink(c *gin.Context)
	ListReportExports(c *gin.Context)
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

// handler - HTTP handler implementation
type handler struct {
	l       log.Logger
	uc      report.UseCase
	discord discord.IDiscord
}

// New creates a new HTTP handler
func New(l log.Logger, uc report.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: d,
	}
}
