package http

import (
	"github.com/gin-gonic/gin"

	"lungtracker-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	// Link resolution is public: the token in the path is the credential.
	r.GET("/r/:token", mw.RateLimit("report-resolve"), h.ResolveReportLink)

	authed := r.Group("")
	authed.Use(mw.Auth())
	{
		authed.POST("/email-link", h.EmailReportLink)
		authed.POST("/revoke/:id", h.RevokeReportLink)
		authed.GET("/exports", h.ListReportExports)
	}
}
