package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"lungtracker-srv/internal/model"
	"lungtracker-srv/pkg/paginator"
	"lungtracker-srv/pkg/scope"
)

var errScopeNotFound = errors.New("scope not found")

func (h *handler) processEmailReportLinkReq(c *gin.Context) (emailReportLinkReq, model.Scope, error) {
	var req emailReportLinkReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processEmailReportLinkReq: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	if sc.UserID == "" {
		h.l.Errorf(ctx, "report.delivery.http.processEmailReportLinkReq: GetScopeFromContext failed: scope not found")
		return req, model.Scope{}, errScopeNotFound
	}

	return req, sc, nil
}

func (h *handler) processScope(c *gin.Context, op string) (model.Scope, error) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)
	if sc.UserID == "" {
		h.l.Errorf(ctx, "report.delivery.http.%s: GetScopeFromContext failed: scope not found", op)
		return model.Scope{}, errScopeNotFound
	}
	return sc, nil
}

// processLimit reads the limit query param. Absent or unparsable values fall
// back to the default page size; range clamping happens in the usecase.
func (h *handler) processLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return paginator.DefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return paginator.DefaultLimit
	}
	return limit
}
