package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lungtracker-srv/internal/report"
)

// Resolve responses are plain text so a link pasted into a browser shows a
// readable message instead of a JSON blob.
const (
	msgMissingToken  = "Missing token"
	msgLinkNotFound  = "Link not found"
	msgLinkRevoked   = "Link revoked"
	msgLinkExpired   = "Link expired"
	msgInternalError = "Internal error"
)

func (h *handler) mapResolveError(err error) (int, string) {
	switch {
	case errors.Is(err, report.ErrTokenRequired):
		return http.StatusBadRequest, msgMissingToken
	case errors.Is(err, report.ErrLinkNotFound):
		return http.StatusNotFound, msgLinkNotFound
	case errors.Is(err, report.ErrLinkRevoked):
		return http.StatusGone, msgLinkRevoked
	case errors.Is(err, report.ErrLinkExpired):
		return http.StatusGone, msgLinkExpired
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, report.ErrExportNotFound)
}

// validation sentinels describe caller mistakes; everything else is an
// operational failure worth alerting on.
func isValidationError(err error) bool {
	return errors.Is(err, report.ErrRangeRequired) ||
		errors.Is(err, report.ErrInvalidRange) ||
		errors.Is(err, report.ErrInvalidRecipient)
}

func (h *handler) notifyUnexpected(c *gin.Context, err error) {
	if h.discord == nil || isValidationError(err) {
		return
	}
	_ = h.discord.SendError(context.Background(), "Report operation failed",
		fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path), err)
}
