package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EmailReportLink - Handler cho POST /reports/email-link
// @Summary Email a tokenized report link
// @Description Renders a PDF report for the caller's data window, stores it privately and emails a single-use link
// @Tags Reports
// @Accept json
// @Produce json
// @Param body body emailReportLinkReq true "Report window and recipient"
// @Success 200 {object} emailReportLinkResp
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reports/email-link [post]
func (h *handler) EmailReportLink(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processEmailReportLinkReq(c)
	if err != nil {
		if err == errScopeNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.EmailReportLink(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.EmailReportLink: EmailReportLink failed: %v", err)
		h.notifyUnexpected(c, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.newEmailReportLinkResp(output))
}

// ResolveReportLink - Handler cho GET /reports/r/:token
// @Summary Resolve a report link token
// @Description Exchanges a raw link token for a short-lived signed download URL and redirects to it
// @Tags Reports
// @Produce plain
// @Param token path string true "Raw link token"
// @Success 302
// @Failure 400 {string} string "Missing token"
// @Failure 404 {string} string "Link not found"
// @Failure 410 {string} string "Link revoked or expired"
// @Router /reports/r/{token} [get]
func (h *handler) ResolveReportLink(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ResolveReportLink(ctx, resolveInput(c.Param("token")))
	if err != nil {
		status, msg := h.mapResolveError(err)
		if status == http.StatusInternalServerError {
			h.l.Errorf(ctx, "report.delivery.http.ResolveReportLink: ResolveReportLink failed: %v", err)
			h.notifyUnexpected(c, err)
		}
		c.String(status, msg)
		return
	}

	c.Redirect(http.StatusFound, output.SignedURL)
}

// RevokeReportLink - Handler cho POST /reports/revoke/:id
// @Summary Revoke a report link
// @Description Permanently closes the caller's report link
// @Tags Reports
// @Produce json
// @Param id path string true "Report export ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reports/revoke/{id} [post]
func (h *handler) RevokeReportLink(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c, "RevokeReportLink")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.uc.RevokeReportLink(ctx, sc, revokeInput(c.Param("id"))); err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		h.l.Errorf(ctx, "report.delivery.http.RevokeReportLink: RevokeReportLink failed: %v", err)
		h.notifyUnexpected(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListReportExports - Handler cho GET /reports/exports
// @Summary List the caller's report exports
// @Description Returns the caller's export ledger rows, most recent first. Token hashes and storage paths are never included
// @Tags Reports
// @Produce json
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {array} reportExportResp
// @Failure 401 {object} map[string]string
// @Router /reports/exports [get]
func (h *handler) ListReportExports(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c, "ListReportExports")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	outputs, err := h.uc.ListReportExports(ctx, sc, listInput(h.processLimit(c)))
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReportExports: ListReportExports failed: %v", err)
		h.notifyUnexpected(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, h.newListReportExportsResp(outputs))
}
