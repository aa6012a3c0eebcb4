package http

import (
	"time"

	"lungtracker-srv/internal/report"
)

// =====================================================
// Request DTOs
// =====================================================

// emailReportLinkReq - Request body cho EmailReportLink
type emailReportLinkReq struct {
	RangeStart     time.Time `json:"rangeStart"`
	RangeEnd       time.Time `json:"rangeEnd"`
	RecipientEmail string    `json:"recipientEmail"`
}

// toInput - Convert to UseCase input
func (r emailReportLinkReq) toInput() report.EmailReportLinkInput {
	return report.EmailReportLinkInput{
		RangeStart:     r.RangeStart,
		RangeEnd:       r.RangeEnd,
		RecipientEmail: r.RecipientEmail,
	}
}

func resolveInput(token string) report.ResolveReportLinkInput {
	return report.ResolveReportLinkInput{Token: token}
}

func revokeInput(id string) report.RevokeReportLinkInput {
	return report.RevokeReportLinkInput{ReportID: id}
}

func listInput(limit int) report.ListReportExportsInput {
	return report.ListReportExportsInput{Limit: limit}
}

// =====================================================
// Response DTOs
// =====================================================

// emailReportLinkResp - Response cho EmailReportLink
type emailReportLinkResp struct {
	OK        bool   `json:"ok"`
	DevLink   string `json:"devLink,omitempty"`
	ExpiresAt string `json:"expiresAt"`
}

// newEmailReportLinkResp - Convert UseCase output to response
func (h *handler) newEmailReportLinkResp(output report.EmailReportLinkOutput) emailReportLinkResp {
	return emailReportLinkResp{
		OK:        true,
		DevLink:   output.DevLink,
		ExpiresAt: output.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// reportExportResp - Sanitized ledger row for ListReportExports
type reportExportResp struct {
	ID             string  `json:"id"`
	RangeStart     string  `json:"rangeStart"`
	RangeEnd       string  `json:"rangeEnd"`
	RecipientEmail string  `json:"recipientEmail"`
	Status         string  `json:"status"`
	SentAt         string  `json:"sentAt"`
	ExpiresAt      string  `json:"expiresAt"`
	DownloadedAt   *string `json:"downloadedAt"`
	RevokedAt      *string `json:"revokedAt"`
}

// newListReportExportsResp - Convert UseCase outputs to response rows
func (h *handler) newListReportExportsResp(outputs []report.ReportExportOutput) []reportExportResp {
	resp := make([]reportExportResp, 0, len(outputs))
	for _, output := range outputs {
		resp = append(resp, reportExportResp{
			ID:             output.ID,
			RangeStart:     output.RangeStart.UTC().Format(time.RFC3339),
			RangeEnd:       output.RangeEnd.UTC().Format(time.RFC3339),
			RecipientEmail: output.RecipientEmail,
			Status:         output.Status,
			SentAt:         output.SentAt.UTC().Format(time.RFC3339),
			ExpiresAt:      output.ExpiresAt.UTC().Format(time.RFC3339),
			DownloadedAt:   formatTimePtr(output.DownloadedAt),
			RevokedAt:      formatTimePtr(output.RevokedAt),
		})
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
