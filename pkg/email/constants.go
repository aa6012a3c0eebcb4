package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	// ReportLinkTemplate is the tokenized report download link email.
	ReportLinkTemplate = "report_link"
)
