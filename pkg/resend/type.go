package resend

import (
	pkghttp "lungtracker-srv/pkg/http"
)

// Config holds configuration for the Resend client.
type Config struct {
	APIKey    string
	FromEmail string
	BaseURL   string
}

// SendRequest is an outbound email.
type SendRequest struct {
	To      []string
	Subject string
	HTML    string
}

// mailerImpl implements IMailer.
type mailerImpl struct {
	config     Config
	httpClient pkghttp.IClient
}

// sendPayload is the Resend /emails request body.
type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
