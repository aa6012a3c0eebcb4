package resend

import (
	"context"

	pkghttp "lungtracker-srv/pkg/http"
)

// IMailer defines the interface for the transactional email service.
// Implementations are safe for concurrent use.
type IMailer interface {
	Send(ctx context.Context, email SendRequest) error
}

// New creates a new Resend mailer client. Returns the interface.
func New(cfg Config) (IMailer, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.FromEmail == "" {
		return nil, ErrFromEmailRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &mailerImpl{
		config: cfg,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   DefaultRetries,
			RetryWait: DefaultRetryWait,
		}),
	}, nil
}
