package resend

import "time"

const (
	// DefaultBaseURL is the Resend API endpoint.
	DefaultBaseURL = "https://api.resend.com"
	// PathEmails is the send-email path.
	PathEmails = "/emails"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the number of retries on transport/5xx failures.
	DefaultRetries = 2
	// DefaultRetryWait is the wait between retries.
	DefaultRetryWait = 1 * time.Second
)
