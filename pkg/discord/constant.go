package discord

import "time"

const (
	// webhookURLFormat is the Discord webhook endpoint format.
	webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

	// DefaultTimeout is the HTTP timeout for webhook requests.
	DefaultTimeout = 10 * time.Second
	// DefaultUsername is the webhook display name.
	DefaultUsername = "lungtracker-srv"
)

// Embed colors per message type.
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         DefaultTimeout,
		DefaultUsername: DefaultUsername,
	}
}
