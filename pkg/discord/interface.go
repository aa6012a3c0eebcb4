package discord

import (
	"context"

	"lungtracker-srv/pkg/log"
)

// IDiscord defines the interface for the Discord webhook alert service.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendSuccess(ctx context.Context, title, description string) error
	SendWarning(ctx context.Context, title, description string) error
	SendInfo(ctx context.Context, title, description string) error
	GetWebhookURL() string
	Close() error
}

// DiscordWebhook contains webhook information for the Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
