package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return d.send(ctx, WebhookPayload{
		Username: username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: options.Description,
			Color:       colorForType(options.Type),
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeSuccess, Title: title, Description: description})
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeWarning, Title: title, Description: description})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: webhook request failed: %v", err)
		return errSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		d.l.Warnf(ctx, "discord.send: webhook returned status %d", resp.StatusCode)
		return errSendFailed
	}
	return nil
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
