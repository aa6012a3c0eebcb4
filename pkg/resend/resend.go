package resend

import (
	"context"
	"fmt"
	"net/http"
)

// Send delivers one email through the Resend REST API.
func (m *mailerImpl) Send(ctx context.Context, email SendRequest) error {
	if len(email.To) == 0 {
		return ErrRecipientRequired
	}

	payload := sendPayload{
		From:    m.config.FromEmail,
		To:      email.To,
		Subject: email.Subject,
		HTML:    email.HTML,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + m.config.APIKey,
	}

	body, statusCode, err := m.httpClient.Post(ctx, m.config.BaseURL+PathEmails, payload, headers)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return fmt.Errorf("resend: unexpected status code %d: %s", statusCode, string(body))
	}

	return nil
}
