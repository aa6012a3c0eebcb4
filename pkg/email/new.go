package email

import "bytes"

// NewEmail renders the template for the given meta into a ready-to-send Email.
func NewEmail(e EmailMeta, data interface{}) (Email, error) {
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(e.TemplateType),
		Body:      body.String(),
	}, nil
}
