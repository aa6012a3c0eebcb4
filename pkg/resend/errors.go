package resend

import "errors"

var (
	ErrAPIKeyRequired    = errors.New("resend: api key is required")
	ErrFromEmailRequired = errors.New("resend: from email is required")
	ErrRecipientRequired = errors.New("resend: at least one recipient is required")
)
