package report

import "errors"

var (
	ErrRangeRequired    = errors.New("rangeStart and rangeEnd are required")
	ErrInvalidRange     = errors.New("rangeEnd must not be before rangeStart")
	ErrInvalidRecipient = errors.New("recipientEmail must be a valid email address")
	ErrTokenRequired    = errors.New("token is required")
	ErrLinkNotFound     = errors.New("link not found")
	ErrLinkRevoked      = errors.New("link revoked")
	ErrLinkExpired      = errors.New("link expired")
	ErrExportNotFound   = errors.New("report export not found")
	ErrResolveFailed    = errors.New("failed to resolve report link")
	ErrListFailed       = errors.New("failed to list report exports")
)
