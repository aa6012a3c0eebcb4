package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis host is required")
	ErrInvalidPort  = errors.New("redis port must be between 1 and 65535")
)
