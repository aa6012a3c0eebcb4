package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial connection ping.
	DefaultConnectTimeout = 5 * time.Second
)
