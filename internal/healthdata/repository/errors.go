package repository

import "errors"

var (
	ErrFetchFailed = errors.New("repository: failed to fetch health records")
)
