package repository

import "errors"

var (
	ErrExportNotFound     = errors.New("repository: report export not found")
	ErrExportCreateFailed = errors.New("repository: failed to create report export")
	ErrExportUpdateFailed = errors.New("repository: failed to update report export")
)
