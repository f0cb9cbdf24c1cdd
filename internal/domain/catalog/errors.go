package catalog

import "errors"

var (
	ErrCodeRequired      = errors.New("catalog item code is required")
	ErrItemRequired      = errors.New("catalog item name is required")
	ErrPesticideNotFound = errors.New("pesticide not found")
	ErrEmptyImport       = errors.New("import contains no rows")
	ErrSyncNotConfigured = errors.New("catalog sync endpoint is not configured")
)
