package errors

import "errors"

var (
	ErrMissingCredentials = errors.New("missing api credentials")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInputArtifact      = errors.New("input artifact unreadable")
	ErrClassification     = errors.New("classification backend failure")
	ErrReportWrite        = errors.New("report write failed")
	ErrExternal           = errors.New("external service error")
)
