package eperrors

import (
	"errors"
)

// Numeric error codes used in error messages so that
// users can include them when reporting an issue.
const (
	DEV_ERROR = iota + 1000
	OS_ERROR
	UNEXPECTED_ERROR
	INPUT_ERROR
	JSON_ERROR
	RESPONSE_ERROR
	FETCH_ERROR
	SCHEMA_ERROR
	DOWNLOAD_ERROR
	WRITE_ERROR
	CAPTURE_ERROR
)

var (
	ErrSkipLine = errors.New("skip line")

	// ErrEmptyPayload is returned when an asset endpoint responds
	// with 200 OK but an empty body. The asset is recorded as failed
	// instead of leaving a zero-byte file behind.
	ErrEmptyPayload = errors.New("asset payload was empty")

	ErrCaptureTimeout = errors.New("metadata request was not captured before the timeout")
)
