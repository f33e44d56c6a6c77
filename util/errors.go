package util

import "errors"

const (
	ERROR_BAD_SOURCE_PATH = 201
	ERROR_BAD_REPOSITORY  = 202
	ERROR_BAD_OUTPUT_PATH = 203
	ERROR_BAD_ENCODING    = 204
	ERROR_NO_REVISION     = 205
	ERROR_FILE_NOT_FOUND  = 206
	ERROR_BAD_OPERATION   = 207
	ERROR_BAD_PATTERN     = 208
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

// StatusCode returns the exit status carried by err or anything it wraps,
// or 1 when there is none.
func StatusCode(err error) int {
	var withCodePtr *ErrorWithCode
	if errors.As(err, &withCodePtr) {
		return withCodePtr.StatusCode
	}
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.StatusCode
	}
	return 1
}
