package service

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// apiError carries a caller-facing message while staying matchable with
// errors.Is against the sentinels above.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

func validation(msg string) error {
	return &apiError{kind: ErrValidation, msg: msg}
}

func conflict(msg string) error {
	return &apiError{kind: ErrConflict, msg: msg}
}

func notFound(msg string) error {
	return &apiError{kind: ErrNotFound, msg: msg}
}
