package xerrors

import "errors"

// Common reusable application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict: resource already exists")
	ErrInternal     = errors.New("internal server error")
	ErrBadRequest   = errors.New("bad request")
)

// Job lifecycle and quote workflow errors
var (
	ErrInvalidTransition = errors.New("event not permitted from current job status")
	ErrRecordNotFound    = errors.New("no vehicle record matched the scanned plate")
	ErrAmbiguousMatch    = errors.New("scanned plate matched more than one vehicle record")
	ErrInvalidAmount     = errors.New("amount must be a finite value greater than or equal to zero")
	ErrMalformedResponse = errors.New("collaborator returned an unparseable response")
)
