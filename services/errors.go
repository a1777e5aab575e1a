package services

import "errors"

// Failure taxonomy raised by the service layer. Controllers translate these
// to HTTP status codes; wrap with fmt.Errorf("%w: ...") to add detail.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrItemUnavailable  = errors.New("item unavailable")
	ErrInvalidState     = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
)
