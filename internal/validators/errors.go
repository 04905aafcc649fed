package validators

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidPage   = errors.New("invalid pagination parameters")
)
