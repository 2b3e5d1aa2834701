package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/goodservices/internal/repositories"
)

// Error taxonomy. Every error returned by a service wraps exactly one of these.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrReference       = errors.New("invalid reference")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Specific failures reported to callers.
var (
	ErrRequestNotFound       = fmt.Errorf("%w: service request not found", ErrNotFound)
	ErrResponseNotFound      = fmt.Errorf("%w: service response not found", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrNotRequestOwner       = fmt.Errorf("%w: only the publisher may modify this request", ErrForbidden)
	ErrNotResponseOwner      = fmt.Errorf("%w: only the responder may modify this response", ErrForbidden)
	ErrNotPublisher          = fmt.Errorf("%w: only the publisher may accept or reject responses", ErrForbidden)
	ErrOwnRequest            = fmt.Errorf("%w: cannot respond to your own request", ErrForbidden)
	ErrAdminOnly             = fmt.Errorf("%w: admin role required", ErrForbidden)
	ErrRequestHasResponses   = fmt.Errorf("%w: request already has responses", ErrConflict)
	ErrRequestCancelled      = fmt.Errorf("%w: request is cancelled", ErrConflict)
	ErrRequestAlreadyMatched = fmt.Errorf("%w: request already has an accepted response", ErrConflict)
	ErrResponseProcessed     = fmt.Errorf("%w: response already processed", ErrConflict)
	ErrUsernameTaken         = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrPhoneTaken            = fmt.Errorf("%w: phone already registered", ErrConflict)
	ErrIDNumberTaken         = fmt.Errorf("%w: id number already registered", ErrConflict)
	ErrInvalidCredentials    = fmt.Errorf("%w: invalid username or password", ErrUnauthenticated)
	ErrWrongPassword         = fmt.Errorf("%w: old password is incorrect", ErrValidation)
	ErrUnknownCity           = fmt.Errorf("%w: city does not exist", ErrReference)
	ErrUnknownServiceType    = fmt.Errorf("%w: service type does not exist", ErrReference)
)

// validationError wraps ErrValidation with the offending field.
func validationError(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, msg)
}

// userConflict translates a unique violation on the users table.
func userConflict(err error) error {
	switch repositories.ConstraintName(err) {
	case repositories.ConstraintUsername:
		return ErrUsernameTaken
	case repositories.ConstraintPhone:
		return ErrPhoneTaken
	case repositories.ConstraintIDNumber:
		return ErrIDNumberTaken
	}
	return fmt.Errorf("%w: %v", ErrConflict, err)
}
