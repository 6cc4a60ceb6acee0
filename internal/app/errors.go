package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	for err != nil {
		if ire, ok := err.(invalidReqErr); ok {
			return ire.IsInvalidRequest()
		}
		err = unwrap(err)
	}

	return false
}

// NotFoundError is special error type returned when requested data doesn't exist
type NotFoundError string

// Error implements error interface
func (e NotFoundError) Error() string {
	return string(e)
}

// IsNotFound tells that this error is 'not found'.
// Returns always true.
func (NotFoundError) IsNotFound() bool {
	return true
}

// IsNotFoundError checks if given error is caused by missing data
func IsNotFoundError(err error) bool {
	type notFoundErr interface {
		IsNotFound() bool
	}

	for err != nil {
		if nfe, ok := err.(notFoundErr); ok {
			return nfe.IsNotFound()
		}
		err = unwrap(err)
	}

	return false
}

// unwrap follows both Unwrap and Cause chains, so errors wrapped with
// fmt.Errorf %w and with pkg/errors are handled the same way.
func unwrap(err error) error {
	if next := errors.Unwrap(err); next != nil {
		return next
	}
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}
	return nil
}
