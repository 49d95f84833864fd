package errors

import "errors"

// BadRequestError is the validation error raised by use cases. Message is shown to callers verbatim.
type BadRequestError struct {
	Message string
}

// NewBadRequest builds a BadRequestError carrying msg.
func NewBadRequest(msg string) *BadRequestError {
	return &BadRequestError{Message: msg}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// IsBadRequest reports whether err (or anything it wraps) is a BadRequestError.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// AsProblem converts a BadRequestError anywhere in the chain into a 400 problem.
func AsProblem(err error) (ProblemDetail, bool) {
	var target *BadRequestError
	if errors.As(err, &target) {
		return ErrBadRequest.WithDetail(target.Message), true
	}
	return ProblemDetail{}, false
}
