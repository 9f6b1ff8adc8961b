package errs

import (
	"errors"
)

// UserFacingError is an error whose message is intended for the user, as
// opposed to logs or debugging output.
type UserFacingError interface {
	error
	UserError() string
}

// ErrorTipper is an error carrying followup suggestions for the user.
type ErrorTipper interface {
	ErrorTips() []string
}

type ErrOpt func(err *userFacingError)

type userFacingError struct {
	wrapped error
	message string
	input   bool
	tips    []string
}

func (e *userFacingError) Error() string {
	return "User Facing Error: " + e.UserError()
}

func (e *userFacingError) UserError() string {
	return e.message
}

func (e *userFacingError) ErrorTips() []string {
	return e.tips
}

func (e *userFacingError) InputError() bool {
	return e.input
}

func (e *userFacingError) Unwrap() error {
	return e.wrapped
}

func NewUserFacing(message string, opts ...ErrOpt) *userFacingError {
	return WrapUserFacing(nil, message, opts...)
}

func WrapUserFacing(wrapTarget error, message string, opts ...ErrOpt) *userFacingError {
	err := &userFacingError{
		wrapTarget,
		message,
		false,
		nil,
	}

	for _, opt := range opts {
		opt(err)
	}

	return err
}

func IsUserFacing(err error) bool {
	var userFacingError UserFacingError
	return errors.As(err, &userFacingError)
}

// SetIf is a helper for setting options if some conditional evaluated to true.
// Mainly intended for setting tips without having to evaluate the conditional
// outside of NewUserFacing/WrapUserFacing.
func SetIf(evaluated bool, opt ErrOpt) ErrOpt {
	if evaluated {
		return opt
	}
	return func(err *userFacingError) {}
}

func SetTips(tips ...string) ErrOpt {
	return func(err *userFacingError) {
		err.tips = append(err.tips, tips...)
	}
}

func SetInput() ErrOpt {
	return func(err *userFacingError) {
		err.input = true
	}
}

// InputError checks the full error chain for an error marked as input error.
func InputError(err error) bool {
	type inputError interface {
		InputError() bool
	}
	for _, err := range Unpack(err) {
		if ierr, ok := err.(inputError); ok && ierr.InputError() {
			return true
		}
	}
	return false
}
