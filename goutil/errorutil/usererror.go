package errorutil

import (
	"fmt"

	"github.com/pkg/errors"
)

// userError carries a message that is safe to show to the person running the
// CLI as is.
type userError struct {
	error
}

// combinedError pairs an internal cause with a user facing message. Error()
// returns both, Is matches either, and %+v prints the cause's stack.
type combinedError struct {
	cause   error
	message *userError
}

func NewUserError(msg string) error {
	return &userError{error: errors.New(msg)}
}

func NewUserErrorf(msg string, args ...any) error {
	return &userError{error: errors.Errorf(msg, args...)}
}

// AddUserMessagef attaches a user message to err. Errors that already carry
// one are returned unchanged.
func AddUserMessagef(err error, msg string, args ...any) error {
	if err == nil || hasUserError(err) {
		return err
	}
	return &combinedError{
		cause:   err,
		message: &userError{error: errors.Errorf(msg, args...)},
	}
}

// ConvertToUserError marks err's own message as fit for the user.
func ConvertToUserError(err error) error {
	if err == nil {
		return nil
	}
	return AddUserMessagef(err, "%s", err.Error())
}

// GetUserErrorMessage returns the user message carried by err, or "".
func GetUserErrorMessage(err error) string {
	ce := &combinedError{}
	if errors.As(err, &ce) {
		return ce.message.Error()
	}
	ue := &userError{}
	if errors.As(err, &ue) {
		return ue.Error()
	}
	return ""
}

func (e *combinedError) Error() string {
	return e.message.Error() + ": " + e.cause.Error()
}

func (e *combinedError) Is(target error) bool {
	return errors.Is(e.cause, target) || errors.Is(e.message, target)
}

func (e *combinedError) Unwrap() error { return e.cause }

func (e *combinedError) Cause() error { return errors.Cause(e.cause) }

func (e *combinedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.message.Error(), e.cause)
		return
	}
	fmt.Fprint(s, e.Error())
}

func hasUserError(err error) bool {
	ce := &combinedError{}
	ue := &userError{}
	return errors.As(err, &ce) || errors.As(err, &ue)
}
