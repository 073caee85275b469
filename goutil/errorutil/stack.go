package errorutil

import "github.com/pkg/errors"

// EarliestStackTrace walks the cause chain and returns the stack recorded
// closest to where the error originated.
func EarliestStackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	type causer interface {
		Cause() error
	}

	var earliest errors.StackTrace
	for err != nil {
		var st stackTracer
		if errors.As(err, &st) {
			earliest = st.StackTrace()
		}
		var c causer
		if !errors.As(err, &c) {
			break
		}
		next := c.Cause()
		if next == err {
			break
		}
		err = next
	}
	return earliest
}
