package tracklog

import "io"

// New returns a logger for user facing CLI output written to w.
func New(w io.Writer) *logger {
	return &logger{writer: w}
}
