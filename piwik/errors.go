package piwik

import "github.com/pkg/errors"

var ErrTooFewArgs = errors.New("at least 2 parameters are required")
var ErrTooManyArgs = errors.New("at most 4 parameters are accepted")
var ErrInvalidValue = errors.New("event value must be numeric")
