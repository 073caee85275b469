// Package semver compares release numbers of the vendor tracker script.
//
// It wraps golang.org/x/mod/semver with two differences:
//  1. the leading "v" is optional, so "2.16.0" and "v2.16.0" are the same
//  2. invalid values are errors instead of comparing less than valid ones
package semver

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

var errInvalidValue = errors.New("invalid semver value")

func canonical(v string) (string, error) {
	c := strings.TrimSpace(v)
	if !strings.HasPrefix(c, "v") {
		c = "v" + c
	}
	if !semver.IsValid(c) {
		return "", errors.Wrapf(errInvalidValue, "%q", v)
	}
	return c, nil
}

// Compare returns:
// -1 if v < w, 0 if v == w, or +1 if v > w.
func Compare(v string, w string) (int, error) {
	cv, err := canonical(v)
	if err != nil {
		return 0, errors.Wrap(err, "first value")
	}
	cw, err := canonical(w)
	if err != nil {
		return 0, errors.Wrap(err, "second value")
	}
	return semver.Compare(cv, cw), nil
}

// AtLeast reports whether v is min or newer.
func AtLeast(v string, min string) (bool, error) {
	cmp, err := Compare(v, min)
	return cmp >= 0, err
}

func IsValid(v string) bool {
	_, err := canonical(v)
	return err == nil
}
