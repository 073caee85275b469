package piwik

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Event is a structured trackEvent call. Name and Value are optional; when
// serialized, trailing absent fields are dropped.
type Event struct {
	Category string
	Action   string
	Name     *string
	Value    *float64
}

func NewEvent(category, action string) Event {
	return Event{Category: category, Action: action}
}

func (e Event) WithName(name string) Event {
	e.Name = lo.ToPtr(name)
	return e
}

func (e Event) WithValue(v float64) Event {
	e.Value = lo.ToPtr(v)
	return e
}

// ParseEvent builds an Event from 2 to 4 positional values:
// category, action, name, value.
func ParseEvent(args ...string) (Event, error) {
	if len(args) < 2 {
		return Event{}, errors.WithStack(ErrTooFewArgs)
	}
	if len(args) > 4 {
		return Event{}, errors.WithStack(ErrTooManyArgs)
	}
	e := NewEvent(args[0], args[1])
	if len(args) > 2 {
		e = e.WithName(args[2])
	}
	if len(args) > 3 {
		v, err := strconv.ParseFloat(args[3], 64)
		// NaN and Inf have no JSON encoding
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Event{}, errors.Wrapf(ErrInvalidValue, "got %q", args[3])
		}
		e = e.WithValue(v)
	}
	return e, nil
}

func (e Event) valid() bool {
	return e.Category != "" && e.Action != ""
}

// args returns exactly the supplied fields in call order.
func (e Event) args() []any {
	args := []any{e.Category, e.Action}
	if e.Name == nil && e.Value == nil {
		return args
	}
	var name any
	if e.Name != nil {
		name = *e.Name
	}
	args = append(args, name)
	if e.Value != nil {
		args = append(args, *e.Value)
	}
	return args
}

// label is the page title used to report the event to trackers without
// event support.
func (e Event) label(domain string) string {
	parts := []string{domain, e.Category, e.Action}
	if e.Name != nil {
		parts = append(parts, *e.Name)
	}
	return strings.ToLower(strings.Join(parts, "/"))
}
