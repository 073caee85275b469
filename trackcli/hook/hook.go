package hook

import (
	"context"

	"github.com/pkg/errors"
	"go.jetpack.io/trackpad/trackcli/provider"
)

type commandStartHook func(configPath string) error

// Initializer runs around a provider's Initialize. Pre initializers may queue
// commands that must come before the tracker setup, post initializers ones
// that must come after it.
type Initializer func(ctx context.Context, a provider.Analytics) error

type Hooks struct {
	commandStartHook commandStartHook

	preInitializers  []Initializer
	postInitializers []Initializer
}

type hookOption func(*Hooks)

func New(opts ...hookOption) *Hooks {
	h := &Hooks{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func WithCommandStartHook(h commandStartHook) hookOption {
	return func(hooks *Hooks) {
		hooks.commandStartHook = h
	}
}

func WithPreInitializer(i Initializer) hookOption {
	return func(hooks *Hooks) {
		hooks.AddPreInitializer(i)
	}
}

func WithPostInitializer(i Initializer) hookOption {
	return func(hooks *Hooks) {
		hooks.AddPostInitializer(i)
	}
}

func (h *Hooks) AddPreInitializer(i Initializer) {
	h.preInitializers = append(h.preInitializers, i)
}

func (h *Hooks) AddPostInitializer(i Initializer) {
	h.postInitializers = append(h.postInitializers, i)
}

func (h *Hooks) CommandStart(configPath string) error {
	if h == nil || h.commandStartHook == nil {
		return nil
	}
	return h.commandStartHook(configPath)
}

// Initialize runs the pre initializers, a.Initialize and the post
// initializers, in registration order. A failing pre initializer stops
// before anything else runs.
func (h *Hooks) Initialize(ctx context.Context, a provider.Analytics) error {
	if h != nil {
		for _, i := range h.preInitializers {
			if err := i(ctx, a); err != nil {
				return errors.Wrapf(err, "pre initializer failed for tracker %q", a.Name())
			}
		}
	}

	a.Initialize()

	if h != nil {
		for _, i := range h.postInitializers {
			if err := i(ctx, a); err != nil {
				return errors.Wrapf(err, "post initializer failed for tracker %q", a.Name())
			}
		}
	}
	return nil
}
