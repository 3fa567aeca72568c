package engine

import (
	"context"

	"github.com/roach88/ward/internal/auth"
	"github.com/roach88/ward/internal/store"
	"github.com/roach88/ward/internal/validate"
)

// Screen is one interactive view on the navigation stack.
//
// HandleEvent must return exactly one Outcome per event. Layout must not
// mutate the screen.
type Screen interface {
	// Name is a stable identifier such as "login" or "patients.add".
	Name() string

	// Protected screens require an active session.
	Protected() bool

	// Enter loads fresh store-backed state. It runs when the screen is
	// pushed and again whenever it becomes active after a Pop.
	Enter(ctx context.Context, env Env) error

	HandleEvent(ctx context.Context, env Env, ev Event) Outcome

	Layout() Layout

	// SetBanner shows an error message; "" clears it.
	SetBanner(msg string)

	// SetNotice shows a success message; "" clears it.
	SetNotice(msg string)
}

// Env is what screens may use while handling a call.
// Screens must not retain it between calls.
type Env struct {
	Store   *store.Store
	Auth    *auth.Service
	Rules   validate.Rules
	Session *auth.Session
}
