package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/ward/internal/auth"
)

// Navigator owns the screen stack and the session.
//
// It is driven from a single goroutine: the renderer calls Dispatch for
// each key and Layout to draw. Nothing here is safe for concurrent use.
type Navigator struct {
	env     Env
	login   func() Screen
	stack   []Screen
	session *auth.Session
	clock   *Clock
	done    bool

	// lastErr is the most recent guard or enter failure, for tests.
	lastErr error
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithClock sets the dispatch sequence clock.
func WithClock(c *Clock) NavigatorOption {
	return func(n *Navigator) {
		n.clock = c
	}
}

// NewNavigator creates a Navigator whose stack holds a single login screen.
//
// login is also used to rebuild the stack whenever the session guard
// trips. env.Session is ignored; the Navigator tracks the session itself.
func NewNavigator(env Env, login func() Screen, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		env:   env,
		login: login,
		clock: NewClock(),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.stack = []Screen{login()}
	return n
}

// Start enters the initial screen.
func (n *Navigator) Start(ctx context.Context) {
	n.enter(ctx, n.Active(), n.clock.Current())
}

// Dispatch routes one event to the active screen and applies its Outcome.
// The returned Outcome is the one that was applied.
func (n *Navigator) Dispatch(ctx context.Context, ev Event) Outcome {
	seq := n.clock.Next()

	if n.done {
		return Quit()
	}

	if ev.Key == KeyQuit {
		n.done = true
		n.logTransition(seq, Quit(), n.Active().Name())
		return Quit()
	}

	if out, tripped := n.guard(ctx, n.Active(), seq); tripped {
		return out
	}

	top := n.Active()
	out := top.HandleEvent(ctx, n.envFor(), ev)
	return n.apply(ctx, out, seq)
}

// apply performs the transition described by out.
func (n *Navigator) apply(ctx context.Context, out Outcome, seq int64) Outcome {
	from := n.Active().Name()

	if out.Session != nil {
		s := *out.Session
		n.session = &s
	}
	if out.EndSession {
		n.session = nil
	}

	switch out.Kind {
	case KindStay:
		// Field errors already live on the screen.

	case KindError:
		msg := ""
		if out.Err != nil {
			msg = out.Err.Error()
		}
		n.Active().SetBanner(msg)

	case KindPush, KindReplace:
		if out.Next == nil {
			slog.Error("transition without a target screen", "kind", out.Kind, "from", from, "seq", seq)
			return Stay()
		}
		if guarded, tripped := n.guard(ctx, out.Next, seq); tripped {
			return guarded
		}
		if out.Kind == KindReplace {
			n.stack = n.stack[:len(n.stack)-1]
		}
		n.stack = append(n.stack, out.Next)
		n.enter(ctx, out.Next, seq)

	case KindPop:
		if len(n.stack) == 1 {
			n.done = true
			out = Quit()
			break
		}
		n.stack = n.stack[:len(n.stack)-1]
		exposed := n.Active()
		if guarded, tripped := n.guard(ctx, exposed, seq); tripped {
			return guarded
		}
		n.enter(ctx, exposed, seq)

	case KindQuit:
		n.done = true
	}

	if out.Notice != "" {
		n.Active().SetNotice(out.Notice)
	}
	if out.Kind != KindStay {
		n.logTransition(seq, out, from)
	}
	return out
}

// guard resets the stack to a fresh login screen when target is protected
// and no session is active.
func (n *Navigator) guard(ctx context.Context, target Screen, seq int64) (Outcome, bool) {
	if !target.Protected() || n.session != nil {
		return Outcome{}, false
	}

	err := &NavigationGuardError{Screen: target.Name(), Seq: seq}
	n.lastErr = err
	slog.Warn("navigation guard tripped", "screen", target.Name(), "depth", len(n.stack), "seq", seq)

	login := n.login()
	n.stack = []Screen{login}
	n.enter(ctx, login, seq)
	return Outcome{Kind: KindReplace, Next: login, Err: err}, true
}

// enter loads a screen's data, routing failures to its banner.
func (n *Navigator) enter(ctx context.Context, s Screen, seq int64) {
	s.SetBanner("")
	if err := s.Enter(ctx, n.envFor()); err != nil {
		n.lastErr = &EnterError{Screen: s.Name(), Err: err}
		slog.Warn("screen enter failed", "screen", s.Name(), "error", err, "seq", seq)
		s.SetBanner(err.Error())
	}
}

func (n *Navigator) envFor() Env {
	env := n.env
	env.Session = n.session
	return env
}

func (n *Navigator) logTransition(seq int64, out Outcome, from string) {
	attrs := []any{
		"kind", out.Kind.String(),
		"from", from,
		"to", n.Active().Name(),
		"depth", len(n.stack),
		"seq", seq,
	}
	if out.Err != nil {
		attrs = append(attrs, "error", out.Err)
	}
	slog.Info("navigation", attrs...)
}

// Layout returns the active screen's snapshot.
func (n *Navigator) Layout() Layout {
	return n.Active().Layout()
}

// Active returns the screen on top of the stack.
func (n *Navigator) Active() Screen {
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// Stack returns the names of the stacked screens, bottom first.
func (n *Navigator) Stack() []string {
	names := make([]string, len(n.stack))
	for i, s := range n.stack {
		names[i] = s.Name()
	}
	return names
}

// Session returns the active session, or nil when logged out.
func (n *Navigator) Session() *auth.Session {
	if n.session == nil {
		return nil
	}
	s := *n.session
	return &s
}

// Done reports whether the application should exit.
func (n *Navigator) Done() bool {
	return n.done
}

// Seq returns the sequence number of the last dispatched event.
func (n *Navigator) Seq() int64 {
	return n.clock.Current()
}

// LastError returns the most recent guard or enter failure.
func (n *Navigator) LastError() error {
	return n.lastErr
}
