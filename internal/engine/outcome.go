package engine

import "github.com/roach88/ward/internal/auth"

// OutcomeKind selects the stack transition the Navigator applies.
type OutcomeKind int

const (
	// KindStay leaves the stack unchanged. Field errors stay on the screen.
	KindStay OutcomeKind = iota

	// KindPush enters Next on top of the current screen.
	KindPush

	// KindReplace swaps the current screen for Next.
	KindReplace

	// KindPop returns to the screen below, which re-fetches its data.
	KindPop

	// KindQuit ends the run loop.
	KindQuit

	// KindError shows Err in the current screen's banner.
	KindError
)

var outcomeNames = [...]string{"stay", "push", "replace", "pop", "quit", "error"}

// String returns the lowercase kind name used in logs and traces.
func (k OutcomeKind) String() string {
	if int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return "unknown"
}

// Outcome is a screen's answer to exactly one event.
type Outcome struct {
	Kind OutcomeKind

	// Next is the screen to enter for KindPush and KindReplace.
	Next Screen

	// Err is the failure shown for KindError.
	Err error

	// Session, when set, becomes the active session before the
	// transition is checked by the guard.
	Session *auth.Session

	// EndSession clears the active session.
	EndSession bool

	// Notice is a success message for whichever screen ends up active.
	Notice string
}

// Stay keeps the current screen.
func Stay() Outcome { return Outcome{Kind: KindStay} }

// Push enters s on top of the stack.
func Push(s Screen) Outcome { return Outcome{Kind: KindPush, Next: s} }

// Replace swaps the top of the stack for s.
func Replace(s Screen) Outcome { return Outcome{Kind: KindReplace, Next: s} }

// Pop leaves the current screen.
func Pop() Outcome { return Outcome{Kind: KindPop} }

// Quit ends the application.
func Quit() Outcome { return Outcome{Kind: KindQuit} }

// Fail reports err on the current screen without changing the stack.
func Fail(err error) Outcome { return Outcome{Kind: KindError, Err: err} }

// WithSession attaches a freshly issued session.
func (o Outcome) WithSession(s auth.Session) Outcome {
	o.Session = &s
	return o
}

// WithEndSession marks the outcome as a logout.
func (o Outcome) WithEndSession() Outcome {
	o.EndSession = true
	return o
}

// WithNotice attaches a success message.
func (o Outcome) WithNotice(msg string) Outcome {
	o.Notice = msg
	return o
}
