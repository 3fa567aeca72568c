// Package engine implements the screen-navigation engine.
//
// A Navigator holds a stack of Screens and the current login session.
// Each key press becomes an Event that is handed to the top screen, which
// answers with exactly one Outcome: stay, push, replace, pop, quit or an
// error for its banner. The Navigator applies the Outcome, enters newly
// active screens so they re-read the store, and enforces the session
// guard.
//
// SESSION GUARD:
//
// A Protected screen may only become or remain active while a session is
// set. When the guard trips, the stack is rebuilt as a single login screen
// and a NavigationGuardError is logged. The error is never rendered.
//
// SEQUENCING:
//
// Every Dispatch takes the next value from a Clock. The seq is attached to
// every navigation log line so a session can be followed in the log file.
package engine
