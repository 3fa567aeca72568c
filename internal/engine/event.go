package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key identifies the kind of input event.
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyEsc
	KeyTab
	KeyShiftTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBackspace
	KeyQuit
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyTab:       "tab",
	KeyShiftTab:  "shift+tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyBackspace: "backspace",
	KeyQuit:      "quit",
}

// String returns the key's canonical name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Event is one unit of user input.
type Event struct {
	Key  Key
	Rune rune // set when Key == KeyRune
}

// Rune returns a printable-character event.
func Rune(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// Press returns a non-character key event.
func Press(k Key) Event {
	return Event{Key: k}
}

// Runes converts text into one KeyRune event per character.
func Runes(s string) []Event {
	events := make([]Event, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		events = append(events, Rune(r))
	}
	return events
}

// String renders the event for logs and traces.
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("rune(%q)", e.Rune)
	}
	return e.Key.String()
}

// ParseKey resolves a key name such as "enter" or "shift+tab".
// "ctrl+c" and "ctrl+q" are accepted as aliases for quit.
func ParseKey(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "ctrl+c", "ctrl+q":
		return Press(KeyQuit), nil
	case "space":
		return Rune(' '), nil
	}
	for k, n := range keyNames {
		if n == name && k != KeyRune {
			return Press(k), nil
		}
	}
	return Event{}, fmt.Errorf("unknown key %q", name)
}
