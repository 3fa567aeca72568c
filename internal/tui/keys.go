package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/ward/internal/engine"
)

var keyMap = map[tea.KeyType]engine.Key{
	tea.KeyEnter:     engine.KeyEnter,
	tea.KeyEsc:       engine.KeyEsc,
	tea.KeyTab:       engine.KeyTab,
	tea.KeyShiftTab:  engine.KeyShiftTab,
	tea.KeyUp:        engine.KeyUp,
	tea.KeyDown:      engine.KeyDown,
	tea.KeyLeft:      engine.KeyLeft,
	tea.KeyRight:     engine.KeyRight,
	tea.KeyBackspace: engine.KeyBackspace,
	tea.KeyCtrlC:     engine.KeyQuit,
	tea.KeyCtrlQ:     engine.KeyQuit,
}

// Translate converts a terminal key message into engine events.
// Pasted text yields one event per rune; unmapped keys yield none.
func Translate(msg tea.KeyMsg) []engine.Event {
	switch msg.Type {
	case tea.KeyRunes:
		events := make([]engine.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, engine.Rune(r))
		}
		return events
	case tea.KeySpace:
		return []engine.Event{engine.Rune(' ')}
	}
	if k, ok := keyMap[msg.Type]; ok {
		return []engine.Event{engine.Press(k)}
	}
	return nil
}
