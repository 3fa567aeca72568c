package screens

import (
	"github.com/roach88/ward/internal/engine"
)

type dialogResult int

const (
	dialogPending dialogResult = iota
	dialogYes
	dialogNo
)

// confirm is a modal Yes/No question. No is focused when it opens.
type confirm struct {
	open    bool
	message string
	yes     bool
}

func (c *confirm) ask(msg string) {
	c.open = true
	c.message = msg
	c.yes = false
}

func (c *confirm) close() {
	c.open = false
	c.message = ""
}

// handle consumes one event while the dialog is open.
func (c *confirm) handle(ev engine.Event) dialogResult {
	switch ev.Key {
	case engine.KeyLeft, engine.KeyRight, engine.KeyTab, engine.KeyShiftTab:
		c.yes = !c.yes
	case engine.KeyRune:
		switch ev.Rune {
		case 'y', 'Y':
			c.close()
			return dialogYes
		case 'n', 'N':
			c.close()
			return dialogNo
		}
	case engine.KeyEnter:
		yes := c.yes
		c.close()
		if yes {
			return dialogYes
		}
		return dialogNo
	case engine.KeyEsc:
		c.close()
		return dialogNo
	}
	return dialogPending
}

func (c *confirm) layout() *engine.Dialog {
	if !c.open {
		return nil
	}
	return &engine.Dialog{Message: c.message, YesFocused: c.yes}
}
