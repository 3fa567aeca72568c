package screens

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/roach88/ward/internal/engine"
	"github.com/roach88/ward/internal/validate"
)

type fieldKind int

const (
	textField fieldKind = iota
	secretField
	choiceField
)

type field struct {
	key     string
	label   string
	kind    fieldKind
	choices []string
	value   string
}

func text(key, label string) *field {
	return &field{key: key, label: label, kind: textField}
}

func secret(key, label string) *field {
	return &field{key: key, label: label, kind: secretField}
}

func choice(key, label string, choices []string) *field {
	return &field{key: key, label: label, kind: choiceField, choices: choices}
}

// cycle moves a choice field to the next (step=1) or previous (step=-1) value.
func (fl *field) cycle(step int) {
	if len(fl.choices) == 0 {
		return
	}
	idx := -1
	for i, c := range fl.choices {
		if c == fl.value {
			idx = i
		}
	}
	if idx < 0 {
		if step > 0 {
			fl.value = fl.choices[0]
		} else {
			fl.value = fl.choices[len(fl.choices)-1]
		}
		return
	}
	n := len(fl.choices)
	fl.value = fl.choices[(idx+step+n)%n]
}

// button is a focusable action row under the fields.
type button struct {
	label string

	// action runs when the button is pressed. Nil means submit.
	action func() engine.Outcome
}

type formAction int

const (
	formNone formAction = iota
	formSubmit
	formCancel
	formPressed
)

// form is an ordered set of editable fields followed by buttons.
// Focus moves over fields and buttons as one ring.
type form struct {
	fields  []*field
	buttons []button
	focus   int
	errs    validate.Errors
	pressed int
}

func newForm(fields []*field, buttons ...button) *form {
	return &form{fields: fields, buttons: buttons}
}

func (f *form) size() int {
	return len(f.fields) + len(f.buttons)
}

func (f *form) focused() *field {
	if f.focus < len(f.fields) {
		return f.fields[f.focus]
	}
	return nil
}

func (f *form) move(step int) {
	n := f.size()
	if n == 0 {
		return
	}
	f.focus = (f.focus + step + n) % n
}

// handle applies one key to the form and reports what the screen should do.
func (f *form) handle(ev engine.Event) formAction {
	switch ev.Key {
	case engine.KeyTab, engine.KeyDown:
		f.move(1)
	case engine.KeyShiftTab, engine.KeyUp:
		f.move(-1)
	case engine.KeyEsc:
		return formCancel
	case engine.KeyEnter:
		if f.focus >= len(f.fields) {
			f.pressed = f.focus - len(f.fields)
			return formPressed
		}
		return formSubmit
	case engine.KeyLeft, engine.KeyRight:
		if fl := f.focused(); fl != nil && fl.kind == choiceField {
			step := 1
			if ev.Key == engine.KeyLeft {
				step = -1
			}
			fl.cycle(step)
		}
	case engine.KeyBackspace:
		if fl := f.focused(); fl != nil {
			if fl.kind == choiceField {
				fl.value = ""
			} else if fl.value != "" {
				_, size := utf8.DecodeLastRuneInString(fl.value)
				fl.value = fl.value[:len(fl.value)-size]
			}
		}
	case engine.KeyRune:
		if fl := f.focused(); fl != nil {
			if fl.kind == choiceField {
				if c := validate.ResolveChoice(fl.choices, string(ev.Rune)); c != "" {
					fl.value = c
				}
			} else {
				fl.value += string(ev.Rune)
			}
		}
	}
	return formNone
}

func (f *form) field(key string) *field {
	for _, fl := range f.fields {
		if fl.key == key {
			return fl
		}
	}
	return nil
}

func (f *form) value(key string) string {
	if fl := f.field(key); fl != nil {
		return fl.value
	}
	return ""
}

func (f *form) set(key, value string) {
	if fl := f.field(key); fl != nil {
		fl.value = value
	}
}

func (f *form) layoutFields() []engine.Field {
	out := make([]engine.Field, len(f.fields))
	for i, fl := range f.fields {
		v := fl.value
		if fl.kind == secretField {
			v = strings.Repeat("*", utf8.RuneCountInString(v))
		}
		out[i] = engine.Field{
			Key:     fl.key,
			Label:   fl.label,
			Value:   v,
			Masked:  fl.kind == secretField,
			Focused: i == f.focus,
			Error:   f.errs[fl.key],
		}
	}
	return out
}

func (f *form) layoutButtons() []engine.Button {
	if len(f.buttons) == 0 {
		return nil
	}
	out := make([]engine.Button, len(f.buttons))
	for i, b := range f.buttons {
		out[i] = engine.Button{Label: b.label, Focused: len(f.fields)+i == f.focus}
	}
	return out
}

// submitFunc validates the form and performs at most one store write.
// Non-empty Errors keep the screen in place with inline messages; a
// non-nil error is shown in the banner.
type submitFunc func(ctx context.Context, env engine.Env, f *form) (engine.Outcome, validate.Errors, error)

// formSpec describes one form-driven screen.
type formSpec struct {
	name      string
	title     string
	protected bool
	fields    func() []*field
	buttons   []button
	help      string

	// load pre-fills the form the first time the screen is entered.
	load func(ctx context.Context, env engine.Env, f *form) error

	// details renders read-only lines under the form, recomputed on
	// entry and after every event.
	details func(ctx context.Context, env engine.Env, f *form) ([]string, error)

	submit submitFunc

	// cancel runs on Esc (after confirmation when confirmCancel is set).
	// Nil means Pop.
	cancel        func() engine.Outcome
	confirmCancel string
}

// FormScreen is a screen built from a formSpec.
type FormScreen struct {
	chrome
	spec   formSpec
	form   *form
	dialog confirm
	loaded bool
	lines  []string
}

func newFormScreen(spec formSpec) *FormScreen {
	return &FormScreen{spec: spec, form: newForm(spec.fields(), spec.buttons...)}
}

func (s *FormScreen) Name() string    { return s.spec.name }
func (s *FormScreen) Protected() bool { return s.spec.protected }

func (s *FormScreen) Enter(ctx context.Context, env engine.Env) error {
	if !s.loaded && s.spec.load != nil {
		if err := s.spec.load(ctx, env, s.form); err != nil {
			return err
		}
	}
	s.loaded = true
	return s.refresh(ctx, env)
}

func (s *FormScreen) refresh(ctx context.Context, env engine.Env) error {
	if s.spec.details == nil {
		return nil
	}
	lines, err := s.spec.details(ctx, env, s.form)
	if err != nil {
		s.lines = nil
		return err
	}
	s.lines = lines
	return nil
}

func (s *FormScreen) HandleEvent(ctx context.Context, env engine.Env, ev engine.Event) engine.Outcome {
	s.clearMessages()

	if s.dialog.open {
		if s.dialog.handle(ev) == dialogYes {
			return s.cancel()
		}
		return engine.Stay()
	}

	var out engine.Outcome
	switch s.form.handle(ev) {
	case formCancel:
		if s.spec.confirmCancel != "" {
			s.dialog.ask(s.spec.confirmCancel)
			return engine.Stay()
		}
		return s.cancel()
	case formPressed:
		if b := s.form.buttons[s.form.pressed]; b.action != nil {
			return b.action()
		}
		out = s.submit(ctx, env)
	case formSubmit:
		out = s.submit(ctx, env)
	default:
		out = engine.Stay()
	}

	if out.Kind == engine.KindStay {
		if err := s.refresh(ctx, env); err != nil {
			return engine.Fail(err)
		}
	}
	return out
}

func (s *FormScreen) submit(ctx context.Context, env engine.Env) engine.Outcome {
	out, errs, err := s.spec.submit(ctx, env, s.form)
	if err != nil {
		return engine.Fail(err)
	}
	if !errs.OK() {
		s.form.errs = errs
		return engine.Stay()
	}
	s.form.errs = nil
	return out
}

func (s *FormScreen) cancel() engine.Outcome {
	if s.spec.cancel != nil {
		return s.spec.cancel()
	}
	return engine.Pop()
}

func (s *FormScreen) Layout() engine.Layout {
	return engine.Layout{
		Title:   s.spec.title,
		Fields:  s.form.layoutFields(),
		Buttons: s.form.layoutButtons(),
		Lines:   append([]string(nil), s.lines...),
		Dialog:  s.dialog.layout(),
		Banner:  s.banner,
		Notice:  s.notice,
		Help:    s.spec.help,
	}
}

// Errors returns the current inline field errors.
func (s *FormScreen) Errors() validate.Errors {
	return s.form.errs
}
