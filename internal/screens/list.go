package screens

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/roach88/ward/internal/engine"
)

// row is one table line backed by an entity id.
type row struct {
	id    int64
	cells []string
}

// tableData is what a list loader returns.
type tableData struct {
	rows   []row
	footer string
}

// listSpec describes one table-driven screen.
type listSpec struct {
	name    string
	title   string
	columns []string
	help    string
	load    func(ctx context.Context, env engine.Env) (tableData, error)

	// pick runs when Enter is pressed on a row. Nil leaves the list as a
	// read-only view.
	pick func(r row) engine.Outcome

	// remove turns the list into a delete picker. Enter asks for
	// confirmation first.
	remove func(ctx context.Context, env engine.Env, id int64) error

	// noun names one row in confirmation and notice text ("patient").
	noun string
}

// ListScreen is a searchable table built from a listSpec.
type ListScreen struct {
	chrome
	spec     listSpec
	data     tableData
	query    string
	selected int
	dialog   confirm
	target   row
}

func newListScreen(spec listSpec) *ListScreen {
	return &ListScreen{spec: spec}
}

func (s *ListScreen) Name() string    { return s.spec.name }
func (s *ListScreen) Protected() bool { return true }

func (s *ListScreen) Enter(ctx context.Context, env engine.Env) error {
	return s.reload(ctx, env)
}

func (s *ListScreen) reload(ctx context.Context, env engine.Env) error {
	data, err := s.spec.load(ctx, env)
	if err != nil {
		return err
	}
	s.data = data
	s.clamp()
	return nil
}

// visible returns the rows matching the current search query.
func (s *ListScreen) visible() []row {
	out := make([]row, 0, len(s.data.rows))
	for _, r := range s.data.rows {
		if matches(r.cells, s.query) {
			out = append(out, r)
		}
	}
	return out
}

func (s *ListScreen) clamp() {
	n := len(s.visible())
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ListScreen) HandleEvent(ctx context.Context, env engine.Env, ev engine.Event) engine.Outcome {
	s.clearMessages()

	if s.dialog.open {
		if s.dialog.handle(ev) != dialogYes {
			return engine.Stay()
		}
		return s.delete(ctx, env, s.target)
	}

	switch ev.Key {
	case engine.KeyUp:
		if s.selected > 0 {
			s.selected--
		}
	case engine.KeyDown, engine.KeyTab:
		if s.selected < len(s.visible())-1 {
			s.selected++
		}
	case engine.KeyRune:
		s.query += string(ev.Rune)
		s.selected = 0
	case engine.KeyBackspace:
		if s.query != "" {
			_, size := utf8.DecodeLastRuneInString(s.query)
			s.query = s.query[:len(s.query)-size]
			s.clamp()
		}
	case engine.KeyEsc:
		if s.query != "" {
			s.query = ""
			s.clamp()
			return engine.Stay()
		}
		return engine.Pop()
	case engine.KeyEnter:
		rows := s.visible()
		if len(rows) == 0 {
			return engine.Stay()
		}
		r := rows[s.selected]
		switch {
		case s.spec.remove != nil:
			s.target = r
			s.dialog.ask(fmt.Sprintf("Delete %s %d (%s)?", s.spec.noun, r.id, describe(r)))
		case s.spec.pick != nil:
			return s.spec.pick(r)
		}
	}
	return engine.Stay()
}

func (s *ListScreen) delete(ctx context.Context, env engine.Env, r row) engine.Outcome {
	if err := s.spec.remove(ctx, env, r.id); err != nil {
		return engine.Fail(err)
	}
	if err := s.reload(ctx, env); err != nil {
		return engine.Fail(err)
	}
	return engine.Stay().WithNotice(fmt.Sprintf("Deleted %s %d.", s.spec.noun, r.id))
}

// describe summarizes a row for confirmation text, skipping the id column.
func describe(r row) string {
	if len(r.cells) > 1 {
		return r.cells[1]
	}
	return fmt.Sprint(r.id)
}

func (s *ListScreen) Layout() engine.Layout {
	rows := s.visible()
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = append([]string(nil), r.cells...)
	}
	selected := s.selected
	if len(rows) == 0 {
		selected = -1
	}
	return engine.Layout{
		Title: s.spec.title,
		Table: &engine.Table{
			Columns:  append([]string(nil), s.spec.columns...),
			Rows:     cells,
			Selected: selected,
			Search:   s.query,
			Footer:   s.data.footer,
		},
		Dialog: s.dialog.layout(),
		Banner: s.banner,
		Notice: s.notice,
		Help:   s.spec.help,
	}
}

// detailSpec describes a read-only view of one entity.
type detailSpec struct {
	name  string
	title string
	load  func(ctx context.Context, env engine.Env) ([]string, error)
}

// DetailScreen shows labelled lines for one entity. Any of Esc, Enter or
// Backspace returns to the previous screen.
type DetailScreen struct {
	chrome
	spec  detailSpec
	lines []string
}

func newDetailScreen(spec detailSpec) *DetailScreen {
	return &DetailScreen{spec: spec}
}

func (s *DetailScreen) Name() string    { return s.spec.name }
func (s *DetailScreen) Protected() bool { return true }

func (s *DetailScreen) Enter(ctx context.Context, env engine.Env) error {
	lines, err := s.spec.load(ctx, env)
	if err != nil {
		return err
	}
	s.lines = lines
	return nil
}

func (s *DetailScreen) HandleEvent(_ context.Context, _ engine.Env, ev engine.Event) engine.Outcome {
	s.clearMessages()
	switch ev.Key {
	case engine.KeyEsc, engine.KeyEnter, engine.KeyBackspace:
		return engine.Pop()
	}
	return engine.Stay()
}

func (s *DetailScreen) Layout() engine.Layout {
	return engine.Layout{
		Title:  s.spec.title,
		Lines:  append([]string(nil), s.lines...),
		Banner: s.banner,
		Notice: s.notice,
		Help:   "ESC/ENTER: Back",
	}
}
