package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/ward/internal/engine"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	dialogStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

const cursor = "> "

// Render draws a Layout. A positive width centers the block horizontally.
func Render(l engine.Layout, width int) string {
	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	add(titleStyle.Render(l.Title))
	if l.Subtitle != "" {
		add(subtitleStyle.Render(l.Subtitle))
	}
	if l.Notice != "" {
		add(noticeStyle.Render(l.Notice))
	}
	if l.Banner != "" {
		add(errorStyle.Render("Error: " + l.Banner))
	}
	add(renderFields(l.Fields))
	add(renderButtons(l.Buttons))
	if l.Menu != nil {
		add(renderMenu(*l.Menu))
	}
	if l.Table != nil {
		add(renderTable(*l.Table))
	}
	if len(l.Lines) > 0 {
		add(strings.Join(l.Lines, "\n"))
	}
	if l.Dialog != nil {
		add(renderDialog(*l.Dialog))
	}
	if l.Help != "" {
		add(helpStyle.Render(l.Help))
	}

	out := strings.Join(parts, "\n\n")
	if width > 0 {
		out = lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
	}
	return out
}

func marker(focused bool) string {
	if focused {
		return cursor
	}
	return strings.Repeat(" ", len(cursor))
}

func renderFields(fields []engine.Field) string {
	if len(fields) == 0 {
		return ""
	}
	labelWidth := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > labelWidth {
			labelWidth = w
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := f.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(f.Label))
		line := marker(f.Focused) + label + " : " + f.Value
		if f.Focused {
			line = focusStyle.Render(line)
		}
		if f.Error != "" {
			line += "  " + errorStyle.Render(f.Label+" "+f.Error)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderButtons(buttons []engine.Button) string {
	if len(buttons) == 0 {
		return ""
	}
	out := make([]string, len(buttons))
	for i, b := range buttons {
		if b.Focused {
			out[i] = focusStyle.Render("[ " + b.Label + " ]")
		} else {
			out[i] = "  " + b.Label + "  "
		}
	}
	return strings.Join(out, "  ")
}

func renderMenu(m engine.Menu) string {
	var lines []string
	idx := 0
	for _, sec := range m.Sections {
		lines = append(lines, sectionStyle.Render(sec.Title))
		for _, item := range sec.Items {
			line := marker(idx == m.Selected) + item
			if idx == m.Selected {
				line = focusStyle.Render(line)
			}
			lines = append(lines, line)
			idx++
		}
	}
	return strings.Join(lines, "\n")
}

func renderTable(t engine.Table) string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, r := range t.Rows {
		for i, cell := range r {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	row := func(cells []string) string {
		padded := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			padded[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		return strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	lines := []string{"Search: " + t.Search, marker(false) + headerStyle.Render(row(t.Columns))}
	if len(t.Rows) == 0 {
		lines = append(lines, marker(false)+"(no matching rows)")
	}
	for i, r := range t.Rows {
		line := marker(i == t.Selected) + row(r)
		if i == t.Selected {
			line = focusStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if t.Footer != "" {
		lines = append(lines, "", t.Footer)
	}
	return strings.Join(lines, "\n")
}

func renderDialog(d engine.Dialog) string {
	yes, no := "  Yes  ", "  No  "
	if d.YesFocused {
		yes = focusStyle.Render("[ Yes ]")
	} else {
		no = focusStyle.Render("[ No ]")
	}
	return dialogStyle.Render(d.Message + "\n\n" + yes + "   " + no)
}
