package engine

// Layout is a render-ready snapshot of one screen.
//
// Screens build a fresh Layout on every call, and two calls with no event
// in between return equal values. Masked field values are already
// replaced with asterisks.
type Layout struct {
	Title    string
	Subtitle string
	Fields   []Field
	Buttons  []Button
	Table    *Table
	Menu     *Menu
	Lines    []string
	Dialog   *Dialog
	Banner   string
	Notice   string
	Help     string
}

// Field is one labelled input.
type Field struct {
	Key     string
	Label   string
	Value   string
	Masked  bool
	Focused bool
	Error   string
}

// Button is a focusable action row below the fields.
type Button struct {
	Label   string
	Focused bool
}

// Table is a tabular listing with an optional search query.
type Table struct {
	Columns  []string
	Rows     [][]string
	Selected int // -1 when Rows is empty
	Search   string
	Footer   string
}

// Menu is a list of selectable items grouped into sections.
type Menu struct {
	Sections []MenuSection
	Selected int // index into the flattened items
}

// MenuSection is a titled group of menu items.
type MenuSection struct {
	Title string
	Items []string
}

// Dialog is a modal Yes/No confirmation.
type Dialog struct {
	Message    string
	YesFocused bool
}
