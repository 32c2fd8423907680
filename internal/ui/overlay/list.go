package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customselect/internal/domain"
)

const (
	// DefaultMaxRows caps how many rows are visible before the list scrolls
	DefaultMaxRows = 7

	minBoxWidth = 20
	emptyHint   = "No options"
)

// OptionList is the scrollable list of option rows shown inside the overlay.
// Rendering, hit-testing and scrolling all derive from the same screen size,
// and the row count never exceeds what fits on screen.
type OptionList struct {
	options domain.Options
	cursor  int
	offset  int
	maxRows int

	screenW, screenH int

	styles *Styles
}

// NewOptionList creates a list over options showing at most maxRows rows
func NewOptionList(options domain.Options, maxRows int) *OptionList {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &OptionList{
		options: options,
		maxRows: maxRows,
		styles:  NewStyles(),
	}
}

// SetSize records the screen size and keeps the cursor on a drawn row
func (l *OptionList) SetSize(width, height int) {
	l.screenW, l.screenH = width, height
	l.SetCursor(l.cursor)
}

// SetOptions replaces the rows, keeping the cursor in range
func (l *OptionList) SetOptions(options domain.Options) {
	l.options = options
	l.SetCursor(l.cursor)
}

// Options returns the rows in render order
func (l *OptionList) Options() domain.Options {
	return l.options
}

// Len returns the number of rows
func (l *OptionList) Len() int {
	return len(l.options)
}

// Cursor returns the highlighted row index
func (l *OptionList) Cursor() int {
	return l.cursor
}

// Offset returns the index of the first visible row
func (l *OptionList) Offset() int {
	return l.offset
}

// VisibleRows returns how many rows fit in the box. The box border takes two
// lines of the screen; at least one row is shown whenever options exist.
func (l *OptionList) VisibleRows() int {
	if len(l.options) == 0 {
		return 0
	}
	_, height := screenSize(l.screenW, l.screenH)
	return min(len(l.options), l.maxRows, max(height-2, 1))
}

// SetCursor highlights row i, clamped to the list, and scrolls it into view
func (l *OptionList) SetCursor(i int) {
	if len(l.options) == 0 {
		l.cursor, l.offset = 0, 0
		return
	}
	l.cursor = max(0, min(i, len(l.options)-1))

	rows := l.VisibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	l.offset = max(0, min(l.offset, len(l.options)-rows))
}

// MoveUp moves the cursor up one row
func (l *OptionList) MoveUp() {
	l.SetCursor(l.cursor - 1)
}

// MoveDown moves the cursor down one row
func (l *OptionList) MoveDown() {
	l.SetCursor(l.cursor + 1)
}

// ScrollBy shifts the visible window by delta rows, dragging the cursor along
// when it would leave the window
func (l *OptionList) ScrollBy(delta int) {
	rows := l.VisibleRows()
	if rows == 0 {
		return
	}
	l.offset = max(0, min(l.offset+delta, len(l.options)-rows))
	if l.cursor < l.offset {
		l.cursor = l.offset
	}
	if l.cursor >= l.offset+rows {
		l.cursor = l.offset + rows - 1
	}
}

// Selected returns the highlighted option
func (l *OptionList) Selected() (domain.Option, bool) {
	if len(l.options) == 0 {
		return domain.Option{}, false
	}
	return l.options[l.cursor], true
}

// At returns the option at index i
func (l *OptionList) At(i int) (domain.Option, bool) {
	if i < 0 || i >= len(l.options) {
		return domain.Option{}, false
	}
	return l.options[i], true
}

// Bounds returns the box rectangle on screen
func (l *OptionList) Bounds() Rect {
	screenW, screenH := screenSize(l.screenW, l.screenH)

	width := min(max(screenW*8/10, minBoxWidth), screenW)
	body := max(l.VisibleRows(), 1)
	height := body + 2

	return Rect{
		X:      max(0, (screenW-width)/2),
		Y:      max(0, (screenH-height)/2),
		Width:  width,
		Height: height,
	}
}

// Contains reports whether (x, y) falls inside the list box
func (l *OptionList) Contains(x, y int) bool {
	return l.Bounds().Contains(x, y)
}

// RowAt maps a screen cell to the option index rendered there
func (l *OptionList) RowAt(x, y int) (int, bool) {
	box := l.Bounds()
	inner := Rect{X: box.X + 1, Y: box.Y + 1, Width: box.Width - 2, Height: l.VisibleRows()}
	if !inner.Contains(x, y) {
		return 0, false
	}
	return l.offset + (y - inner.Y), true
}

// Render draws the whole screen: backdrop plus the centred box
func (l *OptionList) Render() string {
	screenW, screenH := screenSize(l.screenW, l.screenH)
	box := l.Bounds()
	boxLines := strings.Split(l.renderBox(box.Width), "\n")

	blank := l.styles.Backdrop.Render(strings.Repeat(" ", screenW))
	lines := make([]string, 0, screenH)
	for y := 0; y < screenH; y++ {
		r := y - box.Y
		if r < 0 || r >= len(boxLines) {
			lines = append(lines, blank)
			continue
		}
		line := boxLines[r]
		right := max(0, screenW-box.X-lipgloss.Width(line))
		lines = append(lines,
			l.styles.Backdrop.Render(strings.Repeat(" ", box.X))+
				line+
				l.styles.Backdrop.Render(strings.Repeat(" ", right)))
	}
	return strings.Join(lines, "\n")
}

func (l *OptionList) renderBox(width int) string {
	// Width on a bordered style excludes the border but includes padding
	inner := width - 2
	text := max(inner-2, 1)

	if len(l.options) == 0 {
		hint := l.styles.Empty.Width(text).MaxWidth(text).Render(emptyHint)
		return l.styles.Box.Width(inner).Render(hint)
	}

	rows := make([]string, 0, l.VisibleRows())
	for i := l.offset; i < l.offset+l.VisibleRows(); i++ {
		style := l.styles.Row
		prefix := "  "
		if i == l.cursor {
			style = l.styles.RowActive
			prefix = "› "
		}
		rows = append(rows, style.Width(text).MaxWidth(text).Render(prefix+l.options[i].Label))
	}
	return l.styles.Box.Width(inner).Render(strings.Join(rows, "\n"))
}
