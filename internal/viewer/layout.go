package viewer

// MinColumnWidth is the narrowest text column Narrow will produce.
const MinColumnWidth = 20

// Layout places the text column on the terminal. The column is centred
// when the terminal is wider than the target width, and the last terminal
// row is reserved for the status bar.
type Layout struct {
	Width      int // Terminal width
	Height     int // Terminal height (status bar uses 1 row, so visible = Height-1)
	Target     int // Requested column width; 0 means the full terminal width
	ColWidth   int // Effective wrap width
	LeftMargin int // Left margin for centring
}

// NewLayout computes a layout for the given terminal size and target width.
func NewLayout(termWidth, termHeight, target int) Layout {
	l := Layout{Width: termWidth, Height: termHeight, Target: target}
	l.recalc()
	return l
}

func (l *Layout) recalc() {
	w := l.Width
	if w < 1 {
		w = 1
	}
	if l.Target > 0 && l.Target < w {
		l.ColWidth = l.Target
		l.LeftMargin = (w - l.Target) / 2
	} else {
		l.ColWidth = w
		l.LeftMargin = 0
	}
}

// Resize updates the layout for new terminal dimensions.
func (l *Layout) Resize(termWidth, termHeight int) {
	l.Width = termWidth
	l.Height = termHeight
	l.recalc()
}

// VisibleLines returns the number of text rows (excluding the status bar).
func (l Layout) VisibleLines() int {
	return l.Height - 1
}

// TextWidth returns the cells a text row may use: the column plus the right
// margin. Rows are wrapped by rune count, so wide runes can run past ColWidth.
func (l Layout) TextWidth() int {
	return max(l.Width-l.LeftMargin, 0)
}

// Widen grows the column by one, up to the terminal width. It reports
// whether the wrap width changed.
func (l *Layout) Widen() bool {
	if l.ColWidth >= l.Width {
		return false
	}
	l.Target = l.ColWidth + 1
	l.recalc()
	return true
}

// Narrow shrinks the column by one, down to MinColumnWidth. It reports
// whether the wrap width changed.
func (l *Layout) Narrow() bool {
	if l.ColWidth <= MinColumnWidth {
		return false
	}
	l.Target = l.ColWidth - 1
	l.recalc()
	return true
}
