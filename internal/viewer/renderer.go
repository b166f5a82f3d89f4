package viewer

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Renderer builds an ANSI frame and hands it to the terminal in one go.
type Renderer struct {
	buf strings.Builder
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws a frame: text rows (when f.Full), status bar and cursor
// placement.
func (r *Renderer) Render(f Frame) string {
	r.buf.Reset()
	vp := f.Layout

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")

	if f.Full {
		// Clear screen and move to top-left.
		r.buf.WriteString("\x1b[2J\x1b[H")

		marginStr := strings.Repeat(" ", vp.LeftMargin)
		for i := 0; i < vp.VisibleLines(); i++ {
			// Move to row (1-indexed).
			fmt.Fprintf(&r.buf, "\x1b[%d;1H", i+1)
			if i < len(f.Rows) {
				r.buf.WriteString(marginStr)
				r.buf.WriteString(runewidth.Truncate(f.Rows[i], vp.TextWidth(), ""))
			}
		}
	}

	r.renderStatusBar(vp, f.StatusLeft, f.StatusRight)

	// Position the cursor.
	screenRow := f.CursorRow + 1
	screenCol := cursorCell(vp, f.CursorRowText(), f.CursorX) + 1
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", screenRow, screenCol)

	// Show cursor.
	r.buf.WriteString("\x1b[?25h")

	return r.buf.String()
}

func (r *Renderer) renderStatusBar(vp Layout, left, right string) {
	if vp.Height < 1 {
		return
	}
	fmt.Fprintf(&r.buf, "\x1b[%d;1H", vp.Height)
	// Reverse video for status bar.
	r.buf.WriteString("\x1b[7m")
	r.buf.WriteString(fitStatus(left, right, vp.Width))
	// Reset attributes.
	r.buf.WriteString("\x1b[0m")
}

// cursorCell returns the 0-based screen column for rune x of row, kept on
// the screen.
func cursorCell(vp Layout, row string, x int) int {
	col := vp.LeftMargin + cellColumn(row, x)
	if col > vp.Width-1 {
		col = vp.Width - 1
	}
	return max(col, 0)
}

// cellColumn converts a rune index within row into a screen column. Wide
// characters take two cells; positions past the end of the row count one
// cell each.
func cellColumn(row string, x int) int {
	col := 0
	i := 0
	for _, r := range row {
		if i >= x {
			return col
		}
		col += runewidth.RuneWidth(r)
		i++
	}
	return col + (x - i)
}
