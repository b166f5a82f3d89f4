package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JackWReid/lector/internal/nav"
	"github.com/rivo/uniseg"
)

// StatusBar generates status bar text.
type StatusBar struct {
	StatusMessage string // Temporary message, cleared on the next key.
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(filename string) string {
	if s.StatusMessage != "" {
		return " " + s.StatusMessage
	}
	return " " + truncatePath(filename)
}

// FormatRight returns the right-aligned portion of the status bar:
// logical line, column within it, and how far through the document the
// cursor is.
func (s *StatusBar) FormatRight(info StatusInfo) string {
	return fmt.Sprintf("Ln %d/%d  Col %d  %d%% ", info.Line, info.Lines, info.Col, info.Percent())
}

// SetMessage sets a temporary status message.
func (s *StatusBar) SetMessage(msg string) {
	s.StatusMessage = msg
}

// ClearMessage clears the temporary status message.
func (s *StatusBar) ClearMessage() {
	s.StatusMessage = ""
}

// StatusInfo is the cursor position in document terms, 1-based.
type StatusInfo struct {
	Line  int
	Lines int
	Col   int
}

// Percent returns how far through the document Line is.
func (i StatusInfo) Percent() int {
	if i.Lines <= 0 {
		return 100
	}
	return i.Line * 100 / i.Lines
}

// cursorStatus maps the cursor back to its logical line and offset.
func cursorStatus(c *nav.Cursor) StatusInfo {
	ix := c.Index()
	line, _ := ix.WrapID(c.Y())
	return StatusInfo{
		Line:  line + 1,
		Lines: ix.LineCount(),
		Col:   ix.LogicalOffset(c.X(), c.Y()) + 1,
	}
}

// truncatePath shortens a file path to parent/basename.
func truncatePath(filename string) string {
	if filename == "" {
		return "[unnamed]"
	}
	dir := filepath.Base(filepath.Dir(filename))
	base := filepath.Base(filename)
	if dir == "." || dir == "/" {
		return base
	}
	return dir + "/" + base
}

// fitStatus lays out left and right in exactly width cells. The left side
// is truncated first; the right side only when it alone is too wide.
func fitStatus(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rightW := uniseg.StringWidth(right)
	if rightW > width {
		right = truncateCells(right, width)
		rightW = uniseg.StringWidth(right)
	}
	maxLeft := width - rightW
	if rightW > 0 && maxLeft > 0 && uniseg.StringWidth(left) > maxLeft {
		// Keep a space between the sides.
		maxLeft--
	}
	left = truncateCells(left, maxLeft)
	gap := width - uniseg.StringWidth(left) - rightW
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

// truncateCells cuts s to at most n cells without splitting a grapheme
// cluster.
func truncateCells(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > n {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}
