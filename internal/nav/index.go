package nav

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Index is the immutable navigation map for one (content, width) pair: the
// physical rows, their wrap ids and the token spans placed on them.
type Index struct {
	width     int
	text      string
	rows      []string
	rowLens   []int
	wrapIDs   []int
	spans     []TokenSpan
	rowSpans  [][]int
	lineFirst map[int]int
	unmatched []Token
}

// Build wraps content to width, tokenizes the result and indexes it.
func Build(content string, width int) *Index {
	if width <= 0 {
		width = 1
	}
	w := Wrap(content, width)
	spans, unmatched := MapPositions(w.Text, w.WrapIDs, Tokenize(w.Text, w.WrapIDs))
	ix := NewIndex(w.Text, w.WrapIDs, spans)
	ix.width = width
	ix.unmatched = unmatched
	return ix
}

// NewIndex indexes already wrapped text. wrapIDs should have one entry per
// row; rows without one are treated as logical lines of their own.
func NewIndex(text string, wrapIDs []int, spans []TokenSpan) *Index {
	rows := strings.Split(text, "\n")
	ix := &Index{
		text:      text,
		rows:      rows,
		rowLens:   make([]int, len(rows)),
		wrapIDs:   wrapIDs,
		spans:     spans,
		rowSpans:  make([][]int, len(rows)),
		lineFirst: make(map[int]int),
	}
	for i, r := range rows {
		ix.rowLens[i] = utf8.RuneCountInString(r)
		if ix.rowLens[i] > ix.width {
			ix.width = ix.rowLens[i]
		}
	}
	for i, id := range wrapIDs {
		if i >= len(rows) {
			break
		}
		if _, ok := ix.lineFirst[id]; !ok {
			ix.lineFirst[id] = i
		}
	}
	for si, s := range spans {
		for r := s.RowStart; r <= s.RowEnd; r++ {
			if r >= 0 && r < len(rows) {
				ix.rowSpans[r] = append(ix.rowSpans[r], si)
			}
		}
	}
	return ix
}

// Width is the wrap width the index was built for.
func (ix *Index) Width() int { return ix.width }

// Text returns the wrapped text, rows joined by newlines.
func (ix *Index) Text() string { return ix.text }

// Rows returns the physical rows. The slice must not be modified.
func (ix *Index) Rows() []string { return ix.rows }

// WrapIDs returns the logical line of every row. The slice must not be modified.
func (ix *Index) WrapIDs() []int { return ix.wrapIDs }

// Spans returns all token spans in document order.
func (ix *Index) Spans() []TokenSpan { return ix.spans }

// Unmatched returns the tokens the position mapper could not place.
func (ix *Index) Unmatched() []Token { return ix.unmatched }

// RowCount returns the number of physical rows; always at least one.
func (ix *Index) RowCount() int { return len(ix.rows) }

// MaxY returns the last valid row.
func (ix *Index) MaxY() int { return len(ix.rows) - 1 }

// Row returns the text of physical row y, or "" when out of range.
func (ix *Index) Row(y int) string {
	if y < 0 || y >= len(ix.rows) {
		return ""
	}
	return ix.rows[y]
}

// RowLen returns the rune length of row y, or 0 when out of range.
func (ix *Index) RowLen(y int) int {
	if y < 0 || y >= len(ix.rowLens) {
		return 0
	}
	return ix.rowLens[y]
}

// WrapID returns the logical line of row y.
func (ix *Index) WrapID(y int) (int, bool) {
	if y < 0 || y >= len(ix.wrapIDs) || y >= len(ix.rows) {
		return 0, false
	}
	return ix.wrapIDs[y], true
}

// SameLine reports whether rows a and b belong to the same logical line.
func (ix *Index) SameLine(a, b int) bool {
	if a >= len(ix.rows) || b >= len(ix.rows) {
		return false
	}
	return sameLine(ix.wrapIDs, a, b)
}

// LineCount returns the number of logical lines.
func (ix *Index) LineCount() int {
	if len(ix.wrapIDs) == 0 {
		return len(ix.rows)
	}
	n := len(ix.wrapIDs)
	if n > len(ix.rows) {
		n = len(ix.rows)
	}
	return ix.wrapIDs[n-1] + 1
}

// LogicalRange returns the first and last physical rows of the logical line
// that row y belongs to. A row without a wrap id is its own range.
func (ix *Index) LogicalRange(y int) (first, last int) {
	first, last = y, y
	for first > 0 && ix.SameLine(first-1, y) {
		first--
	}
	for last < ix.MaxY() && ix.SameLine(last+1, y) {
		last++
	}
	return first, last
}

// LogicalOffset converts (x, y) to a rune offset within the logical line.
func (ix *Index) LogicalOffset(x, y int) int {
	first, _ := ix.LogicalRange(y)
	off := x
	for r := first; r < y; r++ {
		off += ix.RowLen(r)
	}
	return off
}

// Locate converts a logical line and rune offset to (x, y). Lines past the
// end of the document resolve to the last row; offsets past the end of the
// line resolve to its end.
func (ix *Index) Locate(line, offset int) (x, y int) {
	return ix.locate(line, offset, false)
}

// locate is Locate with a choice for offsets that fall on a soft row
// boundary: rowEnd keeps them at the end of the earlier row instead of the
// start of the next one.
func (ix *Index) locate(line, offset int, rowEnd bool) (x, y int) {
	first, ok := ix.lineFirst[line]
	if !ok {
		if line < 0 || len(ix.lineFirst) == 0 {
			return 0, 0
		}
		first = ix.lastLineStart(line)
		offset = 0
	}
	if offset < 0 {
		offset = 0
	}
	_, last := ix.LogicalRange(first)
	for r := first; r <= last; r++ {
		n := ix.RowLen(r)
		if offset < n || r == last || (rowEnd && offset == n && n > 0) {
			if offset > n {
				offset = n
			}
			return offset, r
		}
		offset -= n
	}
	return 0, first
}

// lastLineStart returns the first row of the nearest logical line at or
// before line.
func (ix *Index) lastLineStart(line int) int {
	ids := make([]int, 0, len(ix.lineFirst))
	for id := range ix.lineFirst {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	i := sort.SearchInts(ids, line+1) - 1
	if i < 0 {
		i = 0
	}
	return ix.lineFirst[ids[i]]
}

// spanAt returns the index of the span covering (row, col).
func (ix *Index) spanAt(row, col int) (int, bool) {
	if row < 0 || row >= len(ix.rowSpans) {
		return 0, false
	}
	for _, si := range ix.rowSpans[row] {
		if ix.spans[si].Contains(row, col) {
			return si, true
		}
	}
	return 0, false
}
