package nav

// HeightFunc reports the current viewport height in rows. It is called every
// time the viewport is checked, so it can follow the live terminal size.
type HeightFunc func() int

// FixedHeight returns a HeightFunc that always reports h.
func FixedHeight(h int) HeightFunc {
	return func() int { return h }
}

// Cursor is the cursor state machine over one Index. Coordinates are physical
// rows and rune columns. lastX is the column vertical moves try to reach.
type Cursor struct {
	ix     *Index
	height HeightFunc

	x      int
	y      int
	lastX  int
	offset int

	cache tokenCache
}

// NewCursor returns a cursor at the top of ix. A nil height means the
// viewport shows the whole document.
func NewCursor(ix *Index, height HeightFunc) *Cursor {
	if height == nil {
		height = FixedHeight(ix.RowCount())
	}
	return &Cursor{ix: ix, height: height}
}

// Index returns the index the cursor moves over.
func (c *Cursor) Index() *Index { return c.ix }

// X returns the rune column within the current row.
func (c *Cursor) X() int { return c.x }

// Y returns the physical row.
func (c *Cursor) Y() int { return c.y }

// LastX returns the sticky column vertical moves aim for.
func (c *Cursor) LastX() int { return c.lastX }

// VerticalOffset returns the first row shown in the viewport.
func (c *Cursor) VerticalOffset() int { return c.offset }

// Position returns the cursor's positional fields.
func (c *Cursor) Position() Position {
	return Position{X: c.x, Y: c.y, LastX: c.lastX, VerticalOffset: c.offset}
}

// ScreenPosition returns the cursor column and its row within the viewport.
func (c *Cursor) ScreenPosition() (x, row int) {
	return c.x, c.y - c.offset
}

// VisibleRows returns the rows currently inside the viewport.
func (c *Cursor) VisibleRows() []string {
	end := c.offset + c.viewportHeight()
	if end > c.ix.RowCount() {
		end = c.ix.RowCount()
	}
	if c.offset >= end {
		return nil
	}
	return c.ix.Rows()[c.offset:end]
}

func (c *Cursor) viewportHeight() int {
	h := c.height()
	if h <= 0 {
		return 1
	}
	return h
}

// EnsureVisible scrolls the minimal amount that keeps the cursor row inside
// the viewport and reports whether the offset changed.
func (c *Cursor) EnsureVisible() bool {
	h := c.viewportHeight()
	prev := c.offset
	if c.y < c.offset {
		c.offset = c.y
	}
	if c.y >= c.offset+h {
		c.offset = c.y - h + 1
	}
	if c.offset < 0 {
		c.offset = 0
	}
	return c.offset != prev
}

func (c *Cursor) clampXToCurrentLine() {
	n := c.ix.RowLen(c.y)
	if c.lastX > n {
		c.x = n
	} else {
		c.x = c.lastX
	}
}

// MoveUp moves one physical row up and reports whether the viewport scrolled.
func (c *Cursor) MoveUp() bool {
	if c.y > 0 {
		c.y--
		c.clampXToCurrentLine()
	}
	return c.EnsureVisible()
}

// MoveDown moves one physical row down and reports whether the viewport scrolled.
func (c *Cursor) MoveDown() bool {
	if c.y < c.ix.MaxY() {
		c.y++
		c.clampXToCurrentLine()
	}
	return c.EnsureVisible()
}

// MoveRows moves n rows (negative is up), keeping the sticky column.
func (c *Cursor) MoveRows(n int) bool {
	c.y += n
	if c.y < 0 {
		c.y = 0
	}
	if c.y > c.ix.MaxY() {
		c.y = c.ix.MaxY()
	}
	c.clampXToCurrentLine()
	return c.EnsureVisible()
}

// PageDown moves one viewport height down.
func (c *Cursor) PageDown() bool { return c.MoveRows(c.viewportHeight()) }

// PageUp moves one viewport height up.
func (c *Cursor) PageUp() bool { return c.MoveRows(-c.viewportHeight()) }

// MoveTop jumps to the first column of the document.
func (c *Cursor) MoveTop() bool {
	c.x, c.y, c.lastX = 0, 0, 0
	return c.EnsureVisible()
}

// MoveBottom jumps to the first column of the last row.
func (c *Cursor) MoveBottom() bool {
	c.x, c.y, c.lastX = 0, c.ix.MaxY(), 0
	return c.EnsureVisible()
}

// MoveLeft moves one column left. At column 0 of a soft-wrapped continuation
// row it lands on the last character of the previous row; at the start of a
// logical line it does nothing.
func (c *Cursor) MoveLeft() {
	switch {
	case c.x > 0:
		c.x--
	case c.y > 0 && c.ix.SameLine(c.y-1, c.y):
		c.y--
		c.x = max(c.ix.RowLen(c.y)-1, 0)
	}
	c.lastX = c.x
	c.EnsureVisible()
}

// MoveRight moves one column right. Past the last character of a soft-wrapped
// row it continues at column 0 of the next row. It never moves past the last
// character of a logical line; a cursor beyond it settles on it.
func (c *Cursor) MoveRight() {
	n := c.ix.RowLen(c.y)
	switch {
	case c.x+1 < n:
		c.x++
	case c.y < c.ix.MaxY() && c.ix.SameLine(c.y, c.y+1):
		c.y++
		c.x = 0
	case c.x > n-1:
		c.x = max(n-1, 0)
	}
	c.lastX = c.x
	c.EnsureVisible()
}

// MoveHome jumps to column 0 of the first row of the logical line.
func (c *Cursor) MoveHome() {
	first, _ := c.ix.LogicalRange(c.y)
	c.y = first
	c.x = 0
	c.lastX = 0
	c.EnsureVisible()
}

// MoveEnd jumps to the end of the current row, or, when the cursor is already
// there, to the end of the last row of the logical line.
func (c *Cursor) MoveEnd() {
	n := c.ix.RowLen(c.y)
	if c.x == n {
		_, last := c.ix.LogicalRange(c.y)
		c.y = last
		n = c.ix.RowLen(last)
	}
	c.x = n
	c.lastX = c.x
	c.EnsureVisible()
}
