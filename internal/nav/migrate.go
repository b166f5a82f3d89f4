package nav

// Position is the part of a cursor that survives a rebuild.
type Position struct {
	X              int
	Y              int
	LastX          int
	VerticalOffset int
}

// Migrate builds a cursor for ix that carries over prev's position. The
// logical line and offset under prev are located in the new rows; a sticky
// column is kept; the cursor stays on the same screen row when possible.
// A nil prev yields a fresh cursor.
func Migrate(prev *Cursor, ix *Index, height HeightFunc) *Cursor {
	c := NewCursor(ix, height)
	if prev == nil {
		c.EnsureVisible()
		return c
	}

	pos := prev.Position()
	old := prev.ix
	line, ok := old.WrapID(pos.Y)
	if !ok {
		line = pos.Y
	}
	// A cursor after the last rune of a soft row stays on that row's end.
	rowEnd := pos.X > 0 && pos.X == old.RowLen(pos.Y)
	c.x, c.y = ix.locate(line, old.LogicalOffset(pos.X, pos.Y), rowEnd)

	c.lastX = c.x
	if pos.LastX > pos.X || rowEnd {
		c.lastX = min(pos.LastX, ix.Width())
		if c.lastX < c.x {
			c.lastX = c.x
		}
	}

	screenRow := pos.Y - pos.VerticalOffset
	c.offset = c.y - screenRow
	if c.offset < 0 {
		c.offset = 0
	}
	if c.offset > c.y {
		c.offset = c.y
	}
	c.EnsureVisible()
	return c
}

// Rebuild is the two-step reconstruction used on resize and reload: index
// content at width, then migrate prev onto it.
func Rebuild(prev *Cursor, content string, width int, height HeightFunc) *Cursor {
	return Migrate(prev, Build(content, width), height)
}
