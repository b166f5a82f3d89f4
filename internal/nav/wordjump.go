package nav

// tokenCache remembers the span the last token jump landed on.
type tokenCache struct {
	ok       bool
	index    int
	validFor Direction
}

// cacheApplicable reports whether a Right jump from (x, y) can be answered
// from the cache: the last jump went right and the cursor is inside the
// cached span or on the column just after it.
func cacheApplicable(x, y int, cache tokenCache, spans []TokenSpan) bool {
	if !cache.ok || cache.validFor != Right {
		return false
	}
	if cache.index < 0 || cache.index >= len(spans) {
		return false
	}
	s := spans[cache.index]
	return s.Contains(y, x) || (y == s.RowEnd && x == s.ColEnd+1)
}

// MoveToken jumps just past the next token (Right) or just before the
// previous one (Left). The search stays within the current logical line.
// It reports whether the cursor moved.
func (c *Cursor) MoveToken(dir Direction) bool {
	var si int
	var ok bool
	if dir == Right && cacheApplicable(c.x, c.y, c.cache, c.ix.spans) {
		si, ok = c.cachedToken()
	} else {
		si, ok = c.scanToken(dir)
	}
	if !ok {
		return false
	}

	s := c.ix.spans[si]
	if dir == Right {
		c.x, c.y = s.ColEnd+1, s.RowEnd
	} else {
		c.x, c.y = max(s.ColStart-1, 0), s.RowStart
		// A token opening a continuation row is preceded by the last
		// column of the row before it.
		if s.ColStart == 0 && c.ix.SameLine(s.RowStart-1, s.RowStart) {
			c.y = s.RowStart - 1
			c.x = max(c.ix.RowLen(c.y)-1, 0)
		}
	}
	c.lastX = c.x
	c.cache = tokenCache{ok: true, index: si, validFor: dir}
	c.EnsureVisible()
	return true
}

// scanToken probes column by column from the cursor for a covering span,
// following soft-wrapped rows of the same logical line.
func (c *Cursor) scanToken(dir Direction) (int, bool) {
	row, col := c.y, c.x
	if dir == Left {
		col--
	}
	for {
		n := c.ix.RowLen(row)
		for col >= 0 && col < n {
			if si, ok := c.ix.spanAt(row, col); ok {
				return si, true
			}
			col += dir.Step()
		}
		next := row + dir.Step()
		if next < 0 || !c.ix.SameLine(row, next) {
			return 0, false
		}
		row = next
		if dir == Right {
			col = 0
		} else {
			col = c.ix.RowLen(row) - 1
		}
	}
}

// cachedToken answers a Right jump from the cache. Inside the cached span the
// answer is the span itself; just after it, the answer is the following span
// when it starts on the same logical line.
func (c *Cursor) cachedToken() (int, bool) {
	s := c.ix.spans[c.cache.index]
	if s.Contains(c.y, c.x) {
		return c.cache.index, true
	}
	next := c.cache.index + 1
	if next >= len(c.ix.spans) {
		return 0, false
	}
	for r := c.y; r < c.ix.spans[next].RowStart; r++ {
		if !c.ix.SameLine(r, r+1) {
			return 0, false
		}
	}
	return next, true
}
