package viewer

import "testing"

func TestLayoutCentresColumn(t *testing.T) {
	l := NewLayout(120, 40, 80)
	if l.ColWidth != 80 {
		t.Errorf("col width: got %d, want 80", l.ColWidth)
	}
	if l.LeftMargin != 20 {
		t.Errorf("margin: got %d, want 20", l.LeftMargin)
	}
	if l.VisibleLines() != 39 {
		t.Errorf("visible lines: got %d, want 39", l.VisibleLines())
	}
	if l.TextWidth() != 100 {
		t.Errorf("text width: got %d, want 100", l.TextWidth())
	}
}

func TestLayoutNarrowTerminal(t *testing.T) {
	l := NewLayout(50, 20, 80)
	if l.ColWidth != 50 || l.LeftMargin != 0 {
		t.Errorf("narrow terminal: got col=%d margin=%d", l.ColWidth, l.LeftMargin)
	}

	l = NewLayout(100, 20, 0)
	if l.ColWidth != 100 || l.LeftMargin != 0 {
		t.Errorf("full width: got col=%d margin=%d", l.ColWidth, l.LeftMargin)
	}

	l = NewLayout(0, 0, 80)
	if l.ColWidth != 1 {
		t.Errorf("zero-size terminal: got col=%d", l.ColWidth)
	}
}

func TestLayoutResize(t *testing.T) {
	l := NewLayout(120, 40, 80)
	l.Resize(60, 10)
	if l.ColWidth != 60 || l.LeftMargin != 0 || l.VisibleLines() != 9 {
		t.Errorf("after shrink: col=%d margin=%d visible=%d", l.ColWidth, l.LeftMargin, l.VisibleLines())
	}
	l.Resize(100, 10)
	if l.ColWidth != 80 || l.LeftMargin != 10 {
		t.Errorf("after grow: col=%d margin=%d", l.ColWidth, l.LeftMargin)
	}
}

func TestLayoutWiden(t *testing.T) {
	l := NewLayout(82, 20, 80)
	if !l.Widen() || l.ColWidth != 81 {
		t.Errorf("first widen: col=%d", l.ColWidth)
	}
	if !l.Widen() || l.ColWidth != 82 {
		t.Errorf("second widen: col=%d", l.ColWidth)
	}
	// Clamped at terminal width.
	if l.Widen() || l.ColWidth != 82 {
		t.Errorf("widen past terminal: col=%d", l.ColWidth)
	}
}

func TestLayoutNarrow(t *testing.T) {
	l := NewLayout(100, 20, 22)
	l.Narrow()
	l.Narrow()
	if l.ColWidth != MinColumnWidth {
		t.Errorf("after narrowing: got %d, want %d", l.ColWidth, MinColumnWidth)
	}
	// Clamped at minimum.
	if l.Narrow() || l.ColWidth != MinColumnWidth {
		t.Errorf("narrow past minimum: col=%d", l.ColWidth)
	}

	// Narrowing from full width starts at the terminal width.
	l = NewLayout(50, 20, 0)
	if !l.Narrow() || l.ColWidth != 49 {
		t.Errorf("narrow from full width: col=%d", l.ColWidth)
	}
}
