package terminal

import (
	"errors"
	"os"
	"testing"
)

func TestParseKeyRune(t *testing.T) {
	k := parseKey([]byte{'a'})
	if k.Type != KeyRune || k.Rune != 'a' || k.Alt {
		t.Errorf("expected rune 'a', got type=%d rune=%c alt=%v", k.Type, k.Rune, k.Alt)
	}
}

func TestParseKeySingleBytes(t *testing.T) {
	tests := []struct {
		b        byte
		expected int
	}{
		{27, KeyEscape},
		{13, KeyEnter},
		{3, KeyCtrlC},
		{4, KeyCtrlD},
		{21, KeyCtrlU},
		{1, KeyUnknown}, // Ctrl+A is not bound
		{127, KeyUnknown},
	}
	for _, tc := range tests {
		k := parseKey([]byte{tc.b})
		if k.Type != tc.expected {
			t.Errorf("byte %d: expected type %d, got %d", tc.b, tc.expected, k.Type)
		}
	}
}

func TestParseKeyArrows(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
	}{
		{[]byte{27, '[', 'A'}, KeyUp},
		{[]byte{27, '[', 'B'}, KeyDown},
		{[]byte{27, '[', 'C'}, KeyRight},
		{[]byte{27, '[', 'D'}, KeyLeft},
		{[]byte{27, 'O', 'A'}, KeyUp},
		{[]byte{27, 'O', 'D'}, KeyLeft},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected {
			t.Errorf("seq %v: expected type %d, got %d", tc.seq, tc.expected, k.Type)
		}
	}
}

func TestParseKeyEmpty(t *testing.T) {
	k := parseKey([]byte{})
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for empty input, got type=%d", k.Type)
	}
}

func TestParseKeyMultibyteUTF8(t *testing.T) {
	k := parseKey([]byte{0xC3, 0xA9})
	if k.Type != KeyRune || k.Rune != 'é' {
		t.Errorf("expected rune é, got type=%d rune=%c", k.Type, k.Rune)
	}
	k = parseKey([]byte{0xE6, 0x97, 0xA5})
	if k.Type != KeyRune || k.Rune != '日' {
		t.Errorf("expected rune 日, got type=%d rune=%c", k.Type, k.Rune)
	}
	k = parseKey([]byte{0x80, 0x80})
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for invalid UTF-8, got type=%d", k.Type)
	}
}

func TestParseKeyHomeEnd(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
	}{
		{[]byte{27, '[', 'H'}, KeyHome},
		{[]byte{27, '[', 'F'}, KeyEnd},
		{[]byte{27, 'O', 'H'}, KeyHome},
		{[]byte{27, 'O', 'F'}, KeyEnd},
		{[]byte{27, '[', '1', '~'}, KeyHome},
		{[]byte{27, '[', '7', '~'}, KeyHome},
		{[]byte{27, '[', '4', '~'}, KeyEnd},
		{[]byte{27, '[', '8', '~'}, KeyEnd},
		{[]byte{27, '[', '5', '~'}, KeyPgUp},
		{[]byte{27, '[', '6', '~'}, KeyPgDn},
		{[]byte{27, '[', '2', '~'}, KeyUnknown},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected {
			t.Errorf("seq %q: expected type %d, got %d", tc.seq, tc.expected, k.Type)
		}
	}
}

func TestParseKeyModifiedArrows(t *testing.T) {
	tests := []struct {
		seq      string
		expected int
		alt      bool
	}{
		{"\x1b[1;5C", KeyCtrlRight, false},
		{"\x1b[1;5D", KeyCtrlLeft, false},
		{"\x1b[1;5A", KeyUp, false},
		{"\x1b[1;3C", KeyRight, true},
		{"\x1b[1;3D", KeyLeft, true},
		{"\x1b[1;2C", KeyRight, false}, // Shift is ignored
		{"\x1b[1;5Z", KeyUnknown, false},
	}
	for _, tc := range tests {
		k := parseKey([]byte(tc.seq))
		if k.Type != tc.expected || k.Alt != tc.alt {
			t.Errorf("seq %q: expected type=%d alt=%v, got type=%d alt=%v",
				tc.seq, tc.expected, tc.alt, k.Type, k.Alt)
		}
	}
}

func TestParseKeyAltRune(t *testing.T) {
	k := parseKey([]byte{27, 'f'})
	if k.Type != KeyRune || k.Rune != 'f' || !k.Alt {
		t.Errorf("expected alt+f, got type=%d rune=%c alt=%v", k.Type, k.Rune, k.Alt)
	}
	k = parseKey([]byte{27, 'b'})
	if k.Type != KeyRune || k.Rune != 'b' || !k.Alt {
		t.Errorf("expected alt+b, got type=%d rune=%c alt=%v", k.Type, k.Rune, k.Alt)
	}
	// A lone "ESC [" is an incomplete sequence, not alt+[.
	k = parseKey([]byte{27, '['})
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for ESC [, got type=%d", k.Type)
	}
}

func TestParseMouseWheel(t *testing.T) {
	ev := ParseInput([]byte("\x1b[<64;10;5M"))
	if ev.Type != EventMouse {
		t.Fatalf("expected mouse event, got type=%d", ev.Type)
	}
	if ev.Mouse.Button != MouseWheelUp || ev.Mouse.Col != 10 || ev.Mouse.Row != 5 || !ev.Mouse.Press {
		t.Errorf("unexpected mouse event: %+v", ev.Mouse)
	}

	ev = ParseInput([]byte("\x1b[<65;1;1M"))
	if ev.Type != EventMouse || ev.Mouse.Button != MouseWheelDown {
		t.Errorf("expected wheel down, got %+v", ev)
	}
}

func TestParseMouseButtons(t *testing.T) {
	tests := []struct {
		seq    string
		button MouseButton
		press  bool
	}{
		{"\x1b[<0;3;4M", MouseLeft, true},
		{"\x1b[<0;3;4m", MouseLeft, false},
		{"\x1b[<1;3;4M", MouseMiddle, true},
		{"\x1b[<2;3;4M", MouseRight, true},
		{"\x1b[<66;3;4M", MouseUnknown, true},
	}
	for _, tc := range tests {
		m, ok := parseMouseEvent([]byte(tc.seq))
		if !ok {
			t.Errorf("seq %q: failed to parse", tc.seq)
			continue
		}
		if m.Button != tc.button || m.Press != tc.press {
			t.Errorf("seq %q: got button=%d press=%v", tc.seq, m.Button, m.Press)
		}
	}
}

func TestParseMouseMalformed(t *testing.T) {
	for _, seq := range []string{
		"\x1b[<0;1M",
		"\x1b[<a;1;1M",
		"\x1b[<0;1;1X",
		"\x1b[<0;1;",
	} {
		if _, ok := parseMouseEvent([]byte(seq)); ok {
			t.Errorf("seq %q: expected parse failure", seq)
		}
	}
	// Malformed mouse input falls through to key parsing.
	ev := ParseInput([]byte("\x1b[<0;1;1X"))
	if ev.Type != EventKey || ev.Key.Type != KeyUnknown {
		t.Errorf("expected unknown key, got %+v", ev)
	}
}

func TestParseInputEmpty(t *testing.T) {
	ev := ParseInput(nil)
	if ev.Type != EventKey || ev.Key.Type != KeyUnknown {
		t.Errorf("expected unknown key for empty input, got %+v", ev)
	}
}

func TestResizeReportsSizeChanges(t *testing.T) {
	orig := getSize
	defer func() { getSize = orig }()

	w, h := 80, 24
	getSize = func(int) (int, int, error) { return w, h, nil }

	tm := &Terminal{in: os.Stdin, out: os.Stdout, width: 80, height: 24}
	changed, err := tm.Resize()
	if err != nil || changed {
		t.Errorf("same size: changed=%v err=%v", changed, err)
	}

	w, h = 100, 30
	changed, err = tm.Resize()
	if err != nil || !changed {
		t.Errorf("new size: changed=%v err=%v", changed, err)
	}
	if tm.Width() != 100 || tm.Height() != 30 {
		t.Errorf("expected 100x30, got %dx%d", tm.Width(), tm.Height())
	}
}

func TestResizeErrorKeepsOldSize(t *testing.T) {
	orig := getSize
	defer func() { getSize = orig }()

	sentinel := errors.New("not a tty")
	getSize = func(int) (int, int, error) { return 0, 0, sentinel }

	tm := &Terminal{in: os.Stdin, out: os.Stdout, width: 80, height: 24}
	changed, err := tm.Resize()
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
	if changed || tm.Width() != 80 || tm.Height() != 24 {
		t.Errorf("size changed on error: %dx%d", tm.Width(), tm.Height())
	}
}

func TestNewTerminalSizeError(t *testing.T) {
	orig := getSize
	defer func() { getSize = orig }()

	sentinel := errors.New("no size")
	getSize = func(int) (int, int, error) { return 0, 0, sentinel }

	if _, err := NewTerminal(); !errors.Is(err, sentinel) {
		t.Errorf("expected size error, got %v", err)
	}
}
