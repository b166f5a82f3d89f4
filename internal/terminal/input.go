package terminal

import "unicode/utf8"

// Key types.
const (
	KeyRune      = iota // Normal printable character
	KeyEscape           // Escape key (standalone)
	KeyEnter            // Enter/Return
	KeyUp               // Arrow up
	KeyDown             // Arrow down
	KeyLeft             // Arrow left
	KeyRight            // Arrow right
	KeyCtrlLeft         // Ctrl+Arrow left
	KeyCtrlRight        // Ctrl+Arrow right
	KeyCtrlC            // Ctrl+C
	KeyCtrlD            // Ctrl+D
	KeyCtrlU            // Ctrl+U
	KeyHome             // Home
	KeyEnd              // End
	KeyPgUp             // Page Up
	KeyPgDn             // Page Down
	KeyUnknown          // Unrecognised sequence
)

// Key is one decoded keypress. Alt is set for ESC-prefixed runes and
// Alt-modified arrows.
type Key struct {
	Type int
	Rune rune
	Alt  bool
}

// Event types.
const (
	EventKey = iota
	EventMouse
)

// MouseButton types.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseUnknown
)

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	Button MouseButton
	Row    int  // 1-based terminal row
	Col    int  // 1-based terminal column
	Press  bool // true for press, false for release
}

// InputEvent wraps either a key or mouse event.
type InputEvent struct {
	Type  int // EventKey or EventMouse
	Key   Key
	Mouse MouseEvent
}

// ParseInput determines whether the input is a key or mouse event.
func ParseInput(buf []byte) InputEvent {
	if len(buf) == 0 {
		return InputEvent{Type: EventKey, Key: Key{Type: KeyUnknown}}
	}

	// SGR mouse sequence: ESC [ < ...
	if len(buf) >= 6 && buf[0] == 27 && buf[1] == '[' && buf[2] == '<' {
		mouse, ok := parseMouseEvent(buf)
		if ok {
			return InputEvent{Type: EventMouse, Mouse: mouse}
		}
	}

	return InputEvent{Type: EventKey, Key: parseKey(buf)}
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13:
			return Key{Type: KeyEnter}
		case b == 3:
			return Key{Type: KeyCtrlC}
		case b == 4:
			return Key{Type: KeyCtrlD}
		case b == 21:
			return Key{Type: KeyCtrlU}
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	if buf[0] == 27 {
		return parseEscape(buf)
	}

	// Multi-byte UTF-8 character.
	r, _ := utf8.DecodeRune(buf)
	if r >= 32 && r != utf8.RuneError {
		return Key{Type: KeyRune, Rune: r}
	}
	return Key{Type: KeyUnknown}
}

// parseEscape decodes ESC-prefixed sequences: CSI and SS3 cursor keys,
// modified arrows (ESC [ 1 ; m X) and Alt+rune.
func parseEscape(buf []byte) Key {
	// Alt+rune: ESC followed by a printable character.
	if len(buf) == 2 && buf[1] >= 32 && buf[1] < 127 && buf[1] != '[' && buf[1] != 'O' {
		return Key{Type: KeyRune, Rune: rune(buf[1]), Alt: true}
	}
	if len(buf) < 3 {
		return Key{Type: KeyUnknown}
	}

	// SS3 sequences sent in application cursor mode.
	if buf[1] == 'O' {
		if k, ok := finalKey(buf[2]); ok {
			return Key{Type: k}
		}
		return Key{Type: KeyUnknown}
	}
	if buf[1] != '[' {
		return Key{Type: KeyUnknown}
	}

	// CSI 3-byte sequences.
	if len(buf) == 3 {
		if k, ok := finalKey(buf[2]); ok {
			return Key{Type: k}
		}
		return Key{Type: KeyUnknown}
	}

	// CSI 4-byte sequences: ESC [ <n> ~
	if len(buf) == 4 && buf[3] == '~' {
		switch buf[2] {
		case '1', '7':
			return Key{Type: KeyHome}
		case '4', '8':
			return Key{Type: KeyEnd}
		case '5':
			return Key{Type: KeyPgUp}
		case '6':
			return Key{Type: KeyPgDn}
		}
		return Key{Type: KeyUnknown}
	}

	// Modified keys: ESC [ 1 ; <mod> <final>
	if len(buf) == 6 && buf[2] == '1' && buf[3] == ';' {
		k, ok := finalKey(buf[5])
		if !ok {
			return Key{Type: KeyUnknown}
		}
		switch buf[4] {
		case '5': // Ctrl
			switch k {
			case KeyLeft:
				return Key{Type: KeyCtrlLeft}
			case KeyRight:
				return Key{Type: KeyCtrlRight}
			}
			return Key{Type: k}
		case '3': // Alt
			return Key{Type: k, Alt: true}
		default:
			return Key{Type: k}
		}
	}

	return Key{Type: KeyUnknown}
}

func finalKey(b byte) (int, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return 0, false
}

// parseMouseEvent parses an SGR mouse sequence: ESC [ < Cb ; Cx ; Cy M|m
// Returns the MouseEvent and true if parsing succeeded.
func parseMouseEvent(buf []byte) (MouseEvent, bool) {
	// Minimum length: ESC[<0;1;1M = 9 bytes
	if len(buf) < 9 {
		return MouseEvent{}, false
	}
	if buf[0] != 27 || buf[1] != '[' || buf[2] != '<' {
		return MouseEvent{}, false
	}

	i := 3
	fields := [3]int{}
	for f := 0; f < 3; f++ {
		start := i
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			fields[f] = fields[f]*10 + int(buf[i]-'0')
			i++
		}
		if i == start || i >= len(buf) {
			return MouseEvent{}, false
		}
		if f < 2 {
			if buf[i] != ';' {
				return MouseEvent{}, false
			}
			i++
		}
	}

	var press bool
	switch buf[i] {
	case 'M':
		press = true
	case 'm':
		press = false
	default:
		return MouseEvent{}, false
	}

	button := fields[0]
	var btn MouseButton
	switch button & 0x03 { // Lower 2 bits indicate button
	case 0:
		btn = MouseLeft
	case 1:
		btn = MouseMiddle
	case 2:
		btn = MouseRight
	default:
		btn = MouseUnknown
	}

	// Scroll wheel (button codes 64+).
	if button >= 64 {
		switch button {
		case 64:
			btn = MouseWheelUp
		case 65:
			btn = MouseWheelDown
		default:
			btn = MouseUnknown
		}
	}

	return MouseEvent{
		Button: btn,
		Col:    fields[1],
		Row:    fields[2],
		Press:  press,
	}, true
}
