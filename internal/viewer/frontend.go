package viewer

// EventType distinguishes frontend events.
type EventType int

const (
	EventKey EventType = iota
	EventResize
	EventError
)

// Event is delivered by a Frontend to the App's event loop.
type Event struct {
	Type   EventType
	Key    string // Key name for EventKey (see Keymap)
	Width  int    // New terminal size for EventResize
	Height int
	Err    error // Fatal input or terminal error for EventError
}

// Frame is everything a frontend needs to paint one screen.
type Frame struct {
	Layout      Layout
	Rows        []string // Visible rows, top to bottom
	CursorX     int      // Rune index within the cursor's row
	CursorRow   int      // Screen row of the cursor within Rows
	StatusLeft  string
	StatusRight string

	// Full asks for the text area to be repainted. When false only the
	// status bar and cursor have changed.
	Full bool
}

// CursorRowText returns the text of the row the cursor is on.
func (f Frame) CursorRowText() string {
	if f.CursorRow < 0 || f.CursorRow >= len(f.Rows) {
		return ""
	}
	return f.Rows[f.CursorRow]
}

// Frontend is a screen plus an input source. Events are delivered on the
// returned channel from reader goroutines; Draw and Close are called only
// from the App's event loop.
type Frontend interface {
	Size() (width, height int)
	Events() <-chan Event
	Draw(f Frame) error
	Close() error
}
