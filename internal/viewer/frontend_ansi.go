package viewer

import (
	"sync"

	"github.com/JackWReid/lector/internal/terminal"
)

// ANSIFrontend drives a raw-mode terminal with hand-built escape frames.
type ANSIFrontend struct {
	term     *terminal.Terminal
	renderer *Renderer
	events   chan Event
	done     chan struct{}
	once     sync.Once
}

// NewANSIFrontend puts the terminal into raw mode and starts reading
// input and resize signals.
func NewANSIFrontend() (*ANSIFrontend, error) {
	t, err := terminal.NewTerminal()
	if err != nil {
		return nil, err
	}
	f := &ANSIFrontend{
		term:     t,
		renderer: NewRenderer(),
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}
	go f.readLoop()
	go f.signalLoop()
	return f, nil
}

func (f *ANSIFrontend) Size() (int, int) {
	return f.term.Width(), f.term.Height()
}

func (f *ANSIFrontend) Events() <-chan Event { return f.events }

func (f *ANSIFrontend) Draw(fr Frame) error {
	return f.term.Write(f.renderer.Render(fr))
}

func (f *ANSIFrontend) Close() error {
	f.once.Do(func() {
		close(f.done)
		f.term.Restore()
	})
	return nil
}

func (f *ANSIFrontend) send(ev Event) bool {
	select {
	case f.events <- ev:
		return true
	case <-f.done:
		return false
	}
}

// readLoop blocks on stdin. It is left running at Close; the process is
// about to exit and a blocked read cannot be interrupted portably.
func (f *ANSIFrontend) readLoop() {
	for {
		in, err := f.term.ReadKey()
		if err != nil {
			f.send(Event{Type: EventError, Err: err})
			return
		}
		name := inputKeyName(in)
		if name == "" {
			continue
		}
		if !f.send(Event{Type: EventKey, Key: name}) {
			return
		}
	}
}

func (f *ANSIFrontend) signalLoop() {
	for {
		select {
		case <-f.done:
			return
		case <-f.term.SigwinchChan():
			if _, err := f.term.Resize(); err != nil {
				f.send(Event{Type: EventError, Err: err})
				return
			}
			w, h := f.Size()
			if !f.send(Event{Type: EventResize, Width: w, Height: h}) {
				return
			}
		}
	}
}

// inputKeyName converts a decoded terminal event into a key name. Wheel
// scrolling maps to the arrow keys. Events with no binding-worthy name
// yield "".
func inputKeyName(in terminal.InputEvent) string {
	if in.Type == terminal.EventMouse {
		if !in.Mouse.Press {
			return ""
		}
		switch in.Mouse.Button {
		case terminal.MouseWheelUp:
			return "up"
		case terminal.MouseWheelDown:
			return "down"
		}
		return ""
	}

	k := in.Key
	var name string
	switch k.Type {
	case terminal.KeyRune:
		name = string(k.Rune)
	case terminal.KeyEscape:
		name = "esc"
	case terminal.KeyEnter:
		name = "enter"
	case terminal.KeyUp:
		name = "up"
	case terminal.KeyDown:
		name = "down"
	case terminal.KeyLeft:
		name = "left"
	case terminal.KeyRight:
		name = "right"
	case terminal.KeyCtrlLeft:
		name = "ctrl+left"
	case terminal.KeyCtrlRight:
		name = "ctrl+right"
	case terminal.KeyCtrlC:
		name = "ctrl+c"
	case terminal.KeyCtrlD:
		name = "ctrl+d"
	case terminal.KeyCtrlU:
		name = "ctrl+u"
	case terminal.KeyHome:
		name = "home"
	case terminal.KeyEnd:
		name = "end"
	case terminal.KeyPgUp:
		name = "pgup"
	case terminal.KeyPgDn:
		name = "pgdn"
	default:
		return ""
	}
	if k.Alt {
		name = "alt+" + name
	}
	return name
}
