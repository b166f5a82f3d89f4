package viewer

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellFrontend draws through a tcell screen.
type TcellFrontend struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// NewTcellFrontend initialises screen, or a new terminal screen when
// screen is nil, and starts polling it for events.
func NewTcellFrontend(screen tcell.Screen) (*TcellFrontend, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	f := &TcellFrontend{
		screen: screen,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
	f.wg.Add(1)
	go f.pollLoop()
	return f, nil
}

func (f *TcellFrontend) Size() (int, int) {
	return f.screen.Size()
}

func (f *TcellFrontend) Events() <-chan Event { return f.events }

func (f *TcellFrontend) Draw(fr Frame) error {
	s := f.screen
	vp := fr.Layout

	if fr.Full {
		s.Clear()
		for y := 0; y < vp.VisibleLines() && y < len(fr.Rows); y++ {
			drawCells(s, vp.LeftMargin, y, fr.Rows[y], vp.TextWidth(), tcell.StyleDefault)
		}
	}

	if vp.Height >= 1 {
		status := fitStatus(fr.StatusLeft, fr.StatusRight, vp.Width)
		drawCells(s, 0, vp.Height-1, status, vp.Width, tcell.StyleDefault.Reverse(true))
	}

	s.ShowCursor(cursorCell(vp, fr.CursorRowText(), fr.CursorX), fr.CursorRow)
	s.Show()
	return nil
}

// Close restores the terminal. Fini wakes PollEvent, which ends pollLoop.
func (f *TcellFrontend) Close() error {
	f.once.Do(func() {
		close(f.done)
		f.screen.Fini()
		f.wg.Wait()
	})
	return nil
}

func (f *TcellFrontend) send(ev Event) bool {
	select {
	case f.events <- ev:
		return true
	case <-f.done:
		return false
	}
}

func (f *TcellFrontend) pollLoop() {
	defer f.wg.Done()
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		var out Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			name := tcellKeyName(ev)
			if name == "" {
				continue
			}
			out = Event{Type: EventKey, Key: name}
		case *tcell.EventResize:
			w, h := ev.Size()
			out = Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventMouse:
			switch {
			case ev.Buttons()&tcell.WheelUp != 0:
				out = Event{Type: EventKey, Key: "up"}
			case ev.Buttons()&tcell.WheelDown != 0:
				out = Event{Type: EventKey, Key: "down"}
			default:
				continue
			}
		default:
			continue
		}
		if !f.send(out) {
			return
		}
	}
}

// drawCells paints text from column x of row y, clipped to width cells.
// Wide runes occupy two cells.
func drawCells(s tcell.Screen, x, y int, text string, width int, style tcell.Style) {
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col += w
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, style)
	}
}

var tcellNamedKeys = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyHome:   "home",
	tcell.KeyEnd:    "end",
	tcell.KeyPgUp:   "pgup",
	tcell.KeyPgDn:   "pgdn",
	tcell.KeyEscape: "esc",
	tcell.KeyEnter:  "enter",
	tcell.KeyCtrlC:  "ctrl+c",
	tcell.KeyCtrlD:  "ctrl+d",
	tcell.KeyCtrlU:  "ctrl+u",
}

// tcellKeyName converts a tcell key event into a key name.
func tcellKeyName(ev *tcell.EventKey) string {
	mods := ev.Modifiers()
	prefix := ""
	if mods&tcell.ModAlt != 0 {
		prefix = "alt+"
	}

	if ev.Key() == tcell.KeyRune {
		return prefix + string(ev.Rune())
	}

	name, ok := tcellNamedKeys[ev.Key()]
	if !ok {
		return ""
	}
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		if mods&tcell.ModCtrl != 0 {
			prefix = "ctrl+" + prefix
		}
	}
	return prefix + name
}
