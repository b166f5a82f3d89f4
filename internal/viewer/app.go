// Package viewer is the interactive shell around the navigation core: it
// loads the document, maps keys to cursor commands and paints frames
// through a terminal frontend.
package viewer

import (
	"fmt"
	"log"

	"github.com/JackWReid/lector/internal/config"
	"github.com/JackWReid/lector/internal/nav"
	"github.com/JackWReid/lector/internal/watch"
)

// App is the top-level viewer state. All fields are owned by the event
// loop goroutine.
type App struct {
	cfg       config.Config
	doc       *Document
	keys      Keymap
	layout    Layout
	cursor    *nav.Cursor
	statusBar *StatusBar
	frontend  Frontend

	quit bool
}

// NewApp loads path and prepares the key bindings. No terminal state is
// touched until Run.
func NewApp(path string, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := NewKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}
	doc, err := LoadDocument(path, cfg.TabWidth)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:       cfg,
		doc:       doc,
		keys:      keys,
		statusBar: NewStatusBar(),
	}, nil
}

// Run opens the configured frontend and processes events until quit.
func (a *App) Run() error {
	front, err := openFrontend(a.cfg.Backend)
	if err != nil {
		return err
	}
	defer front.Close()

	var changes <-chan struct{}
	if a.cfg.Watch {
		w, err := watch.New(a.doc.Path, 0)
		if err != nil {
			// Viewing still works without live reload.
			log.Printf("Viewer: not watching %s: %v", a.doc.Path, err)
		} else {
			defer w.Close()
			changes = w.Changes()
		}
	}

	return a.run(front, changes)
}

func openFrontend(backend string) (Frontend, error) {
	switch backend {
	case config.BackendTcell:
		return NewTcellFrontend(nil)
	case config.BackendANSI, "":
		return NewANSIFrontend()
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

// run is the event loop. One event drives one batch of state changes and
// at most one draw.
func (a *App) run(front Frontend, changes <-chan struct{}) error {
	a.frontend = front
	w, h := front.Size()
	a.layout = NewLayout(w, h, a.cfg.ColumnWidth)
	a.rebuild()
	log.Printf("Viewer: opened %s (%d lines) at %dx%d, column %d",
		a.doc.Path, a.doc.LineCount(), w, h, a.layout.ColWidth)

	if err := a.draw(true); err != nil {
		return err
	}

	for !a.quit {
		var full bool
		select {
		case ev, ok := <-front.Events():
			if !ok {
				return nil
			}
			switch ev.Type {
			case EventError:
				return ev.Err
			case EventResize:
				a.resize(ev.Width, ev.Height)
				full = true
			case EventKey:
				a.statusBar.ClearMessage()
				full = a.execute(a.keys.Lookup(ev.Key))
			}
		case <-changes:
			a.reload()
			full = true
		}
		if a.quit {
			break
		}
		if err := a.draw(full); err != nil {
			return err
		}
	}
	return nil
}

// height is the live viewport height read by the cursor.
func (a *App) height() int {
	return a.layout.VisibleLines()
}

// rebuild re-wraps the document at the current column width and migrates
// the cursor onto the new rows.
func (a *App) rebuild() {
	a.cursor = nav.Rebuild(a.cursor, a.doc.Content, a.layout.ColWidth, a.height)
	ix := a.cursor.Index()
	log.Printf("Viewer: indexed width=%d rows=%d tokens=%d",
		ix.Width(), ix.RowCount(), len(ix.Spans()))
	if n := len(ix.Unmatched()); n > 0 {
		log.Printf("Viewer: %d tokens could not be placed, first %q", n, ix.Unmatched()[0].Value)
	}
}

func (a *App) resize(w, h int) {
	old := a.layout.ColWidth
	a.layout.Resize(w, h)
	if a.layout.ColWidth != old {
		a.rebuild()
		return
	}
	// Same wrap width: only the viewport height changed.
	a.cursor.EnsureVisible()
}

func (a *App) reload() {
	if err := a.doc.Reload(); err != nil {
		log.Printf("Viewer: reload: %v", err)
		a.statusBar.SetMessage("reload failed: " + err.Error())
		return
	}
	a.rebuild()
	a.statusBar.SetMessage("reloaded")
	log.Printf("Viewer: reloaded %s", a.doc.Path)
}

// execute applies cmd and reports whether the text area must be redrawn.
func (a *App) execute(cmd Command) bool {
	c := a.cursor
	before := c.VerticalOffset()

	switch cmd {
	case CmdNone:
		return false
	case CmdUp:
		return c.MoveUp()
	case CmdDown:
		return c.MoveDown()
	case CmdLeft:
		c.MoveLeft()
	case CmdRight:
		c.MoveRight()
	case CmdHome:
		c.MoveHome()
	case CmdEnd:
		c.MoveEnd()
	case CmdWordLeft:
		c.MoveToken(nav.Left)
	case CmdWordRight:
		c.MoveToken(nav.Right)
	case CmdPageUp:
		return c.PageUp()
	case CmdPageDown:
		return c.PageDown()
	case CmdHalfPageUp:
		return c.MoveRows(-halfPage(a.height()))
	case CmdHalfPageDown:
		return c.MoveRows(halfPage(a.height()))
	case CmdTop:
		return c.MoveTop()
	case CmdBottom:
		return c.MoveBottom()
	case CmdWiden:
		if a.layout.Widen() {
			a.rebuild()
		}
		a.statusBar.SetMessage(fmt.Sprintf("width %d", a.layout.ColWidth))
		return true
	case CmdNarrow:
		if a.layout.Narrow() {
			a.rebuild()
		}
		a.statusBar.SetMessage(fmt.Sprintf("width %d", a.layout.ColWidth))
		return true
	case CmdReload:
		a.reload()
		return true
	case CmdQuit:
		a.quit = true
		return false
	}
	return c.VerticalOffset() != before
}

func halfPage(h int) int {
	if h < 2 {
		return 1
	}
	return h / 2
}

// frame assembles what the frontend paints.
func (a *App) frame(full bool) Frame {
	x, row := a.cursor.ScreenPosition()
	return Frame{
		Layout:      a.layout,
		Rows:        a.cursor.VisibleRows(),
		CursorX:     x,
		CursorRow:   row,
		StatusLeft:  a.statusBar.FormatLeft(a.doc.Path),
		StatusRight: a.statusBar.FormatRight(cursorStatus(a.cursor)),
		Full:        full,
	}
}

func (a *App) draw(full bool) error {
	if err := a.frontend.Draw(a.frame(full)); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}
