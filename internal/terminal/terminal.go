package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

var getSize = term.GetSize

// Terminal manages raw mode, alternate screen buffer, and terminal dimensions.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
}

func NewTerminal() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	// Query size first: nothing can be placed without it.
	w, h, err := getSize(int(t.out.Fd()))
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	t.width, t.height = w, h

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.oldState = oldState

	// Enter alternate screen buffer.
	t.out.WriteString("\x1b[?1049h")

	// Hide cursor during setup.
	t.out.WriteString("\x1b[?25l")

	// Enable SGR mouse protocol for wheel scrolling.
	t.out.WriteString("\x1b[?1000h") // Button events
	t.out.WriteString("\x1b[?1006h") // SGR extended mode

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
// A failed query is returned as an error and leaves the old size in place.
func (t *Terminal) Resize() (bool, error) {
	w, h, err := getSize(int(t.out.Fd()))
	if err != nil {
		return false, fmt.Errorf("query terminal size: %w", err)
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed, nil
}

// Width returns the current terminal width.
func (t *Terminal) Width() int { return t.width }

// Height returns the current terminal height.
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Write writes a rendered frame to the terminal.
func (t *Terminal) Write(frame string) error {
	_, err := t.out.WriteString(frame)
	return err
}

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() {
	// Disable mouse protocols.
	t.out.WriteString("\x1b[?1006l")
	t.out.WriteString("\x1b[?1000l")
	// Show cursor.
	t.out.WriteString("\x1b[?25h")
	// Leave alternate screen buffer.
	t.out.WriteString("\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(t.in.Fd()), t.oldState)
	}
	signal.Stop(t.sigwinch)
}

// ReadKey reads a single input event from stdin in raw mode.
func (t *Terminal) ReadKey() (InputEvent, error) {
	buf := make([]byte, 32) // Large enough for SGR mouse sequences
	n, err := t.in.Read(buf)
	if err != nil {
		return InputEvent{}, err
	}
	return ParseInput(buf[:n]), nil
}
