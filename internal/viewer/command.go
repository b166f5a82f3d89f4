package viewer

// Command is one abstract viewer action. Keys are bound to commands by a
// Keymap; the App executes commands against the cursor and layout.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdHome
	CmdEnd
	CmdWordLeft
	CmdWordRight
	CmdPageUp
	CmdPageDown
	CmdHalfPageUp
	CmdHalfPageDown
	CmdTop
	CmdBottom
	CmdWiden
	CmdNarrow
	CmdReload
	CmdQuit
)

var commandNames = map[Command]string{
	CmdUp:           "up",
	CmdDown:         "down",
	CmdLeft:         "left",
	CmdRight:        "right",
	CmdHome:         "home",
	CmdEnd:          "end",
	CmdWordLeft:     "word-left",
	CmdWordRight:    "word-right",
	CmdPageUp:       "page-up",
	CmdPageDown:     "page-down",
	CmdHalfPageUp:   "half-page-up",
	CmdHalfPageDown: "half-page-down",
	CmdTop:          "top",
	CmdBottom:       "bottom",
	CmdWiden:        "widen",
	CmdNarrow:       "narrow",
	CmdReload:       "reload",
	CmdQuit:         "quit",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, n := range commandNames {
		m[n] = c
	}
	return m
}()

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "none"
}

// ParseCommand looks up a command by its configuration name.
func ParseCommand(name string) (Command, bool) {
	c, ok := commandsByName[name]
	return c, ok
}
