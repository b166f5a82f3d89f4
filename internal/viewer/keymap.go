package viewer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Keymap binds key names to commands.
//
// Key names are shared by both frontends and by the [keys] table of the
// config file. Named keys are lower case with optional modifier prefixes
// ("up", "pgdn", "ctrl+left", "alt+f"). A printable character names itself
// and is case sensitive ("g" and "G" differ, as do "alt+b" and "alt+B").
type Keymap map[string]Command

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"up":         CmdUp,
		"down":       CmdDown,
		"left":       CmdLeft,
		"right":      CmdRight,
		"home":       CmdHome,
		"end":        CmdEnd,
		"ctrl+left":  CmdWordLeft,
		"ctrl+right": CmdWordRight,
		"alt+b":      CmdWordLeft,
		"alt+f":      CmdWordRight,
		"alt+left":   CmdWordLeft,
		"alt+right":  CmdWordRight,
		"pgup":       CmdPageUp,
		"pgdn":       CmdPageDown,
		"ctrl+u":     CmdHalfPageUp,
		"ctrl+d":     CmdHalfPageDown,
		"ctrl+c":     CmdQuit,
		"esc":        CmdQuit,

		"k": CmdUp,
		"j": CmdDown,
		"h": CmdLeft,
		"l": CmdRight,
		"0": CmdHome,
		"$": CmdEnd,
		"b": CmdWordLeft,
		"w": CmdWordRight,
		"g": CmdTop,
		"G": CmdBottom,
		"+": CmdWiden,
		"-": CmdNarrow,
		"r": CmdReload,
		"q": CmdQuit,
	}
}

// NewKeymap returns the default bindings with overrides applied. Each
// override maps a key name to a command name; the command "none" unbinds
// the key. An unknown command name is an error.
func NewKeymap(overrides map[string]string) (Keymap, error) {
	km := DefaultKeymap()

	// Sorted so the reported error is stable.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := NormalizeKey(k)
		if name == "" {
			return nil, fmt.Errorf("keys: empty key name")
		}
		cmdName := strings.ToLower(strings.TrimSpace(overrides[k]))
		if cmdName == "none" {
			delete(km, name)
			continue
		}
		cmd, ok := ParseCommand(cmdName)
		if !ok {
			return nil, fmt.Errorf("keys: %q bound to unknown command %q", k, overrides[k])
		}
		km[name] = cmd
	}
	return km, nil
}

// Lookup returns the command bound to key, or CmdNone.
func (km Keymap) Lookup(key string) Command {
	return km[key]
}

// NormalizeKey canonicalises a key name. Modifiers and named keys are
// lower-cased; a trailing single character keeps its case.
func NormalizeKey(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= 1 {
		return name
	}
	i := strings.LastIndex(name[:len(name)-1], "+")
	mods, key := "", name
	if i >= 0 {
		mods, key = strings.ToLower(name[:i+1]), name[i+1:]
	}
	if utf8.RuneCountInString(key) > 1 {
		key = strings.ToLower(key)
		switch key {
		case "escape":
			key = "esc"
		case "pageup":
			key = "pgup"
		case "pagedown":
			key = "pgdn"
		}
	}
	return mods + key
}
