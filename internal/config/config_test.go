package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
column_width = 72
backend = "tcell"
watch = false

[keys]
"ctrl+n" = "down"
J = "page-down"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 72, cfg.ColumnWidth)
	require.Equal(t, 4, cfg.TabWidth, "unset keys keep their defaults")
	require.Equal(t, BackendTcell, cfg.Backend)
	require.False(t, cfg.Watch)
	require.Equal(t, map[string]string{"ctrl+n": "down", "J": "page-down"}, cfg.Keys)
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "column_width = \n")
	_, err := Load(path)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, path, pe.Path)
	require.Equal(t, 1, pe.Line)
	require.Contains(t, pe.Error(), "line 1")
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "colum_width = 60\n")
	_, err := Load(path)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Contains(t, pe.Message, "colum_width")
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative width", "column_width = -1"},
		{"zero tab", "tab_width = 0"},
		{"bad backend", `backend = "curses"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			require.Equal(t, Default(), cfg)
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	// A directory cannot be read as a file.
	_, err := Load(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestValidateAcceptsFullTerminalWidth(t *testing.T) {
	cfg := Default()
	cfg.ColumnWidth = 0
	require.NoError(t, cfg.Validate())
}

func TestPathResolution(t *testing.T) {
	t.Setenv("LECTOR_CONFIG", "/tmp/explicit.toml")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	require.Equal(t, "/tmp/explicit.toml", Path())

	t.Setenv("LECTOR_CONFIG", "")
	require.Equal(t, filepath.Join("/xdg", "lector", "config.toml"), Path())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/reader")
	require.Equal(t, filepath.Join("/home/reader", ".config", "lector", "config.toml"), Path())
}

func TestParseErrorFormatting(t *testing.T) {
	inner := errors.New("boom")
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad", Err: inner}, "parse error in a.toml at line 3, column 7: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.err.Error())
	}
	require.ErrorIs(t, tests[0].err, inner)
}
