package viewer

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Document is the immutable text snapshot being viewed. Reload replaces
// the snapshot; nothing edits it in place.
type Document struct {
	Path     string
	Content  string
	TabWidth int
}

// LoadDocument reads path into a Document. Tabs are expanded to tabWidth
// columns so that every rune occupies one cursor position.
func LoadDocument(path string, tabWidth int) (*Document, error) {
	d := &Document{Path: path, TabWidth: tabWidth}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload re-reads the file. On error the previous content is kept.
func (d *Document) Reload() error {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return fmt.Errorf("load %s: %w", d.Path, err)
	}
	d.Content = normalize(data, d.TabWidth)
	return nil
}

// LineCount returns the number of logical lines.
func (d *Document) LineCount() int {
	text := strings.TrimSuffix(d.Content, "\n")
	return strings.Count(text, "\n") + 1
}

// normalize converts raw file bytes into viewable text: CRLF and lone CR
// line endings become LF, invalid UTF-8 is replaced and tabs are expanded.
func normalize(data []byte, tabWidth int) string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	text := strings.ToValidUTF8(string(data), "�")
	if tabWidth <= 0 || !strings.Contains(text, "\t") {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = expandTabs(line, tabWidth)
	}
	return strings.Join(lines, "\n")
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(line string, tabWidth int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
