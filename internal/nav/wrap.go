package nav

import "strings"

// WrapResult is the output of Wrap: the physical rows joined by newlines and,
// for every row, the index of the logical line it came from.
type WrapResult struct {
	Text    string
	WrapIDs []int
}

// Rows splits Text back into physical rows.
func (w WrapResult) Rows() []string {
	return strings.Split(w.Text, "\n")
}

// SplitLines splits content into logical lines. A trailing newline does not
// produce a phantom empty line, a trailing \r is dropped from each line, and
// empty content is a single empty line.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// WrapLine hard-wraps a single logical line into chunks of at most width runes.
// There is no word awareness: a run of letters may be split anywhere.
func WrapLine(line string, width int) []string {
	if width <= 0 {
		width = 1
	}
	runes := []rune(line)
	if len(runes) == 0 {
		return []string{""}
	}

	rows := make([]string, 0, (len(runes)+width-1)/width)
	for offset := 0; offset < len(runes); offset += width {
		end := offset + width
		if end > len(runes) {
			end = len(runes)
		}
		rows = append(rows, string(runes[offset:end]))
	}
	return rows
}

// Wrap splits content into physical rows no wider than width runes.
// The same (content, width) always yields the same result.
func Wrap(content string, width int) WrapResult {
	var rows []string
	var ids []int
	for i, line := range SplitLines(content) {
		for _, row := range WrapLine(line, width) {
			rows = append(rows, row)
			ids = append(ids, i)
		}
	}
	return WrapResult{
		Text:    strings.Join(rows, "\n"),
		WrapIDs: ids,
	}
}
