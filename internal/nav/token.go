package nav

import (
	"strings"
	"unicode"
)

// TokenType classifies a token.
type TokenType int

const (
	Word   TokenType = iota // run of letters, digits and underscores
	Symbol                  // any other single non-space character
)

func (t TokenType) String() string {
	switch t {
	case Word:
		return "word"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Token is one word or symbol, numbered in document order.
type Token struct {
	ID    int
	Value string
	Type  TokenType
}

// TokenSpan places a token on the physical rows. RowStart differs from RowEnd
// only when the wrapper split the token across rows; ColEnd is then a column
// of RowEnd.
type TokenSpan struct {
	Token
	RowStart int
	ColStart int
	RowEnd   int
	ColEnd   int
}

// Contains reports whether the span covers column col of row.
func (s TokenSpan) Contains(row, col int) bool {
	if row < s.RowStart || row > s.RowEnd {
		return false
	}
	if row == s.RowStart && col < s.ColStart {
		return false
	}
	if row == s.RowEnd && col > s.ColEnd {
		return false
	}
	return true
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// sameLine reports whether rows a and b come from the same logical line.
// Rows outside ids are treated as lines of their own.
func sameLine(ids []int, a, b int) bool {
	if a < 0 || b < 0 || a >= len(ids) || b >= len(ids) {
		return false
	}
	return ids[a] == ids[b]
}

// Tokenize splits wrapped text into tokens. Rows sharing a wrap id are read
// as one logical line, so a word the wrapper split is still a single token.
func Tokenize(text string, wrapIDs []int) []Token {
	var tokens []Token
	var word []rune

	flush := func() {
		if len(word) == 0 {
			return
		}
		tokens = append(tokens, Token{ID: len(tokens), Value: string(word), Type: Word})
		word = word[:0]
	}

	for i, row := range strings.Split(text, "\n") {
		if i > 0 && !sameLine(wrapIDs, i-1, i) {
			flush()
		}
		for _, r := range row {
			switch {
			case isWordChar(r):
				word = append(word, r)
			case unicode.IsSpace(r):
				flush()
			default:
				flush()
				tokens = append(tokens, Token{ID: len(tokens), Value: string(r), Type: Symbol})
			}
		}
	}
	flush()
	return tokens
}

// MapPositions walks the rows and assigns each token, in order, the first
// place where its characters appear. A token whose first character matches
// but whose remainder does not is retried one column later; the token index
// never moves backwards. Tokens still unmatched when the rows run out are
// returned as the second result.
func MapPositions(text string, wrapIDs []int, tokens []Token) ([]TokenSpan, []Token) {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}

	spans := make([]TokenSpan, 0, len(tokens))
	ti := 0
	row, col := 0, 0
	for row < len(rows) && ti < len(tokens) {
		if col >= len(rows[row]) {
			row++
			col = 0
			continue
		}
		r := rows[row][col]
		if unicode.IsSpace(r) {
			col++
			continue
		}
		want := []rune(tokens[ti].Value)
		if len(want) == 0 || r != want[0] {
			col++
			continue
		}
		endRow, endCol, ok := matchAt(rows, wrapIDs, row, col, want)
		if !ok {
			col++
			continue
		}
		spans = append(spans, TokenSpan{
			Token:    tokens[ti],
			RowStart: row,
			ColStart: col,
			RowEnd:   endRow,
			ColEnd:   endCol,
		})
		ti++
		row, col = endRow, endCol+1
	}
	return spans, tokens[ti:]
}

// matchAt matches want starting at (row, col), continuing at column 0 of the
// next row when it is a soft-wrap continuation. It returns the position of
// the last matched character.
func matchAt(rows [][]rune, wrapIDs []int, row, col int, want []rune) (int, int, bool) {
	endRow, endCol := row, col
	for _, ch := range want {
		for col >= len(rows[row]) {
			if row+1 >= len(rows) || !sameLine(wrapIDs, row, row+1) {
				return 0, 0, false
			}
			row++
			col = 0
		}
		if rows[row][col] != ch {
			return 0, 0, false
		}
		endRow, endCol = row, col
		col++
	}
	return endRow, endCol, true
}
