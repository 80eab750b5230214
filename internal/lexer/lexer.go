// Package lexer converts source text into a stream of tokens with
// synthetic INDENT/DEDENT/NEWLINE tokens computed from leading
// whitespace.
//
// INDENT/DEDENT synthesis cannot be decided per-character: it requires
// the lexer to have committed to a complete logical line — including
// blank and comment-only lines that must be skipped without affecting
// the indent stack — before it can decide the indent delta. So the
// Lexer is line-buffered: Advance refills an internal token queue one
// logical source line at a time, and callers only ever see Current/
// Advance, never the line machinery.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/wisplang/wisp/internal/token"
	"github.com/wisplang/wisp/internal/werrors"
)

// Lexer tokenizes source text into the stream New's doc describes.
type Lexer struct {
	lines       []string
	lineNo      int // 0-based index of the next raw line to process
	indentStack []int
	queue       []token.Token
	current     token.Token
	atEOF       bool // true once the final Eof has been produced
}

// New constructs a Lexer over input and positions it so that Current
// returns the first token. Returns a *werrors.LexerError if the first
// logical line is ill-formed.
func New(input string) (*Lexer, error) {
	l := &Lexer{
		lines:       strings.Split(input, "\n"),
		indentStack: []int{0},
	}
	if err := l.Advance(); err != nil {
		return nil, err
	}
	return l, nil
}

// Current returns the most recently produced token without consuming it.
func (l *Lexer) Current() token.Token { return l.current }

// Advance consumes Current and computes the next token, refilling the
// internal queue by processing whole logical lines as needed.
func (l *Lexer) Advance() error {
	for len(l.queue) == 0 {
		if l.atEOF {
			l.current = token.New(token.EOF, token.Position{Line: len(l.lines) + 1, Column: 1})
			return nil
		}
		if l.lineNo >= len(l.lines) {
			l.drainIndentsAtEOF()
			l.atEOF = true
			continue
		}
		if err := l.readLogicalLine(); err != nil {
			return err
		}
	}
	l.current = l.queue[0]
	l.queue = l.queue[1:]
	return nil
}

func (l *Lexer) drainIndentsAtEOF() {
	pos := token.Position{Line: len(l.lines) + 1, Column: 1}
	for len(l.indentStack) > 1 {
		l.indentStack = l.indentStack[:len(l.indentStack)-1]
		l.queue = append(l.queue, token.New(token.DEDENT, pos))
	}
}

// readLogicalLine processes one raw line of input: it may emit nothing
// (blank or comment-only line), or it may emit INDENT/DEDENT tokens
// followed by the line's content tokens and a trailing NEWLINE.
func (l *Lexer) readLogicalLine() error {
	lineIdx := l.lineNo
	raw := l.lines[lineIdx]
	l.lineNo++
	lineNum := lineIdx + 1

	spaces := 0
	for spaces < len(raw) && raw[spaces] == ' ' {
		spaces++
	}
	if spaces < len(raw) && raw[spaces] == '\t' {
		return werrors.NewLexerError(token.Position{Line: lineNum, Column: spaces + 1}, "bad indent size: tabs are not permitted in indentation")
	}

	rest := raw[spaces:]
	if rest == "" || strings.HasPrefix(rest, "#") {
		// Blank or comment-only line: no tokens, indent stack untouched.
		return nil
	}

	if spaces%2 != 0 {
		return werrors.NewLexerError(token.Position{Line: lineNum, Column: spaces + 1}, fmt.Sprintf("bad indent size: %d spaces is not a multiple of 2", spaces))
	}

	top := l.indentStack[len(l.indentStack)-1]
	switch {
	case spaces > top:
		count := (spaces - top) / 2
		for i := 0; i < count; i++ {
			l.indentStack = append(l.indentStack, top+2*(i+1))
			l.queue = append(l.queue, token.New(token.INDENT, token.Position{Line: lineNum, Column: 1}))
		}
	case spaces < top:
		count := 0
		for len(l.indentStack) > 1 && l.indentStack[len(l.indentStack)-1] > spaces {
			l.indentStack = l.indentStack[:len(l.indentStack)-1]
			count++
		}
		for i := 0; i < count; i++ {
			l.queue = append(l.queue, token.New(token.DEDENT, token.Position{Line: lineNum, Column: 1}))
		}
	}

	if err := l.scanLineContent(rest, lineNum, spaces); err != nil {
		return err
	}
	l.queue = append(l.queue, token.New(token.NEWLINE, token.Position{Line: lineNum, Column: len(raw) + 1}))
	return nil
}

// scanLineContent tokenizes everything after leading indentation on a
// single line, appending to l.queue. indentCols is the number of
// indentation columns already consumed, used for column reporting.
func (l *Lexer) scanLineContent(s string, lineNum, indentCols int) error {
	runes := []rune(s)
	pos := 0
	col := func(i int) token.Position { return token.Position{Line: lineNum, Column: indentCols + i + 1} }

	for pos < len(runes) {
		c := runes[pos]

		switch {
		case c == ' ' || c == '\t':
			pos++
			continue
		case c == '#':
			return nil // trailing comment consumes to end of line
		case c == '\'' || c == '"':
			str, n, err := scanString(runes, pos, lineNum, indentCols)
			if err != nil {
				return err
			}
			l.queue = append(l.queue, token.NewString(str, col(pos)))
			pos = n
			continue
		case unicode.IsDigit(c):
			n := pos
			for n < len(runes) && unicode.IsDigit(runes[n]) {
				n++
			}
			text := string(runes[pos:n])
			val, convErr := strconv.ParseInt(text, 10, 64)
			if convErr != nil {
				return werrors.NewLexerError(col(pos), fmt.Sprintf("number literal out of range: %s", text))
			}
			l.queue = append(l.queue, token.NewNumber(val, col(pos)))
			pos = n
			continue
		case isIdentStart(c):
			n := pos + 1
			for n < len(runes) && isIdentCont(runes[n]) {
				n++
			}
			text := norm.NFC.String(string(runes[pos:n]))
			if kw, ok := token.Keywords[text]; ok {
				l.queue = append(l.queue, token.New(kw, col(pos)))
			} else {
				l.queue = append(l.queue, token.NewID(text, col(pos)))
			}
			pos = n
			continue
		}

		// Operators and punctuation.
		two := func(expect rune) bool { return pos+1 < len(runes) && runes[pos+1] == expect }
		switch c {
		case '=':
			if two('=') {
				l.queue = append(l.queue, token.New(token.EQ, col(pos)))
				pos += 2
				continue
			}
		case '!':
			if two('=') {
				l.queue = append(l.queue, token.New(token.NOTEQ, col(pos)))
				pos += 2
				continue
			}
			return werrors.NewLexerError(col(pos), "solitary '!' is not a valid operator")
		case '<':
			if two('=') {
				l.queue = append(l.queue, token.New(token.LESSOREQ, col(pos)))
				pos += 2
				continue
			}
		case '>':
			if two('=') {
				l.queue = append(l.queue, token.New(token.GREATEROREQ, col(pos)))
				pos += 2
				continue
			}
		}

		l.queue = append(l.queue, token.NewChar(c, col(pos)))
		pos++
	}
	return nil
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentCont(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) || unicode.IsMark(c)
}

// scanString scans a string literal starting at runes[start] (the
// opening quote) and returns its decoded text plus the index just past
// the closing quote.
func scanString(runes []rune, start, lineNum, indentCols int) (string, int, error) {
	quote := runes[start]
	var sb strings.Builder
	i := start + 1
	for {
		if i >= len(runes) {
			return "", 0, werrors.NewLexerError(token.Position{Line: lineNum, Column: indentCols + i + 1}, "unexpected end of line inside string literal")
		}
		c := runes[i]
		if c == quote {
			return sb.String(), i + 1, nil
		}
		if c == '\\' {
			if i+1 >= len(runes) {
				return "", 0, werrors.NewLexerError(token.Position{Line: lineNum, Column: indentCols + i + 1}, "unterminated string literal")
			}
			esc := runes[i+1]
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"':
				sb.WriteRune('"')
			case '\'':
				sb.WriteRune('\'')
			case '\\':
				sb.WriteRune('\\')
			default:
				return "", 0, werrors.NewLexerError(token.Position{Line: lineNum, Column: indentCols + i + 1}, fmt.Sprintf("unrecognized escape sequence '\\%c'", esc))
			}
			i += 2
			continue
		}
		sb.WriteRune(c)
		i++
	}
}
