// Package lexer implements the LIFT tokeniser.
//
// The lexer converts a LIFT source string into a flat stream of [ast.Token]
// values. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Type == [ast.EOF].
//
// Design notes:
//   - Single-pass, character-by-character scanning using a read position
//     cursor. No global state; every [Lexer] is independent, so distinct
//     source units can be lexed concurrently with distinct lexers.
//   - Line, column and byte offset are tracked for every token; each token
//     carries the full span of the text it was scanned from.
//   - Whitespace, line comments (// …) and block comments (/* … */) are
//     consumed silently but still advance position tracking.
//   - Multi-character operators (==, !=, <=, >=, &&, ||, =>, ..) are matched
//     longest-first with one character of look-ahead, so "<=" is always one
//     token and never '<' followed by '='.
//   - The lexer never fails hard. An unrecognised character or unterminated
//     string/comment produces an ILLEGAL token plus a diagnostic in the
//     shared collection, and scanning resumes at the next character.
package lexer

import (
	"github.com/liftlang/lift/ast"
	"github.com/liftlang/lift/diag"
)

// Lexer holds all state required to tokenise a single LIFT source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input   string // the full source text
	pos     int    // current read position (index of ch)
	readPos int    // next read position (pos + 1)
	ch      byte   // current character under examination

	line int // current 1-based line number
	col  int // 1-based column of ch

	diags *diag.Collection // shared diagnostics, reported to but never read
}

// New creates a [Lexer] that tokenises the given input string, reporting
// lexical errors into diags. The lexer is positioned at the first character;
// call [Lexer.NextToken] immediately to begin scanning.
func New(input string, diags *diag.Collection) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
		diags: diags,
	}
	l.readChar() // prime: set l.ch = input[0]
	return l
}

// NextToken returns the next token from the input.
//
// Whitespace and comments are skipped before each token. When the input is
// exhausted, NextToken returns a token with Type == [ast.EOF] on every
// subsequent call.
func (l *Lexer) NextToken() ast.Token {
	l.skipWhitespaceAndComments()

	start := l.position()

	switch l.ch {
	// ── End of input ────────────────────────────────────────────────────────
	case 0:
		return ast.Token{Type: ast.EOF, Span: ast.Span{Start: start, End: start}}

	// ── String literal ──────────────────────────────────────────────────────
	case '"':
		return l.readString()

	// ── Single-character delimiters ─────────────────────────────────────────
	case '(':
		return l.single(ast.LPAREN)
	case ')':
		return l.single(ast.RPAREN)
	case '{':
		return l.single(ast.LBRACE)
	case '}':
		return l.single(ast.RBRACE)
	case '[':
		return l.single(ast.LBRACKET)
	case ']':
		return l.single(ast.RBRACKET)
	case ',':
		return l.single(ast.COMMA)
	case ':':
		return l.single(ast.COLON)
	case ';':
		return l.single(ast.SEMICOLON)
	case '+':
		return l.single(ast.PLUS)
	case '-':
		return l.single(ast.MINUS)
	case '*':
		return l.single(ast.ASTERISK)
	case '/':
		// A comment-starting '/' was already skipped above, so this is division.
		return l.single(ast.SLASH)
	case '%':
		return l.single(ast.PERCENT)
	case '^':
		return l.single(ast.CARET)
	case '~':
		return l.single(ast.TILDE)

	// ── Operators that may be one or two characters (maximal munch) ─────────
	case '=':
		switch l.peekChar() {
		case '=':
			return l.double(ast.EQ)
		case '>':
			return l.double(ast.FATARROW)
		}
		return l.single(ast.ASSIGN)
	case '!':
		if l.peekChar() == '=' {
			return l.double(ast.NEQ)
		}
		return l.single(ast.BANG)
	case '<':
		if l.peekChar() == '=' {
			return l.double(ast.LTE)
		}
		return l.single(ast.LT)
	case '>':
		if l.peekChar() == '=' {
			return l.double(ast.GTE)
		}
		return l.single(ast.GT)
	case '&':
		if l.peekChar() == '&' {
			return l.double(ast.AND)
		}
		return l.single(ast.AMP)
	case '|':
		if l.peekChar() == '|' {
			return l.double(ast.OR)
		}
		return l.single(ast.PIPE)
	case '.':
		if l.peekChar() == '.' {
			return l.double(ast.RANGE)
		}
		return l.single(ast.DOT)

	// ── Identifiers, keywords and numbers ───────────────────────────────────
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok := l.single(ast.ILLEGAL)
		l.diags.Errorf(diag.InvalidChar, tok.Span, "invalid character %q", tok.Literal)
		return tok
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// position returns the source position of the character under the cursor.
func (l *Lexer) position() ast.Position {
	return ast.Position{Line: l.line, Col: l.col, Offset: l.pos}
}

// readChar advances the lexer by one character.
// When the input is exhausted l.ch is set to 0 (the null byte sentinel).
// Line and column counters are updated here; col is 1-based.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	// Newlines bump the line counter and reset the column.
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without consuming it.
// Returns 0 when the end of input has been reached.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// single consumes the current character and returns it as a one-character
// token of the given type.
func (l *Lexer) single(tt ast.TokenType) ast.Token {
	start := l.position()
	lit := string(l.ch)
	l.readChar()
	return ast.Token{Type: tt, Literal: lit, Span: ast.Span{Start: start, End: l.position()}}
}

// double consumes the current character and the next one, returning them
// together as a two-character token of the given type.
func (l *Lexer) double(tt ast.TokenType) ast.Token {
	start := l.position()
	lit := string(l.ch) + string(l.peekChar())
	l.readChar()
	l.readChar()
	return ast.Token{Type: tt, Literal: lit, Span: ast.Span{Start: start, End: l.position()}}
}

// skipWhitespaceAndComments advances past all whitespace, line comments and
// block comments before the next meaningful token. An unterminated block
// comment is reported and consumes the rest of the input.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			switch l.peekChar() {
			case '/':
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
			case '*':
				l.skipBlockComment()
			default:
				return // lone '/' is the division operator
			}
		default:
			return
		}
	}
}

// skipBlockComment consumes a /* ... */ comment. The cursor is on the
// opening '/' when called. Block comments do not nest.
func (l *Lexer) skipBlockComment() {
	start := l.position()
	l.readChar() // consume '/'
	l.readChar() // consume '*'
	for {
		if l.ch == 0 {
			l.diags.Errorf(diag.UnterminatedComment,
				ast.Span{Start: start, End: l.position()}, "unterminated block comment")
			return
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar() // consume '*'
			l.readChar() // consume '/'
			return
		}
		l.readChar()
	}
}

// readIdentifier scans an identifier or keyword starting at the current
// position. The cursor is left on the first non-identifier character.
func (l *Lexer) readIdentifier() ast.Token {
	start := l.position()
	begin := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[begin:l.pos]
	return ast.Token{
		Type:    ast.LookupIdent(literal),
		Literal: literal,
		Span:    ast.Span{Start: start, End: l.position()},
	}
}

// readNumber scans an integer or floating-point literal. A decimal point
// with digits on both sides turns the token into a FLOAT; a '.' followed by
// anything else (including a second '.', the range operator) is left for the
// next call. A leading '-' is never consumed here — negation belongs to the
// parser's unary operator, which keeps "a-1" and "-1" unambiguous.
func (l *Lexer) readNumber() ast.Token {
	start := l.position()
	begin := l.pos
	tt := ast.INT

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tt = ast.FLOAT
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return ast.Token{
		Type:    tt,
		Literal: l.input[begin:l.pos],
		Span:    ast.Span{Start: start, End: l.position()},
	}
}

// readString scans a double-quoted string literal, decoding the escape
// sequences \n \t \\ \" into the token's Literal. The opening '"' is under
// the cursor when this is called.
//
// If the string is not closed before a newline or EOF, an ILLEGAL token
// spanning from the opening quote to the end of the line is returned and a
// diagnostic is reported; scanning resumes after the break.
func (l *Lexer) readString() ast.Token {
	start := l.position()
	l.readChar() // skip opening '"'

	var buf []byte
	for {
		switch l.ch {
		case '"':
			l.readChar() // consume closing '"'
			return ast.Token{
				Type:    ast.STRING,
				Literal: string(buf),
				Span:    ast.Span{Start: start, End: l.position()},
			}

		case '\\':
			l.readChar() // consume backslash; l.ch is now the escaped character
			switch l.ch {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case '\\':
				buf = append(buf, '\\')
			case '"':
				buf = append(buf, '"')
			default:
				// Unknown escape: pass through literally (backslash + char).
				buf = append(buf, '\\', l.ch)
			}
			l.readChar()

		case '\n', 0:
			// Unterminated string. The span runs to the end of the line.
			span := ast.Span{Start: start, End: l.position()}
			l.diags.Errorf(diag.UnterminatedString, span, "unterminated string literal")
			return ast.Token{Type: ast.ILLEGAL, Literal: string(buf), Span: span}

		default:
			buf = append(buf, l.ch)
			l.readChar()
		}
	}
}

// isLetter reports whether b can start or continue an identifier.
// LIFT identifiers follow the pattern [a-zA-Z_][a-zA-Z0-9_]*.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
