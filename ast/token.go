// Package ast defines the token types and the Token struct used by the LIFT
// lexer and parser, plus the AST node types built from them.
//
// Tokens are the smallest meaningful units of a LIFT source file. Every token
// carries its type, the exact literal text it was scanned from (or the decoded
// value for string literals), and a source span. Positions are 1-based for
// line and column; byte offsets are 0-based.
package ast

import "fmt"

// TokenType identifies the category of a scanned token.
type TokenType int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// ILLEGAL represents a character or sequence the lexer could not recognise,
	// such as an unterminated string literal or an unexpected byte value.
	// The lexer reports a diagnostic for every ILLEGAL token it emits and then
	// keeps scanning, so one bad character never hides later errors.
	ILLEGAL TokenType = iota
	// EOF marks the end of the input stream. The parser stops when it sees EOF.
	EOF

	// ── Literals ───────────────────────────────────────────────────────────────

	// IDENT is an identifier: [a-zA-Z_][a-zA-Z0-9_]*
	// Identifiers that match a keyword are re-classified to their keyword type
	// by the lexer before the token is returned. The lone underscore "_" lexes
	// as IDENT and is given meaning (wildcard pattern) by the parser.
	IDENT
	// INT is a decimal integer literal, e.g. 0, 42, 1000.
	// A leading '-' is never part of the literal; negation is the parser's
	// unary operator, which keeps "a-1" unambiguous.
	INT
	// FLOAT is a decimal floating-point literal, e.g. 3.14, 0.5.
	// The literal must contain a '.' with digits on both sides.
	FLOAT
	// STRING is a double-quoted string literal, e.g. "hello\nworld".
	// Recognised escape sequences: \n  \t  \\  \"
	// The token's Literal holds the decoded value, not the raw source text.
	// An unterminated string (no closing '"' before newline or EOF) produces
	// ILLEGAL spanning to the end of the line.
	STRING

	// ── Keywords ───────────────────────────────────────────────────────────────

	// LET introduces a mutable binding: let x = 42
	LET
	// CONST introduces an immutable binding: const pi = 3.14
	CONST
	// FUNC introduces a function declaration: func add(a: int, b: int): int
	FUNC
	// IF begins a conditional statement: if x > 0 { ... }
	IF
	// ELSE is the else (or else-if) branch of a conditional.
	ELSE
	// MATCH begins a pattern-matching expression: match n { ... }
	MATCH
	// STRUCT introduces a record-type declaration: struct Point { x: int, y: int }
	STRUCT
	// RETURN performs an early return from a function: return n * 2
	RETURN
	// IMPORT names an external module: import math
	// Import resolution is handled outside this front end.
	IMPORT
	// FOR begins an iterator loop: for i in 0 .. 10 { ... }
	FOR
	// IN separates the binding from the iterable in a for loop.
	IN
	// WHILE begins a conditional loop: while i < 10 { ... }
	WHILE
	// TRY is reserved for future error handling; using it is a parse error.
	TRY
	// CATCH is reserved for future error handling; using it is a parse error.
	CATCH
	// TRUE is the boolean literal true.
	TRUE
	// FALSE is the boolean literal false.
	FALSE

	// ── Arithmetic operators ────────────────────────────────────────────────────

	// PLUS is the addition operator: a + b
	PLUS
	// MINUS is subtraction or unary negation: a - b  /  -x
	MINUS
	// ASTERISK is the multiplication operator: a * b
	ASTERISK
	// SLASH is the division operator: a / b
	SLASH
	// PERCENT is the remainder operator: n % 2
	PERCENT

	// ── Comparison operators ────────────────────────────────────────────────────

	// EQ is the equality operator: a == b
	EQ
	// NEQ is the inequality operator: a != b
	NEQ
	// LT is the less-than operator: a < b
	LT
	// GT is the greater-than operator: a > b
	GT
	// LTE is the less-than-or-equal operator: a <= b
	LTE
	// GTE is the greater-than-or-equal operator: a >= b
	GTE

	// ── Logical operators ───────────────────────────────────────────────────────

	// AND is the logical-AND operator: a && b
	AND
	// OR is the logical-OR operator: a || b
	OR
	// BANG is the logical-NOT operator: !done
	BANG

	// ── Bitwise operators ───────────────────────────────────────────────────────

	// AMP is the bitwise-AND operator: flags & mask
	AMP
	// PIPE is the bitwise-OR operator: flags | bit
	PIPE
	// CARET is the bitwise-XOR operator: a ^ b
	CARET
	// TILDE is the bitwise-NOT operator: ~mask
	TILDE

	// ── Other operators ─────────────────────────────────────────────────────────

	// ASSIGN is the assignment operator: count = count + 1
	ASSIGN
	// FATARROW separates a parameter list from an anonymous function body and a
	// match pattern from its result: (x: int) => x * x
	FATARROW
	// RANGE is the exclusive integer range operator: 0 .. 10
	RANGE

	// ── Delimiters ──────────────────────────────────────────────────────────────

	// LPAREN is the left parenthesis: (
	LPAREN
	// RPAREN is the right parenthesis: )
	RPAREN
	// LBRACE is the left curly brace: {
	LBRACE
	// RBRACE is the right curly brace: }
	RBRACE
	// LBRACKET is the left square bracket: [
	LBRACKET
	// RBRACKET is the right square bracket: ]
	RBRACKET
	// COMMA is the argument, field and arm separator: ,
	COMMA
	// COLON is the type annotation separator: x: int
	COLON
	// SEMICOLON is the optional statement terminator: ;
	SEMICOLON
	// DOT is the field access operator: point.x
	// Two consecutive dots are scanned as RANGE, not as DOT DOT.
	DOT
)

// tokenNames maps each TokenType to a short human-readable name used in
// diagnostics ("expected ')', got ...").
var tokenNames = map[TokenType]string{
	ILLEGAL: "illegal token", EOF: "end of input",
	IDENT: "identifier", INT: "integer literal", FLOAT: "float literal", STRING: "string literal",
	LET: "'let'", CONST: "'const'", FUNC: "'func'", IF: "'if'", ELSE: "'else'",
	MATCH: "'match'", STRUCT: "'struct'", RETURN: "'return'", IMPORT: "'import'",
	FOR: "'for'", IN: "'in'", WHILE: "'while'", TRY: "'try'", CATCH: "'catch'",
	TRUE: "'true'", FALSE: "'false'",
	PLUS: "'+'", MINUS: "'-'", ASTERISK: "'*'", SLASH: "'/'", PERCENT: "'%'",
	EQ: "'=='", NEQ: "'!='", LT: "'<'", GT: "'>'", LTE: "'<='", GTE: "'>='",
	AND: "'&&'", OR: "'||'", BANG: "'!'",
	AMP: "'&'", PIPE: "'|'", CARET: "'^'", TILDE: "'~'",
	ASSIGN: "'='", FATARROW: "'=>'", RANGE: "'..'",
	LPAREN: "'('", RPAREN: "')'", LBRACE: "'{'", RBRACE: "'}'",
	LBRACKET: "'['", RBRACKET: "']'",
	COMMA: "','", COLON: "':'", SEMICOLON: "';'", DOT: "'.'",
}

// String returns the human-readable name of the token type.
func (tt TokenType) String() string {
	if n, ok := tokenNames[tt]; ok {
		return n
	}
	return fmt.Sprintf("token(%d)", int(tt))
}

// keywords maps the literal text of every LIFT reserved word to its TokenType.
// The lexer consults this map when it finishes scanning an identifier.
var keywords = map[string]TokenType{
	"let":    LET,
	"const":  CONST,
	"func":   FUNC,
	"if":     IF,
	"else":   ELSE,
	"match":  MATCH,
	"struct": STRUCT,
	"return": RETURN,
	"import": IMPORT,
	"for":    FOR,
	"in":     IN,
	"while":  WHILE,
	"try":    TRY,
	"catch":  CATCH,
	"true":   TRUE,
	"false":  FALSE,
}

// LookupIdent checks whether ident is a reserved word and returns the
// corresponding TokenType. If ident is not a keyword, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// ── Source positions ──────────────────────────────────────────────────────────

// Position is a single point in a source unit.
// Line and Col are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Col    int
	Offset int
}

// Span covers a contiguous region of source text, from the first byte of a
// construct (Start, inclusive) to just past its last byte (End, exclusive).
type Span struct {
	Start Position
	End   Position
}

// String renders the span's start as "line:col", the form used in diagnostics.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Col)
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	out := s
	if other.Start.Offset < out.Start.Offset {
		out.Start = other.Start
	}
	if other.End.Offset > out.End.Offset {
		out.End = other.End
	}
	return out
}

// Token is a single lexical unit produced by the LIFT lexer.
//
// Fields:
//   - Type    — the category of this token (see TokenType constants)
//   - Literal — the source text that was scanned; for STRING tokens this is
//     the decoded value with escape sequences already processed
//   - Span    — the source region the token was scanned from
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}

// String returns a human-readable representation of the token, useful for
// debugging and error messages.
func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Literal)
}
