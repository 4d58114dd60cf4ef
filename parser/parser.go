// Package parser implements the LIFT recursive-descent parser.
//
// The parser drains a [lexer.Lexer] into a token buffer and builds an
// [ast.Program]. Statements and declarations are parsed by recursive
// descent; expressions use Pratt (top-down operator precedence) so that
// precedence rules live in a small table rather than a tangle of grammar
// rules. The buffer allows unbounded look-ahead, which the grammar needs in
// exactly one place: telling an anonymous function "(a: int) => …" apart
// from a parenthesised expression by scanning past the matching ')' for '=>'.
//
// Usage:
//
//	diags := diag.NewCollection("main.lift")
//	p := parser.New(lexer.New(source, diags), diags)
//	prog := p.Parse()
//	if diags.HasErrors() { ... }
//
// Error recovery: on a malformed statement the parser records a diagnostic
// and skips tokens until a statement boundary — ';', '}', or a keyword that
// can begin a statement — then resumes, so one source unit yields multiple
// independent diagnostics instead of stopping at the first.
package parser

import (
	"strconv"

	"github.com/liftlang/lift/ast"
	"github.com/liftlang/lift/diag"
	"github.com/liftlang/lift/lexer"
)

// ── Operator precedence ───────────────────────────────────────────────────────

// Precedence levels, ordered from lowest to highest.
const (
	precLowest     = iota // starting point
	precOr                // ||
	precAnd               // &&
	precEquality          // == !=
	precRelational        // < > <= >=
	precRange             // ..
	precBitOr             // |
	precBitXor            // ^
	precBitAnd            // &
	precSum               // + -
	precProduct           // * / %
	precPrefix            // ! -x ~
	precCall              // f(...)  a[i]  a.b
)

// tokenPrecedence maps a TokenType to its infix precedence level.
// Tokens not in this map have precLowest, which ends expression parsing.
var tokenPrecedence = map[ast.TokenType]int{
	ast.OR:       precOr,
	ast.AND:      precAnd,
	ast.EQ:       precEquality,
	ast.NEQ:      precEquality,
	ast.LT:       precRelational,
	ast.GT:       precRelational,
	ast.LTE:      precRelational,
	ast.GTE:      precRelational,
	ast.RANGE:    precRange,
	ast.PIPE:     precBitOr,
	ast.CARET:    precBitXor,
	ast.AMP:      precBitAnd,
	ast.PLUS:     precSum,
	ast.MINUS:    precSum,
	ast.ASTERISK: precProduct,
	ast.SLASH:    precProduct,
	ast.PERCENT:  precProduct,
	ast.LPAREN:   precCall,
	ast.LBRACKET: precCall,
	ast.DOT:      precCall,
}

// ── Parser ────────────────────────────────────────────────────────────────────

// prefixParseFn parses a prefix (or standalone) expression starting with the
// current token, consuming every token that belongs to it.
type prefixParseFn func() ast.Expression

// infixParseFn parses an infix expression given the already-parsed left-hand
// side. The current token is the operator when it is called.
type infixParseFn func(left ast.Expression) ast.Expression

// Parser holds all state needed to parse one LIFT source unit.
// Create one with [New] and call [Parser.Parse].
type Parser struct {
	toks  []ast.Token // all tokens of the unit, terminated by EOF
	pos   int         // index of the current token
	diags *diag.Collection

	// structNames is the live set of struct type names declared so far.
	// It is what lets the parser tell the struct literal "Point { … }" apart
	// from the identifier "Point" followed by a block.
	structNames map[string]bool

	prefixFns map[ast.TokenType]prefixParseFn
	infixFns  map[ast.TokenType]infixParseFn
}

// New creates a Parser over all tokens produced by l. ILLEGAL tokens are
// dropped here: the lexer has already reported them, and repeating the
// complaint at every downstream stage would only add noise.
func New(l *lexer.Lexer, diags *diag.Collection) *Parser {
	p := &Parser{
		diags:       diags,
		structNames: make(map[string]bool),
		prefixFns:   make(map[ast.TokenType]prefixParseFn),
		infixFns:    make(map[ast.TokenType]infixParseFn),
	}

	for {
		tok := l.NextToken()
		if tok.Type == ast.ILLEGAL {
			continue
		}
		p.toks = append(p.toks, tok)
		if tok.Type == ast.EOF {
			break
		}
	}

	// ── Prefix (nud) functions ────────────────────────────────────────────────
	p.registerPrefix(ast.IDENT, p.parseIdentifierExpr)
	p.registerPrefix(ast.INT, p.parseIntLiteral)
	p.registerPrefix(ast.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(ast.STRING, p.parseStringLiteral)
	p.registerPrefix(ast.TRUE, p.parseBoolLiteral)
	p.registerPrefix(ast.FALSE, p.parseBoolLiteral)
	p.registerPrefix(ast.BANG, p.parsePrefixExpr)
	p.registerPrefix(ast.MINUS, p.parsePrefixExpr)
	p.registerPrefix(ast.TILDE, p.parsePrefixExpr)
	p.registerPrefix(ast.LPAREN, p.parseParenOrFuncLit)
	p.registerPrefix(ast.LBRACKET, p.parseArrayLit)
	p.registerPrefix(ast.MATCH, p.parseMatchExpr)

	// ── Infix (led) functions ─────────────────────────────────────────────────
	for _, tt := range []ast.TokenType{
		ast.PLUS, ast.MINUS, ast.ASTERISK, ast.SLASH, ast.PERCENT,
		ast.EQ, ast.NEQ, ast.LT, ast.GT, ast.LTE, ast.GTE,
		ast.AND, ast.OR, ast.AMP, ast.PIPE, ast.CARET, ast.RANGE,
	} {
		p.registerInfix(tt, p.parseInfixExpr)
	}
	p.registerInfix(ast.LPAREN, p.parseCallExpr)
	p.registerInfix(ast.LBRACKET, p.parseIndexExpr)
	p.registerInfix(ast.DOT, p.parseFieldExpr)

	return p
}

// Parse builds and returns the complete AST for the input. Diagnostics for
// anything malformed are in the shared collection; the returned program
// contains every statement that could be recovered.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(ast.EOF) {
		before := p.pos
		s := p.parseStatement()
		if s != nil {
			prog.Statements = append(prog.Statements, s)
		}
		// A stray '}' at the top level is rejected without being consumed;
		// force progress so the parse loop cannot stall on it.
		if p.pos == before {
			p.advance()
		}
	}
	return prog
}

// ── Token cursor ──────────────────────────────────────────────────────────────

// cur returns the current token. Once the cursor reaches EOF it stays there.
func (p *Parser) cur() ast.Token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

// peek returns the token after the current one without consuming anything.
func (p *Parser) peek() ast.Token {
	if p.pos+1 >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+1]
}

// advance consumes the current token.
func (p *Parser) advance() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// curIs reports whether the current token has the given type.
func (p *Parser) curIs(tt ast.TokenType) bool { return p.cur().Type == tt }

// expect consumes and returns the current token if it has the given type.
// Otherwise it records an UnexpectedToken diagnostic and returns false
// without consuming, leaving recovery to the caller.
func (p *Parser) expect(tt ast.TokenType) (ast.Token, bool) {
	if p.curIs(tt) {
		tok := p.cur()
		p.advance()
		return tok, true
	}
	p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
		"expected %s, got %s", tt, p.cur())
	return p.cur(), false
}

// curPrec returns the infix precedence of the current token.
func (p *Parser) curPrec() int {
	if prec, ok := tokenPrecedence[p.cur().Type]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) registerPrefix(tt ast.TokenType, fn prefixParseFn) { p.prefixFns[tt] = fn }
func (p *Parser) registerInfix(tt ast.TokenType, fn infixParseFn) { p.infixFns[tt] = fn }

// startsStatement reports whether tt can begin a new statement. Used both to
// decide that a bare return has no value and as a recovery boundary.
func startsStatement(tt ast.TokenType) bool {
	switch tt {
	case ast.LET, ast.CONST, ast.FUNC, ast.STRUCT, ast.IMPORT,
		ast.IF, ast.WHILE, ast.FOR, ast.RETURN, ast.MATCH:
		return true
	}
	return false
}

// sync performs panic-mode recovery: it skips tokens until a statement
// boundary. A ';' is consumed (it terminates the broken statement); a '}',
// EOF, or statement-starting keyword is left for the caller.
func (p *Parser) sync() {
	for {
		switch {
		case p.curIs(ast.EOF), p.curIs(ast.RBRACE):
			return
		case p.curIs(ast.SEMICOLON):
			p.advance()
			return
		case startsStatement(p.cur().Type):
			return
		default:
			p.advance()
		}
	}
}

// skipTerminator consumes one optional ';' after a statement.
func (p *Parser) skipTerminator() {
	if p.curIs(ast.SEMICOLON) {
		p.advance()
	}
}

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseStatement dispatches on the current token. It returns nil when the
// statement was malformed beyond repair; recovery has already happened.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case ast.LET, ast.CONST:
		return p.parseLetDecl()
	case ast.FUNC:
		return p.parseFuncDecl()
	case ast.STRUCT:
		return p.parseStructDecl()
	case ast.IMPORT:
		return p.parseImportDecl()
	case ast.RETURN:
		return p.parseReturnStmt()
	case ast.IF:
		return p.parseIfStmt()
	case ast.WHILE:
		return p.parseWhileStmt()
	case ast.FOR:
		return p.parseForStmt()
	case ast.LBRACE:
		return p.parseBlockStmt()
	case ast.TRY, ast.CATCH:
		p.diags.Errorf(diag.ReservedWord, p.cur().Span,
			"%s is a reserved word and cannot be used yet", p.cur())
		p.advance()
		p.sync()
		return nil
	case ast.SEMICOLON:
		p.advance() // empty statement
		return nil
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseLetDecl parses `let name [: type] = expr` and `const name [: type] = expr`.
func (p *Parser) parseLetDecl() ast.Statement {
	tok := p.cur() // 'let' or 'const'
	p.advance()

	name, ok := p.expect(ast.IDENT)
	if !ok {
		p.sync()
		return nil
	}

	var typeExpr *ast.TypeExpr
	if p.curIs(ast.COLON) {
		p.advance()
		typeExpr = p.parseTypeExpr()
	}

	if _, ok := p.expect(ast.ASSIGN); !ok {
		p.sync()
		return nil
	}
	value := p.parseExpression(precLowest)
	if value == nil {
		p.sync()
		return nil
	}
	p.skipTerminator()

	return &ast.LetDecl{
		Tok:     tok,
		Name:    name.Literal,
		Type:    typeExpr,
		Value:   value,
		Mutable: tok.Type == ast.LET,
	}
}

// parseFuncDecl parses `func name(params) [: type] { body }`.
func (p *Parser) parseFuncDecl() ast.Statement {
	tok := p.cur() // 'func'
	p.advance()

	name, ok := p.expect(ast.IDENT)
	if !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(ast.LPAREN); !ok {
		p.sync()
		return nil
	}
	params := p.parseParamList()

	var retType *ast.TypeExpr
	if p.curIs(ast.COLON) {
		p.advance()
		retType = p.parseTypeExpr()
	}

	if !p.curIs(ast.LBRACE) {
		p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
			"expected %s to open function body, got %s", ast.LBRACE, p.cur())
		p.sync()
		return nil
	}
	body := p.parseBlockStmt().(*ast.BlockStmt)

	return &ast.FuncDecl{
		Tok:        tok,
		Name:       name.Literal,
		Params:     params,
		ReturnType: retType,
		Body:       body,
	}
}

// parseStructDecl parses `struct Name { field: type, ... }`.
// The struct's name is added to the live struct-name set before the body is
// parsed, so later statements can use the literal syntax `Name { … }`.
func (p *Parser) parseStructDecl() ast.Statement {
	tok := p.cur() // 'struct'
	p.advance()

	name, ok := p.expect(ast.IDENT)
	if !ok {
		p.sync()
		return nil
	}
	p.structNames[name.Literal] = true

	if _, ok := p.expect(ast.LBRACE); !ok {
		p.sync()
		return nil
	}

	var fields []ast.FieldDef
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		fieldTok, ok := p.expect(ast.IDENT)
		if !ok {
			p.sync()
			break
		}
		if _, ok := p.expect(ast.COLON); !ok {
			p.sync()
			break
		}
		fieldType := p.parseTypeExpr()
		fields = append(fields, ast.FieldDef{
			Name: fieldTok.Literal,
			Type: fieldType,
			Tok:  fieldTok,
		})
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	close, _ := p.expect(ast.RBRACE)

	return &ast.StructDecl{
		Tok:    tok,
		Name:   name.Literal,
		Fields: fields,
		End:    close.Span.End,
	}
}

// parseImportDecl parses `import name`. Resolution happens outside the front
// end; the node exists so the driver can see what the unit asked for.
func (p *Parser) parseImportDecl() ast.Statement {
	tok := p.cur() // 'import'
	p.advance()
	name, ok := p.expect(ast.IDENT)
	if !ok {
		p.sync()
		return nil
	}
	p.skipTerminator()
	return &ast.ImportDecl{Tok: tok, Name: name.Literal, NTok: name}
}

// parseReturnStmt parses `return [expr]`. The value is absent when the next
// token cannot begin an expression in this position.
func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.cur() // 'return'
	p.advance()

	if p.curIs(ast.SEMICOLON) || p.curIs(ast.RBRACE) || p.curIs(ast.EOF) ||
		startsStatement(p.cur().Type) && !p.curIs(ast.MATCH) {
		p.skipTerminator()
		return &ast.ReturnStmt{Tok: tok}
	}

	value := p.parseExpression(precLowest)
	p.skipTerminator()
	return &ast.ReturnStmt{Tok: tok, Value: value}
}

// parseIfStmt parses an if / else-if / else chain into a single IfStmt with
// the (condition, block) pairs in source order.
func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.cur() // the first 'if'
	stmt := &ast.IfStmt{Tok: tok}

	for {
		p.advance() // consume 'if'
		cond := p.parseExpression(precLowest)
		if cond == nil {
			p.sync()
			return nil
		}
		if !p.curIs(ast.LBRACE) {
			p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
				"expected %s after if condition, got %s", ast.LBRACE, p.cur())
			p.sync()
			return nil
		}
		body := p.parseBlockStmt().(*ast.BlockStmt)
		stmt.Branches = append(stmt.Branches, ast.Branch{Cond: cond, Body: body})

		if !p.curIs(ast.ELSE) {
			return stmt
		}
		p.advance() // consume 'else'

		if p.curIs(ast.IF) {
			continue // else-if: loop parses the next branch
		}
		if !p.curIs(ast.LBRACE) {
			p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
				"expected %s or 'if' after 'else', got %s", ast.LBRACE, p.cur())
			p.sync()
			return stmt
		}
		stmt.Else = p.parseBlockStmt().(*ast.BlockStmt)
		return stmt
	}
}

// parseWhileStmt parses `while condition { body }`.
func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.cur() // 'while'
	p.advance()

	cond := p.parseExpression(precLowest)
	if cond == nil {
		p.sync()
		return nil
	}
	if !p.curIs(ast.LBRACE) {
		p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
			"expected %s after while condition, got %s", ast.LBRACE, p.cur())
		p.sync()
		return nil
	}
	body := p.parseBlockStmt().(*ast.BlockStmt)
	return &ast.WhileStmt{Tok: tok, Cond: cond, Body: body}
}

// parseForStmt parses `for binding in iterable { body }`.
func (p *Parser) parseForStmt() ast.Statement {
	tok := p.cur() // 'for'
	p.advance()

	binding, ok := p.expect(ast.IDENT)
	if !ok {
		p.sync()
		return nil
	}
	if _, ok := p.expect(ast.IN); !ok {
		p.sync()
		return nil
	}
	iterable := p.parseExpression(precLowest)
	if iterable == nil {
		p.sync()
		return nil
	}
	if !p.curIs(ast.LBRACE) {
		p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
			"expected %s after for iterable, got %s", ast.LBRACE, p.cur())
		p.sync()
		return nil
	}
	body := p.parseBlockStmt().(*ast.BlockStmt)
	return &ast.ForStmt{
		Tok:      tok,
		Binding:  binding.Literal,
		BTok:     binding,
		Iterable: iterable,
		Body:     body,
	}
}

// parseBlockStmt parses a brace-delimited block `{ stmts }`.
func (p *Parser) parseBlockStmt() ast.Statement {
	tok := p.cur() // '{'
	p.advance()

	block := &ast.BlockStmt{Tok: tok}
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		s := p.parseStatement()
		if s != nil {
			block.Stmts = append(block.Stmts, s)
		}
	}
	close, _ := p.expect(ast.RBRACE)
	block.End = close.Span.End
	return block
}

// parseExprOrAssignStmt parses an expression in statement position. If the
// expression is followed by '=', the statement is reinterpreted as an
// assignment; validating that the left side is actually assignable is the
// checker's job, so even `1 = 2` parses here and fails there.
func (p *Parser) parseExprOrAssignStmt() ast.Statement {
	expr := p.parseExpression(precLowest)
	if expr == nil {
		p.sync()
		return nil
	}

	if p.curIs(ast.ASSIGN) {
		assignTok := p.cur()
		p.advance()
		value := p.parseExpression(precLowest)
		if value == nil {
			p.sync()
			return nil
		}
		p.skipTerminator()
		return &ast.AssignStmt{Tok: assignTok, Target: expr, Value: value}
	}

	p.skipTerminator()
	return &ast.ExprStmt{Expr: expr}
}

// ── Type annotation parsing ───────────────────────────────────────────────────

// parseTypeExpr parses a type annotation:
//
//	int  float  string  bool  Point      → named type
//	[int]                                → array type
//	func(int, int): bool                 → function type
//
// Returns nil after recording a diagnostic when no type can start here.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.cur()

	switch tok.Type {
	case ast.IDENT:
		p.advance()
		return &ast.TypeExpr{Name: tok.Literal, Tok: tok}

	case ast.LBRACKET:
		p.advance()
		elem := p.parseTypeExpr()
		if elem == nil {
			return nil
		}
		if _, ok := p.expect(ast.RBRACKET); !ok {
			return nil
		}
		return &ast.TypeExpr{Elem: elem, Tok: tok}

	case ast.FUNC:
		p.advance()
		if _, ok := p.expect(ast.LPAREN); !ok {
			return nil
		}
		var params []*ast.TypeExpr
		for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
			pt := p.parseTypeExpr()
			if pt == nil {
				return nil
			}
			params = append(params, pt)
			if p.curIs(ast.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		if _, ok := p.expect(ast.RPAREN); !ok {
			return nil
		}
		var result *ast.TypeExpr
		if p.curIs(ast.COLON) {
			p.advance()
			result = p.parseTypeExpr()
		}
		return &ast.TypeExpr{IsFunc: true, ParamTypes: params, Result: result, Tok: tok}

	default:
		p.diags.Errorf(diag.UnexpectedToken, tok.Span,
			"expected a type, got %s", tok)
		return nil
	}
}

// parseParamList parses `name: type, ...` up to and including the closing
// ')'. The opening '(' has already been consumed.
func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
		nameTok, ok := p.expect(ast.IDENT)
		if !ok {
			break
		}
		if _, ok := p.expect(ast.COLON); !ok {
			break
		}
		paramType := p.parseTypeExpr()
		params = append(params, ast.Param{Name: nameTok.Literal, Type: paramType, Tok: nameTok})
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(ast.RPAREN)
	return params
}

// ── Expression parsing (Pratt) ────────────────────────────────────────────────

// parseExpression is the Pratt parser entry point. prec is the minimum
// binding power of operators the caller will accept; parsing stops at the
// first operator that binds no tighter.
func (p *Parser) parseExpression(prec int) ast.Expression {
	prefix := p.prefixFns[p.cur().Type]
	if prefix == nil {
		p.diags.Errorf(diag.UnexpectedToken, p.cur().Span,
			"expected an expression, got %s", p.cur())
		return nil
	}
	left := prefix()

	for left != nil && prec < p.curPrec() {
		infix := p.infixFns[p.cur().Type]
		if infix == nil {
			return left
		}
		left = infix(left)
	}
	return left
}

// ── Prefix parse functions ────────────────────────────────────────────────────

// parseIdentifierExpr parses an identifier reference, or a struct literal
// when the identifier names a struct declared earlier in the unit and is
// immediately followed by '{'. That look-up into the live struct-name set is
// the documented resolution of the struct-literal/block ambiguity: an
// undeclared name followed by '{' stays an identifier, and the brace opens
// an ordinary block.
func (p *Parser) parseIdentifierExpr() ast.Expression {
	tok := p.cur()
	p.advance()
	if p.curIs(ast.LBRACE) && p.structNames[tok.Literal] {
		return p.parseStructLit(tok)
	}
	return &ast.Identifier{Tok: tok, Name: tok.Literal}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.cur()
	p.advance()
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		p.diags.Errorf(diag.MalformedLiteral, tok.Span,
			"cannot parse %q as an integer: %v", tok.Literal, err)
		return nil
	}
	return &ast.IntLiteral{Tok: tok, Value: val}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.cur()
	p.advance()
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		p.diags.Errorf(diag.MalformedLiteral, tok.Span,
			"cannot parse %q as a float: %v", tok.Literal, err)
		return nil
	}
	return &ast.FloatLiteral{Tok: tok, Value: val}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.cur()
	p.advance()
	return &ast.StringLiteral{Tok: tok, Value: tok.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	tok := p.cur()
	p.advance()
	return &ast.BoolLiteral{Tok: tok, Value: tok.Type == ast.TRUE}
}

// parsePrefixExpr handles !expr, -expr and ~expr.
func (p *Parser) parsePrefixExpr() ast.Expression {
	tok := p.cur()
	p.advance()
	right := p.parseExpression(precPrefix)
	if right == nil {
		return nil
	}
	return &ast.PrefixExpr{Tok: tok, Operator: tok.Literal, Right: right}
}

// parseParenOrFuncLit disambiguates '(' between a parenthesised expression
// and an anonymous function. The decision needs look-ahead past the matching
// ')': a following '=>' means a function literal; anything else means
// grouping. This is the one place the token buffer earns its keep.
func (p *Parser) parseParenOrFuncLit() ast.Expression {
	if p.funcLitAhead() {
		return p.parseFuncLit()
	}
	p.advance() // consume '('
	expr := p.parseExpression(precLowest)
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(ast.RPAREN); !ok {
		return nil
	}
	return expr
}

// funcLitAhead reports whether the '(' under the cursor opens an anonymous
// function parameter list, i.e. whether the token after its matching ')' is
// '=>'. Nested parentheses are balanced during the scan.
func (p *Parser) funcLitAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case ast.LPAREN:
			depth++
		case ast.RPAREN:
			depth--
			if depth == 0 {
				return i+1 < len(p.toks) && p.toks[i+1].Type == ast.FATARROW
			}
		case ast.EOF:
			return false
		}
	}
	return false
}

// parseFuncLit parses `(params) => expr`. The body is a single expression;
// its type becomes the function's result type during checking.
func (p *Parser) parseFuncLit() ast.Expression {
	tok := p.cur() // '('
	p.advance()
	params := p.parseParamList()
	if _, ok := p.expect(ast.FATARROW); !ok {
		return nil
	}
	body := p.parseExpression(precLowest)
	if body == nil {
		return nil
	}
	return &ast.FuncLit{Tok: tok, Params: params, Body: body}
}

// parseArrayLit parses `[elem, ...]`.
func (p *Parser) parseArrayLit() ast.Expression {
	tok := p.cur() // '['
	p.advance()

	lit := &ast.ArrayLit{Tok: tok}
	for !p.curIs(ast.RBRACKET) && !p.curIs(ast.EOF) {
		el := p.parseExpression(precLowest)
		if el == nil {
			return nil
		}
		lit.Elems = append(lit.Elems, el)
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	close, ok := p.expect(ast.RBRACKET)
	if !ok {
		return nil
	}
	lit.End = close.Span.End
	return lit
}

// parseMatchExpr parses `match scrutinee { pattern => expr, ... }`.
// A wildcard arm that is not the final arm is reported here; whether the
// arms cover the scrutinee at all is the checker's concern.
func (p *Parser) parseMatchExpr() ast.Expression {
	tok := p.cur() // 'match'
	p.advance()

	scrutinee := p.parseExpression(precLowest)
	if scrutinee == nil {
		return nil
	}
	if _, ok := p.expect(ast.LBRACE); !ok {
		return nil
	}

	expr := &ast.MatchExpr{Tok: tok, Scrutinee: scrutinee}
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		pat, ok := p.parsePattern()
		if !ok {
			p.sync()
			break
		}
		if _, ok := p.expect(ast.FATARROW); !ok {
			p.sync()
			break
		}
		body := p.parseExpression(precLowest)
		if body == nil {
			p.sync()
			break
		}
		expr.Arms = append(expr.Arms, ast.MatchArm{Pattern: pat, Body: body})
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	close, _ := p.expect(ast.RBRACE)
	expr.End = close.Span.End

	// The wildcard, when present, must be the final arm.
	for i, arm := range expr.Arms {
		if arm.Pattern.Wildcard && i != len(expr.Arms)-1 {
			p.diags.Errorf(diag.MisplacedWildcard, arm.Pattern.Span(),
				"wildcard pattern must be the final match arm")
		}
	}
	return expr
}

// parsePattern parses one match arm pattern: the wildcard "_" or a literal
// (optionally negated for the numeric literals).
func (p *Parser) parsePattern() (ast.Pattern, bool) {
	tok := p.cur()

	switch tok.Type {
	case ast.IDENT:
		if tok.Literal == "_" {
			p.advance()
			return ast.Pattern{Wildcard: true, Tok: tok}, true
		}
	case ast.INT, ast.FLOAT, ast.STRING, ast.TRUE, ast.FALSE, ast.MINUS:
		lit := p.parseExpression(precPrefix)
		if lit == nil {
			return ast.Pattern{}, false
		}
		return ast.Pattern{Literal: lit, Tok: tok}, true
	}
	p.diags.Errorf(diag.UnexpectedToken, tok.Span,
		"expected a literal pattern or '_', got %s", tok)
	return ast.Pattern{}, false
}

// parseStructLit parses `Name { field: expr, ... }` given the already
// consumed type name token.
func (p *Parser) parseStructLit(name ast.Token) ast.Expression {
	p.advance() // consume '{'

	lit := &ast.StructLit{Tok: name, Name: name.Literal}
	for !p.curIs(ast.RBRACE) && !p.curIs(ast.EOF) {
		fieldTok, ok := p.expect(ast.IDENT)
		if !ok {
			p.sync()
			break
		}
		if _, ok := p.expect(ast.COLON); !ok {
			p.sync()
			break
		}
		value := p.parseExpression(precLowest)
		if value == nil {
			p.sync()
			break
		}
		lit.Fields = append(lit.Fields, ast.FieldInit{
			Name:  fieldTok.Literal,
			Value: value,
			Tok:   fieldTok,
		})
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	close, _ := p.expect(ast.RBRACE)
	lit.End = close.Span.End
	return lit
}

// ── Infix parse functions ─────────────────────────────────────────────────────

// parseInfixExpr handles all binary operators. Left associativity follows
// from parsing the right-hand side at the operator's own precedence.
func (p *Parser) parseInfixExpr(left ast.Expression) ast.Expression {
	tok := p.cur()
	prec := p.curPrec()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.InfixExpr{Tok: tok, Left: left, Operator: tok.Literal, Right: right}
}

// parseCallExpr handles `callee(args...)` — triggered when '(' appears in
// infix position.
func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	tok := p.cur() // '('
	p.advance()

	call := &ast.CallExpr{Tok: tok, Callee: callee}
	for !p.curIs(ast.RPAREN) && !p.curIs(ast.EOF) {
		arg := p.parseExpression(precLowest)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
		if p.curIs(ast.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	close, ok := p.expect(ast.RPAREN)
	if !ok {
		return nil
	}
	call.End = close.Span.End
	return call
}

// parseIndexExpr handles `seq[index]`.
func (p *Parser) parseIndexExpr(seq ast.Expression) ast.Expression {
	tok := p.cur() // '['
	p.advance()

	index := p.parseExpression(precLowest)
	if index == nil {
		return nil
	}
	close, ok := p.expect(ast.RBRACKET)
	if !ok {
		return nil
	}
	return &ast.IndexExpr{Tok: tok, Seq: seq, Index: index, End: close.Span.End}
}

// parseFieldExpr handles `object.field`.
func (p *Parser) parseFieldExpr(obj ast.Expression) ast.Expression {
	tok := p.cur() // '.'
	p.advance()
	fieldTok, ok := p.expect(ast.IDENT)
	if !ok {
		return nil
	}
	return &ast.FieldExpr{Tok: tok, Object: obj, Field: fieldTok.Literal, FTok: fieldTok}
}
