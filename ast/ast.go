// AST node types for the LIFT language.
//
// Every source construct has a corresponding node type. The hierarchy is:
//
//	Node (interface)
//	  Statement (interface)
//	    Declaration (interface) — named top-level items
//	      FuncDecl, StructDecl, ImportDecl
//	    LetDecl, AssignStmt, ReturnStmt
//	    IfStmt, WhileStmt, ForStmt, BlockStmt, ExprStmt
//	  Expression (interface)
//	    Identifier, IntLiteral, FloatLiteral, StringLiteral, BoolLiteral
//	    PrefixExpr, InfixExpr, CallExpr, IndexExpr, FieldExpr
//	    FuncLit, MatchExpr, StructLit, ArrayLit
//
// The AST is a strict ownership tree: every node owns its children and no
// subtree is shared. Each node reports the source region it was parsed from
// via Span(), computed from its leading token and its children, so that
// diagnostics can point at whole constructs rather than single tokens.

package ast

import (
	"fmt"
	"strings"
)

// ── Interfaces ────────────────────────────────────────────────────────────────

// Node is the root interface for every element in the LIFT AST.
type Node interface {
	// Span returns the source region this node was parsed from.
	Span() Span
	// String returns a compact, human-readable representation of the node.
	// It is intended for debugging and test output, not pretty-printing.
	String() string
}

// Statement is a Node executed for effect; it produces no value of its own.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that evaluates to a value and therefore carries a
// static type after checking.
type Expression interface {
	Node
	expressionNode()
}

// Declaration is a Statement that introduces a named entity visible to the
// rest of the program: functions, struct types, and imports.
type Declaration interface {
	Statement
	declarationNode()
}

// ── Top-level program ─────────────────────────────────────────────────────────

// Program is the root AST node produced by the parser.
// A LIFT source unit is a flat list of top-level statements; declarations are
// the most common, but any statement is syntactically legal at the top level.
type Program struct {
	Statements []Statement
}

// Span covers the whole program, or the zero span for an empty one.
func (p *Program) Span() Span {
	if len(p.Statements) == 0 {
		return Span{}
	}
	return p.Statements[0].Span().Join(p.Statements[len(p.Statements)-1].Span())
}

// String returns all statements concatenated, useful for snapshot testing.
func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// ── Support types ─────────────────────────────────────────────────────────────

// TypeExpr represents a type annotation in the source.
//
//	int              → Name="int"
//	Point            → Name="Point"
//	[int]            → Elem=int
//	func(int): bool  → IsFunc=true, ParamTypes=[int], Result=bool
type TypeExpr struct {
	Name       string      // named type; empty for array and function forms
	Elem       *TypeExpr   // element type for [T]
	IsFunc     bool        // true for function type annotations
	ParamTypes []*TypeExpr // parameter types for function annotations
	Result     *TypeExpr   // result type for function annotations (nil = none)
	Tok        Token       // the token the annotation starts at
}

// Span returns the region of the annotation's leading token.
func (te *TypeExpr) Span() Span { return te.Tok.Span }

// String returns the annotation as it would appear in source.
func (te *TypeExpr) String() string {
	if te == nil {
		return "<none>"
	}
	if te.Elem != nil {
		return "[" + te.Elem.String() + "]"
	}
	if te.IsFunc {
		parts := make([]string, len(te.ParamTypes))
		for i, p := range te.ParamTypes {
			parts[i] = p.String()
		}
		out := "func(" + strings.Join(parts, ", ") + ")"
		if te.Result != nil {
			out += ": " + te.Result.String()
		}
		return out
	}
	return te.Name
}

// Param is a single function parameter: name: type.
// The type annotation is mandatory in both declarations and function literals.
type Param struct {
	Name string
	Type *TypeExpr
	Tok  Token // the parameter name token
}

// FieldDef is one field of a struct declaration: name: type.
type FieldDef struct {
	Name string
	Type *TypeExpr
	Tok  Token // the field name token
}

// FieldInit is one field initialiser inside a struct literal: name: expr.
type FieldInit struct {
	Name  string
	Value Expression
	Tok   Token // the field name token
}

// Pattern is the left-hand side of a match arm. LIFT supports literal
// patterns (integer, float, string, boolean, possibly negated) and the
// wildcard "_", which the parser requires to be the final arm.
type Pattern struct {
	Wildcard bool
	Literal  Expression // nil when Wildcard
	Tok      Token
}

// Span returns the pattern's source region.
func (p Pattern) Span() Span {
	if p.Literal != nil {
		return p.Tok.Span.Join(p.Literal.Span())
	}
	return p.Tok.Span
}

// String renders the pattern as it would appear in source.
func (p Pattern) String() string {
	if p.Wildcard {
		return "_"
	}
	return p.Literal.String()
}

// MatchArm is one arm of a match expression: pattern => expression.
type MatchArm struct {
	Pattern Pattern
	Body    Expression
}

// Branch is one (condition, block) pair of an if/else-if chain.
type Branch struct {
	Cond Expression
	Body *BlockStmt
}

// ── Declarations ──────────────────────────────────────────────────────────────

// FuncDecl is a named function declaration.
//
//	func add(a: int, b: int): int { return a + b }
type FuncDecl struct {
	Tok        Token // the 'func' token
	Name       string
	Params     []Param
	ReturnType *TypeExpr // nil when the function returns nothing
	Body       *BlockStmt
}

func (d *FuncDecl) statementNode()   {}
func (d *FuncDecl) declarationNode() {}
func (d *FuncDecl) Span() Span {
	if d.Body != nil {
		return d.Tok.Span.Join(d.Body.Span())
	}
	return d.Tok.Span
}
func (d *FuncDecl) String() string {
	return fmt.Sprintf("func %s(...) %s", d.Name, d.Body.String())
}

// StructDecl introduces a record type.
//
//	struct Point { x: int, y: int }
type StructDecl struct {
	Tok    Token // the 'struct' token
	Name   string
	Fields []FieldDef
	End    Position // just past the closing '}'
}

func (d *StructDecl) statementNode()   {}
func (d *StructDecl) declarationNode() {}
func (d *StructDecl) Span() Span       { return Span{Start: d.Tok.Span.Start, End: d.End} }
func (d *StructDecl) String() string   { return fmt.Sprintf("struct %s { ... }", d.Name) }

// ImportDecl names an external module. The front end records it and moves on;
// resolving the module is the driver's concern.
//
//	import math
type ImportDecl struct {
	Tok  Token // the 'import' token
	Name string
	NTok Token // the module name token
}

func (d *ImportDecl) statementNode()   {}
func (d *ImportDecl) declarationNode() {}
func (d *ImportDecl) Span() Span       { return d.Tok.Span.Join(d.NTok.Span) }
func (d *ImportDecl) String() string   { return "import " + d.Name }

// ── Statements ────────────────────────────────────────────────────────────────

// LetDecl declares a binding.
//
//	let x = 42               → Mutable=true
//	const pi = 3.14          → Mutable=false
//	let name: string = "ada" → with explicit type annotation
type LetDecl struct {
	Tok     Token // 'let' or 'const'
	Name    string
	Type    *TypeExpr // optional explicit annotation (nil = inferred)
	Value   Expression
	Mutable bool
}

func (s *LetDecl) statementNode() {}
func (s *LetDecl) Span() Span {
	if s.Value != nil {
		return s.Tok.Span.Join(s.Value.Span())
	}
	return s.Tok.Span
}
func (s *LetDecl) String() string {
	kw := "let"
	if !s.Mutable {
		kw = "const"
	}
	return fmt.Sprintf("%s %s = %s", kw, s.Name, s.Value.String())
}

// AssignStmt assigns a new value to an existing binding or struct field.
//
//	count = count + 1
//	p.x = 0
type AssignStmt struct {
	Tok    Token      // the '=' token
	Target Expression // Identifier or FieldExpr
	Value  Expression
}

func (s *AssignStmt) statementNode() {}
func (s *AssignStmt) Span() Span {
	sp := s.Target.Span().Join(s.Tok.Span)
	if s.Value != nil {
		sp = sp.Join(s.Value.Span())
	}
	return sp
}
func (s *AssignStmt) String() string {
	return fmt.Sprintf("%s = %s", s.Target.String(), s.Value.String())
}

// ReturnStmt performs an early return from a function.
//
//	return n * 2
//	return          (function declares no return type)
type ReturnStmt struct {
	Tok   Token
	Value Expression // nil for a bare return
}

func (s *ReturnStmt) statementNode() {}
func (s *ReturnStmt) Span() Span {
	if s.Value != nil {
		return s.Tok.Span.Join(s.Value.Span())
	}
	return s.Tok.Span
}
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// IfStmt is an if / else-if / else chain. Branches holds the (condition,
// block) pairs in source order; Else is the trailing bare else, or nil.
//
//	if a { ... } else if b { ... } else { ... }
type IfStmt struct {
	Tok      Token // the first 'if' token
	Branches []Branch
	Else     *BlockStmt
}

func (s *IfStmt) statementNode() {}
func (s *IfStmt) Span() Span {
	sp := s.Tok.Span
	if s.Else != nil {
		return sp.Join(s.Else.Span())
	}
	if n := len(s.Branches); n > 0 && s.Branches[n-1].Body != nil {
		return sp.Join(s.Branches[n-1].Body.Span())
	}
	return sp
}
func (s *IfStmt) String() string {
	var b strings.Builder
	for i, br := range s.Branches {
		if i > 0 {
			b.WriteString(" else ")
		}
		fmt.Fprintf(&b, "if %s %s", br.Cond.String(), br.Body.String())
	}
	if s.Else != nil {
		b.WriteString(" else ")
		b.WriteString(s.Else.String())
	}
	return b.String()
}

// WhileStmt is a conditional loop.
//
//	while i < 10 { i = i + 1 }
type WhileStmt struct {
	Tok  Token // the 'while' token
	Cond Expression
	Body *BlockStmt
}

func (s *WhileStmt) statementNode() {}
func (s *WhileStmt) Span() Span {
	if s.Body != nil {
		return s.Tok.Span.Join(s.Body.Span())
	}
	return s.Tok.Span
}
func (s *WhileStmt) String() string {
	return fmt.Sprintf("while %s %s", s.Cond.String(), s.Body.String())
}

// ForStmt is an iterator loop over a range or sequence.
//
//	for i in 0 .. 10 { ... }
//	for item in items { ... }
type ForStmt struct {
	Tok      Token // the 'for' token
	Binding  string
	BTok     Token // the binding name token
	Iterable Expression
	Body     *BlockStmt
}

func (s *ForStmt) statementNode() {}
func (s *ForStmt) Span() Span {
	if s.Body != nil {
		return s.Tok.Span.Join(s.Body.Span())
	}
	return s.Tok.Span
}
func (s *ForStmt) String() string {
	return fmt.Sprintf("for %s in %s %s", s.Binding, s.Iterable.String(), s.Body.String())
}

// BlockStmt is a brace-delimited statement sequence. Entering a block opens a
// new lexical scope during checking.
type BlockStmt struct {
	Tok   Token // the '{' token
	Stmts []Statement
	End   Position // just past the closing '}'
}

func (s *BlockStmt) statementNode() {}
func (s *BlockStmt) Span() Span     { return Span{Start: s.Tok.Span.Start, End: s.End} }
func (s *BlockStmt) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, st := range s.Stmts {
		b.WriteString(st.String())
		b.WriteString("; ")
	}
	b.WriteString("}")
	return b.String()
}

// ExprStmt wraps an expression evaluated in statement position.
type ExprStmt struct {
	Expr Expression
}

func (s *ExprStmt) statementNode() {}
func (s *ExprStmt) Span() Span     { return s.Expr.Span() }
func (s *ExprStmt) String() string { return s.Expr.String() }

// ── Expressions ───────────────────────────────────────────────────────────────

// Identifier is a reference to a named binding, function, or struct type.
type Identifier struct {
	Tok  Token
	Name string
}

func (e *Identifier) expressionNode() {}
func (e *Identifier) Span() Span      { return e.Tok.Span }
func (e *Identifier) String() string  { return e.Name }

// IntLiteral is a decimal integer literal value.
type IntLiteral struct {
	Tok   Token
	Value int64
}

func (e *IntLiteral) expressionNode() {}
func (e *IntLiteral) Span() Span      { return e.Tok.Span }
func (e *IntLiteral) String() string  { return e.Tok.Literal }

// FloatLiteral is a 64-bit IEEE 754 floating-point literal.
type FloatLiteral struct {
	Tok   Token
	Value float64
}

func (e *FloatLiteral) expressionNode() {}
func (e *FloatLiteral) Span() Span      { return e.Tok.Span }
func (e *FloatLiteral) String() string  { return e.Tok.Literal }

// StringLiteral is a string literal with escape sequences already decoded.
type StringLiteral struct {
	Tok   Token
	Value string
}

func (e *StringLiteral) expressionNode() {}
func (e *StringLiteral) Span() Span      { return e.Tok.Span }
func (e *StringLiteral) String() string  { return fmt.Sprintf("%q", e.Value) }

// BoolLiteral is the boolean literal true or false.
type BoolLiteral struct {
	Tok   Token
	Value bool
}

func (e *BoolLiteral) expressionNode() {}
func (e *BoolLiteral) Span() Span      { return e.Tok.Span }
func (e *BoolLiteral) String() string  { return e.Tok.Literal }

// PrefixExpr is a unary prefix expression: !x, -5, ~mask.
type PrefixExpr struct {
	Tok      Token  // the operator token
	Operator string // "!", "-", or "~"
	Right    Expression
}

func (e *PrefixExpr) expressionNode() {}
func (e *PrefixExpr) Span() Span {
	if e.Right != nil {
		return e.Tok.Span.Join(e.Right.Span())
	}
	return e.Tok.Span
}
func (e *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", e.Operator, e.Right.String())
}

// InfixExpr is a binary expression: left op right. All binary operators,
// including the range constructor "..", use this node.
type InfixExpr struct {
	Tok      Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpr) expressionNode() {}
func (e *InfixExpr) Span() Span {
	sp := e.Tok.Span
	if e.Left != nil {
		sp = sp.Join(e.Left.Span())
	}
	if e.Right != nil {
		sp = sp.Join(e.Right.Span())
	}
	return sp
}
func (e *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Operator, e.Right.String())
}

// CallExpr is a function call.
//
//	add(1, 2)
type CallExpr struct {
	Tok    Token // the '(' token
	Callee Expression
	Args   []Expression
	End    Position // just past the closing ')'
}

func (e *CallExpr) expressionNode() {}
func (e *CallExpr) Span() Span      { return Span{Start: e.Callee.Span().Start, End: e.End} }
func (e *CallExpr) String() string {
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", e.Callee.String(), strings.Join(parts, ", "))
}

// IndexExpr reads one element of a sequence: xs[i].
type IndexExpr struct {
	Tok   Token // the '[' token
	Seq   Expression
	Index Expression
	End   Position // just past the closing ']'
}

func (e *IndexExpr) expressionNode() {}
func (e *IndexExpr) Span() Span      { return Span{Start: e.Seq.Span().Start, End: e.End} }
func (e *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]", e.Seq.String(), e.Index.String())
}

// FieldExpr reads one field of a struct value: point.x.
type FieldExpr struct {
	Tok    Token // the '.' token
	Object Expression
	Field  string
	FTok   Token // the field name token
}

func (e *FieldExpr) expressionNode() {}
func (e *FieldExpr) Span() Span      { return e.Object.Span().Join(e.FTok.Span) }
func (e *FieldExpr) String() string {
	return fmt.Sprintf("%s.%s", e.Object.String(), e.Field)
}

// FuncLit is an anonymous function expression. Its body is a single
// expression whose type becomes the function's result type.
//
//	(x: int) => x * x
type FuncLit struct {
	Tok    Token // the '(' token
	Params []Param
	Body   Expression
}

func (e *FuncLit) expressionNode() {}
func (e *FuncLit) Span() Span {
	if e.Body != nil {
		return e.Tok.Span.Join(e.Body.Span())
	}
	return e.Tok.Span
}
func (e *FuncLit) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Name + ": " + p.Type.String()
	}
	return fmt.Sprintf("(%s) => %s", strings.Join(parts, ", "), e.Body.String())
}

// MatchExpr compares a scrutinee against literal patterns in order.
//
//	match n {
//	    0 => "zero",
//	    _ => "many",
//	}
type MatchExpr struct {
	Tok       Token // the 'match' token
	Scrutinee Expression
	Arms      []MatchArm
	End       Position // just past the closing '}'
}

func (e *MatchExpr) expressionNode() {}
func (e *MatchExpr) Span() Span      { return Span{Start: e.Tok.Span.Start, End: e.End} }
func (e *MatchExpr) String() string {
	return fmt.Sprintf("match %s { ... }", e.Scrutinee.String())
}

// StructLit constructs a struct value, initialising every declared field
// exactly once.
//
//	Point { x: 1, y: 2 }
type StructLit struct {
	Tok    Token // the type name token
	Name   string
	Fields []FieldInit
	End    Position // just past the closing '}'
}

func (e *StructLit) expressionNode() {}
func (e *StructLit) Span() Span      { return Span{Start: e.Tok.Span.Start, End: e.End} }
func (e *StructLit) String() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Name + ": " + f.Value.String()
	}
	return fmt.Sprintf("%s { %s }", e.Name, strings.Join(parts, ", "))
}

// ArrayLit is a homogeneous sequence literal.
//
//	[1, 2, 3]
type ArrayLit struct {
	Tok   Token // the '[' token
	Elems []Expression
	End   Position // just past the closing ']'
}

func (e *ArrayLit) expressionNode() {}
func (e *ArrayLit) Span() Span      { return Span{Start: e.Tok.Span.Start, End: e.End} }
func (e *ArrayLit) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
