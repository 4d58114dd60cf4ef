// Package parser_test contains tests for the LIFT recursive-descent parser.
//
// Each test parses a snippet, inspects the returned AST via type assertions,
// and fails with a descriptive message on mismatch.
//
// Test categories:
//   - Statements:   let, const, assign, return, if/else, while, for, block
//   - Expressions:  literals, prefix, infix (with precedence), call, index,
//                   field access, function literal, match, struct literal,
//                   array literal, range
//   - Declarations: func, struct, import
//   - Recovery:     multiple independent errors from one unit
package parser_test

import (
	"fmt"
	"testing"

	"github.com/liftlang/lift/ast"
	"github.com/liftlang/lift/diag"
	"github.com/liftlang/lift/lexer"
	"github.com/liftlang/lift/parser"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// parse runs the full parser on input and fails the test if any diagnostics
// were collected or if the number of top-level statements doesn't match want.
func parse(t *testing.T, input string, wantStmts int) *ast.Program {
	t.Helper()
	diags := diag.NewCollection("test.lift")
	p := parser.New(lexer.New(input, diags), diags)
	prog := p.Parse()

	if diags.Len() > 0 {
		t.Errorf("parser produced %d diagnostic(s):", diags.Len())
		for _, d := range diags.Diagnostics() {
			t.Errorf("  %s", d)
		}
		t.FailNow()
	}
	if len(prog.Statements) != wantStmts {
		t.Fatalf("expected %d statements, got %d", wantStmts, len(prog.Statements))
	}
	return prog
}

// firstStmt is a convenience wrapper that returns the first statement after
// calling parse with wantStmts=1.
func firstStmt(t *testing.T, input string) ast.Statement {
	t.Helper()
	return parse(t, input, 1).Statements[0]
}

// parseWithErrors parses input expecting diagnostics and returns them.
func parseWithErrors(t *testing.T, input string) []diag.Diagnostic {
	t.Helper()
	diags := diag.NewCollection("test.lift")
	p := parser.New(lexer.New(input, diags), diags)
	p.Parse()
	if diags.Len() == 0 {
		t.Fatalf("expected diagnostics, got none")
	}
	return diags.Diagnostics()
}

// assertIdent checks that expr is an *ast.Identifier with the given name.
func assertIdent(t *testing.T, expr ast.Expression, name string) *ast.Identifier {
	t.Helper()
	id, ok := expr.(*ast.Identifier)
	if !ok {
		t.Fatalf("expected *ast.Identifier, got %T", expr)
	}
	if id.Name != name {
		t.Fatalf("identifier name: got %q, want %q", id.Name, name)
	}
	return id
}

// assertIntLit checks that expr is an *ast.IntLiteral with the given value.
func assertIntLit(t *testing.T, expr ast.Expression, val int64) {
	t.Helper()
	lit, ok := expr.(*ast.IntLiteral)
	if !ok {
		t.Fatalf("expected *ast.IntLiteral, got %T (%s)", expr, expr.String())
	}
	if lit.Value != val {
		t.Fatalf("IntLiteral value: got %d, want %d", lit.Value, val)
	}
}

// assertInfix checks that expr is an *ast.InfixExpr with the given operator.
func assertInfix(t *testing.T, expr ast.Expression, op string) *ast.InfixExpr {
	t.Helper()
	inf, ok := expr.(*ast.InfixExpr)
	if !ok {
		t.Fatalf("expected *ast.InfixExpr, got %T", expr)
	}
	if inf.Operator != op {
		t.Fatalf("infix operator: got %q, want %q", inf.Operator, op)
	}
	return inf
}

// exprOf extracts the Expression from an ExprStmt, failing the test otherwise.
func exprOf(t *testing.T, stmt ast.Statement) ast.Expression {
	t.Helper()
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", stmt)
	}
	return es.Expr
}

// hasCode reports whether any diagnostic in diags carries the given code.
func hasCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// ── Let / Const statements ────────────────────────────────────────────────────

// TestParse_Let covers let with and without a type annotation, and the
// optional trailing semicolon.
func TestParse_Let(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		typeName string // "" means no annotation
	}{
		{"let x = 5", "x", ""},
		{"let y: int = 5;", "y", "int"},
		{"let s: string = \"hi\"", "s", "string"},
	}
	for _, tc := range tests {
		stmt := firstStmt(t, tc.input)
		let, ok := stmt.(*ast.LetDecl)
		if !ok {
			t.Fatalf("%q: expected *ast.LetDecl, got %T", tc.input, stmt)
		}
		if let.Name != tc.name {
			t.Errorf("%q: name — got %q, want %q", tc.input, let.Name, tc.name)
		}
		if !let.Mutable {
			t.Errorf("%q: let binding should be mutable", tc.input)
		}
		if tc.typeName == "" && let.Type != nil {
			t.Errorf("%q: expected no annotation, got %s", tc.input, let.Type.String())
		}
		if tc.typeName != "" && (let.Type == nil || let.Type.Name != tc.typeName) {
			t.Errorf("%q: annotation — got %v, want %q", tc.input, let.Type, tc.typeName)
		}
	}
}

// TestParse_Const verifies that const produces an immutable binding.
func TestParse_Const(t *testing.T) {
	stmt := firstStmt(t, "const limit = 100")
	let, ok := stmt.(*ast.LetDecl)
	if !ok {
		t.Fatalf("expected *ast.LetDecl, got %T", stmt)
	}
	if let.Mutable {
		t.Errorf("const binding should not be mutable")
	}
	assertIntLit(t, let.Value, 100)
}

// TestParse_TypeAnnotations covers array and function type annotations.
func TestParse_TypeAnnotations(t *testing.T) {
	stmt := firstStmt(t, "let xs: [int] = [1, 2]")
	let := stmt.(*ast.LetDecl)
	if let.Type == nil || let.Type.Elem == nil || let.Type.Elem.Name != "int" {
		t.Fatalf("array annotation — got %v", let.Type)
	}

	stmt = firstStmt(t, "let f: func(int, int): bool = (a: int, b: int) => a == b")
	let = stmt.(*ast.LetDecl)
	if let.Type == nil || !let.Type.IsFunc {
		t.Fatalf("function annotation — got %v", let.Type)
	}
	if len(let.Type.ParamTypes) != 2 {
		t.Errorf("param types — got %d, want 2", len(let.Type.ParamTypes))
	}
	if let.Type.Result == nil || let.Type.Result.Name != "bool" {
		t.Errorf("result type — got %v, want bool", let.Type.Result)
	}
}

// ── Assignment ────────────────────────────────────────────────────────────────

// TestParse_Assign covers identifier and field-access assignment targets.
func TestParse_Assign(t *testing.T) {
	stmt := firstStmt(t, "x = 10")
	assign, ok := stmt.(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected *ast.AssignStmt, got %T", stmt)
	}
	assertIdent(t, assign.Target, "x")
	assertIntLit(t, assign.Value, 10)

	stmt = firstStmt(t, "p.x = 3")
	assign = stmt.(*ast.AssignStmt)
	if _, ok := assign.Target.(*ast.FieldExpr); !ok {
		t.Fatalf("expected *ast.FieldExpr target, got %T", assign.Target)
	}
}

// ── Return ────────────────────────────────────────────────────────────────────

// TestParse_Return covers return with and without a value.
func TestParse_Return(t *testing.T) {
	stmt := firstStmt(t, "return 42")
	ret, ok := stmt.(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", stmt)
	}
	assertIntLit(t, ret.Value, 42)

	stmt = firstStmt(t, "return")
	ret = stmt.(*ast.ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("bare return should have nil value, got %s", ret.Value.String())
	}
}

// ── If / While / For ──────────────────────────────────────────────────────────

// TestParse_IfElseChain verifies that an if / else if / else chain collapses
// into one IfStmt with branches in source order.
func TestParse_IfElseChain(t *testing.T) {
	input := `if a { 1 } else if b { 2 } else if c { 3 } else { 4 }`
	stmt := firstStmt(t, input)
	ifs, ok := stmt.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", stmt)
	}
	if len(ifs.Branches) != 3 {
		t.Fatalf("branches — got %d, want 3", len(ifs.Branches))
	}
	assertIdent(t, ifs.Branches[0].Cond, "a")
	assertIdent(t, ifs.Branches[1].Cond, "b")
	assertIdent(t, ifs.Branches[2].Cond, "c")
	if ifs.Else == nil {
		t.Fatalf("expected else block")
	}
}

// TestParse_While checks condition and body of a while loop.
func TestParse_While(t *testing.T) {
	stmt := firstStmt(t, "while i < 10 { i = i + 1 }")
	wh, ok := stmt.(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected *ast.WhileStmt, got %T", stmt)
	}
	assertInfix(t, wh.Cond, "<")
	if len(wh.Body.Stmts) != 1 {
		t.Fatalf("body statements — got %d, want 1", len(wh.Body.Stmts))
	}
}

// TestParse_For covers iteration over a range and over an identifier.
func TestParse_For(t *testing.T) {
	stmt := firstStmt(t, "for i in 0..10 { println(i) }")
	f, ok := stmt.(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected *ast.ForStmt, got %T", stmt)
	}
	if f.Binding != "i" {
		t.Errorf("binding — got %q, want %q", f.Binding, "i")
	}
	assertInfix(t, f.Iterable, "..")

	stmt = firstStmt(t, "for item in items { }")
	f = stmt.(*ast.ForStmt)
	assertIdent(t, f.Iterable, "items")
}

// ── Expression precedence ─────────────────────────────────────────────────────

// TestParse_Precedence checks operator precedence and associativity via the
// parenthesised String form of the parsed expression.
func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"a + b - c", "((a + b) - c)"},
		{"-a * b", "((-a) * b)"},
		{"!a && b", "((!a) && b)"},
		{"a < b == c < d", "((a < b) == (c < d))"},
		{"a < b && c > d", "((a < b) && (c > d))"},
		{"a && b || c && d", "((a && b) || (c && d))"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a & b + c", "(a & (b + c))"},
		{"~a | b", "((~a) | b)"},
		{"a % b * c", "((a % b) * c)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"0 .. n + 1", "(0 .. (n + 1))"},
		{"a == b | c", "(a == (b | c))"},
	}
	for _, tc := range tests {
		expr := exprOf(t, firstStmt(t, tc.input))
		if got := expr.String(); got != tc.want {
			t.Errorf("%q: got %s, want %s", tc.input, got, tc.want)
		}
	}
}

// ── Call / Index / Field ──────────────────────────────────────────────────────

// TestParse_Call covers calls with zero, one and several arguments, and a
// chained call on a field access.
func TestParse_Call(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "add(1, 2 * 3, other)"))
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", expr)
	}
	assertIdent(t, call.Callee, "add")
	if len(call.Args) != 3 {
		t.Fatalf("args — got %d, want 3", len(call.Args))
	}
	assertIntLit(t, call.Args[0], 1)
	assertInfix(t, call.Args[1], "*")

	expr = exprOf(t, firstStmt(t, "obj.method()"))
	call = expr.(*ast.CallExpr)
	if _, ok := call.Callee.(*ast.FieldExpr); !ok {
		t.Fatalf("expected *ast.FieldExpr callee, got %T", call.Callee)
	}
	if len(call.Args) != 0 {
		t.Fatalf("args — got %d, want 0", len(call.Args))
	}
}

// TestParse_Index checks array indexing, including a nested index expression.
func TestParse_Index(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "xs[i + 1]"))
	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected *ast.IndexExpr, got %T", expr)
	}
	assertIdent(t, idx.Seq, "xs")
	assertInfix(t, idx.Index, "+")
}

// TestParse_Field checks chained field access: a.b.c parses left to right.
func TestParse_Field(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "a.b.c"))
	outer, ok := expr.(*ast.FieldExpr)
	if !ok {
		t.Fatalf("expected *ast.FieldExpr, got %T", expr)
	}
	if outer.Field != "c" {
		t.Errorf("outer field — got %q, want %q", outer.Field, "c")
	}
	inner := outer.Object.(*ast.FieldExpr)
	if inner.Field != "b" {
		t.Errorf("inner field — got %q, want %q", inner.Field, "b")
	}
	assertIdent(t, inner.Object, "a")
}

// ── Function literals ─────────────────────────────────────────────────────────

// TestParse_FuncLit verifies that "(params) => expr" parses as an anonymous
// function while a parenthesised expression stays grouping.
func TestParse_FuncLit(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "(a: int, b: int) => a + b"))
	fn, ok := expr.(*ast.FuncLit)
	if !ok {
		t.Fatalf("expected *ast.FuncLit, got %T", expr)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("params — got %d, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type.Name != "int" {
		t.Errorf("param 0 — got %s: %v", fn.Params[0].Name, fn.Params[0].Type)
	}
	assertInfix(t, fn.Body, "+")

	// Same leading '(' but no '=>' after the matching ')': plain grouping.
	expr = exprOf(t, firstStmt(t, "(a + b) * c"))
	assertInfix(t, expr, "*")
}

// TestParse_FuncLitZeroParams covers the empty parameter list.
func TestParse_FuncLitZeroParams(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "() => 42"))
	fn, ok := expr.(*ast.FuncLit)
	if !ok {
		t.Fatalf("expected *ast.FuncLit, got %T", expr)
	}
	if len(fn.Params) != 0 {
		t.Fatalf("params — got %d, want 0", len(fn.Params))
	}
	assertIntLit(t, fn.Body, 42)
}

// TestParse_FuncLitNestedParens verifies the look-ahead balances nested
// parentheses when deciding between grouping and a function literal.
func TestParse_FuncLitNestedParens(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "((a + b) * c)"))
	assertInfix(t, expr, "*")
}

// ── Match expressions ─────────────────────────────────────────────────────────

// TestParse_Match covers literal patterns and a final wildcard arm.
func TestParse_Match(t *testing.T) {
	input := `match x {
    0 => "zero",
    1 => "one",
    _ => "many"
}`
	expr := exprOf(t, firstStmt(t, input))
	m, ok := expr.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("expected *ast.MatchExpr, got %T", expr)
	}
	assertIdent(t, m.Scrutinee, "x")
	if len(m.Arms) != 3 {
		t.Fatalf("arms — got %d, want 3", len(m.Arms))
	}
	assertIntLit(t, m.Arms[0].Pattern.Literal, 0)
	if !m.Arms[2].Pattern.Wildcard {
		t.Errorf("final arm should be the wildcard")
	}
}

// TestParse_MatchNegativePattern checks that a negated numeric literal is a
// valid pattern.
func TestParse_MatchNegativePattern(t *testing.T) {
	expr := exprOf(t, firstStmt(t, `match x { -1 => "neg", _ => "other" }`))
	m := expr.(*ast.MatchExpr)
	if _, ok := m.Arms[0].Pattern.Literal.(*ast.PrefixExpr); !ok {
		t.Fatalf("expected *ast.PrefixExpr pattern, got %T", m.Arms[0].Pattern.Literal)
	}
}

// TestParse_MatchMisplacedWildcard verifies that a non-final wildcard arm is
// reported.
func TestParse_MatchMisplacedWildcard(t *testing.T) {
	diags := parseWithErrors(t, `match x { _ => 0, 1 => 2 }`)
	if !hasCode(diags, diag.MisplacedWildcard) {
		t.Fatalf("expected %s, got %v", diag.MisplacedWildcard, diags)
	}
}

// ── Struct declarations and literals ──────────────────────────────────────────

// TestParse_StructDecl checks fields and field types of a struct declaration.
func TestParse_StructDecl(t *testing.T) {
	input := `struct Point {
    x: int,
    y: int,
}`
	stmt := firstStmt(t, input)
	sd, ok := stmt.(*ast.StructDecl)
	if !ok {
		t.Fatalf("expected *ast.StructDecl, got %T", stmt)
	}
	if sd.Name != "Point" {
		t.Errorf("name — got %q, want %q", sd.Name, "Point")
	}
	if len(sd.Fields) != 2 {
		t.Fatalf("fields — got %d, want 2", len(sd.Fields))
	}
	if sd.Fields[0].Name != "x" || sd.Fields[0].Type.Name != "int" {
		t.Errorf("field 0 — got %s: %v", sd.Fields[0].Name, sd.Fields[0].Type)
	}
}

// TestParse_StructLit verifies that a declared struct name followed by '{'
// parses as a literal, while an undeclared name stays an identifier and the
// brace opens an ordinary block.
func TestParse_StructLit(t *testing.T) {
	prog := parse(t, `struct Point { x: int, y: int }
let p = Point { x: 1, y: 2 }`, 2)

	let := prog.Statements[1].(*ast.LetDecl)
	lit, ok := let.Value.(*ast.StructLit)
	if !ok {
		t.Fatalf("expected *ast.StructLit, got %T", let.Value)
	}
	if lit.Name != "Point" {
		t.Errorf("name — got %q, want %q", lit.Name, "Point")
	}
	if len(lit.Fields) != 2 {
		t.Fatalf("fields — got %d, want 2", len(lit.Fields))
	}
	assertIntLit(t, lit.Fields[1].Value, 2)

	// "unknown" has not been declared as a struct, so this is an identifier
	// expression followed by a block statement.
	prog = parse(t, `unknown { let x = 1 }`, 2)
	assertIdent(t, exprOf(t, prog.Statements[0]), "unknown")
	if _, ok := prog.Statements[1].(*ast.BlockStmt); !ok {
		t.Fatalf("expected *ast.BlockStmt, got %T", prog.Statements[1])
	}
}

// ── Array literals ────────────────────────────────────────────────────────────

// TestParse_ArrayLit covers empty and populated array literals.
func TestParse_ArrayLit(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "[1, 2 + 3, x]"))
	arr, ok := expr.(*ast.ArrayLit)
	if !ok {
		t.Fatalf("expected *ast.ArrayLit, got %T", expr)
	}
	if len(arr.Elems) != 3 {
		t.Fatalf("elements — got %d, want 3", len(arr.Elems))
	}
	assertInfix(t, arr.Elems[1], "+")

	expr = exprOf(t, firstStmt(t, "[]"))
	arr = expr.(*ast.ArrayLit)
	if len(arr.Elems) != 0 {
		t.Fatalf("elements — got %d, want 0", len(arr.Elems))
	}
}

// ── Function and import declarations ──────────────────────────────────────────

// TestParse_FuncDecl checks name, parameters, return type and body.
func TestParse_FuncDecl(t *testing.T) {
	input := `func max(a: int, b: int): int {
    if a > b { return a }
    return b
}`
	stmt := firstStmt(t, input)
	fd, ok := stmt.(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", stmt)
	}
	if fd.Name != "max" {
		t.Errorf("name — got %q, want %q", fd.Name, "max")
	}
	if len(fd.Params) != 2 {
		t.Fatalf("params — got %d, want 2", len(fd.Params))
	}
	if fd.ReturnType == nil || fd.ReturnType.Name != "int" {
		t.Errorf("return type — got %v, want int", fd.ReturnType)
	}
	if len(fd.Body.Stmts) != 2 {
		t.Fatalf("body statements — got %d, want 2", len(fd.Body.Stmts))
	}
}

// TestParse_FuncDeclNoReturnType verifies the annotation is optional.
func TestParse_FuncDeclNoReturnType(t *testing.T) {
	stmt := firstStmt(t, "func side() { println(1) }")
	fd := stmt.(*ast.FuncDecl)
	if fd.ReturnType != nil {
		t.Fatalf("expected nil return type, got %v", fd.ReturnType)
	}
}

// TestParse_Import checks the import declaration.
func TestParse_Import(t *testing.T) {
	stmt := firstStmt(t, "import math")
	imp, ok := stmt.(*ast.ImportDecl)
	if !ok {
		t.Fatalf("expected *ast.ImportDecl, got %T", stmt)
	}
	if imp.Name != "math" {
		t.Errorf("name — got %q, want %q", imp.Name, "math")
	}
}

// ── Reserved words ────────────────────────────────────────────────────────────

// TestParse_ReservedWords verifies that try and catch are rejected with a
// dedicated diagnostic rather than a generic parse error.
func TestParse_ReservedWords(t *testing.T) {
	diags := parseWithErrors(t, "try { let x = 1 }")
	if !hasCode(diags, diag.ReservedWord) {
		t.Fatalf("expected %s, got %v", diag.ReservedWord, diags)
	}
}

// ── Spans ─────────────────────────────────────────────────────────────────────

// TestParse_Spans verifies that composite nodes join the spans of their parts.
func TestParse_Spans(t *testing.T) {
	expr := exprOf(t, firstStmt(t, "foo + bar"))
	span := expr.Span()
	if span.Start.Col != 1 {
		t.Errorf("start col — got %d, want 1", span.Start.Col)
	}
	if span.End.Offset != len("foo + bar") {
		t.Errorf("end offset — got %d, want %d", span.End.Offset, len("foo + bar"))
	}
}

// ── Error recovery ────────────────────────────────────────────────────────────

// TestParse_Recovery verifies that one malformed statement does not hide
// later statements or later errors: both broken lines are reported and the
// valid statement in between still parses.
func TestParse_Recovery(t *testing.T) {
	input := `let = 5;
let ok = 1;
let also = ;`

	diags := diag.NewCollection("test.lift")
	p := parser.New(lexer.New(input, diags), diags)
	prog := p.Parse()

	if diags.Len() < 2 {
		t.Fatalf("expected at least 2 diagnostics, got %d: %v", diags.Len(), diags.Diagnostics())
	}
	found := false
	for _, s := range prog.Statements {
		if let, ok := s.(*ast.LetDecl); ok && let.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Errorf("statement between two broken ones was lost: %s", prog.String())
	}
}

// TestParse_RecoveryAcrossBlocks verifies recovery inside a function body.
func TestParse_RecoveryAcrossBlocks(t *testing.T) {
	input := `func f() {
    let = 1;
    return 2
}`
	diags := diag.NewCollection("test.lift")
	p := parser.New(lexer.New(input, diags), diags)
	prog := p.Parse()

	if diags.Len() == 0 {
		t.Fatalf("expected a diagnostic")
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("statements — got %d, want 1", len(prog.Statements))
	}
	fd := prog.Statements[0].(*ast.FuncDecl)
	if len(fd.Body.Stmts) != 1 {
		t.Fatalf("recovered body statements — got %d, want 1", len(fd.Body.Stmts))
	}
	if _, ok := fd.Body.Stmts[0].(*ast.ReturnStmt); !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fd.Body.Stmts[0])
	}
}

// ── Programs ─────────────────────────────────────────────────────────────────

// TestParse_Program parses a complete multi-declaration unit.
func TestParse_Program(t *testing.T) {
	input := `import math

struct Point { x: int, y: int }

func manhattan(p: Point): int {
    return p.x + p.y
}

const origin = Point { x: 0, y: 0 }
let total = 0
for i in 0..3 {
    total = total + manhattan(origin)
}
println(total)`

	prog := parse(t, input, 7)

	wantTypes := []string{"*ast.ImportDecl", "*ast.StructDecl", "*ast.FuncDecl",
		"*ast.LetDecl", "*ast.LetDecl", "*ast.ForStmt", "*ast.ExprStmt"}
	for i, s := range prog.Statements {
		if got := fmt.Sprintf("%T", s); got != wantTypes[i] {
			t.Errorf("statement %d — got %s, want %s", i, got, wantTypes[i])
		}
	}
}
