// Package checker implements the LIFT static type checker.
//
// Checking walks the AST once, threading a chain of lexical scopes, and
// records the type of every expression in a side table so the AST itself
// stays immutable. Top-level functions and structs are registered before any
// body is checked, which is what allows mutual recursion and use-before-
// declaration at the top level.
//
// The checker never stops at the first problem. Every error produces the
// sentinel type Unknown, and Unknown is compatible with everything, so one
// mistake yields one diagnostic instead of a cascade.
package checker

import (
	"strings"

	"github.com/liftlang/lift/ast"
	"github.com/liftlang/lift/diag"
	"github.com/liftlang/lift/types"
)

// FieldInfo is one struct field with its resolved type, in declaration
// order.
type FieldInfo struct {
	Name string
	Type *types.Type
}

// StructInfo is the checker's view of a declared struct: its fields in
// declaration order plus a by-name index for field access and literals.
type StructInfo struct {
	Name   string
	Fields []FieldInfo
	byName map[string]*types.Type
	Decl   *ast.StructDecl
}

// Field returns the type of the named field, or false when the struct has
// no such field.
func (si *StructInfo) Field(name string) (*types.Type, bool) {
	t, ok := si.byName[name]
	return t, ok
}

// Checked is the result of type checking one program: the program itself,
// the expression type table, and the registries of declared structs and
// top-level functions.
type Checked struct {
	Program *ast.Program
	Types   map[ast.Expression]*types.Type
	Structs map[string]*StructInfo
	Funcs   map[string]*types.Type
}

// TypeOf returns the checked type of e, or Unknown if e was never visited
// (which happens only for nodes the parser could not finish).
func (c *Checked) TypeOf(e ast.Expression) *types.Type {
	if t, ok := c.Types[e]; ok {
		return t
	}
	return types.Unknown
}

// checker carries the mutable state of one checking run.
type checker struct {
	diags *diag.Collection
	scope *scope

	structs map[string]*StructInfo
	funcs   map[string]*types.Type
	exprs   map[ast.Expression]*types.Type

	// results is the stack of result types of enclosing function bodies.
	// Empty means we are at the top level, where return is an error.
	results []*types.Type

	// registered marks top-level declarations already entered into scope by
	// the pre-pass, so the statement walk does not redeclare them.
	registered map[ast.Statement]bool

	// sigs holds the declared signature of every top-level function,
	// including duplicates the name registry rejected. A body is always
	// checked against its own signature, not the registry winner's.
	sigs map[*ast.FuncDecl]*types.Type
}

// Check type-checks prog and returns the result. All problems found are
// reported into diags; the returned Checked is usable (with Unknown holes)
// even when errors were reported.
func Check(prog *ast.Program, diags *diag.Collection) *Checked {
	c := &checker{
		diags:      diags,
		scope:      newScope(nil),
		structs:    make(map[string]*StructInfo),
		funcs:      make(map[string]*types.Type),
		exprs:      make(map[ast.Expression]*types.Type),
		registered: make(map[ast.Statement]bool),
		sigs:       make(map[*ast.FuncDecl]*types.Type),
	}

	// println is predeclared. Its Unknown parameter accepts any argument
	// while the arity of one is still enforced.
	c.scope.declare("println", &binding{
		kind: bindBuiltin,
		typ:  types.Func([]*types.Type{types.Unknown}, types.Unit),
	})

	c.registerTopLevel(prog)

	for _, s := range prog.Statements {
		c.checkStatement(s)
	}

	return &Checked{
		Program: prog,
		Types:   c.exprs,
		Structs: c.structs,
		Funcs:   c.funcs,
	}
}

// ── Top-level registration ────────────────────────────────────────────────────

// registerTopLevel enters every top-level struct and function into the
// global scope before any body is checked. Struct names are collected first
// so that field types and function signatures can refer to structs declared
// further down the unit.
func (c *checker) registerTopLevel(prog *ast.Program) {
	// Struct name shells first.
	for _, s := range prog.Statements {
		d, ok := s.(*ast.StructDecl)
		if !ok {
			continue
		}
		c.registered[s] = true
		if _, fresh := c.scope.declare(d.Name, &binding{kind: bindStruct, typ: types.Unknown, tok: d.Tok}); !fresh {
			c.diags.Errorf(diag.DuplicateDefinition, d.Tok.Span,
				"%s is already declared in this scope", d.Name)
			continue
		}
		c.structs[d.Name] = &StructInfo{
			Name:   d.Name,
			byName: make(map[string]*types.Type),
			Decl:   d,
		}
	}

	// Now every struct name exists, so field types can resolve.
	for _, s := range prog.Statements {
		d, ok := s.(*ast.StructDecl)
		if !ok {
			continue
		}
		info, ok := c.structs[d.Name]
		if !ok || info.Decl != d {
			continue // duplicate declaration, first one wins
		}
		for _, f := range d.Fields {
			if _, dup := info.byName[f.Name]; dup {
				c.diags.Errorf(diag.DuplicateField, f.Tok.Span,
					"field %s is declared twice in struct %s", f.Name, d.Name)
				continue
			}
			ft := c.resolveType(f.Type)
			info.byName[f.Name] = ft
			info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Type: ft})
		}
	}

	// Function signatures last; they may mention struct types.
	for _, s := range prog.Statements {
		d, ok := s.(*ast.FuncDecl)
		if !ok {
			continue
		}
		c.registered[s] = true
		sig := c.funcSignature(d)
		c.sigs[d] = sig
		if _, fresh := c.scope.declare(d.Name, &binding{kind: bindFunc, typ: sig, tok: d.Tok}); !fresh {
			c.diags.Errorf(diag.DuplicateDefinition, d.Tok.Span,
				"%s is already declared in this scope", d.Name)
			continue
		}
		c.funcs[d.Name] = sig
	}
}

// funcSignature resolves a declared function's type. A missing return
// annotation means the function returns unit.
func (c *checker) funcSignature(d *ast.FuncDecl) *types.Type {
	params := make([]*types.Type, len(d.Params))
	for i, p := range d.Params {
		params[i] = c.resolveType(p.Type)
	}
	result := types.Unit
	if d.ReturnType != nil {
		result = c.resolveType(d.ReturnType)
	}
	return types.Func(params, result)
}

// ── Type annotation resolution ────────────────────────────────────────────────

// resolveType turns a syntactic type annotation into a semantic type.
// A nil annotation (the parser gave up on it) and an unknown type name both
// come back as Unknown, the latter with a diagnostic.
func (c *checker) resolveType(te *ast.TypeExpr) *types.Type {
	if te == nil {
		return types.Unknown
	}
	if te.IsFunc {
		params := make([]*types.Type, len(te.ParamTypes))
		for i, pt := range te.ParamTypes {
			params[i] = c.resolveType(pt)
		}
		result := types.Unit
		if te.Result != nil {
			result = c.resolveType(te.Result)
		}
		return types.Func(params, result)
	}
	if te.Elem != nil {
		return types.Array(c.resolveType(te.Elem))
	}

	switch te.Name {
	case "int":
		return types.Int
	case "float":
		return types.Float
	case "string":
		return types.String
	case "bool":
		return types.Bool
	case "unit":
		return types.Unit
	}
	if _, ok := c.structs[te.Name]; ok {
		return types.Struct(te.Name)
	}
	c.diags.Errorf(diag.UndefinedReference, te.Tok.Span,
		"undefined type %s", te.Name)
	return types.Unknown
}

// ── Statement checking ────────────────────────────────────────────────────────

func (c *checker) checkStatement(s ast.Statement) {
	switch st := s.(type) {
	case *ast.LetDecl:
		c.checkLetDecl(st)
	case *ast.AssignStmt:
		c.checkAssignStmt(st)
	case *ast.ReturnStmt:
		c.checkReturnStmt(st)
	case *ast.IfStmt:
		c.checkIfStmt(st)
	case *ast.WhileStmt:
		c.checkCondition(st.Cond)
		c.checkBlock(st.Body)
	case *ast.ForStmt:
		c.checkForStmt(st)
	case *ast.BlockStmt:
		c.checkBlock(st)
	case *ast.ExprStmt:
		c.checkExpr(st.Expr)
	case *ast.FuncDecl:
		c.checkFuncDecl(st)
	case *ast.StructDecl:
		c.checkStructDecl(st)
	case *ast.ImportDecl:
		// Module resolution is outside the front end; nothing to check.
	}
}

func (c *checker) checkLetDecl(st *ast.LetDecl) {
	valueType := c.checkExpr(st.Value)

	declared := valueType
	if st.Type != nil {
		declared = c.resolveType(st.Type)
		if !types.Assignable(declared, valueType) {
			c.diags.Errorf(diag.TypeMismatch, st.Value.Span(),
				"cannot initialise %s %s with a value of type %s",
				declared, st.Name, valueType)
		}
	}

	kind := bindVar
	if !st.Mutable {
		kind = bindConst
	}
	if prev, fresh := c.scope.declare(st.Name, &binding{kind: kind, typ: declared, tok: st.Tok}); !fresh {
		c.diags.Errorf(diag.DuplicateDefinition, st.Tok.Span,
			"%s is already declared in this scope as a %s", st.Name, prev.kind)
	}
}

// rootIdentifier walks field and index accesses down to the identifier at
// the base of an assignment target. `p.pos.x = 1` mutates p, so p is the
// binding whose mutability matters.
func rootIdentifier(e ast.Expression) *ast.Identifier {
	for {
		switch t := e.(type) {
		case *ast.Identifier:
			return t
		case *ast.FieldExpr:
			e = t.Object
		case *ast.IndexExpr:
			e = t.Seq
		default:
			return nil
		}
	}
}

func (c *checker) checkAssignStmt(st *ast.AssignStmt) {
	targetType := c.checkExpr(st.Target)
	valueType := c.checkExpr(st.Value)

	root := rootIdentifier(st.Target)
	if root == nil {
		c.diags.Errorf(diag.InvalidAssignTarget, st.Target.Span(),
			"cannot assign to this expression")
		return
	}

	b, ok := c.scope.lookup(root.Name)
	if !ok {
		return // the undefined reference is already reported
	}
	switch b.kind {
	case bindConst:
		c.diags.Errorf(diag.ImmutableAssignment, st.Target.Span(),
			"cannot assign to %s: it was declared with const", root.Name)
		return
	case bindFunc, bindStruct, bindBuiltin:
		c.diags.Errorf(diag.InvalidAssignTarget, st.Target.Span(),
			"cannot assign to %s %s", b.kind, root.Name)
		return
	}

	if !types.Assignable(targetType, valueType) {
		c.diags.Errorf(diag.TypeMismatch, st.Value.Span(),
			"cannot assign a value of type %s to %s of type %s",
			valueType, root.Name, targetType)
	}
}

func (c *checker) checkReturnStmt(st *ast.ReturnStmt) {
	got := types.Unit
	if st.Value != nil {
		got = c.checkExpr(st.Value)
	}

	if len(c.results) == 0 {
		c.diags.Errorf(diag.ReturnOutsideFunction, st.Tok.Span,
			"return is only allowed inside a function body")
		return
	}

	want := c.results[len(c.results)-1]
	if !types.Assignable(want, got) {
		c.diags.Errorf(diag.TypeMismatch, st.Span(),
			"cannot return %s from a function returning %s", got, want)
	}
}

func (c *checker) checkCondition(cond ast.Expression) {
	if cond == nil {
		return
	}
	t := c.checkExpr(cond)
	if !types.Assignable(types.Bool, t) {
		c.diags.Errorf(diag.TypeMismatch, cond.Span(),
			"condition must be bool, got %s", t)
	}
}

func (c *checker) checkIfStmt(st *ast.IfStmt) {
	for _, br := range st.Branches {
		c.checkCondition(br.Cond)
		c.checkBlock(br.Body)
	}
	if st.Else != nil {
		c.checkBlock(st.Else)
	}
}

func (c *checker) checkForStmt(st *ast.ForStmt) {
	iterType := c.checkExpr(st.Iterable)

	elem := types.Unknown
	switch iterType.Kind {
	case types.KindRange:
		elem = types.Int
	case types.KindArray:
		elem = iterType.Elem
	case types.KindUnknown:
		// already reported
	default:
		c.diags.Errorf(diag.NotIterable, st.Iterable.Span(),
			"cannot iterate over a value of type %s", iterType)
	}

	c.scope = newScope(c.scope)
	c.scope.declare(st.Binding, &binding{kind: bindVar, typ: elem, tok: st.BTok})
	c.checkBlock(st.Body)
	c.scope = c.scope.parent
}

func (c *checker) checkBlock(b *ast.BlockStmt) {
	if b == nil {
		return
	}
	c.scope = newScope(c.scope)
	for _, s := range b.Stmts {
		c.checkStatement(s)
	}
	c.scope = c.scope.parent
}

// checkFuncDecl checks a function body. Top-level functions were registered
// by the pre-pass; functions declared inside blocks are entered into the
// enclosing scope here, visible only from their declaration onward.
func (c *checker) checkFuncDecl(d *ast.FuncDecl) {
	sig := c.sigs[d]
	if sig == nil { // declared inside a block, unseen by the pre-pass
		sig = c.funcSignature(d)
		if _, fresh := c.scope.declare(d.Name, &binding{kind: bindFunc, typ: sig, tok: d.Tok}); !fresh {
			c.diags.Errorf(diag.DuplicateDefinition, d.Tok.Span,
				"%s is already declared in this scope", d.Name)
		}
	}

	c.scope = newScope(c.scope)
	for i, p := range d.Params {
		if _, fresh := c.scope.declare(p.Name, &binding{kind: bindVar, typ: sig.Params[i], tok: p.Tok}); !fresh {
			c.diags.Errorf(diag.DuplicateDefinition, p.Tok.Span,
				"parameter %s is declared twice", p.Name)
		}
	}

	c.results = append(c.results, sig.Result)
	c.checkBlock(d.Body)
	c.results = c.results[:len(c.results)-1]
	c.scope = c.scope.parent
}

// checkStructDecl handles struct declarations inside blocks; top-level ones
// were fully processed by the pre-pass.
func (c *checker) checkStructDecl(d *ast.StructDecl) {
	if c.registered[d] {
		return
	}
	if _, fresh := c.scope.declare(d.Name, &binding{kind: bindStruct, typ: types.Unknown, tok: d.Tok}); !fresh {
		c.diags.Errorf(diag.DuplicateDefinition, d.Tok.Span,
			"%s is already declared in this scope", d.Name)
		return
	}
	if _, exists := c.structs[d.Name]; exists {
		c.diags.Errorf(diag.DuplicateDefinition, d.Tok.Span,
			"struct %s is already declared", d.Name)
		return
	}
	info := &StructInfo{Name: d.Name, byName: make(map[string]*types.Type), Decl: d}
	c.structs[d.Name] = info
	for _, f := range d.Fields {
		if _, dup := info.byName[f.Name]; dup {
			c.diags.Errorf(diag.DuplicateField, f.Tok.Span,
				"field %s is declared twice in struct %s", f.Name, d.Name)
			continue
		}
		ft := c.resolveType(f.Type)
		info.byName[f.Name] = ft
		info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Type: ft})
	}
}

// ── Expression checking ───────────────────────────────────────────────────────

// checkExpr computes, records, and returns the type of e. It never returns
// nil: anything that fails to check is Unknown, which downstream rules
// accept silently so one fault produces one diagnostic.
func (c *checker) checkExpr(e ast.Expression) *types.Type {
	if e == nil {
		return types.Unknown
	}
	t := c.exprType(e)
	if t == nil {
		t = types.Unknown
	}
	c.exprs[e] = t
	return t
}

func (c *checker) exprType(e ast.Expression) *types.Type {
	switch ex := e.(type) {
	case *ast.Identifier:
		b, ok := c.scope.lookup(ex.Name)
		if !ok {
			c.diags.Errorf(diag.UndefinedReference, ex.Tok.Span,
				"undefined name %s", ex.Name)
			return types.Unknown
		}
		return b.typ

	case *ast.IntLiteral:
		return types.Int
	case *ast.FloatLiteral:
		return types.Float
	case *ast.StringLiteral:
		return types.String
	case *ast.BoolLiteral:
		return types.Bool

	case *ast.PrefixExpr:
		return c.checkPrefixExpr(ex)
	case *ast.InfixExpr:
		return c.checkInfixExpr(ex)
	case *ast.CallExpr:
		return c.checkCallExpr(ex)
	case *ast.IndexExpr:
		return c.checkIndexExpr(ex)
	case *ast.FieldExpr:
		return c.checkFieldExpr(ex)
	case *ast.FuncLit:
		return c.checkFuncLit(ex)
	case *ast.MatchExpr:
		return c.checkMatchExpr(ex)
	case *ast.StructLit:
		return c.checkStructLit(ex)
	case *ast.ArrayLit:
		return c.checkArrayLit(ex)
	}
	return types.Unknown
}

func (c *checker) checkPrefixExpr(ex *ast.PrefixExpr) *types.Type {
	rt := c.checkExpr(ex.Right)

	switch ex.Operator {
	case "!":
		if !types.Assignable(types.Bool, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"operator ! requires bool, got %s", rt)
		}
		return types.Bool
	case "-":
		if rt.Kind == types.KindUnknown {
			return types.Unknown
		}
		if !types.Numeric(rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"operator - requires int or float, got %s", rt)
			return types.Unknown
		}
		return rt
	case "~":
		if !types.Assignable(types.Int, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"operator ~ requires int, got %s", rt)
		}
		return types.Int
	}
	return types.Unknown
}

func (c *checker) checkInfixExpr(ex *ast.InfixExpr) *types.Type {
	lt := c.checkExpr(ex.Left)
	rt := c.checkExpr(ex.Right)

	unknown := lt.Kind == types.KindUnknown || rt.Kind == types.KindUnknown

	switch ex.Operator {
	case "+", "-", "*", "/", "%":
		if unknown {
			if lt.Kind != types.KindUnknown {
				return lt
			}
			return rt
		}
		if !types.Equal(lt, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Span(),
				"mismatched operand types %s and %s for operator %s", lt, rt, ex.Operator)
			return types.Unknown
		}
		switch {
		case ex.Operator == "+" && lt.Kind == types.KindString:
			return types.String
		case ex.Operator == "%":
			if lt.Kind != types.KindInt {
				c.diags.Errorf(diag.TypeMismatch, ex.Span(),
					"operator %% requires int operands, got %s", lt)
				return types.Unknown
			}
			return types.Int
		case types.Numeric(lt):
			return lt
		}
		c.diags.Errorf(diag.TypeMismatch, ex.Span(),
			"operator %s is not defined for %s", ex.Operator, lt)
		return types.Unknown

	case "==", "!=":
		if !unknown && !types.Equal(lt, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Span(),
				"cannot compare %s with %s", lt, rt)
		}
		return types.Bool

	case "<", ">", "<=", ">=":
		if !unknown {
			if !types.Equal(lt, rt) {
				c.diags.Errorf(diag.TypeMismatch, ex.Span(),
					"mismatched operand types %s and %s for operator %s", lt, rt, ex.Operator)
			} else if !types.Ordered(lt) {
				c.diags.Errorf(diag.TypeMismatch, ex.Span(),
					"operator %s is not defined for %s", ex.Operator, lt)
			}
		}
		return types.Bool

	case "&&", "||":
		if !types.Assignable(types.Bool, lt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Left.Span(),
				"operator %s requires bool operands, got %s", ex.Operator, lt)
		}
		if !types.Assignable(types.Bool, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"operator %s requires bool operands, got %s", ex.Operator, rt)
		}
		return types.Bool

	case "&", "|", "^":
		if !types.Assignable(types.Int, lt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Left.Span(),
				"operator %s requires int operands, got %s", ex.Operator, lt)
		}
		if !types.Assignable(types.Int, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"operator %s requires int operands, got %s", ex.Operator, rt)
		}
		return types.Int

	case "..":
		if !types.Assignable(types.Int, lt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Left.Span(),
				"range endpoint must be int, got %s", lt)
		}
		if !types.Assignable(types.Int, rt) {
			c.diags.Errorf(diag.TypeMismatch, ex.Right.Span(),
				"range endpoint must be int, got %s", rt)
		}
		return types.Range
	}
	return types.Unknown
}

func (c *checker) checkCallExpr(ex *ast.CallExpr) *types.Type {
	calleeType := c.checkExpr(ex.Callee)

	argTypes := make([]*types.Type, len(ex.Args))
	for i, arg := range ex.Args {
		argTypes[i] = c.checkExpr(arg)
	}

	if calleeType.Kind == types.KindUnknown {
		return types.Unknown
	}
	if calleeType.Kind != types.KindFunc {
		c.diags.Errorf(diag.NotCallable, ex.Callee.Span(),
			"value of type %s is not callable", calleeType)
		return types.Unknown
	}

	if len(argTypes) != len(calleeType.Params) {
		c.diags.Errorf(diag.ArityMismatch, ex.Span(),
			"expected %d argument(s), got %d", len(calleeType.Params), len(argTypes))
	}
	// Arguments that are present are still checked against their parameter.
	n := len(argTypes)
	if len(calleeType.Params) < n {
		n = len(calleeType.Params)
	}
	for i := 0; i < n; i++ {
		if !types.Assignable(calleeType.Params[i], argTypes[i]) {
			c.diags.Errorf(diag.TypeMismatch, ex.Args[i].Span(),
				"argument %d has type %s, expected %s", i+1, argTypes[i], calleeType.Params[i])
		}
	}
	return calleeType.Result
}

func (c *checker) checkIndexExpr(ex *ast.IndexExpr) *types.Type {
	seqType := c.checkExpr(ex.Seq)
	idxType := c.checkExpr(ex.Index)

	if !types.Assignable(types.Int, idxType) {
		c.diags.Errorf(diag.TypeMismatch, ex.Index.Span(),
			"index must be int, got %s", idxType)
	}

	switch seqType.Kind {
	case types.KindArray:
		return seqType.Elem
	case types.KindUnknown:
		return types.Unknown
	}
	c.diags.Errorf(diag.TypeMismatch, ex.Seq.Span(),
		"cannot index a value of type %s", seqType)
	return types.Unknown
}

func (c *checker) checkFieldExpr(ex *ast.FieldExpr) *types.Type {
	objType := c.checkExpr(ex.Object)

	switch objType.Kind {
	case types.KindUnknown:
		return types.Unknown
	case types.KindStruct:
		info, ok := c.structs[objType.Name]
		if !ok {
			return types.Unknown
		}
		ft, ok := info.Field(ex.Field)
		if !ok {
			c.diags.Errorf(diag.UnknownField, ex.FTok.Span,
				"type %s has no field %s", objType, ex.Field)
			return types.Unknown
		}
		return ft
	}
	c.diags.Errorf(diag.TypeMismatch, ex.FTok.Span,
		"type %s has no fields", objType)
	return types.Unknown
}

// checkFuncLit checks an anonymous function. The body is a single
// expression and its type becomes the result type; no annotation is needed
// or accepted for the result.
func (c *checker) checkFuncLit(ex *ast.FuncLit) *types.Type {
	params := make([]*types.Type, len(ex.Params))

	c.scope = newScope(c.scope)
	for i, p := range ex.Params {
		params[i] = c.resolveType(p.Type)
		if _, fresh := c.scope.declare(p.Name, &binding{kind: bindVar, typ: params[i], tok: p.Tok}); !fresh {
			c.diags.Errorf(diag.DuplicateDefinition, p.Tok.Span,
				"parameter %s is declared twice", p.Name)
		}
	}
	result := c.checkExpr(ex.Body)
	c.scope = c.scope.parent

	return types.Func(params, result)
}

func (c *checker) checkMatchExpr(ex *ast.MatchExpr) *types.Type {
	scrType := c.checkExpr(ex.Scrutinee)

	var (
		resultType  *types.Type
		hasWildcard bool
		sawTrue     bool
		sawFalse    bool
	)
	for _, arm := range ex.Arms {
		if arm.Pattern.Wildcard {
			hasWildcard = true
		} else if arm.Pattern.Literal != nil {
			patType := c.checkExpr(arm.Pattern.Literal)
			if !types.Assignable(scrType, patType) {
				c.diags.Errorf(diag.TypeMismatch, arm.Pattern.Span(),
					"pattern of type %s cannot match a value of type %s", patType, scrType)
			}
			if b, ok := arm.Pattern.Literal.(*ast.BoolLiteral); ok {
				if b.Value {
					sawTrue = true
				} else {
					sawFalse = true
				}
			}
		}

		bodyType := c.checkExpr(arm.Body)
		if resultType == nil {
			resultType = bodyType
			continue
		}
		if !types.Assignable(resultType, bodyType) {
			c.diags.Errorf(diag.MatchArmTypeMismatch, arm.Body.Span(),
				"this arm has type %s, previous arms have type %s", bodyType, resultType)
		}
	}

	// A bool scrutinee matched against both literals is the one case a
	// finite type is covered without a wildcard.
	exhaustive := hasWildcard ||
		(scrType.Kind == types.KindBool && sawTrue && sawFalse)
	if !exhaustive && scrType.Kind != types.KindUnknown {
		c.diags.Warnf(diag.NonExhaustiveMatch, ex.Span(),
			"match may not cover every value of %s; add a _ arm", scrType)
	}

	if resultType == nil {
		return types.Unknown
	}
	return resultType
}

func (c *checker) checkStructLit(ex *ast.StructLit) *types.Type {
	info, ok := c.structs[ex.Name]
	if !ok {
		for _, f := range ex.Fields {
			c.checkExpr(f.Value)
		}
		c.diags.Errorf(diag.UndefinedReference, ex.Tok.Span,
			"undefined struct %s", ex.Name)
		return types.Unknown
	}

	seen := make(map[string]bool, len(ex.Fields))
	for _, f := range ex.Fields {
		valType := c.checkExpr(f.Value)

		if seen[f.Name] {
			c.diags.Errorf(diag.DuplicateField, f.Tok.Span,
				"field %s is set twice in this literal", f.Name)
			continue
		}
		seen[f.Name] = true

		fieldType, ok := info.Field(f.Name)
		if !ok {
			c.diags.Errorf(diag.UnknownField, f.Tok.Span,
				"struct %s has no field %s", ex.Name, f.Name)
			continue
		}
		if !types.Assignable(fieldType, valType) {
			c.diags.Errorf(diag.TypeMismatch, f.Value.Span(),
				"field %s has type %s, cannot use a value of type %s",
				f.Name, fieldType, valType)
		}
	}

	var missing []string
	for _, f := range info.Fields {
		if !seen[f.Name] {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		c.diags.Errorf(diag.MissingField, ex.Span(),
			"literal of %s is missing field(s) %s", ex.Name, strings.Join(missing, ", "))
	}

	return types.Struct(ex.Name)
}

func (c *checker) checkArrayLit(ex *ast.ArrayLit) *types.Type {
	if len(ex.Elems) == 0 {
		return types.Array(types.Unknown)
	}

	elemType := c.checkExpr(ex.Elems[0])
	for _, el := range ex.Elems[1:] {
		et := c.checkExpr(el)
		if !types.Assignable(elemType, et) {
			c.diags.Errorf(diag.TypeMismatch, el.Span(),
				"array element has type %s, previous elements have type %s", et, elemType)
		}
	}
	return types.Array(elemType)
}
