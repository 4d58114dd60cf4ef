package checker

import (
	"github.com/liftlang/lift/ast"
	"github.com/liftlang/lift/types"
)

// bindKind classifies what a name in scope refers to. Assignment rules
// depend on it: only bindVar targets are writable.
type bindKind int

const (
	bindVar     bindKind = iota // let binding, parameter, loop binding
	bindConst                   // const binding
	bindFunc                    // declared function
	bindStruct                  // struct type name
	bindBuiltin                 // predeclared function such as println
)

func (k bindKind) String() string {
	switch k {
	case bindVar:
		return "variable"
	case bindConst:
		return "constant"
	case bindFunc:
		return "function"
	case bindStruct:
		return "struct"
	case bindBuiltin:
		return "builtin"
	}
	return "binding"
}

// binding is one named entry in a scope.
type binding struct {
	kind bindKind
	typ  *types.Type
	tok  ast.Token // declaration site, for diagnostics
}

// scope is a lexical scope with a parent link. Lookups walk outward;
// declarations only ever touch the innermost scope, which is what makes
// shadowing work.
type scope struct {
	parent *scope
	names  map[string]*binding
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[string]*binding)}
}

// declare adds name to this scope. It returns the previous binding and
// false when the name is already declared here; outer declarations of the
// same name are shadowed, not rejected.
func (s *scope) declare(name string, b *binding) (*binding, bool) {
	if prev, ok := s.names[name]; ok {
		return prev, false
	}
	s.names[name] = b
	return b, true
}

// lookup resolves name against this scope and its ancestors, innermost
// first.
func (s *scope) lookup(name string) (*binding, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if b, ok := sc.names[name]; ok {
			return b, true
		}
	}
	return nil, false
}
