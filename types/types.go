// Package types defines the static type model of the LIFT language.
//
// Types form a closed tagged union: the primitives int, float, string and
// bool; struct types identified by name; function types; the range and
// array iterables; unit for functions that return nothing; and the Unknown
// error sentinel. Two types are equal when their shapes match — same
// primitive, same struct name, or same function signature — independent of
// where they were written down (structural equality).
//
// Unknown is assigned to an expression after an error has been reported at
// it. It compares assignable to everything, which stops one mistake from
// cascading into a chain of follow-on diagnostics.
package types

import "strings"

// Kind discriminates the variants of the type union.
type Kind int

const (
	// KindUnknown is the error sentinel. It never appears in a program that
	// checked cleanly.
	KindUnknown Kind = iota
	// KindUnit is the type of "no value": the result of functions that
	// declare no return type.
	KindUnit
	KindInt
	KindFloat
	KindString
	KindBool
	// KindStruct is a named record type. Field information lives in the
	// checker's struct registry; the type itself carries only the name.
	KindStruct
	// KindFunc is a function type with parameter types and a result type.
	KindFunc
	// KindRange is the type of an integer range expression lo .. hi.
	KindRange
	// KindArray is a homogeneous sequence type with an element type.
	KindArray
)

// Type is one member of the LIFT type union. Types are immutable once
// constructed; the singletons below are shared freely.
type Type struct {
	Kind   Kind
	Name   string  // struct name for KindStruct
	Elem   *Type   // element type for KindArray
	Params []*Type // parameter types for KindFunc
	Result *Type   // result type for KindFunc (Unit when none declared)
}

// Shared singletons for the types that carry no payload.
var (
	Unknown = &Type{Kind: KindUnknown}
	Unit    = &Type{Kind: KindUnit}
	Int     = &Type{Kind: KindInt}
	Float   = &Type{Kind: KindFloat}
	String  = &Type{Kind: KindString}
	Bool    = &Type{Kind: KindBool}
	Range   = &Type{Kind: KindRange}
)

// Struct returns the type of the named struct.
func Struct(name string) *Type {
	return &Type{Kind: KindStruct, Name: name}
}

// Func returns a function type with the given parameter and result types.
// A nil result stands for Unit.
func Func(params []*Type, result *Type) *Type {
	if result == nil {
		result = Unit
	}
	return &Type{Kind: KindFunc, Params: params, Result: result}
}

// Array returns a homogeneous sequence type over elem.
func Array(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

// String renders the type as it would appear in LIFT source.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindUnknown:
		return "<error>"
	case KindUnit:
		return "unit"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindStruct:
		return t.Name
	case KindRange:
		return "range"
	case KindArray:
		return "[" + t.Elem.String() + "]"
	case KindFunc:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = p.String()
		}
		out := "func(" + strings.Join(parts, ", ") + ")"
		if t.Result != nil && t.Result.Kind != KindUnit {
			out += ": " + t.Result.String()
		}
		return out
	default:
		return "<invalid>"
	}
}

// Equal reports structural equality of a and b. Unknown is not special here;
// use Assignable when checking a value against an expected type.
func Equal(a, b *Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindStruct:
		return a.Name == b.Name
	case KindArray:
		return Equal(a.Elem, b.Elem)
	case KindFunc:
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i], b.Params[i]) {
				return false
			}
		}
		return Equal(a.Result, b.Result)
	default:
		return true
	}
}

// Assignable reports whether a value of type src can be used where dst is
// expected: the types are structurally equal, or Unknown appears on either
// side at any depth (meaning an error was already reported there, or the
// value constrains nothing — an empty array literal has type [<error>] and
// fits any array). Further complaints would only repeat the first one.
func Assignable(dst, src *Type) bool {
	if dst == nil || src == nil {
		return true
	}
	if dst.Kind == KindUnknown || src.Kind == KindUnknown {
		return true
	}
	if dst.Kind != src.Kind {
		return false
	}
	switch dst.Kind {
	case KindStruct:
		return dst.Name == src.Name
	case KindArray:
		return Assignable(dst.Elem, src.Elem)
	case KindFunc:
		if len(dst.Params) != len(src.Params) {
			return false
		}
		for i := range dst.Params {
			if !Assignable(dst.Params[i], src.Params[i]) {
				return false
			}
		}
		return Assignable(dst.Result, src.Result)
	default:
		return true
	}
}

// Numeric reports whether t is int or float.
func Numeric(t *Type) bool {
	return t != nil && (t.Kind == KindInt || t.Kind == KindFloat)
}

// Ordered reports whether values of type t can be compared with the
// relational operators: the numerics and string.
func Ordered(t *Type) bool {
	return Numeric(t) || (t != nil && t.Kind == KindString)
}
