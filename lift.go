// Package lift ties the front end together: lexing, parsing, and type
// checking a single source unit in one call.
package lift

import (
	"github.com/liftlang/lift/checker"
	"github.com/liftlang/lift/diag"
	"github.com/liftlang/lift/lexer"
	"github.com/liftlang/lift/parser"
)

// Compile runs the whole front end over source. unit names the source unit
// (usually a file name) and is stamped onto every diagnostic.
//
// The checker always runs, even when the parser reported errors: recovery
// leaves a partial AST behind, and checking it surfaces problems in the
// parts that did parse. Diagnostics come back ordered by source position.
func Compile(unit, source string) (*checker.Checked, []diag.Diagnostic) {
	diags := diag.NewCollection(unit)

	p := parser.New(lexer.New(source, diags), diags)
	prog := p.Parse()
	checked := checker.Check(prog, diags)

	return checked, diags.Diagnostics()
}
