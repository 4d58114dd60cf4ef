// Package lift_test exercises the whole front end through Compile: one
// source string in, a checked program and ordered diagnostics out.
package lift_test

import (
	"strings"
	"testing"

	"github.com/liftlang/lift"
	"github.com/liftlang/lift/diag"
)

// TestCompile_Clean compiles a complete valid program and expects a usable
// result with no diagnostics.
func TestCompile_Clean(t *testing.T) {
	checked, diags := lift.Compile("main.lift", `
struct Counter { value: int, step: int }

func bump(c: Counter): int {
    return c.value + c.step
}

let c = Counter { value: 0, step: 2 }
let total = 0
for i in 0..5 {
    total = total + bump(c)
}
println(total)`)

	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %d:", len(diags))
		for _, d := range diags {
			t.Errorf("  %s", d)
		}
		t.FailNow()
	}
	if checked == nil || checked.Program == nil {
		t.Fatal("no checked program returned")
	}
	if _, ok := checked.Structs["Counter"]; !ok {
		t.Error("Counter missing from struct registry")
	}
	if _, ok := checked.Funcs["bump"]; !ok {
		t.Error("bump missing from function registry")
	}
}

// TestCompile_DiagnosticsOrdered verifies that faults found by different
// stages come back interleaved in source order, each stamped with the unit
// name.
func TestCompile_DiagnosticsOrdered(t *testing.T) {
	// Line 2 has a lexical fault (@), line 3 a semantic one (undefined
	// name), line 4 a parse fault (missing initialiser expression).
	_, diags := lift.Compile("main.lift", `
let a = 1 @ 2
let b = missing
let c = ;`)

	if len(diags) < 3 {
		t.Fatalf("expected at least 3 diagnostics, got %d: %v", len(diags), diags)
	}
	for i := 1; i < len(diags); i++ {
		if diags[i-1].Span.Start.Offset > diags[i].Span.Start.Offset {
			t.Errorf("diagnostics out of order: %s before %s", diags[i-1], diags[i])
		}
	}
	for _, d := range diags {
		if d.Unit != "main.lift" {
			t.Errorf("unit — got %q, want %q", d.Unit, "main.lift")
		}
		if !strings.HasPrefix(d.String(), "main.lift:") {
			t.Errorf("rendered diagnostic should lead with the unit: %s", d)
		}
	}
}

// TestCompile_ChecksAfterParseErrors verifies that the checker still runs
// over the statements that survived a parse fault.
func TestCompile_ChecksAfterParseErrors(t *testing.T) {
	_, diags := lift.Compile("main.lift", `
let = 5
const k = 1
k = 2`)

	var sawParse, sawCheck bool
	for _, d := range diags {
		switch d.Code {
		case diag.UnexpectedToken:
			sawParse = true
		case diag.ImmutableAssignment:
			sawCheck = true
		}
	}
	if !sawParse {
		t.Error("missing the parse diagnostic")
	}
	if !sawCheck {
		t.Error("missing the checker diagnostic for the statements that parsed")
	}
}
