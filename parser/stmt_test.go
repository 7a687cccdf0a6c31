/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "testing"

func TestParseAssignment(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nX R 5\nKTHXBYE\n")

	assign, ok := prog.Body.Stmts[0].(*AssignmentStmt)
	if !ok {
		t.Fatalf("expected *AssignmentStmt, got %T", prog.Body.Stmts[0])
	}
	if assign.Target.Image != "X" {
		t.Errorf("expected target X, got %v", assign.Target.Image)
	}
	if _, ok := assign.Value.(*ConstantInt); !ok {
		t.Errorf("expected a ConstantInt value, got %T", assign.Value)
	}
}

func TestParseDeallocation(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nX R NOOB\nKTHXBYE\n")

	dealloc, ok := prog.Body.Stmts[0].(*DeallocationStmt)
	if !ok {
		t.Fatalf("expected *DeallocationStmt, got %T", prog.Body.Stmts[0])
	}
	if dealloc.Target.Image != "X" {
		t.Errorf("expected target X, got %v", dealloc.Target.Image)
	}
}

func TestParseCastStmt(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nX IS NOW A NUMBR\nKTHXBYE\n")

	cast, ok := prog.Body.Stmts[0].(*CastStmt)
	if !ok {
		t.Fatalf("expected *CastStmt, got %T", prog.Body.Stmts[0])
	}
	if cast.NewType.TypeKind != TypeNUMBR {
		t.Errorf("expected target type NUMBR, got %v", cast.NewType.TypeKind)
	}
}

func TestParseSwitchWithDefault(t *testing.T) {
	prog := mustParse(t, `HAI 1.2
WTF?
OMG 1
VISIBLE "ONE"
GTFO
OMG 2
VISIBLE "TWO"
GTFO
OMGWTF
VISIBLE "OTHER"
OIC
KTHXBYE
`)

	sw, ok := prog.Body.Stmts[0].(*SwitchStmt)
	if !ok {
		t.Fatalf("expected *SwitchStmt, got %T", prog.Body.Stmts[0])
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 OMG cases, got %d", len(sw.Cases))
	}
	if sw.Default == nil {
		t.Fatalf("expected an OMGWTF default block")
	}
	if _, ok := sw.Cases[0].Stmts[1].(*BreakStmt); !ok {
		t.Errorf("expected the case to end in GTFO, got %T", sw.Cases[0].Stmts[1])
	}
}

func TestParsePrintWithoutBang(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nVISIBLE \"A\" \"B\"\nKTHXBYE\n")

	p, ok := prog.Body.Stmts[0].(*PrintStmt)
	if !ok {
		t.Fatalf("expected *PrintStmt, got %T", prog.Body.Stmts[0])
	}
	if p.Suppress {
		t.Errorf("expected Suppress=false")
	}
	if len(p.Args) != 2 {
		t.Fatalf("expected 2 print arguments, got %d", len(p.Args))
	}
}
