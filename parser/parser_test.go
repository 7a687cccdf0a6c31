/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Parse("test", src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

func TestParseEmptyProgram(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nKTHXBYE\n")

	if prog.Version != "1.2" {
		t.Errorf("expected version 1.2, got %v", prog.Version)
	}
	if len(prog.Body.Stmts) != 0 {
		t.Errorf("expected an empty body, got %d statements", len(prog.Body.Stmts))
	}
}

func TestParseUnknownVersionAccepted(t *testing.T) {
	prog := mustParse(t, "HAI 99.9\nKTHXBYE\n")
	if prog.Version != "99.9" {
		t.Errorf("expected version 99.9 to be accepted verbatim, got %v", prog.Version)
	}
}

func TestParsePrintWithBang(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nVISIBLE \"HELLO\"!\nKTHXBYE\n")

	want := `program: 1.2
  block
    print: suppress=true
      string: "HELLO"
`
	if got := Dump(prog); got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseDeclarationWithTypeInit(t *testing.T) {
	prog := mustParse(t, "HAI 1.2\nI HAS A AGE ITZ A NUMBR\nKTHXBYE\n")

	want := `program: 1.2
  block
    decl
      identifier: I
      identifier: AGE
`
	if got := Dump(prog); got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}

	decl, ok := prog.Body.Stmts[0].(*DeclarationStmt)
	if !ok {
		t.Fatalf("expected a *DeclarationStmt, got %T", prog.Body.Stmts[0])
	}
	if decl.InitType == nil || decl.InitType.TypeKind != TypeNUMBR {
		t.Errorf("expected InitType NUMBR, got %+v", decl.InitType)
	}
	if decl.Init != nil {
		t.Errorf("expected no Init expression alongside InitType, got %+v", decl.Init)
	}
}

func TestParseIfWithOneMebbe(t *testing.T) {
	prog := mustParse(t, `HAI 1.2
O RLY?
YA RLY
VISIBLE "A"
MEBBE WIN
VISIBLE "B"
NO WAI
VISIBLE "C"
OIC
KTHXBYE
`)

	ifs, ok := prog.Body.Stmts[0].(*IfStmt)
	if !ok {
		t.Fatalf("expected an *IfStmt, got %T", prog.Body.Stmts[0])
	}
	if len(ifs.Guards) != 1 || len(ifs.ElseIfs) != 1 {
		t.Fatalf("expected exactly one MEBBE clause, got %d", len(ifs.Guards))
	}
	if ifs.Else == nil {
		t.Fatalf("expected a NO WAI block to be present")
	}
}

func TestParseLoopWithTilAndUppin(t *testing.T) {
	prog := mustParse(t, `HAI 1.2
IM IN YR LOOP UPPIN YR I TIL BOTH SAEM I AN 10
VISIBLE I
IM OUTTA YR LOOP
KTHXBYE
`)

	loop, ok := prog.Body.Stmts[0].(*LoopStmt)
	if !ok {
		t.Fatalf("expected a *LoopStmt, got %T", prog.Body.Stmts[0])
	}
	if loop.Name.Image != "LOOP" || loop.EndName.Image != "LOOP" {
		t.Errorf("expected loop name LOOP at both ends, got %v / %v", loop.Name.Image, loop.EndName.Image)
	}
	if loop.UpdateVar == nil || loop.UpdateVar.Image != "I" {
		t.Errorf("expected update variable I, got %+v", loop.UpdateVar)
	}
	op, ok := loop.Update.(*OpExpr)
	if !ok || op.Op != OpAdd {
		t.Errorf("expected UPPIN to parse as an OpAdd expression, got %+v", loop.Update)
	}
}

func TestParseLoopNameMismatch(t *testing.T) {
	_, err := Parse("test", `HAI 1.2
IM IN YR LOOP
IM OUTTA YR NOTLOOP
KTHXBYE
`)

	if !errors.Is(err, ErrLoopNameMismatch) {
		t.Fatalf("expected ErrLoopNameMismatch, got %v", err)
	}
}

func TestParseSwitchRequiresAtLeastOneCase(t *testing.T) {
	_, err := Parse("test", "HAI 1.2\nWTF?\nOIC\nKTHXBYE\n")

	if err == nil {
		t.Fatal("expected an error for a switch with no OMG cases")
	}
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf("expected ErrUnexpectedToken, got %v", err)
	}
}

func TestParseFuncDefAndCall(t *testing.T) {
	prog := mustParse(t, `HAI 1.2
HOW IZ I ADD YR X AN YR Y
FOUND YR SUM OF X AN Y
IF U SAY SO
I IZ ADD YR 1 AN YR 2 MKAY
KTHXBYE
`)

	fn, ok := prog.Body.Stmts[0].(*FuncDefStmt)
	if !ok {
		t.Fatalf("expected a *FuncDefStmt, got %T", prog.Body.Stmts[0])
	}
	if len(fn.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(fn.Args))
	}

	call, ok := prog.Body.Stmts[1].(*ExprStmt)
	if !ok {
		t.Fatalf("expected an *ExprStmt wrapping the call, got %T", prog.Body.Stmts[1])
	}
	if _, ok := call.Value.(*FuncCallExpr); !ok {
		t.Fatalf("expected a *FuncCallExpr, got %T", call.Value)
	}
}
