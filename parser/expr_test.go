/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "testing"

func parseExprString(t *testing.T, src string) Expr {
	t.Helper()
	tokens, err := Lex("test", src+"\n")
	if err != nil {
		t.Fatal(err)
	}
	c := newCursor(tokens)
	expr, err := parseExpr(c)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}

func TestParseBinaryOpWithConnective(t *testing.T) {
	expr := parseExprString(t, "SUM OF 1 AN 2")

	op, ok := expr.(*OpExpr)
	if !ok {
		t.Fatalf("expected *OpExpr, got %T", expr)
	}
	if op.Op != OpAdd || len(op.Args) != 2 {
		t.Fatalf("expected OpAdd with 2 args, got %v / %d", op.Op, len(op.Args))
	}
}

func TestParseBinaryOpWithoutConnective(t *testing.T) {
	expr := parseExprString(t, "SUM OF 1 2")

	op, ok := expr.(*OpExpr)
	if !ok || op.Op != OpAdd || len(op.Args) != 2 {
		t.Fatalf("expected OpAdd with 2 args (no connective), got %+v", expr)
	}
}

func TestParseBothsaemAndDiffrintMapToEqNeq(t *testing.T) {
	eq := parseExprString(t, "BOTH SAEM 1 AN 2").(*OpExpr)
	if eq.Op != OpEq {
		t.Errorf("expected BOTH SAEM to produce OpEq, got %v", eq.Op)
	}

	neq := parseExprString(t, "DIFFRINT 1 AN 2").(*OpExpr)
	if neq.Op != OpNeq {
		t.Errorf("expected DIFFRINT to produce OpNeq, got %v", neq.Op)
	}
}

func TestParseNaryAllOf(t *testing.T) {
	expr := parseExprString(t, "ALL OF WIN AN WIN AN FAIL MKAY")

	op, ok := expr.(*OpExpr)
	if !ok || op.Op != OpAnd {
		t.Fatalf("expected OpAnd, got %+v", expr)
	}
	if len(op.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(op.Args))
	}
}

func TestParseCastExpr(t *testing.T) {
	expr := parseExprString(t, "MAEK 5 A YARN")

	cast, ok := expr.(*CastExpr)
	if !ok {
		t.Fatalf("expected *CastExpr, got %T", expr)
	}
	if cast.Target.TypeKind != TypeYARN {
		t.Errorf("expected cast target YARN, got %v", cast.Target.TypeKind)
	}
	if _, ok := cast.Operand.(*ConstantInt); !ok {
		t.Errorf("expected operand to be a ConstantInt, got %T", cast.Operand)
	}
}

func TestParseNotUnary(t *testing.T) {
	expr := parseExprString(t, "NOT WIN")

	op, ok := expr.(*OpExpr)
	if !ok || op.Op != OpNot || len(op.Args) != 1 {
		t.Fatalf("expected unary OpNot, got %+v", expr)
	}
}

func TestParseImplicitVar(t *testing.T) {
	expr := parseExprString(t, "IT")

	if _, ok := expr.(*ImplicitVar); !ok {
		t.Fatalf("expected *ImplicitVar, got %T", expr)
	}
}

func TestParseFuncCallExpr(t *testing.T) {
	expr := parseExprString(t, "I IZ ADD YR 1 AN YR 2 MKAY")

	call, ok := expr.(*FuncCallExpr)
	if !ok {
		t.Fatalf("expected *FuncCallExpr, got %T", expr)
	}
	if call.Scope.Image != "I" || call.Func.Image != "ADD" {
		t.Fatalf("expected scope I / func ADD, got %v / %v", call.Scope.Image, call.Func.Image)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Args))
	}
}

func TestParseBareIdentifierExpr(t *testing.T) {
	expr := parseExprString(t, "FOO")

	id, ok := expr.(*Identifier)
	if !ok || id.Image != "FOO" {
		t.Fatalf("expected *Identifier(FOO), got %+v", expr)
	}
}
