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

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func TestLexSimplePrint(t *testing.T) {
	tokens, err := Lex("test", "HAI 1.2\nVISIBLE \"HELLO\"\nKTHXBYE\n")
	if err != nil {
		t.Fatal(err)
	}

	want := []Kind{KindHAI, KindFLOAT, KindNEWLINE, KindVISIBLE, KindSTRING, KindNEWLINE, KindKTHXBYE, KindNEWLINE, KindEOF}
	got := kindsOf(tokens)

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexMultiWordKeywords(t *testing.T) {
	tokens, err := Lex("test", "I HAS A x ITZ A NUMBR\nx IS NOW A YARN\nx R NOOB\n")
	if err != nil {
		t.Fatal(err)
	}

	want := []Kind{
		KindIDENTIFIER, KindHASA, KindIDENTIFIER, KindITZ, KindA, KindNUMBR, KindNEWLINE,
		KindIDENTIFIER, KindISNOWA, KindYARN, KindNEWLINE,
		KindIDENTIFIER, KindRNOOB, KindNEWLINE,
		KindEOF,
	}
	got := kindsOf(tokens)

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexBooleanLiterals(t *testing.T) {
	tokens, err := Lex("test", "WIN FAIL\n")
	if err != nil {
		t.Fatal(err)
	}

	if tokens[0].Kind != KindBOOL || tokens[0].Value != true {
		t.Errorf("expected WIN to lex as BOOL(true), got %v %v", tokens[0].Kind, tokens[0].Value)
	}
	if tokens[1].Kind != KindBOOL || tokens[1].Value != false {
		t.Errorf("expected FAIL to lex as BOOL(false), got %v %v", tokens[1].Kind, tokens[1].Value)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex("test", `VISIBLE "HELLO`)

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *ParseError, got %v (%T)", err, err)
	}
	if !errors.Is(err, ErrLexicalError) {
		t.Errorf("expected ErrLexicalError, got %v", perr.Sentinel)
	}
}

func TestLexNegativeNumber(t *testing.T) {
	tokens, err := Lex("test", "-5 -3.5\n")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Kind != KindINT || tokens[0].Value != int64(-5) {
		t.Errorf("expected INT(-5), got %v %v", tokens[0].Kind, tokens[0].Value)
	}
	if tokens[1].Kind != KindFLOAT || tokens[1].Value != -3.5 {
		t.Errorf("expected FLOAT(-3.5), got %v %v", tokens[1].Kind, tokens[1].Value)
	}
}
