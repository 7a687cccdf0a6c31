/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"github.com/krotik/common/errorutil"
)

/*
parseBlock parses statements until the current token is one of closers, or
EOF. The closing token itself is left unconsumed so the caller can assert
and advance past it with a specific error message.
*/
func parseBlock(c *Cursor, closers ...Kind) (*Block, error) {
	tok := c.cur()
	block := &Block{Tok: &tok}

	for !atAny(c, closers) && !c.peek(KindEOF) {
		if _, ok := c.accept(KindNEWLINE); ok {
			continue
		}

		stmt, err := parseStmt(c)
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	return block, nil
}

func atAny(c *Cursor, kinds []Kind) bool {
	for _, k := range kinds {
		if c.peek(k) {
			return true
		}
	}
	return false
}

/*
parseStmt parses exactly one statement, dispatching on the leading token
(spec.md §4.3). A statement always ends at a newline or block closer; callers
are responsible for consuming any trailing newline via parseBlock.
*/
func parseStmt(c *Cursor) (Stmt, error) {
	tok := c.cur()

	switch tok.Kind {

	case KindVISIBLE:
		return parsePrintStmt(c)

	case KindGIMMEH:
		return parseInputStmt(c)

	case KindORLY:
		return parseIfStmt(c)

	case KindWTF:
		return parseSwitchStmt(c)

	case KindGTFO:
		c.advance()
		return &BreakStmt{Tok: &tok}, nil

	case KindFOUNDYR:
		return parseReturnStmt(c)

	case KindIMINYR:
		return parseLoopStmt(c)

	case KindHOWIZ:
		return parseFuncDefStmt(c)

	case KindIDENTIFIER:
		return parseIdentifierLedStmt(c)
	}

	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Tok: &tok, Value: expr}, nil
}

/*
parsePrintStmt parses "VISIBLE expr+ !?".
*/
func parsePrintStmt(c *Cursor) (Stmt, error) {
	tok := c.advance()

	args, err := parseExprList(c, func(c *Cursor) bool {
		return c.peek(KindBANG) || c.peek(KindNEWLINE) || c.peek(KindEOF)
	})
	if err != nil {
		return nil, err
	}

	_, suppress := c.accept(KindBANG)

	return &PrintStmt{Tok: &tok, Args: args, Suppress: suppress}, nil
}

/*
parseInputStmt parses "GIMMEH target".
*/
func parseInputStmt(c *Cursor) (Stmt, error) {
	tok := c.advance()

	target, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	return &InputStmt{Tok: &tok, Target: target}, nil
}

/*
parseIdentifierLedStmt resolves the statements that all start with an
identifier: assignment, cast, declaration, deallocation, or a bare
expression statement.
*/
func parseIdentifierLedStmt(c *Cursor) (Stmt, error) {
	tok := c.cur()
	target, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	switch {

	case c.peek(KindRNOOB):
		c.advance()
		return &DeallocationStmt{Tok: &tok, Target: target}, nil

	case c.peek(KindR):
		return parseAssignmentStmt(c, tok, target)

	case c.peek(KindISNOWA):
		c.advance()
		newType, err := parseType(c)
		if err != nil {
			return nil, err
		}
		return &CastStmt{Tok: &tok, Target: target, NewType: newType}, nil

	case c.peek(KindHASA):
		return parseDeclarationStmt(c, tok, target)
	}

	expr, err := finishIdentifierExpr(c, target)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Tok: &tok, Value: expr}, nil
}

/*
parseAssignmentStmt parses "target R value". The lexer merges a literal "R
NOOB" into a single KindRNOOB token, so that spelling is dispatched to
DeallocationStmt before this function is ever called.
*/
func parseAssignmentStmt(c *Cursor, tok Token, target *Identifier) (Stmt, error) {
	c.advance() // R

	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	return &AssignmentStmt{Tok: &tok, Target: target, Value: value}, nil
}

/*
parseDeclarationStmt parses "scope HAS A target (ITZ value | ITZ A type)?".
At most one of Init/InitType may be present (spec.md §8).
*/
func parseDeclarationStmt(c *Cursor, tok Token, scope *Identifier) (Stmt, error) {
	c.advance() // HAS A

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	decl := &DeclarationStmt{Tok: &tok, Scope: scope, Target: name}

	if _, ok := c.accept(KindITZ); ok {
		if _, ok := c.accept(KindA); ok {
			initType, err := parseType(c)
			if err != nil {
				return nil, err
			}
			decl.InitType = initType
		} else {
			init, err := parseExpr(c)
			if err != nil {
				return nil, err
			}
			decl.Init = init
		}
	}

	errorutil.AssertTrue(decl.Init == nil || decl.InitType == nil,
		"declaration must not set both Init and InitType")

	return decl, nil
}

/*
finishIdentifierExpr resolves the func-call suffix for an identifier that
turned out to start an expression statement rather than a known statement
form (e.g. a bare function call used for its side effects).
*/
func finishIdentifierExpr(c *Cursor, scope *Identifier) (Expr, error) {
	if !c.peek(KindIZ) {
		return scope, nil
	}

	izTok := c.advance()

	fn, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	var args []Expr
	if _, ok := c.accept(KindYR); ok {
		arg, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		for {
			if _, ok := c.accept(KindAN); !ok {
				break
			}
			if _, err := c.expect(KindYR); err != nil {
				return nil, err
			}
			arg, err := parseExpr(c)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if _, err := c.expect(KindMKAY); err != nil {
		return nil, err
	}

	return &FuncCallExpr{Tok: &izTok, Scope: scope, Func: fn, Args: args}, nil
}

/*
parseIfStmt parses "O RLY? YA RLY block (MEBBE expr block)* (NO WAI block)? OIC".
*/
func parseIfStmt(c *Cursor) (Stmt, error) {
	tok := c.advance() // O RLY?
	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	if _, err := c.expect(KindYARLY); err != nil {
		return nil, err
	}
	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	then, err := parseBlock(c, KindMEBBE, KindNOWAI, KindOIC)
	if err != nil {
		return nil, err
	}

	ifs := &IfStmt{Tok: &tok, Then: then}

	for c.peek(KindMEBBE) {
		c.advance()
		guard, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(KindNEWLINE); err != nil {
			return nil, err
		}

		block, err := parseBlock(c, KindMEBBE, KindNOWAI, KindOIC)
		if err != nil {
			return nil, err
		}

		ifs.Guards = append(ifs.Guards, guard)
		ifs.ElseIfs = append(ifs.ElseIfs, block)
	}

	errorutil.AssertTrue(len(ifs.Guards) == len(ifs.ElseIfs),
		"if statement must pair every guard with an elseif block")

	if _, ok := c.accept(KindNOWAI); ok {
		if _, err := c.expect(KindNEWLINE); err != nil {
			return nil, err
		}
		elseBlock, err := parseBlock(c, KindOIC)
		if err != nil {
			return nil, err
		}
		ifs.Else = elseBlock
	}

	if _, err := c.expect(KindOIC); err != nil {
		return nil, err
	}

	return ifs, nil
}

/*
parseSwitchStmt parses "WTF? (OMG expr block)+ (OMGWTF block)? OIC". At
least one OMG case is required (spec.md §8).
*/
func parseSwitchStmt(c *Cursor) (Stmt, error) {
	tok := c.advance() // WTF?
	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	sw := &SwitchStmt{Tok: &tok}

	for c.peek(KindOMG) {
		c.advance()
		guard, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.expect(KindNEWLINE); err != nil {
			return nil, err
		}

		block, err := parseBlock(c, KindOMG, KindOMGWTF, KindOIC)
		if err != nil {
			return nil, err
		}

		sw.Guards = append(sw.Guards, guard)
		sw.Cases = append(sw.Cases, block)
	}

	if len(sw.Cases) == 0 {
		got := c.cur()
		return nil, newParserError(ErrUnexpectedToken,
			"a WTF? switch needs at least one OMG case, got "+got.String(), got)
	}
	errorutil.AssertTrue(len(sw.Guards) == len(sw.Cases),
		"switch statement must pair every guard with a case block")

	if _, ok := c.accept(KindOMGWTF); ok {
		if _, err := c.expect(KindNEWLINE); err != nil {
			return nil, err
		}
		def, err := parseBlock(c, KindOIC)
		if err != nil {
			return nil, err
		}
		sw.Default = def
	}

	if _, err := c.expect(KindOIC); err != nil {
		return nil, err
	}

	return sw, nil
}

/*
parseReturnStmt parses "FOUND YR value".
*/
func parseReturnStmt(c *Cursor) (Stmt, error) {
	tok := c.advance()

	value, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	return &ReturnStmt{Tok: &tok, Value: value}, nil
}

/*
parseLoopStmt parses "IM IN YR name (op YR var | fn YR var)? (TIL|WILE
expr)? block IM OUTTA YR name2", checking name2 == name (spec.md §8 "loop
name mismatch").
*/
func parseLoopStmt(c *Cursor) (Stmt, error) {
	tok := c.advance() // IM IN YR

	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	loop := &LoopStmt{Tok: &tok, Name: name}

	if !c.peek(KindNEWLINE) {
		if err := parseLoopUpdateClause(c, loop); err != nil {
			return nil, err
		}
	}

	if _, ok := c.accept(KindTIL); ok {
		guard, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		loop.Guard = guard
	} else if _, ok := c.accept(KindWILE); ok {
		guard, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		loop.Guard = guard
	}

	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	body, err := parseBlock(c, KindIMOUTTAYR)
	if err != nil {
		return nil, err
	}
	loop.Body = body

	if _, err := c.expect(KindIMOUTTAYR); err != nil {
		return nil, err
	}

	endName, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}
	loop.EndName = endName

	if endName.Image != name.Image {
		return nil, newParserError(ErrLoopNameMismatch,
			"loop opened as "+name.Image+" but closed as "+endName.Image, *endName.Tok)
	}

	return loop, nil
}

/*
parseLoopUpdateClause parses the optional update clause of a loop header:
either the builtin "UPPIN YR var" / "NERFIN YR var" forms, or a
user-defined unary update function "fn YR var".
*/
func parseLoopUpdateClause(c *Cursor, loop *LoopStmt) error {
	var op OpKind
	var opTok Token

	switch {
	case c.peek(KindUPPIN):
		opTok = c.advance()
		op = OpAdd
	case c.peek(KindNERFIN):
		opTok = c.advance()
		op = OpSub
	case c.peek(KindIDENTIFIER):
		fnTok := c.cur()
		fn, err := parseIdentifier(c)
		if err != nil {
			return err
		}
		if _, err := c.expect(KindYR); err != nil {
			return err
		}
		updateVar, err := parseIdentifier(c)
		if err != nil {
			return err
		}
		loop.UpdateVar = updateVar
		loop.Update = &FuncCallExpr{Tok: &fnTok, Func: fn, Args: []Expr{newIdentifier(*updateVar.Tok)}}
		return nil
	default:
		return nil
	}

	if _, err := c.expect(KindYR); err != nil {
		return err
	}
	updateVar, err := parseIdentifier(c)
	if err != nil {
		return err
	}

	loop.UpdateVar = updateVar
	loop.Update = &OpExpr{Tok: &opTok, Op: op, Args: []Expr{newIdentifier(*updateVar.Tok), &ConstantInt{Tok: &opTok, Value: 1}}}
	return nil
}

/*
parseFuncDefStmt parses "HOW IZ scope name (YR a1 (AN YR a2)*)? block IF U SAY SO".
*/
func parseFuncDefStmt(c *Cursor) (Stmt, error) {
	tok := c.advance() // HOW IZ

	scope, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}
	name, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	fn := &FuncDefStmt{Tok: &tok, Scope: scope, Name: name}

	if _, ok := c.accept(KindYR); ok {
		arg, err := parseIdentifier(c)
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)

		for {
			if _, ok := c.accept(KindAN); !ok {
				break
			}
			if _, err := c.expect(KindYR); err != nil {
				return nil, err
			}
			arg, err := parseIdentifier(c)
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, arg)
		}
	}

	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	body, err := parseBlock(c, KindIFUSAYSO)
	if err != nil {
		return nil, err
	}
	fn.Body = body

	if _, err := c.expect(KindIFUSAYSO); err != nil {
		return nil, err
	}

	return fn, nil
}

/*
parseProgram parses the whole token stream: "HAI version NEWLINE ...
KTHXBYE" (spec.md §4.4). version is accepted verbatim regardless of its
numeric value - see SPEC_FULL.md §6.
*/
func parseProgram(tokens []Token) (*Program, error) {
	c := newCursor(tokens)

	tok, err := c.expect(KindHAI)
	if err != nil {
		return nil, err
	}

	versionTok := c.advance()
	version := versionTok.Image

	if _, err := c.expect(KindNEWLINE); err != nil {
		return nil, err
	}

	body, err := parseBlock(c, KindKTHXBYE)
	if err != nil {
		return nil, err
	}

	if _, err := c.expect(KindKTHXBYE); err != nil {
		return nil, err
	}

	return &Program{Tok: &tok, Version: version, Body: body}, nil
}
