/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

/*
binaryOpKinds maps the twelve binary-operator token kinds to the OpKind they
produce (spec.md §4.2). BOTHSAEM/DIFFRINT collapse onto OpEq/OpNeq - see
SPEC_FULL.md §6.
*/
var binaryOpKinds = map[Kind]OpKind{
	KindSUMOF:      OpAdd,
	KindDIFFOF:     OpSub,
	KindPRODUKTOF:  OpMult,
	KindQUOSHUNTOF: OpDiv,
	KindMODOF:      OpMod,
	KindBIGGROF:    OpMax,
	KindSMALLROF:   OpMin,
	KindBOTHOF:     OpAnd,
	KindEITHEROF:   OpOr,
	KindWONOF:      OpXor,
	KindBOTHSAEM:   OpEq,
	KindDIFFRINT:   OpNeq,
}

/*
naryOpKinds maps the n-ary operator token kinds (terminated by MKAY) to the
OpKind they produce.
*/
var naryOpKinds = map[Kind]OpKind{
	KindALLOF:  OpAnd,
	KindANYOF:  OpOr,
	KindSMOOSH: OpCat,
}

/*
typeKinds maps a type-keyword token kind to the TypeKind it names.
*/
var typeKinds = map[Kind]TypeKind{
	KindNOOB:   TypeNOOB,
	KindTROOF:  TypeTROOF,
	KindNUMBR:  TypeNUMBR,
	KindNUMBAR: TypeNUMBAR,
	KindYARN:   TypeYARN,
}

/*
parseType parses a single type keyword (spec.md grammar rule Type).
*/
func parseType(c *Cursor) (*Type, error) {
	tok := c.cur()
	if tk, ok := typeKinds[tok.Kind]; ok {
		c.advance()
		return &Type{Tok: &tok, TypeKind: tk}, nil
	}
	return nil, newParserError(ErrUnexpectedToken,
		"expected a type (NOOB, TROOF, NUMBR, NUMBAR or YARN), got "+tok.String(), tok)
}

/*
parseIdentifier consumes an identifier token and wraps it.
*/
func parseIdentifier(c *Cursor) (*Identifier, error) {
	tok, err := c.expect(KindIDENTIFIER)
	if err != nil {
		return nil, err
	}
	return newIdentifier(tok), nil
}

/*
parseExpr parses one expression, dispatching on the leading token kind
(spec.md §4.2). There is no operator precedence table: every operator fully
prefixes its operands, so the grammar is LL(1) on the leading token alone.
*/
func parseExpr(c *Cursor) (Expr, error) {
	tok := c.cur()

	switch tok.Kind {

	case KindBOOL:
		c.advance()
		return &ConstantBool{Tok: &tok, Value: tok.Value.(bool)}, nil

	case KindINT:
		c.advance()
		return &ConstantInt{Tok: &tok, Value: tok.Value.(int64)}, nil

	case KindFLOAT:
		c.advance()
		return &ConstantFloat{Tok: &tok, Value: tok.Value.(float64)}, nil

	case KindSTRING:
		c.advance()
		return &ConstantString{Tok: &tok, Value: tok.Value.(string)}, nil

	case KindNOOB:
		c.advance()
		return &ConstantNil{Tok: &tok}, nil

	case KindIT:
		c.advance()
		return &ImplicitVar{Tok: &tok}, nil

	case KindMAEK:
		return parseCastExpr(c)

	case KindNOT:
		c.advance()
		arg, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		return &OpExpr{Tok: &tok, Op: OpNot, Args: []Expr{arg}}, nil

	case KindALLOF, KindANYOF, KindSMOOSH:
		return parseNaryOpExpr(c)

	case KindIDENTIFIER:
		return parseIdentifierOrFuncCall(c)

	default:
		if op, ok := binaryOpKinds[tok.Kind]; ok {
			return parseBinaryOpExpr(c, op)
		}
	}

	return nil, newParserError(ErrUnknownConstruct,
		"expected an expression, got "+tok.String(), tok)
}

/*
parseCastExpr parses "MAEK expr A type".
*/
func parseCastExpr(c *Cursor) (Expr, error) {
	tok, _ := c.accept(KindMAEK)

	operand, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	if _, err := c.expect(KindA); err != nil {
		return nil, err
	}

	target, err := parseType(c)
	if err != nil {
		return nil, err
	}

	return &CastExpr{Tok: &tok, Operand: operand, Target: target}, nil
}

/*
parseBinaryOpExpr parses "op expr AN? expr" for the twelve binary operators.
*/
func parseBinaryOpExpr(c *Cursor, op OpKind) (Expr, error) {
	tok := c.advance()

	lhs, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	c.accept(KindAN) // the connective is always optional

	rhs, err := parseExpr(c)
	if err != nil {
		return nil, err
	}

	return &OpExpr{Tok: &tok, Op: op, Args: []Expr{lhs, rhs}}, nil
}

/*
parseNaryOpExpr parses "op expr (AN? expr)* MKAY" for ALLOF/ANYOF/SMOOSH.
*/
func parseNaryOpExpr(c *Cursor) (Expr, error) {
	tok := c.advance()
	op := naryOpKinds[tok.Kind]

	var args []Expr

	first, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	args = append(args, first)

	for !c.peek(KindMKAY) {
		c.accept(KindAN)

		arg, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	if _, err := c.expect(KindMKAY); err != nil {
		return nil, err
	}

	return &OpExpr{Tok: &tok, Op: op, Args: args}, nil
}

/*
parseIdentifierOrFuncCall disambiguates a leading identifier: "scope IZ
func ..." is a FuncCallExpr, anything else is a plain Identifier expression.
*/
func parseIdentifierOrFuncCall(c *Cursor) (Expr, error) {
	scope, err := parseIdentifier(c)
	if err != nil {
		return nil, err
	}

	if !c.peek(KindIZ) {
		return scope, nil
	}

	tok := c.advance() // IZ

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

	return &FuncCallExpr{Tok: &tok, Scope: scope, Func: fn, Args: args}, nil
}

/*
parseExprList parses one or more expressions separated only by whitespace
(used by PrintStmt, which has no connective or terminator of its own).
stop reports whether the current token ends the list.
*/
func parseExprList(c *Cursor, stop func(*Cursor) bool) ([]Expr, error) {
	var list []Expr

	expr, err := parseExpr(c)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for !stop(c) {
		expr, err := parseExpr(c)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	return list, nil
}
