/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/stringutil"
)

/*
IndentationLevel is the number of spaces a nested block is indented by. It
is a var, not a const, so cmd/lolparse can let the -indent flag override it.
*/
var IndentationLevel = 4

/*
exprTemplates maps each expression NodeKind to the text/template that
renders it, keyed the same way as the teacher's prettyPrinterMap: operators
and casts render from a fixed shape, so a template is all they need. Node
kinds whose rendering depends on runtime structure (identifiers, function
calls, blocks) are handled directly in code instead of here.
*/
var exprTemplates = map[NodeKind]*template.Template{
	KindNodeOpExpr + opKindOffset(OpNot): template.Must(template.New("not").Parse("NOT {{.c1}}")),
	KindNodeCastExpr:                     template.Must(template.New("cast").Parse("MAEK {{.c1}} A {{.t}}")),
}

/*
opKindOffset biases OpNot's template key away from the shared KindNodeOpExpr
key used by binary/n-ary operators, which are rendered directly in code
since their keyword varies per OpKind.
*/
func opKindOffset(op OpKind) NodeKind {
	return NodeKind(1000 + int(op))
}

/*
opKeywords names the LOLCODE keyword that introduces each binary or n-ary
OpKind.
*/
var opKeywords = map[OpKind]string{
	OpAdd:  "SUM OF",
	OpSub:  "DIFF OF",
	OpMult: "PRODUKT OF",
	OpDiv:  "QUOSHUNT OF",
	OpMod:  "MOD OF",
	OpMax:  "BIGGR OF",
	OpMin:  "SMALLR OF",
	OpAnd:  "BOTH OF",
	OpOr:   "EITHER OF",
	OpXor:  "WON OF",
	OpEq:   "BOTH SAEM",
	OpNeq:  "DIFFRINT",
	OpCat:  "SMOOSH",
}

/*
naryOpKeywords names the n-ary spelling of operators that have one, used
in place of opKeywords for OpCat and whenever Args does not have exactly two
elements.
*/
var naryOpKeywords = map[OpKind]string{
	OpAnd: "ALL OF",
	OpOr:  "ANY OF",
	OpCat: "SMOOSH",
}

/*
typeKeywords names the LOLCODE keyword for each TypeKind.
*/
var typeKeywords = map[TypeKind]string{
	TypeNOOB:   "NOOB",
	TypeTROOF:  "TROOF",
	TypeNUMBR:  "NUMBR",
	TypeNUMBAR: "NUMBAR",
	TypeYARN:   "YARN",
}

/*
PrettyPrint renders a parsed Program back into LOLCODE source text. It is
not guaranteed to reproduce the original byte-for-byte (comments and
whitespace are not preserved by the AST), but re-parsing its output
produces a structurally identical tree.
*/
func PrettyPrint(prog *Program) (string, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "HAI %s\n", prog.Version)

	body, err := printBlock(prog.Body, 1)
	if err != nil {
		return "", err
	}
	buf.WriteString(body)

	buf.WriteString("KTHXBYE\n")

	return buf.String(), nil
}

func indent(level int) string {
	return stringutil.GenerateRollingString(" ", level*IndentationLevel)
}

func printBlock(b *Block, level int) (string, error) {
	var buf bytes.Buffer
	for _, stmt := range b.Stmts {
		line, err := printStmt(stmt, level)
		if err != nil {
			return "", err
		}
		buf.WriteString(indent(level))
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}

func printStmt(s Stmt, level int) (string, error) {
	switch n := s.(type) {

	case *PrintStmt:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			expr, err := printExpr(a)
			if err != nil {
				return "", err
			}
			parts[i] = expr
		}
		line := "VISIBLE " + strings.Join(parts, " ")
		if n.Suppress {
			line += "!"
		}
		return line, nil

	case *InputStmt:
		return "GIMMEH " + n.Target.Image, nil

	case *AssignmentStmt:
		value, err := printExpr(n.Value)
		if err != nil {
			return "", err
		}
		return n.Target.Image + " R " + value, nil

	case *DeallocationStmt:
		return n.Target.Image + " R NOOB", nil

	case *CastStmt:
		return n.Target.Image + " IS NOW A " + typeKeywords[n.NewType.TypeKind], nil

	case *DeclarationStmt:
		line := n.Scope.Image + " HAS A " + n.Target.Image
		if n.InitType != nil {
			line += " ITZ A " + typeKeywords[n.InitType.TypeKind]
		} else if n.Init != nil {
			value, err := printExpr(n.Init)
			if err != nil {
				return "", err
			}
			line += " ITZ " + value
		}
		return line, nil

	case *BreakStmt:
		return "GTFO", nil

	case *ReturnStmt:
		value, err := printExpr(n.Value)
		if err != nil {
			return "", err
		}
		return "FOUND YR " + value, nil

	case *ExprStmt:
		return printExpr(n.Value)

	case *IfStmt:
		return printIfStmt(n, level)

	case *SwitchStmt:
		return printSwitchStmt(n, level)

	case *LoopStmt:
		return printLoopStmt(n, level)

	case *FuncDefStmt:
		return printFuncDefStmt(n, level)
	}

	errorutil.AssertTrue(false, fmt.Sprintf("prettyprinter: unhandled statement kind %v", s.Kind()))
	return "", nil
}

func printIfStmt(n *IfStmt, level int) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("O RLY?\n")

	then, err := printBlock(n.Then, level+1)
	if err != nil {
		return "", err
	}
	buf.WriteString(indent(level))
	buf.WriteString("YA RLY\n")
	buf.WriteString(then)

	for i, guard := range n.Guards {
		g, err := printExpr(guard)
		if err != nil {
			return "", err
		}
		buf.WriteString(indent(level))
		buf.WriteString("MEBBE " + g + "\n")

		block, err := printBlock(n.ElseIfs[i], level+1)
		if err != nil {
			return "", err
		}
		buf.WriteString(block)
	}

	if n.Else != nil {
		buf.WriteString(indent(level))
		buf.WriteString("NO WAI\n")
		block, err := printBlock(n.Else, level+1)
		if err != nil {
			return "", err
		}
		buf.WriteString(block)
	}

	buf.WriteString(indent(level))
	buf.WriteString("OIC")

	return buf.String(), nil
}

func printSwitchStmt(n *SwitchStmt, level int) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("WTF?\n")

	for i, guard := range n.Guards {
		g, err := printExpr(guard)
		if err != nil {
			return "", err
		}
		buf.WriteString(indent(level))
		buf.WriteString("OMG " + g + "\n")

		block, err := printBlock(n.Cases[i], level+1)
		if err != nil {
			return "", err
		}
		buf.WriteString(block)
	}

	if n.Default != nil {
		buf.WriteString(indent(level))
		buf.WriteString("OMGWTF\n")
		block, err := printBlock(n.Default, level+1)
		if err != nil {
			return "", err
		}
		buf.WriteString(block)
	}

	buf.WriteString(indent(level))
	buf.WriteString("OIC")

	return buf.String(), nil
}

func printLoopStmt(n *LoopStmt, level int) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("IM IN YR " + n.Name.Image)

	if n.UpdateVar != nil {
		switch update := n.Update.(type) {
		case *OpExpr:
			if update.Op == OpAdd {
				buf.WriteString(" UPPIN YR " + n.UpdateVar.Image)
			} else {
				buf.WriteString(" NERFIN YR " + n.UpdateVar.Image)
			}
		case *FuncCallExpr:
			buf.WriteString(" " + update.Func.Image + " YR " + n.UpdateVar.Image)
		}
	}

	if n.Guard != nil {
		g, err := printExpr(n.Guard)
		if err != nil {
			return "", err
		}
		buf.WriteString(" TIL " + g)
	}
	buf.WriteString("\n")

	body, err := printBlock(n.Body, level+1)
	if err != nil {
		return "", err
	}
	buf.WriteString(body)

	buf.WriteString(indent(level))
	buf.WriteString("IM OUTTA YR " + n.EndName.Image)

	return buf.String(), nil
}

func printFuncDefStmt(n *FuncDefStmt, level int) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("HOW IZ " + n.Scope.Image + " " + n.Name.Image)

	for i, arg := range n.Args {
		if i == 0 {
			buf.WriteString(" YR " + arg.Image)
		} else {
			buf.WriteString(" AN YR " + arg.Image)
		}
	}
	buf.WriteString("\n")

	body, err := printBlock(n.Body, level+1)
	if err != nil {
		return "", err
	}
	buf.WriteString(body)

	buf.WriteString(indent(level))
	buf.WriteString("IF U SAY SO")

	return buf.String(), nil
}

func printExpr(e Expr) (string, error) {
	switch n := e.(type) {

	case *ConstantBool:
		if n.Value {
			return "WIN", nil
		}
		return "FAIL", nil

	case *ConstantInt:
		return strconv.FormatInt(n.Value, 10), nil

	case *ConstantFloat:
		s := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0" // keep an integral float from re-lexing as an integer
		}
		return s, nil

	case *ConstantString:
		return strconv.Quote(n.Value), nil

	case *ConstantNil:
		return "NOOB", nil

	case *ImplicitVar:
		return "IT", nil

	case *Identifier:
		return n.Image, nil

	case *CastExpr:
		operand, err := printExpr(n.Operand)
		if err != nil {
			return "", err
		}
		var buf bytes.Buffer
		errorutil.AssertOk(exprTemplates[KindNodeCastExpr].Execute(&buf, map[string]string{
			"c1": operand,
			"t":  typeKeywords[n.Target.TypeKind],
		}))
		return buf.String(), nil

	case *OpExpr:
		return printOpExpr(n)

	case *FuncCallExpr:
		return printFuncCallExpr(n)
	}

	errorutil.AssertTrue(false, fmt.Sprintf("prettyprinter: unhandled expression kind %v", e.Kind()))
	return "", nil
}

func printOpExpr(n *OpExpr) (string, error) {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		s, err := printExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = s
	}

	if n.Op == OpNot {
		var buf bytes.Buffer
		errorutil.AssertOk(exprTemplates[KindNodeOpExpr+opKindOffset(OpNot)].Execute(&buf, map[string]string{"c1": args[0]}))
		return buf.String(), nil
	}

	if n.Op == OpCat || len(args) != 2 {
		keyword, ok := naryOpKeywords[n.Op]
		errorutil.AssertTrue(ok, fmt.Sprintf("prettyprinter: op %v has no n-ary spelling", n.Op))
		return keyword + " " + strings.Join(args, " AN ") + " MKAY", nil
	}

	keyword := opKeywords[n.Op]
	return keyword + " " + args[0] + " AN " + args[1], nil
}

func printFuncCallExpr(n *FuncCallExpr) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(n.Scope.Image + " IZ " + n.Func.Image)

	for i, a := range n.Args {
		arg, err := printExpr(a)
		if err != nil {
			return "", err
		}
		if i == 0 {
			buf.WriteString(" YR " + arg)
		} else {
			buf.WriteString(" AN YR " + arg)
		}
	}
	buf.WriteString(" MKAY")

	return buf.String(), nil
}
