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

	"github.com/krotik/common/stringutil"
)

var nodeKindNames = map[NodeKind]string{
	KindNodeIdentifier:       "identifier",
	KindNodeType:             "type",
	KindNodeConstantBool:     "bool",
	KindNodeConstantInt:      "int",
	KindNodeConstantFloat:    "float",
	KindNodeConstantString:   "string",
	KindNodeConstantNil:      "noob",
	KindNodeImplicitVar:      "it",
	KindNodeCastExpr:         "cast",
	KindNodeFuncCallExpr:     "funccall",
	KindNodeOpExpr:           "op",
	KindNodeCastStmt:         "caststmt",
	KindNodePrintStmt:        "print",
	KindNodeInputStmt:        "input",
	KindNodeAssignmentStmt:   "assign",
	KindNodeDeclarationStmt:  "decl",
	KindNodeIfStmt:           "if",
	KindNodeSwitchStmt:       "switch",
	KindNodeBreakStmt:        "break",
	KindNodeReturnStmt:       "return",
	KindNodeLoopStmt:         "loop",
	KindNodeDeallocationStmt: "dealloc",
	KindNodeFuncDefStmt:      "funcdef",
	KindNodeExprStmt:         "exprstmt",
	KindNodeBlock:            "block",
	KindNodeProgram:          "program",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

/*
Dump renders a node and its subtree as an indented, line-oriented tree, in
the same spirit as the teacher's ASTNode.levelString: one line per node,
two spaces of indentation per level, payload-bearing leaves show their
value after a colon.
*/
func Dump(n Node) string {
	var buf bytes.Buffer
	dumpLevel(n, 0, &buf)
	return buf.String()
}

func dumpLevel(n Node, level int, buf *bytes.Buffer) {
	if n == nil {
		return
	}

	buf.WriteString(stringutil.GenerateRollingString(" ", level*2))

	switch v := n.(type) {
	case *Identifier:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Image)
	case *ConstantBool:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Value)
	case *ConstantInt:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Value)
	case *ConstantFloat:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Value)
	case *ConstantString:
		fmt.Fprintf(buf, "%v: %q\n", n.Kind(), v.Value)
	case *Type:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), typeKeywords[v.TypeKind])
	case *OpExpr:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Op)
	case *PrintStmt:
		fmt.Fprintf(buf, "%v: suppress=%v\n", n.Kind(), v.Suppress)
	case *Program:
		fmt.Fprintf(buf, "%v: %v\n", n.Kind(), v.Version)
	default:
		fmt.Fprintf(buf, "%v\n", n.Kind())
	}

	for _, child := range n.Children() {
		dumpLevel(child, level+1, buf)
	}
}

func (op OpKind) String() string {
	names := map[OpKind]string{
		OpAdd: "add", OpSub: "sub", OpMult: "mult", OpDiv: "div", OpMod: "mod",
		OpMax: "max", OpMin: "min", OpAnd: "and", OpOr: "or", OpXor: "xor",
		OpNot: "not", OpEq: "eq", OpNeq: "neq", OpCat: "cat",
	}
	if name, ok := names[op]; ok {
		return name
	}
	return "unknown"
}
