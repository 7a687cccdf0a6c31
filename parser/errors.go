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
	"fmt"
)

/*
Sentinel error kinds. ParseError carries one of these so callers can tell
error classes apart with errors.Is without parsing the message text, the
same shape as util.RuntimeError.Type in the teacher.
*/
var (
	ErrLexicalError       = errors.New("lexical error")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrUnexpectedEnd       = errors.New("unexpected end of input")
	ErrUnknownConstruct    = errors.New("unknown statement or expression")
	ErrLoopNameMismatch    = errors.New("loop name mismatch")
)

/*
ParseError is a fatal diagnostic produced by the parser or lexer. It names
the source file and line of the offending token, a human-readable detail,
and a Sentinel that groups errors by class for programmatic handling.
*/
type ParseError struct {
	File    string // Source file name from the offending token
	Line    int    // 1-based source line of the offending token
	Detail  string // Short description of what was expected
	Sentinel error // One of the Err* sentinels above
}

/*
Error returns a human-readable representation of this error.
*/
func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s: %s", e.Line, e.Sentinel, e.Detail)
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Sentinel, e.Detail)
}

/*
Unwrap exposes the Sentinel so errors.Is(err, ErrUnexpectedToken) works.
*/
func (e *ParseError) Unwrap() error {
	return e.Sentinel
}

/*
newParserError builds a ParseError anchored on the given token.
*/
func newParserError(sentinel error, detail string, tok Token) error {
	return &ParseError{
		File:    tok.Fname,
		Line:    tok.Line,
		Detail:  detail,
		Sentinel: sentinel,
	}
}
