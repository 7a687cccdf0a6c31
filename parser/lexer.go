/*
 * LOLPARSE
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/krotik/common/datautil"
)

/*
Kind identifies the lexical class of a Token. Multi-word LOLCODE keywords
(e.g. "IS NOW A") are merged by the lexer into a single Kind so the parser
never has to look past one token to recognize a production.
*/
type Kind int

/*
Token kinds. The ordering has no semantic meaning; it only groups related
kinds together for readability.
*/
const (
	KindEOF Kind = iota
	KindError
	KindNEWLINE

	// Literals

	KindIDENTIFIER
	KindSTRING
	KindINT
	KindFLOAT
	KindBOOL

	// Program header/footer

	KindHAI
	KindKTHXBYE

	// Statements

	KindVISIBLE
	KindGIMMEH
	KindR
	KindISNOWA
	KindHASA
	KindITZ
	KindA
	KindRNOOB
	KindORLY
	KindYARLY
	KindMEBBE
	KindNOWAI
	KindOIC
	KindWTF
	KindOMG
	KindOMGWTF
	KindGTFO
	KindFOUNDYR
	KindIMINYR
	KindIMOUTTAYR
	KindUPPIN
	KindNERFIN
	KindYR
	KindTIL
	KindWILE
	KindHOWIZ
	KindIFUSAYSO
	KindAN
	KindBANG

	// Expressions

	KindMAEK
	KindIT
	KindIZ
	KindMKAY
	KindNOT
	KindSUMOF
	KindDIFFOF
	KindPRODUKTOF
	KindQUOSHUNTOF
	KindMODOF
	KindBIGGROF
	KindSMALLROF
	KindBOTHOF
	KindEITHEROF
	KindWONOF
	KindBOTHSAEM
	KindDIFFRINT
	KindALLOF
	KindANYOF
	KindSMOOSH

	// Types

	KindNOOB
	KindTROOF
	KindNUMBR
	KindNUMBAR
	KindYARN
)

/*
Token is one lexical unit handed to the parser. It mirrors the tokenizer
contract in spec.md §6: a kind, the original lexeme, a pre-parsed numeric or
boolean payload where applicable, and a borrowed source name/line for
diagnostics.
*/
type Token struct {
	Kind  Kind        // Token kind
	Image string      // Original lexeme text
	Value interface{} // Pre-parsed payload for number/bool literals
	Fname string      // Source file name (borrowed, outlives the parse)
	Line  int         // 1-based source line number
}

/*
String returns a human-readable representation of this token, used in error
messages and test failures.
*/
func (t Token) String() string {
	if t.Image != "" {
		return t.Image
	}
	return kindNames[t.Kind]
}

var kindNames = map[Kind]string{
	KindEOF:        "end of input",
	KindError:      "lexer error",
	KindNEWLINE:    "newline",
	KindIDENTIFIER: "identifier",
	KindSTRING:     "string literal",
	KindINT:        "integer literal",
	KindFLOAT:      "float literal",
	KindBOOL:       "boolean literal",
	KindHAI:        "HAI",
	KindKTHXBYE:    "KTHXBYE",
	KindVISIBLE:    "VISIBLE",
	KindGIMMEH:     "GIMMEH",
	KindR:          "R",
	KindISNOWA:     "IS NOW A",
	KindHASA:       "HAS A",
	KindITZ:        "ITZ",
	KindA:          "A",
	KindRNOOB:      "R NOOB",
	KindORLY:       "O RLY?",
	KindYARLY:      "YA RLY",
	KindMEBBE:      "MEBBE",
	KindNOWAI:      "NO WAI",
	KindOIC:        "OIC",
	KindWTF:        "WTF?",
	KindOMG:        "OMG",
	KindOMGWTF:     "OMGWTF",
	KindGTFO:       "GTFO",
	KindFOUNDYR:    "FOUND YR",
	KindIMINYR:     "IM IN YR",
	KindIMOUTTAYR:  "IM OUTTA YR",
	KindUPPIN:      "UPPIN",
	KindNERFIN:     "NERFIN",
	KindYR:         "YR",
	KindTIL:        "TIL",
	KindWILE:       "WILE",
	KindHOWIZ:      "HOW IZ",
	KindIFUSAYSO:   "IF U SAY SO",
	KindAN:         "AN",
	KindBANG:       "!",
	KindMAEK:       "MAEK",
	KindIT:         "IT",
	KindIZ:         "IZ",
	KindMKAY:       "MKAY",
	KindNOT:        "NOT",
	KindSUMOF:      "SUM OF",
	KindDIFFOF:     "DIFF OF",
	KindPRODUKTOF:  "PRODUKT OF",
	KindQUOSHUNTOF: "QUOSHUNT OF",
	KindMODOF:      "MOD OF",
	KindBIGGROF:    "BIGGR OF",
	KindSMALLROF:   "SMALLR OF",
	KindBOTHOF:     "BOTH OF",
	KindEITHEROF:   "EITHER OF",
	KindWONOF:      "WON OF",
	KindBOTHSAEM:   "BOTH SAEM",
	KindDIFFRINT:   "DIFFRINT",
	KindALLOF:      "ALL OF",
	KindANYOF:      "ANY OF",
	KindSMOOSH:     "SMOOSH",
	KindNOOB:       "NOOB",
	KindTROOF:      "TROOF",
	KindNUMBR:      "NUMBR",
	KindNUMBAR:     "NUMBAR",
	KindYARN:       "YARN",
}

/*
phraseMap maps a space-joined, upper-cased run of bare words to the Kind it
forms. The lexer tries the longest phrase first so e.g. "IS NOW A" wins over
the bare word "IS".
*/
var phraseMap = map[string]Kind{
	"WIN":           KindBOOL,
	"FAIL":          KindBOOL,
	"HAI":           KindHAI,
	"KTHXBYE":       KindKTHXBYE,
	"VISIBLE":       KindVISIBLE,
	"GIMMEH":        KindGIMMEH,
	"R":             KindR,
	"IS NOW A":      KindISNOWA,
	"HAS A":         KindHASA,
	"ITZ":           KindITZ,
	"A":             KindA,
	"R NOOB":        KindRNOOB,
	"O RLY?":        KindORLY,
	"YA RLY":        KindYARLY,
	"MEBBE":         KindMEBBE,
	"NO WAI":        KindNOWAI,
	"OIC":           KindOIC,
	"WTF?":          KindWTF,
	"OMG":           KindOMG,
	"OMGWTF":        KindOMGWTF,
	"GTFO":          KindGTFO,
	"FOUND YR":      KindFOUNDYR,
	"IM IN YR":      KindIMINYR,
	"IM OUTTA YR":   KindIMOUTTAYR,
	"UPPIN":         KindUPPIN,
	"NERFIN":        KindNERFIN,
	"YR":            KindYR,
	"TIL":           KindTIL,
	"WILE":          KindWILE,
	"HOW IZ":        KindHOWIZ,
	"IF U SAY SO":   KindIFUSAYSO,
	"AN":            KindAN,
	"MAEK":          KindMAEK,
	"IT":            KindIT,
	"IZ":            KindIZ,
	"MKAY":          KindMKAY,
	"NOT":           KindNOT,
	"SUM OF":        KindSUMOF,
	"DIFF OF":       KindDIFFOF,
	"PRODUKT OF":    KindPRODUKTOF,
	"QUOSHUNT OF":   KindQUOSHUNTOF,
	"MOD OF":        KindMODOF,
	"BIGGR OF":      KindBIGGROF,
	"SMALLR OF":     KindSMALLROF,
	"BOTH OF":       KindBOTHOF,
	"EITHER OF":     KindEITHEROF,
	"WON OF":        KindWONOF,
	"BOTH SAEM":     KindBOTHSAEM,
	"DIFFRINT":      KindDIFFRINT,
	"ALL OF":        KindALLOF,
	"ANY OF":        KindANYOF,
	"SMOOSH":        KindSMOOSH,
	"NOOB":          KindNOOB,
	"TROOF":         KindTROOF,
	"NUMBR":         KindNUMBR,
	"NUMBAR":        KindNUMBAR,
	"YARN":          KindYARN,
}

/*
maxPhraseWords is the longest phrase (in words) in phraseMap.
*/
const maxPhraseWords = 4

/*
Lex scans LOLCODE source text into a token stream terminated by a KindEOF
token. It is a deliberately small, non-streaming lexer: the interesting
engineering of this repository is the parser and AST that consume its
output, not the lexer itself (spec.md places the tokenizer outside the
parser core's scope).
*/
func Lex(name string, input string) ([]Token, error) {
	words, err := scanWords(name, input)
	if err != nil {
		return nil, err
	}
	return mergeWords(name, words)
}

/*
scanWords runs the character-level pass: it splits the input into bare
words, string literals, numbers, newlines and '!' tokens. Multi-word
keyword merging happens afterwards in mergeWords.
*/
func scanWords(name string, input string) ([]Token, error) {
	var out []Token
	line := 1
	runes := []rune(input)
	i := 0
	n := len(runes)

	isBoundary := func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '!'
	}

	for i < n {
		r := runes[i]

		switch {
		case r == '\n':
			out = append(out, Token{Kind: KindNEWLINE, Fname: name, Line: line})
			line++
			i++

		case unicode.IsSpace(r):
			i++

		case r == '!':
			out = append(out, Token{Kind: KindBANG, Image: "!", Fname: name, Line: line})
			i++

		case r == '"':
			i++
			var sb strings.Builder
			for i < n && runes[i] != '"' {
				if runes[i] == '\\' && i+1 < n {
					switch runes[i+1] {
					case '"':
						sb.WriteRune('"')
					case 'n':
						sb.WriteRune('\n')
					case 't':
						sb.WriteRune('\t')
					case '\\':
						sb.WriteRune('\\')
					default:
						sb.WriteRune(runes[i+1])
					}
					i += 2
					continue
				}
				sb.WriteRune(runes[i])
				i++
			}
			if i >= n {
				return nil, &ParseError{File: name, Line: line, Detail: "unterminated string literal", Sentinel: ErrLexicalError}
			}
			i++ // consume closing quote
			out = append(out, Token{Kind: KindSTRING, Image: sb.String(), Value: sb.String(), Fname: name, Line: line})

		case r == '-' || unicode.IsDigit(r):
			start := i
			i++
			isFloat := false
			for i < n && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					isFloat = true
				}
				i++
			}
			text := string(runes[start:i])
			if isFloat {
				v, err := strconv.ParseFloat(text, 64)
				if err != nil {
					return nil, &ParseError{File: name, Line: line, Detail: "malformed float literal " + text, Sentinel: ErrLexicalError}
				}
				out = append(out, Token{Kind: KindFLOAT, Image: text, Value: v, Fname: name, Line: line})
			} else {
				v, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					return nil, &ParseError{File: name, Line: line, Detail: "malformed integer literal " + text, Sentinel: ErrLexicalError}
				}
				out = append(out, Token{Kind: KindINT, Image: text, Value: v, Fname: name, Line: line})
			}

		default:
			start := i
			for i < n && !isBoundary(runes[i]) && runes[i] != '\n' {
				i++
			}
			word := string(runes[start:i])
			if word == "" {
				// Stray boundary rune we do not otherwise handle; skip it
				i++
				continue
			}
			out = append(out, Token{Kind: KindIDENTIFIER, Image: word, Fname: name, Line: line})
		}
	}

	out = append(out, Token{Kind: KindEOF, Fname: name, Line: line})

	return out, nil
}

/*
mergeWords runs the second lexer pass: it greedily folds runs of consecutive
bare words into the compound keyword they spell (longest phrase first),
using a small ring buffer as the lookahead window.
*/
func mergeWords(name string, words []Token) ([]Token, error) {
	buf := datautil.NewRingBuffer(maxPhraseWords)
	var out []Token

	flushPhrase := func() bool {
		if buf.Size() == 0 {
			return false
		}

		for take := buf.Size(); take >= 1; take-- {
			if take > maxPhraseWords {
				continue
			}

			var parts []string
			var first Token
			ok := true
			for k := 0; k < take; k++ {
				v := buf.Get(k)
				if v == nil {
					ok = false
					break
				}
				tok := v.(Token)
				if tok.Kind != KindIDENTIFIER {
					ok = false
					break
				}
				if k == 0 {
					first = tok
				}
				parts = append(parts, strings.ToUpper(tok.Image))
			}
			if !ok {
				continue
			}

			phrase := strings.Join(parts, " ")
			if kind, known := phraseMap[phrase]; known {
				for k := 0; k < take; k++ {
					buf.Poll()
				}
				image := strings.Join(parts, " ")
				switch strings.ToUpper(first.Image) {
				case "WIN":
					out = append(out, Token{Kind: KindBOOL, Image: "WIN", Value: true, Fname: first.Fname, Line: first.Line})
				case "FAIL":
					out = append(out, Token{Kind: KindBOOL, Image: "FAIL", Value: false, Fname: first.Fname, Line: first.Line})
				default:
					out = append(out, Token{Kind: kind, Image: image, Fname: first.Fname, Line: first.Line})
				}
				return true
			}
		}

		// No known phrase starts here - the leading word is a plain identifier
		v := buf.Poll()
		tok := v.(Token)
		out = append(out, Token{Kind: KindIDENTIFIER, Image: tok.Image, Value: tok.Image, Fname: tok.Fname, Line: tok.Line})
		return true
	}

	for _, w := range words {
		if w.Kind != KindIDENTIFIER {
			for buf.Size() > 0 {
				flushPhrase()
			}
			out = append(out, w)
			continue
		}

		buf.Add(w)
		for buf.Size() >= maxPhraseWords {
			flushPhrase()
		}
	}

	for buf.Size() > 0 {
		flushPhrase()
	}

	return out, nil
}
