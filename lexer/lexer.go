/*
File    : go-mix/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis (tokenization) of Lox source
// code. It scans through the source text byte by byte, identifying and
// creating tokens that represent the syntactic elements of the language:
// operators, keywords, literals, identifiers, and structural punctuation.
// Comments and whitespace are consumed silently; no token is ever produced
// for them.
package lexer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/akashmaji946/go-mix/loxerr"
)

// Lexer holds the scanning state for one source string: the current byte
// under examination, the scan position, and the current line for error
// reporting and token metadata.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
}

// NewLexer creates and initializes a new Lexer for the given source code.
func NewLexer(src string) *Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return &Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
	}
}

// Peek looks ahead to the next byte without consuming it, returning 0 at
// end of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the lexer to the next byte in the source.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// atEnd reports whether the scanner has consumed the whole source.
func (lex *Lexer) atEnd() bool {
	return lex.Position >= lex.SrcLength
}

// skipWhitespaceAndComments consumes runs of whitespace and `//` line
// comments between tokens, tracking line numbers as it goes.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch lex.Current {
		case ' ', '\r', '\t':
			lex.Advance()
		case '\n':
			lex.Line++
			lex.Advance()
		case '/':
			if lex.Peek() == '/' {
				for lex.Current != '\n' && lex.Current != 0 {
					lex.Advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// NextToken retrieves the next token from the source stream, or a scan
// error if the source byte at the current position cannot start any valid
// token. This is the scanner's sole entry point; ScanTokens below drives it
// to completion.
func (lex *Lexer) NextToken() (Token, *loxerr.Error) {
	lex.skipWhitespaceAndComments()

	line := lex.Line

	if lex.atEnd() {
		return NewToken(EOF, "", line), nil
	}

	c := lex.Current

	switch {
	case isDigit(c):
		return lex.readNumber(), nil
	case isAlpha(c):
		return lex.readIdentifier(), nil
	case c == '"':
		return lex.readString()
	}

	lex.Advance()

	switch c {
	case '(':
		return NewToken(LEFT_PAREN, "(", line), nil
	case ')':
		return NewToken(RIGHT_PAREN, ")", line), nil
	case '{':
		return NewToken(LEFT_BRACE, "{", line), nil
	case '}':
		return NewToken(RIGHT_BRACE, "}", line), nil
	case ',':
		return NewToken(COMMA, ",", line), nil
	case '.':
		return NewToken(DOT, ".", line), nil
	case '-':
		return NewToken(MINUS, "-", line), nil
	case '+':
		return NewToken(PLUS, "+", line), nil
	case ';':
		return NewToken(SEMICOLON, ";", line), nil
	case '*':
		return NewToken(STAR, "*", line), nil
	case '/':
		return NewToken(SLASH, "/", line), nil
	case '!':
		if lex.match('=') {
			return NewToken(BANG_EQUAL, "!=", line), nil
		}
		return NewToken(BANG, "!", line), nil
	case '=':
		if lex.match('=') {
			return NewToken(EQUAL_EQUAL, "==", line), nil
		}
		return NewToken(EQUAL, "=", line), nil
	case '<':
		if lex.match('=') {
			return NewToken(LESS_EQUAL, "<=", line), nil
		}
		return NewToken(LESS, "<", line), nil
	case '>':
		if lex.match('=') {
			return NewToken(GREATER_EQUAL, ">=", line), nil
		}
		return NewToken(GREATER, ">", line), nil
	}

	return Token{}, loxerr.New(loxerr.UnexpectedCharacter, line, string(c), "Unexpected character.")
}

// match consumes the current byte and reports true if it equals expected;
// otherwise the scanner position is unchanged.
func (lex *Lexer) match(expected byte) bool {
	if lex.Current != expected {
		return false
	}
	lex.Advance()
	return true
}

// readString scans a double-quoted string literal. Lox strings have no
// escape sequences and may span multiple lines; the line counter is
// incremented for every embedded newline so later diagnostics still point
// at the right place. An unterminated string is reported at its opening
// line.
func (lex *Lexer) readString() (Token, *loxerr.Error) {
	startLine := lex.Line
	lex.Advance() // consume opening quote

	var b strings.Builder
	for lex.Current != '"' {
		if lex.atEnd() {
			return Token{}, loxerr.New(loxerr.UnterminatedString, startLine, "\"", "Unterminated string.")
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		b.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote

	lexeme := "\"" + b.String() + "\""
	return NewStringToken(lexeme, b.String(), startLine), nil
}

// readNumber scans an integer or floating-point literal: one or more
// digits, optionally followed by a '.' and one or more digits. A trailing
// dot with no following digit is left unconsumed for the next token (a bare
// "123." scans as NUMBER "123" followed by a DOT).
func (lex *Lexer) readNumber() Token {
	start := lex.Position
	line := lex.Line

	for isDigit(lex.Current) {
		lex.Advance()
	}

	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance() // consume '.'
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}

	lexeme := lex.Src[start:lex.Position]
	var value float64
	fmt.Sscanf(lexeme, "%g", &value)
	return NewNumberToken(lexeme, value, line)
}

// readIdentifier scans an identifier or keyword: a letter or underscore
// followed by any number of letters, digits, or underscores.
func (lex *Lexer) readIdentifier() Token {
	start := lex.Position
	line := lex.Line

	for isAlpha(lex.Current) || isDigit(lex.Current) {
		lex.Advance()
	}

	lexeme := lex.Src[start:lex.Position]
	return NewToken(lookupIdent(lexeme), lexeme, line)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

// ScanTokens tokenizes the entire source, returning the full token stream
// terminated by a single EOF token, or the first scan error encountered.
// The scanner fails fast: it does not attempt to recover and keep scanning
// past a malformed character or unterminated string.
func (lex *Lexer) ScanTokens() ([]Token, *loxerr.Error) {
	tokens := make([]Token, 0)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens, nil
}
