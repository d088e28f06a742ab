package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// scanner is a type for a line-level scanner.
//
// Our line-level scanner will operate by calling scanning steps in a chain, iteratively.
// Each step function inspects the rest of the current line and then possibly branches
// out to a subsequent step function.
//
type scanner struct {
	lines     *bufio.Scanner // line source
	line      string         // unconsumed part of the current line
	lineNo    int            // current line number, starting at 1
	part      string         // current part, as set by the last '@' header line
	LastError error          // last error, if any
	Token     *Token         // last token produced by scanner
}

// We're building up a scanner from chains of scanner step functions.
// Tokens may be modified by a step function.
// A scanner step will return the next step in the chain, or nil to stop/accept.
// A step returning a nil token signals a line without data.
//
type scannerStep func(*Token) (*Token, scannerStep)

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &scanner{lines: bufio.NewScanner(inputReader)}
	return sc, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next token. A token subsumes the properties
// of a data line of UCD input; lines without data are skipped.
//
// Next iterates over a chain of step functions until it reaches an
// accepting state. Acceptance is signalled by getting a nil-step return value from a
// step function, meaning there is no further step applicable in this chain.
//
func (sc *scanner) Next() bool {
	for sc.LastError == nil && sc.lines.Scan() {
		sc.lineNo++
		sc.line = strings.TrimSpace(sc.lines.Text())
		token := newToken(sc.lineNo, sc.part)
		var step scannerStep = sc.ScanLine
		for step != nil && token != nil {
			token, step = step(token)
		}
		if token != nil && sc.LastError == nil {
			sc.Token = token
			return true
		}
	}
	if sc.LastError == nil {
		sc.LastError = sc.lines.Err()
	}
	sc.Token = nil
	return false
}

// ScanLine is the first step function for every line.
//
//    line start:
//      -> empty or '#': skip
//      -> '@':          part header
//      -> other:        data item
//
func (sc *scanner) ScanLine(token *Token) (*Token, scannerStep) {
	switch {
	case sc.line == "" || sc.line[0] == '#':
		return nil, nil
	case sc.line[0] == '@':
		return token, sc.ScanPartHeader
	}
	return token, sc.ScanComment
}

// ScanPartHeader remembers the name of a part, e.g. "@Part1 # Character by character test".
func (sc *scanner) ScanPartHeader(token *Token) (*Token, scannerStep) {
	header := sc.line[1:]
	if i := strings.IndexByte(header, '#'); i >= 0 {
		header = header[:i]
	}
	sc.part = strings.TrimSpace(header)
	return nil, nil
}

// ScanComment splits off a rest-of-line comment.
func (sc *scanner) ScanComment(token *Token) (*Token, scannerStep) {
	if i := strings.IndexByte(sc.line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(sc.line[i+1:])
		sc.line = strings.TrimSpace(sc.line[:i])
	}
	return token, sc.ScanFields
}

// ScanFields reads semicolon-separated fields of hex code-point sequences.
// A trailing semicolon does not open a new field.
func (sc *scanner) ScanFields(token *Token) (*Token, scannerStep) {
	fields := strings.Split(sc.line, ";")
	if len(fields) > 1 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	for _, field := range fields {
		seq, err := hexSequence(field)
		if err != nil {
			sc.LastError = fmt.Errorf("line %d: %w", sc.lineNo, err)
			return nil, nil
		}
		token.Fields = append(token.Fields, seq)
	}
	sc.line = ""
	return token, nil
}

// hexSequence decodes a blank-separated list of hex code-points.
func hexSequence(field string) ([]rune, error) {
	words := strings.Fields(field)
	seq := make([]rune, 0, len(words))
	for _, hex := range words {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("hex decoding error: %w", err)
		}
		if n > 0x10FFFF {
			return nil, fmt.Errorf("code-point out of range: %s", hex)
		}
		seq = append(seq, rune(n))
	}
	return seq, nil
}
