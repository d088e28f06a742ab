/* Package ucdparse provides a parser for Unicode Character Database test files.

Package ucdparse provides a parser for files of the Unicode Character Database,
the format of which is defined in http://www.unicode.org/reports/tr44/.
It is used to read NormalizationTest.txt, which holds lines of
semicolon-separated fields of hex code-point sequences, grouped into
parts by header lines:

	@Part0 # Specific cases
	1E0A;1E0A;0044 0307;1E0A;0044 0307; # (Ḋ; Ḋ; D◌̇; Ḋ; D◌̇; ) LATIN CAPITAL LETTER D WITH DOT ABOVE

See http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
*/
package ucdparse

import (
	"fmt"
	"strings"
)

// Token is a type for communicating between the line-level scanner and the
// client. The scanner will read lines and wrap the content of data lines
// into tokens.
type Token struct {
	LineNo  int      // line of the data item within the input source
	Part    string   // name of the enclosing part, e.g. "Part1"
	Fields  [][]rune // code-point sequences of the line
	Comment string   // rest-of-line comment of the data item line
}

// newToken creates a token initialized with a line number and part.
func newToken(line int, part string) *Token {
	return &Token{
		LineNo: line,
		Part:   part,
		Fields: [][]rune{},
	}
}

func (token *Token) String() string {
	seqs := make([]string, len(token.Fields))
	for i, f := range token.Fields {
		seqs[i] = CodePoints(f)
	}
	return fmt.Sprintf("token[line %d @%s %s]", token.LineNo, token.Part, strings.Join(seqs, ";"))
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) []rune {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return nil
}

// FieldString gets field #i (1…n) as a string.
func (token *Token) FieldString(i int) string {
	return string(token.Field(i))
}

// CodePoints formats a rune sequence the way UCD files do, e.g. "0044 0307".
func CodePoints(rs []rune) string {
	var b strings.Builder
	for i, r := range rs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%04X", r)
	}
	return b.String()
}
