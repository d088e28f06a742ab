package uax15

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/uax15/ucd"
)

// Form denotes a Unicode normalization form, optionally in its
// stream-safe variant.
type Form uint8

// The normalization forms of UAX#15.
const (
	NFC  Form = iota // canonical decomposition, followed by canonical composition
	NFD              // canonical decomposition
	NFKC             // compatibility decomposition, followed by canonical composition
	NFKD             // compatibility decomposition
)

const (
	identity       Form = 4 // no normalization, used for bare stream-safe transforms
	streamSafeFlag Form = 8
)

// StreamSafe returns the stream-safe variant of f. Text in this form never
// contains more than MaxNonStarters consecutive non-starters.
func (f Form) StreamSafe() Form {
	return f | streamSafeFlag
}

// IsStreamSafe is true for stream-safe variants of a form.
func (f Form) IsStreamSafe() bool {
	return f&streamSafeFlag != 0
}

func (f Form) base() Form {
	return f &^ streamSafeFlag
}

// IsComposing is true for NFC and NFKC.
func (f Form) IsComposing() bool {
	return f.base() == NFC || f.base() == NFKC
}

// IsCompatibility is true for NFKC and NFKD.
func (f Form) IsCompatibility() bool {
	return f.base() == NFKC || f.base() == NFKD
}

func (f Form) kind() ucd.Kind {
	if f.IsCompatibility() {
		return ucd.Compatibility
	}
	return ucd.Canonical
}

var formNames = [...]string{"NFC", "NFD", "NFKC", "NFKD", "stream-safe"}

// Name returns a name for f, e.g. "NFKC" or "NFC-stream-safe".
func (f Form) Name() string {
	if int(f.base()) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", f)
	}
	name := formNames[f.base()]
	if f.IsStreamSafe() && f.base() != identity {
		name += "-stream-safe"
	}
	return name
}

// ParseForm returns the form named by s. Names are case-insensitive and
// may carry a suffix "-stream-safe" (or "-ss").
func ParseForm(s string) (Form, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	var f Form
	for _, suffix := range []string{"-STREAM-SAFE", "-SS"} {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			f = streamSafeFlag
			break
		}
	}
	for i, n := range formNames[:identity] {
		if n == name {
			return f | Form(i), nil
		}
	}
	return NFC, fmt.Errorf("uax15: unknown normalization form %q", s)
}

// Iterate returns an iterator producing the normalized form of the runes
// read from src.
func (f Form) Iterate(src io.RuneReader) *Iterator {
	return newIterator(f, src)
}

// ToNFD returns an iterator producing the canonical decomposition of src.
func ToNFD(src io.RuneReader) *Iterator {
	return NFD.Iterate(src)
}

// ToNFC returns an iterator producing the canonical composition of src.
func ToNFC(src io.RuneReader) *Iterator {
	return NFC.Iterate(src)
}

// ToNFKD returns an iterator producing the compatibility decomposition of src.
func ToNFKD(src io.RuneReader) *Iterator {
	return NFKD.Iterate(src)
}

// ToNFKC returns an iterator producing the compatibility composition of src.
func ToNFKC(src io.RuneReader) *Iterator {
	return NFKC.Iterate(src)
}

// ToNFDStreamSafe returns an iterator producing stream-safe NFD.
func ToNFDStreamSafe(src io.RuneReader) *Iterator {
	return NFD.StreamSafe().Iterate(src)
}

// ToNFCStreamSafe returns an iterator producing stream-safe NFC.
func ToNFCStreamSafe(src io.RuneReader) *Iterator {
	return NFC.StreamSafe().Iterate(src)
}

// ToNFKDStreamSafe returns an iterator producing stream-safe NFKD.
func ToNFKDStreamSafe(src io.RuneReader) *Iterator {
	return NFKD.StreamSafe().Iterate(src)
}

// ToNFKCStreamSafe returns an iterator producing stream-safe NFKC.
func ToNFKCStreamSafe(src io.RuneReader) *Iterator {
	return NFKC.StreamSafe().Iterate(src)
}

// StreamSafe returns an iterator which passes src through unnormalized,
// but inserts a GraphemeJoiner wherever a run of non-starters would
// exceed MaxNonStarters.
func StreamSafe(src io.RuneReader) *Iterator {
	return identity.StreamSafe().Iterate(src)
}

// --- Convenience -----------------------------------------------------------

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// String returns the normalized form of s. Invalid UTF-8 is replaced by
// U+FFFD.
func (f Form) String(s string) string {
	if isASCII(s) {
		return s
	}
	it := borrowIterator(f, replacing{strings.NewReader(s)})
	defer it.releaseIntoPool()
	var sb strings.Builder
	sb.Grow(len(s) + len(s)/2)
	for it.Next() {
		sb.WriteRune(it.Rune())
	}
	return sb.String()
}

// Bytes returns the normalized form of b in a new slice. Invalid UTF-8 is
// replaced by U+FFFD.
func (f Form) Bytes(b []byte) []byte {
	it := borrowIterator(f, replacing{bytes.NewReader(b)})
	defer it.releaseIntoPool()
	out := make([]byte, 0, len(b)+len(b)/2)
	for it.Next() {
		out = utf8.AppendRune(out, it.Rune())
	}
	return out
}

// IsNormalString is true if s is already in form f.
func (f Form) IsNormalString(s string) bool {
	if isASCII(s) {
		return true
	}
	if !utf8.ValidString(s) {
		return false
	}
	return f.String(s) == s
}
