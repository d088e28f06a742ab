package uax15

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// drain collects the output of an iterator.
func drain(it *Iterator) string {
	var b strings.Builder
	for it.Next() {
		b.WriteRune(it.Rune())
	}
	return b.String()
}

type scenario struct {
	input, output string
}

func checkScenarios(t *testing.T, name string, to func(string) string, scenarios []scenario) {
	t.Helper()
	for _, sc := range scenarios {
		out := to(sc.input)
		if diff := cmp.Diff([]rune(sc.output), []rune(out)); diff != "" {
			t.Errorf("%s(%+q) mismatch (-want +got):\n%s", name, sc.input, diff)
		}
	}
}

func iterated(f Form) func(string) string {
	return func(s string) string {
		return drain(f.Iterate(strings.NewReader(s)))
	}
}

func TestNFD(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax15")
	defer teardown()
	//
	checkScenarios(t, "NFD", iterated(NFD), []scenario{
		{"abc", "abc"},
		{"\u1E0B\u01C4", "d\u0307\u01C4"},
		{"\u2026", "\u2026"},
		{"\u2126", "\u03A9"},
		{"\u1E0B\u0323", "d\u0323\u0307"},
		{"\u1E0D\u0307", "d\u0323\u0307"},
		{"a\u0301", "a\u0301"},
		{"\u0301a", "\u0301a"},
		{"\uD4DB", "\u1111\u1171\u11B6"},
		{"\uAC1C", "\u1100\u1162"},
		{"\u00E1\u0325\u00E1\u0325", "a\u0325\u0301a\u0325\u0301"},
		{"", ""},
	})
}

func TestNFKD(t *testing.T) {
	checkScenarios(t, "NFKD", iterated(NFKD), []scenario{
		{"abc", "abc"},
		{"\u1E0B\u01C4", "d\u0307DZ\u030C"},
		{"\u2026", "..."},
		{"\u2126", "\u03A9"},
		{"\u1E0B\u0323", "d\u0323\u0307"},
		{"\u1E0D\u0307", "d\u0323\u0307"},
		{"a\u0301", "a\u0301"},
		{"\u0301a", "\u0301a"},
		{"\uD4DB", "\u1111\u1171\u11B6"},
		{"\uAC1C", "\u1100\u1162"},
		{"\uFB01", "fi"},
	})
}

func TestNFC(t *testing.T) {
	checkScenarios(t, "NFC", iterated(NFC), []scenario{
		{"abc", "abc"},
		{"\u1E0B\u01C4", "\u1E0B\u01C4"},
		{"\u2026", "\u2026"},
		{"\u2126", "\u03A9"},
		{"\u1E0B\u0323", "\u1E0D\u0307"},
		{"\u1E0D\u0307", "\u1E0D\u0307"},
		{"a\u0301", "\u00E1"},
		{"\u0301a", "\u0301a"},
		{"\uD4DB", "\uD4DB"},
		{"\u1111\u1171\u11B6", "\uD4DB"},
		{"\uAC1C", "\uAC1C"},
		{"\u1100\u1162", "\uAC1C"},
		{"a\u0300\u0305\u0315\u05AEb", "\u00E0\u05AE\u0305\u0315b"},
		{"a" + strings.Repeat("\u0301", 32) + "\u0325", "\u1E01" + strings.Repeat("\u0301", 32)},
		{"\u0958", "\u0915\u093C"},
		{"\u0F73", "\u0F71\u0F72"},
	})
}

func TestNFKC(t *testing.T) {
	checkScenarios(t, "NFKC", iterated(NFKC), []scenario{
		{"abc", "abc"},
		{"\u1E0B\u01C4", "\u1E0BD\u017D"},
		{"\u2026", "..."},
		{"\u2126", "\u03A9"},
		{"\u1E0B\u0323", "\u1E0D\u0307"},
		{"\u1E0D\u0307", "\u1E0D\u0307"},
		{"a\u0301", "\u00E1"},
		{"\u0301a", "\u0301a"},
		{"\uD4DB", "\uD4DB"},
		{"\uAC1C", "\uAC1C"},
		{"\u1E9B\u0323", "\u1E69"},
	})
}

func TestConstructors(t *testing.T) {
	in := "\u1E9B\u0323"
	for _, tc := range []struct {
		name string
		it   *Iterator
		want string
	}{
		{"ToNFD", ToNFD(strings.NewReader(in)), "\u017F\u0323\u0307"},
		{"ToNFC", ToNFC(strings.NewReader(in)), "\u1E9B\u0323"},
		{"ToNFKD", ToNFKD(strings.NewReader(in)), "s\u0323\u0307"},
		{"ToNFKC", ToNFKC(strings.NewReader(in)), "\u1E69"},
		{"ToNFDStreamSafe", ToNFDStreamSafe(strings.NewReader(in)), "\u017F\u0323\u0307"},
		{"ToNFCStreamSafe", ToNFCStreamSafe(strings.NewReader(in)), "\u1E9B\u0323"},
		{"ToNFKDStreamSafe", ToNFKDStreamSafe(strings.NewReader(in)), "s\u0323\u0307"},
		{"ToNFKCStreamSafe", ToNFKCStreamSafe(strings.NewReader(in)), "\u1E69"},
	} {
		if got := drain(tc.it); got != tc.want {
			t.Errorf("%s: expected %+q, got %+q", tc.name, tc.want, got)
		}
	}
}

func TestPrimitives(t *testing.T) {
	if CombiningClass('a') != 0 || CombiningClass(0x0301) != 230 {
		t.Errorf("unexpected combining classes")
	}
	for _, r := range []rune{'a', '0', '~', '\n'} {
		if IsCombiningMark(r) {
			t.Errorf("expected %#U not to be a combining mark", r)
		}
	}
	for _, r := range []rune{0x0301, 0x11C3A, 0x11C3F, 0x0903} {
		if !IsCombiningMark(r) {
			t.Errorf("expected %#U to be a combining mark", r)
		}
	}
	if c, ok := Compose('a', 0x0301); !ok || c != 0x00E1 {
		t.Errorf("expected a+U+0301 to compose to U+00E1, got %#U", c)
	}
	if c, ok := Compose(0x1100, 0x1162); !ok || c != 0xAC1C {
		t.Errorf("expected L+V to compose to U+AC1C, got %#U", c)
	}
	if _, ok := Compose(0x0915, 0x093C); ok {
		t.Errorf("composition must honor exclusions")
	}
	var out []rune
	DecomposeCanonical(0x1E0B, func(r rune) { out = append(out, r) })
	if diff := cmp.Diff([]rune{'d', 0x0307}, out); diff != "" {
		t.Errorf("DecomposeCanonical mismatch (-want +got):\n%s", diff)
	}
	out = out[:0]
	DecomposeCompatible(0x01C4, func(r rune) { out = append(out, r) })
	if diff := cmp.Diff([]rune{'D', 'Z', 0x030C}, out); diff != "" {
		t.Errorf("DecomposeCompatible mismatch (-want +got):\n%s", diff)
	}
	out = out[:0]
	DecomposeCanonical(0xD4DB, func(r rune) { out = append(out, r) })
	if diff := cmp.Diff([]rune{0x1111, 0x1171, 0x11B6}, out); diff != "" {
		t.Errorf("Hangul decomposition mismatch (-want +got):\n%s", diff)
	}
	out = out[:0]
	DecomposeCompatible('x', func(r rune) { out = append(out, r) })
	if len(out) != 1 || out[0] != 'x' {
		t.Errorf("expected 'x' to decompose to itself, got %v", out)
	}
}

func TestCanonicalOrder(t *testing.T) {
	rs := []rune{0x0301, 0x0323, 'a', 0x0301, 0x0316, 0x0300, 0x0323, 'b', 0x05AE, 0x0315}
	CanonicalOrder(rs)
	want := []rune{0x0323, 0x0301, 'a', 0x0316, 0x0323, 0x0301, 0x0300, 'b', 0x05AE, 0x0315}
	if diff := cmp.Diff(want, rs); diff != "" {
		t.Errorf("CanonicalOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uax15")
	defer teardown()
	//
	it := ToNFC(strings.NewReader("a\xffb"))
	if out := drain(it); out != "a" {
		t.Errorf("expected output up to the error, got %+q", out)
	}
	if !errors.Is(it.Err(), ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", it.Err())
	}
	it = ToNFD(FromRunes([]rune{'a', 0x0301, 0xD800}))
	if out := drain(it); out != "a\u0301" {
		t.Errorf("expected output up to the error, got %+q", out)
	}
	if !errors.Is(it.Err(), ErrInvalidRune) {
		t.Errorf("expected ErrInvalidRune, got %v", it.Err())
	}
	if _, _, err := it.ReadRune(); !errors.Is(err, ErrInvalidRune) {
		t.Errorf("expected ReadRune to repeat the error, got %v", err)
	}
	if s := NFC.String("a\xff\u0301"); s != "a\uFFFD\u0301" {
		t.Errorf("expected invalid bytes to be replaced, got %+q", s)
	}
}

func TestChaining(t *testing.T) {
	in := "\u1E0B\u0323 \uFB01 \uD4DB"
	out := drain(ToNFC(ToNFKD(strings.NewReader(in))))
	if want := NFKC.String(in); out != want {
		t.Errorf("expected NFC(NFKD(s)) = NFKC(s) = %+q, got %+q", want, out)
	}
}

func TestIteratorInit(t *testing.T) {
	it := ToNFC(strings.NewReader("a\u0301" + strings.Repeat("\u0316", 10)))
	it.Next()
	it.Init(strings.NewReader("e\u0301"))
	if out := drain(it); out != "\u00E9" {
		t.Errorf("expected re-initialized iterator to drop its state, got %+q", out)
	}
	it.Init(nil)
	if it.Next() {
		t.Errorf("expected empty input for nil reader")
	}
	if it.Form() != NFC {
		t.Errorf("expected form to survive Init")
	}
}

func TestAll(t *testing.T) {
	var out []rune
	for r := range ToNFD(strings.NewReader("\u00E9\u00E8")).All() {
		out = append(out, r)
		if len(out) == 3 {
			break
		}
	}
	if diff := cmp.Diff([]rune{'e', 0x0301, 'e'}, out); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestFormNames(t *testing.T) {
	for _, f := range []Form{NFC, NFD, NFKC, NFKD, NFC.StreamSafe(), NFKD.StreamSafe()} {
		g, err := ParseForm(f.Name())
		if err != nil || g != f {
			t.Errorf("expected %s to parse to itself, got %s (%v)", f.Name(), g.Name(), err)
		}
	}
	if f, err := ParseForm("nfkc-ss"); err != nil || f != NFKC.StreamSafe() {
		t.Errorf("expected nfkc-ss to parse")
	}
	if _, err := ParseForm("NFX"); err == nil {
		t.Errorf("expected error for unknown form")
	}
	if !NFKC.IsCompatibility() || NFD.IsCompatibility() || !NFC.StreamSafe().IsComposing() {
		t.Errorf("unexpected form predicates")
	}
}

func TestConvenience(t *testing.T) {
	if s := NFKC.String("\uFB01 \u2460"); s != "fi 1" {
		t.Errorf("expected \"fi 1\", got %+q", s)
	}
	if b := NFD.Bytes([]byte("\u00E9")); string(b) != "e\u0301" {
		t.Errorf("expected decomposed bytes, got %+q", b)
	}
	if !NFC.IsNormalString("\u00E9") || NFC.IsNormalString("e\u0301") {
		t.Errorf("unexpected NFC quick check")
	}
	if !NFD.IsNormalString("e\u0301") || NFD.IsNormalString("\u00E9") {
		t.Errorf("unexpected NFD quick check")
	}
	if NFC.IsNormalString("\xff") {
		t.Errorf("invalid UTF-8 is never normalized")
	}
}

func TestConcurrentConvenience(t *testing.T) {
	in := strings.Repeat("\u1E0B\u0323\u00E1\u0325 ", 50)
	want := NFD.String(in)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := NFD.String(in); got != want {
					t.Errorf("concurrent normalization differs")
					return
				}
			}
		}()
	}
	wg.Wait()
}
