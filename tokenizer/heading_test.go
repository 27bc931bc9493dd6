package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jschaf/wikitext/token"
)

func TestTokenize_Heading_MaxLevel(t *testing.T) {
	fset := newTestFileSet()
	toks, err := Tokenize(fset, "", "======= Seven =======", WithMaxHeadingLevel(6))
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []token.Token{
		heading(6),
		// The leading stray '=' (opening run is 7 long but the reported
		// level is capped at 6) merges into the title text since nothing
		// flushes between it and the title. The trailing stray '=' (the
		// closing run is independently 7 long) is its own Text token:
		// handleHeadingEnd flushes the title before writing it, per
		// spec.md §8 scenario 6.
		txt("= Seven "), txt("="),
		simple(token.HeadingEnd),
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_Heading_CustomMaxLevel(t *testing.T) {
	fset := newTestFileSet()
	toks, err := Tokenize(fset, "", "=== Three ===", WithMaxHeadingLevel(2))
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []token.Token{
		heading(2),
		txt("= Three "), txt("="),
		simple(token.HeadingEnd),
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_Heading_NotAtLineStartIsLiteral(t *testing.T) {
	toks := tokenize(t, "a == b == c")
	for _, tok := range toks {
		if tok.Kind == token.HeadingStart {
			t.Fatalf("expected no heading, got %v", toks)
		}
	}
}

func TestTokenize_Heading_BareNewlineInsideFails(t *testing.T) {
	// A newline before any closing '=' run fails the heading route; the
	// whole opening run falls back to literal text.
	toks := tokenize(t, "== no close\nrest")
	want := []token.Token{txt("== no close\nrest")}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
