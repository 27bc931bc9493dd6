package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jschaf/wikitext/token"
)

func TestTokenize_UnterminatedArgumentFallsBack(t *testing.T) {
	toks := tokenize(t, "{{{unterminated")
	want := []token.Token{txt("{{{unterminated")}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_UnterminatedWikilinkFallsBack(t *testing.T) {
	toks := tokenize(t, "[[unterminated")
	want := []token.Token{txt("[[unterminated")}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_NestedTemplateInParamValue(t *testing.T) {
	toks := tokenize(t, "{{a|b={{c}}}}")
	want := []token.Token{
		simple(token.TemplateOpen), txt("a"),
		simple(token.TemplateParamSeparator), txt("b"),
		simple(token.TemplateParamEquals),
		simple(token.TemplateOpen), txt("c"), simple(token.TemplateClose),
		simple(token.TemplateClose),
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_NestedWikilinkInDisplayText(t *testing.T) {
	toks := tokenize(t, "[[a|[[b]]]]")
	want := []token.Token{
		simple(token.WikilinkOpen), txt("a"),
		simple(token.WikilinkSeparator),
		simple(token.WikilinkOpen), txt("b"), simple(token.WikilinkClose),
		simple(token.WikilinkClose),
	}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_UnbalancedBraceInTemplateNameFails(t *testing.T) {
	// A lone '{' inside a template name arms fail-next, so the safety
	// verifier fails the whole route on the character after it ('b'),
	// falling back to literal braces.
	toks := tokenize(t, "{{a{b}}")
	want := []token.Token{txt("{{a{b}}")}
	if diff := cmp.Diff(want, toks, ignorePos); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
