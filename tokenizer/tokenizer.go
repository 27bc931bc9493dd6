// Package tokenizer implements the speculative recursive-descent scanner
// that turns wikicode into a flat stream of token.Token values. It is
// adapted from the shape of a hand-written go/token-based Scanner: a
// struct holding scan position and mode, an entry point that walks the
// input once, and a flat dispatch ladder over the current character and
// context, rather than a generated or table-driven lexer.
package tokenizer

import (
	gotok "go/token"

	"github.com/jschaf/wikitext/internal/wikilog"
	"github.com/jschaf/wikitext/token"
	klog "github.com/go-kit/kit/log"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer holds the mutable state of a single tokenize call: the input,
// the read cursor, the route-stack top, and the tokenizer-wide global
// flags. A Tokenizer is not safe for concurrent use and is not meant to
// be reused across calls to Tokenize; New constructs a fresh one.
type Tokenizer struct {
	text []rune
	head int
	top  *frame
	global globalFlags

	// headingLevel is a side channel: handle_heading_end's signature in
	// the dispatch table is fixed to (tokens, error), so the resolved
	// level for the heading it just closed travels back to parseHeading
	// through this field instead of a second return value.
	headingLevel int

	file *gotok.File
	log  wikilog.Logger

	maxHeadingLevel int
	namedEntities   map[string]struct{}
	skipNFC         bool
}

// Option configures a Tokenizer. Grounded on bibtex.Option / bibtex.New's
// functional-options shape.
type Option func(*Tokenizer)

// WithMaxHeadingLevel overrides the deepest heading level the tokenizer
// will report (default 6, matching "======"). Runs of '=' longer than
// this still close a heading; the reported level is simply capped.
func WithMaxHeadingLevel(n int) Option {
	return func(t *Tokenizer) {
		if n < 1 {
			n = 1
		}
		if n > 6 {
			n = 6
		}
		t.maxHeadingLevel = n
	}
}

// WithNamedEntities replaces the table really_parse_entity validates
// "&name;" references against. The default table covers the HTML5 core
// set most wikicode uses (see defaultNamedEntities).
func WithNamedEntities(names map[string]struct{}) Option {
	return func(t *Tokenizer) {
		t.namedEntities = names
	}
}

// WithLogger enables trace logging of route pushes, pops, and failures.
// Silent (the zero wikilog.Logger) by default.
func WithLogger(l klog.Logger) Option {
	return func(t *Tokenizer) {
		t.log = wikilog.New("tokenizer", l)
	}
}

// WithoutNFC disables the default Unicode NFC normalization pass over the
// input, for callers that have already normalized (or want byte-exact
// round-tripping of already-decomposed text).
func WithoutNFC() Option {
	return func(t *Tokenizer) {
		t.skipNFC = true
	}
}

// New constructs a Tokenizer with the given options applied over the
// defaults (max heading level 6, built-in named-entity table, NFC
// normalization on, no logging).
func New(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		maxHeadingLevel: 6,
		namedEntities:   defaultNamedEntities,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize runs the tokenizer over src, recording positions in a file
// added to fset. It is the package's single public entry point, matching
// spec.md's `tokenize(text) -> list<Token>`.
func Tokenize(fset *gotok.FileSet, filename string, src string, opts ...Option) ([]token.Token, error) {
	if fset == nil {
		return nil, hardError("tokenizer: Tokenize called with a nil FileSet")
	}

	t := New(opts...)
	if !t.skipNFC && !norm.NFC.IsNormalString(src) {
		src = norm.NFC.String(src)
	}

	t.text = []rune(src)
	t.file = fset.AddFile(filename, -1, len(t.text))
	for i, ch := range t.text {
		if ch == '\n' {
			t.file.AddLine(i + 1)
		}
	}

	toks, err := t.parse(0)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// gotokPos maps a rune offset into this tokenizer's input to a gotok.Pos
// in the shared FileSet. Positions in this module are rune offsets, not
// byte offsets: unlike the teacher's byte-oriented Scanner, the core
// operates directly on code points (spec.md's "randomly-indexable
// sequence of code points"), so every gotok.File backing a Tokenizer is
// sized in runes.
func (t *Tokenizer) gotokPos(offset int) gotok.Pos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.text) {
		offset = len(t.text)
	}
	return t.file.Pos(offset)
}

func (t *Tokenizer) logPush(ctx Context) {
	t.log.Msgr("push", "context", ctx, "head", t.head)
}

func (t *Tokenizer) logPop(ctx Context, n int) {
	t.log.Msgr("pop", "context", ctx, "tokens", n, "head", t.head)
}

func (t *Tokenizer) logFail(ctx Context) {
	t.log.Dump("fail", struct {
		Context Context
		Head    int
	}{ctx, t.head})
}
