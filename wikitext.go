// Package wikitext is the public facade over the wikicode tokenizer: it
// mirrors the teacher's root bibtex.go/Biber facade over its
// parser/scanner packages, wrapping tokenizer.Tokenize with FileSet
// bookkeeping and human-readable error formatting.
package wikitext

import (
	"fmt"
	gotok "go/token"

	"github.com/jschaf/wikitext/token"
	"github.com/jschaf/wikitext/tokenizer"
)

// Option reconfigures the underlying tokenizer. Re-exported so callers
// don't need to import the tokenizer package directly for the common case.
type Option = tokenizer.Option

var (
	WithMaxHeadingLevel = tokenizer.WithMaxHeadingLevel
	WithNamedEntities   = tokenizer.WithNamedEntities
	WithLogger          = tokenizer.WithLogger
	WithoutNFC          = tokenizer.WithoutNFC
)

// Tokenize converts wikicode source text into a flat token stream. The
// filename is used only for position reporting; pass "" if the source
// has no file of its own. Grounded on Biber.Parse's
// parser.ParseFile(gotok.NewFileSet(), ...) call, generalized to accept
// the caller's own FileSet so positions from multiple tokenized sources
// can be compared.
func Tokenize(fset *gotok.FileSet, filename string, src string, opts ...Option) ([]token.Token, error) {
	return tokenizer.Tokenize(fset, filename, src, opts...)
}

// FormatError renders err for a human. Route failures never escape
// tokenizer.Tokenize (they are always caught and turned into literal
// text), so any error reaching here is a hard error; FormatError just
// unwraps and prints it, mirroring yomlette's parser.FormatError without
// needing its PrettyPrinter machinery since this module's error model is
// a single flat wrapped cause rather than a tree of source annotations.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("wikitext: %s", err.Error())
}
