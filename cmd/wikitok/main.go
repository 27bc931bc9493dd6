// Command wikitok tokenizes a wikicode file and prints its token stream,
// one token per line, color-coded by kind. Grounded on
// pgavlin-yomlette/cmd/yparse/yparse.go's _main(args)/os.Exit-free shape
// and its fatih/color + mattn/go-colorable pairing for Windows-safe
// colored output.
package main

import (
	"errors"
	"fmt"
	gotok "go/token"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"

	"github.com/jschaf/wikitext"
	"github.com/jschaf/wikitext/token"
)

func colorFor(k token.Kind) *color.Color {
	switch {
	case k == token.Text:
		return color.New(color.FgHiGreen)
	case k == token.Illegal:
		return color.New(color.FgHiRed, color.Bold)
	case k.IsOpen():
		return color.New(color.FgHiCyan, color.Bold)
	case k.IsClose():
		return color.New(color.FgHiCyan)
	default:
		return color.New(color.FgHiYellow)
	}
}

func _main(args []string) error {
	if len(args) < 2 {
		return errors.New("wikitok: usage: wikitok file.wiki")
	}
	filename := args[1]
	src, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	fset := gotok.NewFileSet()
	toks, err := wikitext.Tokenize(fset, filename, string(src))
	if err != nil {
		return err
	}

	out := colorable.NewColorableStdout()
	for _, tok := range toks {
		pos := fset.Position(tok.Pos)
		line := fmt.Sprintf("%s:%d:%d\t%s", pos.Filename, pos.Line, pos.Column, tok.Kind)
		if tok.Kind == token.Text {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		if tok.Kind == token.HeadingStart {
			line += fmt.Sprintf(" level=%d", tok.Level)
		}
		colorFor(tok.Kind).Fprintln(out, line)
	}
	return nil
}

func main() {
	if err := _main(os.Args); err != nil {
		fmt.Println(wikitext.FormatError(err))
		os.Exit(1)
	}
}
