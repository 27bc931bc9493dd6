package token

import gotok "go/token"

// Token is a single emitted unit of the tokenizer's flat output stream. It is
// an opaque, value-typed record: callers inspect Kind and, for the handful of
// kinds that carry a payload, Text or Level.
type Token struct {
	Kind  Kind
	Pos   gotok.Pos
	Text  string // set only for Text
	Level int    // set only for HeadingStart, in [1, 6]
}

func (t Token) String() string { return t.Kind.String() }

// NewText returns a Text token carrying the given literal plain text. text
// must be non-empty; the tokenizer never emits an empty Text token.
func NewText(pos gotok.Pos, text string) Token {
	return Token{Kind: Text, Pos: pos, Text: text}
}

// NewHeadingStart returns a HeadingStart token for the given heading level,
// which must be in [1, 6].
func NewHeadingStart(pos gotok.Pos, level int) Token {
	return Token{Kind: HeadingStart, Pos: pos, Level: level}
}

func newSimple(kind Kind, pos gotok.Pos) Token { return Token{Kind: kind, Pos: pos} }

func NewTemplateOpen(pos gotok.Pos) Token            { return newSimple(TemplateOpen, pos) }
func NewTemplateParamSeparator(pos gotok.Pos) Token   { return newSimple(TemplateParamSeparator, pos) }
func NewTemplateParamEquals(pos gotok.Pos) Token      { return newSimple(TemplateParamEquals, pos) }
func NewTemplateClose(pos gotok.Pos) Token            { return newSimple(TemplateClose, pos) }
func NewArgumentOpen(pos gotok.Pos) Token             { return newSimple(ArgumentOpen, pos) }
func NewArgumentSeparator(pos gotok.Pos) Token        { return newSimple(ArgumentSeparator, pos) }
func NewArgumentClose(pos gotok.Pos) Token            { return newSimple(ArgumentClose, pos) }
func NewWikilinkOpen(pos gotok.Pos) Token             { return newSimple(WikilinkOpen, pos) }
func NewWikilinkSeparator(pos gotok.Pos) Token        { return newSimple(WikilinkSeparator, pos) }
func NewWikilinkClose(pos gotok.Pos) Token            { return newSimple(WikilinkClose, pos) }
func NewHeadingEnd(pos gotok.Pos) Token               { return newSimple(HeadingEnd, pos) }
func NewCommentStart(pos gotok.Pos) Token             { return newSimple(CommentStart, pos) }
func NewCommentEnd(pos gotok.Pos) Token               { return newSimple(CommentEnd, pos) }
