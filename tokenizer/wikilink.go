package tokenizer

import "github.com/jschaf/wikitext/token"

// parseWikilink is triggered by '[[' outside an already-open wikilink
// title. Grounded on Tokenizer_parse_wikilink: recurse into the title,
// and on route failure fall back to two literal '[' rather than
// propagating the failure, exactly like parseTemplate/parseArgument do
// for their own delimiters.
func (t *Tokenizer) parseWikilink() error {
	t.head += 2
	reset := t.head - 1

	inner, err := t.parse(ContextWikilink | ContextWikilinkTitle)
	if err != nil {
		if IsRouteFailure(err) {
			t.head = reset
			t.writeText('[')
			t.writeText('[')
			return nil
		}
		return err
	}

	t.write(token.NewWikilinkOpen(t.gotokPos(reset)))
	t.writeAll(inner)
	t.write(token.NewWikilinkClose(t.gotokPos(t.head)))
	return nil
}

// handleWikilinkSeparator fires on '|' while inside a wikilink's title:
// everything after belongs to the display text instead. Grounded on
// Tokenizer_handle_wikilink_separator.
func (t *Tokenizer) handleWikilinkSeparator() {
	t.top.context &^= ContextWikilinkTitle
	t.top.context |= ContextWikilinkText
	t.write(token.NewWikilinkSeparator(t.gotokPos(t.head)))
}
