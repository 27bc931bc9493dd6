package tokenizer

import "github.com/jschaf/wikitext/token"

// handleArgumentSeparator fires on '|' while accumulating an argument's
// name. Grounded on Tokenizer_handle_argument_separator: the separator
// just flips which half of the argument is being accumulated, unlike a
// template parameter which must fold a key sub-frame closed first.
func (t *Tokenizer) handleArgumentSeparator() {
	t.top.context &^= ContextArgumentName
	t.top.context |= ContextArgumentDefault
	t.write(token.NewArgumentSeparator(t.gotokPos(t.head)))
}
