package tokenizer

import "github.com/jschaf/wikitext/token"

// parseComment is triggered by "<!--" at the head of the string. Grounded
// on Tokenizer_parse_comment: consume the opening delimiter fully, recurse
// under a dedicated comment context, and on failure (no closing "-->"
// before EOF) restore head and fall back to the four characters as literal
// text.
func (t *Tokenizer) parseComment() error {
	t.head += 4
	reset := t.head - 1

	body, err := t.parse(ContextComment)
	if err != nil {
		if IsRouteFailure(err) {
			t.head = reset
			t.writeText('<')
			t.writeText('!')
			t.writeText('-')
			t.writeText('-')
			return nil
		}
		return err
	}

	t.write(token.NewCommentStart(t.gotokPos(reset)))
	t.writeAll(body)
	t.write(token.NewCommentEnd(t.gotokPos(t.head)))
	t.head += 2
	return nil
}
