package tokenizer

import "github.com/jschaf/wikitext/token"

// markers lists every code point that can begin or continue a construct and
// therefore must be dispatched rather than written straight to the
// textbuffer. Grounded on the marker set given in the spec's external
// interfaces: brace/bracket/angle delimiters, the wikilink and template
// separators, heading and entity sigils, and the handful of characters
// (*;:/-!) reserved for constructs this core doesn't yet implement but
// still must not silently swallow into plain text.
const markers = "{}[]<>|=&#*;:/-!\n"

func isMarker(ch rune) bool {
	for _, m := range markers {
		if ch == m {
			return true
		}
	}
	return false
}

// parse runs one speculative route: it pushes a frame with ctx, dispatches
// characters until the route closes (success) or fails (errRouteFailure),
// and returns the closed frame's token list. Grounded on Tokenizer_parse,
// the recursive entry point every construct parser calls to parse its
// nested content. This is also the body of the main dispatch loop
// (component H): a flat priority ladder over (character, context), chosen
// over a table-driven dispatcher because the original Design Notes call a
// direct match on a small sum type preferable to a hash-based scheme for a
// dispatch table this size.
func (t *Tokenizer) parse(ctx Context) ([]token.Token, error) {
	t.push(ctx)

	for {
		this := t.read(0)
		top := t.top
		cur := top.context

		if cur&unsafeContexts != 0 {
			if err := t.verifySafe(this); err != nil {
				return nil, err
			}
		}

		if this == eof {
			if cur&ContextTemplateParamKey != 0 {
				// A dangling param-key sub-frame (e.g. "{{a|b" with no
				// closing "}}") is discarded before the enclosing
				// TEMPLATE context is checked against failContexts,
				// matching tokenizer.c's EOF handling: the key frame is
				// popped first, then fail_route tears down the frame
				// it leaves on top.
				t.deleteTop()
			}
			if cur&failContexts != 0 {
				return nil, t.failRoute()
			}
			return t.pop(), nil
		}

		if !isMarker(this) {
			t.writeText(this)
			t.head++
			continue
		}

		done, result, err := t.dispatchMarker(this, cur)
		if err != nil {
			return nil, err
		}
		if done {
			return result, nil
		}
		t.head++
	}
}

// dispatchMarker implements the dispatch table in priority order, top to
// bottom, first match wins. done reports whether this marker closed the
// current route (the handle_*_end family); result is only meaningful when
// done is true.
func (t *Tokenizer) dispatchMarker(this rune, cur Context) (done bool, result []token.Token, err error) {
	switch {
	case cur&ContextComment != 0:
		if this == '-' && t.read(1) == '-' && t.read(2) == '>' {
			return true, t.pop(), nil
		}
		t.writeText(this)
		return false, nil, nil
	}

	if this == '{' && t.read(1) == '{' {
		if err := t.parseTemplateOrArgument(); err != nil {
			return false, nil, err
		}
		t.top.context &^= ContextFailNext
		return false, nil, nil
	}

	if cur&ContextTemplate != 0 && this == '|' {
		if err := t.handleTemplateParam(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	if cur&ContextTemplateParamKey != 0 && this == '=' {
		if err := t.handleTemplateParamValue(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	if cur&ContextTemplate != 0 && this == '}' && t.read(1) == '}' {
		toks, err := t.handleTemplateEnd()
		if err != nil {
			return false, nil, err
		}
		return true, toks, nil
	}

	if cur&ContextArgumentName != 0 && this == '|' {
		t.handleArgumentSeparator()
		return false, nil, nil
	}

	if cur&ContextArgument != 0 && this == '}' && t.read(1) == '}' && t.read(2) == '}' {
		t.head += 2
		return true, t.pop(), nil
	}

	if cur&ContextArgument != 0 && this == '}' && t.read(1) == '}' {
		t.writeText(this)
		return false, nil, nil
	}

	if cur&ContextWikilinkTitle == 0 && this == '[' && t.read(1) == '[' {
		if err := t.parseWikilink(); err != nil {
			return false, nil, err
		}
		t.top.context &^= ContextFailNext
		return false, nil, nil
	}

	if cur&ContextWikilinkTitle != 0 && this == '|' {
		t.handleWikilinkSeparator()
		return false, nil, nil
	}

	if cur&ContextWikilink != 0 && this == ']' && t.read(1) == ']' {
		t.head += 1
		return true, t.pop(), nil
	}

	if t.global&globalHeading == 0 && this == '=' && t.atLineStart() {
		if err := t.parseHeading(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	if cur&ContextHeading != 0 && this == '=' {
		toks, err := t.handleHeadingEnd()
		if err != nil {
			return false, nil, err
		}
		return true, toks, nil
	}

	if cur&ContextHeading != 0 && this == '\n' {
		return false, nil, t.failRoute()
	}

	if this == '&' {
		if err := t.parseEntity(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	if this == '<' && t.read(1) == '!' && t.read(2) == '-' && t.read(3) == '-' {
		if err := t.parseComment(); err != nil {
			return false, nil, err
		}
		return false, nil, nil
	}

	t.writeText(this)
	return false, nil, nil
}
