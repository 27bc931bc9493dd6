package tokenizer

import "github.com/jschaf/wikitext/token"

// parseTemplateOrArgument is triggered by a run of two or more '{'. The
// whole opening run is consumed up front; the while(braces) loop then
// greedily tries argument (3 braces) ahead of template (2 braces) on
// whatever remains, leaving any braces it can't place as literal text.
// A run of exactly 4, e.g. "{{{{x}}}}", has no way to place both an
// argument and a template (3+2 needs 5 braces), so it resolves as a
// single argument with one leftover brace literal on each side; 5 or
// more is what actually nests one inside the other.
func (t *Tokenizer) parseTemplateOrArgument() error {
	t.head += 2
	braces := 2
	for t.read(0) == '{' {
		t.head++
		braces++
	}

	t.push(0)

	for braces > 0 {
		if braces == 1 {
			return t.writeTextThenStack("{")
		}
		if braces == 2 {
			ok, err := t.tryTemplate()
			if err != nil {
				return err
			}
			if !ok {
				return t.writeTextThenStack("{{")
			}
			break
		}

		ok, err := t.tryArgument()
		if err != nil {
			return err
		}
		if ok {
			braces -= 3
		} else {
			ok, err = t.tryTemplate()
			if err != nil {
				return err
			}
			if !ok {
				return t.writeTextThenStack(literalBraces(braces))
			}
			braces -= 2
		}

		if braces > 0 {
			// The construct just matched left head one short of its own
			// close (the convention of handleTemplateEnd and of the
			// argument-close dispatch row); close that gap before re-examining the
			// remaining braces so the next attempt starts at the true
			// next character.
			t.head++
		}
	}

	toks := t.pop()
	t.writeAll(toks)
	return nil
}

func literalBraces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '{'
	}
	return string(b)
}

// writeTextThenStack pops the current frame, writes text as literal
// characters into what's now the top frame, and splices the popped
// frame's own tokens (from an earlier successful reduction in this same
// brace run, if any) after it. head is left one short of having passed
// text; this function is only ever reached from a non-return dispatch
// row, which applies its own generic advance to close that gap.
func (t *Tokenizer) writeTextThenStack(text string) error {
	stack := t.pop()
	for _, ch := range text {
		t.writeText(ch)
	}
	if len(stack) > 0 {
		t.writeAll(stack)
	}
	t.head--
	return nil
}

// tryTemplate attempts parse_template; ok is false (with a nil error) when
// the route failed and the caller should try the next interpretation.
func (t *Tokenizer) tryTemplate() (bool, error) {
	err := t.parseTemplate()
	if err == nil {
		return true, nil
	}
	if IsRouteFailure(err) {
		return false, nil
	}
	return false, err
}

func (t *Tokenizer) tryArgument() (bool, error) {
	err := t.parseArgument()
	if err == nil {
		return true, nil
	}
	if IsRouteFailure(err) {
		return false, nil
	}
	return false, err
}

// parseTemplate and parseArgument share a shape (Tokenizer_parse_template /
// Tokenizer_parse_argument in the original): save head, recurse into the
// name sub-parse, and on failure restore head and report "no match" rather
// than propagating the failure, so the caller can try the sibling
// interpretation.
func (t *Tokenizer) parseTemplate() error {
	reset := t.head
	inner, err := t.parse(ContextTemplate | ContextTemplateName)
	if err != nil {
		if IsRouteFailure(err) {
			t.head = reset
			return errRouteFailure
		}
		return err
	}
	t.top.flush(t)
	t.top.tokens = writeFirst(token.NewTemplateOpen(t.gotokPos(reset)), t.top.tokens)
	t.writeAll(inner)
	t.write(token.NewTemplateClose(t.gotokPos(t.head)))
	return nil
}

func (t *Tokenizer) parseArgument() error {
	reset := t.head
	inner, err := t.parse(ContextArgument | ContextArgumentName)
	if err != nil {
		if IsRouteFailure(err) {
			t.head = reset
			return errRouteFailure
		}
		return err
	}
	t.top.flush(t)
	t.top.tokens = writeFirst(token.NewArgumentOpen(t.gotokPos(reset)), t.top.tokens)
	t.writeAll(inner)
	t.write(token.NewArgumentClose(t.gotokPos(t.head)))
	return nil
}

// handleTemplateParam fires on '|' while inside a template. If a param key
// sub-frame is already open it is the end of the prior parameter: pop it
// keeping its context and splice it in, leaving TEMPLATE_PARAM_KEY set on
// the parent. Otherwise this is the first parameter: just set
// TEMPLATE_PARAM_KEY. Either way a new sub-frame is pushed to accumulate
// the next key (or value).
func (t *Tokenizer) handleTemplateParam() error {
	top := t.top
	top.context &^= ContextTemplateName | ContextTemplateParamValue

	if top.context&ContextTemplateParamKey != 0 {
		toks := t.popKeepingContext()
		t.writeAll(toks)
	} else {
		top.context |= ContextTemplateParamKey
	}

	t.write(token.NewTemplateParamSeparator(t.gotokPos(t.head)))
	t.push(t.top.context)
	return nil
}

// handleTemplateParamValue fires on '=' while the current sub-frame is
// accumulating a param key: it closes the key, splices it in, and begins
// accumulating the value.
func (t *Tokenizer) handleTemplateParamValue() error {
	toks := t.popKeepingContext()
	t.writeAll(toks)
	t.top.context &^= ContextTemplateParamKey
	t.top.context |= ContextTemplateParamValue
	t.write(token.NewTemplateParamEquals(t.gotokPos(t.head)))
	return nil
}

// handleTemplateEnd closes a template on '}}'. If a param key sub-frame is
// still open (a template with no '=' for its final parameter, or no
// parameters splicing needed) it is folded in first. Leaves head on the
// second '}'; this is a RETURN row in the dispatch loop, so no further
// generic advance follows and the caller (parseTemplateOrArgument, or the
// outer loop for a top-level template) must account for the one
// outstanding position itself.
func (t *Tokenizer) handleTemplateEnd() ([]token.Token, error) {
	if t.top.context&ContextTemplateParamKey != 0 {
		toks := t.popKeepingContext()
		t.writeAll(toks)
	}
	t.head++
	return t.pop(), nil
}
