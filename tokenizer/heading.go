package tokenizer

import "github.com/jschaf/wikitext/token"

// parseHeading is triggered by '=' at the start of a line, outside any
// already-open heading. Grounded on Tokenizer_parse_heading: count the run
// of '=' to get a candidate level, recurse to find the matching close, and
// on failure fall back to the run as literal text.
//
// headingLevel carries the resolved level back from handleHeadingEnd, since
// that method's signature (fixed by the dispatch table) returns only a
// token list.
func (t *Tokenizer) parseHeading() error {
	t.global |= globalHeading
	reset := t.head
	t.head++
	best := 1
	for t.read(0) == '=' {
		best++
		t.head++
	}
	contextLevel := best
	if contextLevel > t.maxHeadingLevel {
		contextLevel = t.maxHeadingLevel
	}

	title, err := t.parse(ContextHeading | headingLevelContext(contextLevel))
	if err != nil {
		if IsRouteFailure(err) {
			t.head = reset + best - 1
			for i := 0; i < best; i++ {
				t.writeText('=')
			}
			t.global &^= globalHeading
			return nil
		}
		return err
	}

	level := t.headingLevel
	t.write(token.NewHeadingStart(t.gotokPos(reset), level))
	if level < best {
		for i := 0; i < best-level; i++ {
			t.writeText('=')
		}
	}
	t.writeAll(title)
	t.write(token.NewHeadingEnd(t.gotokPos(t.head)))
	t.global &^= globalHeading
	return nil
}

// handleHeadingEnd fires on '=' while a heading's title is being
// accumulated. It counts the run of closing '=', then recurses with the
// same context to check for a later, stronger run that is the real close
// (per parse_heading/handle_heading_end's mutual recursion in the original
// source): if none is found this run is the close; if one is found, this
// run is just more title text and the inner result's level wins.
func (t *Tokenizer) handleHeadingEnd() ([]token.Token, error) {
	reset := t.head
	t.head++
	best := 1
	for t.read(0) == '=' {
		best++
		t.head++
	}

	current := headingLevelFromContext(t.top.context)
	level := best
	if current > best {
		level = best
	} else {
		level = current
	}
	if level > t.maxHeadingLevel {
		level = t.maxHeadingLevel
	}

	after, err := t.parse(t.top.context)
	if err != nil {
		if !IsRouteFailure(err) {
			return nil, err
		}
		if level < best {
			// Flush the title text accumulated so far into its own Text
			// token before writing the stray closing '='s, so they
			// surface as a distinct Text token rather than merging with
			// the title (spec.md §8 scenario 6: T(" Foo "), T("=")).
			t.top.flush(t)
			for i := 0; i < best-level; i++ {
				t.writeText('=')
			}
		}
		t.head = reset + best - 1
	} else {
		for i := 0; i < best; i++ {
			t.writeText('=')
		}
		t.writeAll(after)
		level = t.headingLevel
	}

	t.headingLevel = level
	return t.pop(), nil
}
